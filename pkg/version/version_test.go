package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, settings []debug.BuildSetting, ok bool) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		if !ok {
			return nil, false
		}
		return &debug.BuildInfo{Settings: settings}, true
	}
	t.Cleanup(func() { readBuildInfo = orig })
}

func withLdflags(t *testing.T, v, built, commit string) {
	t.Helper()

	origV, origB, origC := Version, BuildTime, Commit
	Version, BuildTime, Commit = v, built, commit
	t.Cleanup(func() { Version, BuildTime, Commit = origV, origB, origC })
}

func TestGet_Ldflags(t *testing.T) {
	withLdflags(t, "1.2.3", "2026-10-01T00:00:00Z", "deadbeef")
	withBuildInfo(t, []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, true)

	info := Get()

	require.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "2026-10-01T00:00:00Z", info.BuildTime)
	assert.Equal(t, "deadbeef", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	assert.Equal(t, "1.2.3", Short())
	assert.Contains(t, Full(), "roster 1.2.3 (commit: deadbeef, built: 2026-10-01T00:00:00Z")
}

func TestGet_VCSFallback(t *testing.T) {
	withLdflags(t, "dev", "unknown", "unknown")
	withBuildInfo(t, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-10-16T09:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}, true)

	info := Get()

	assert.Equal(t, "0123456789ab", info.Commit)
	assert.Equal(t, "2026-10-16T09:00:00Z", info.BuildTime)
	assert.True(t, info.Modified)
	assert.Contains(t, info.String(), "commit: 0123456789ab-dirty")
}

func TestGet_NoBuildInfo(t *testing.T) {
	withLdflags(t, "dev", "unknown", "unknown")
	withBuildInfo(t, nil, false)

	info := Get()

	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.False(t, info.Modified)
}
