package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// StudentDir creates a temporary student directory containing the given files.
// Each file gets a minimal student record; the content is never inspected by
// the manifest generator.
func StudentDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data", "students")
	require.NoError(t, os.MkdirAll(dir, 0755))

	for _, name := range names {
		WriteFile(t, dir, name, `{"name": "Test Student", "major": "CS", "grad_year": 2027}`)
	}

	return dir
}

// WriteFile writes content to dir/name, creating parent directories as needed
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

// ReadFile returns the content of path as a string
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

// Chdir switches the working directory for the duration of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}
