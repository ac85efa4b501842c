package manifest

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/quantmind-br/roster-go/internal/utils"
)

const (
	// DefaultManifestName is the reserved file name of the manifest itself
	DefaultManifestName = "index.json"

	// DefaultPattern selects student files
	DefaultPattern = "*.json"
)

// Manifest is the sorted list of student file names
type Manifest []string

// Encode serializes the manifest as a 2-space indented JSON array followed by
// a newline. An empty manifest encodes as [] and never as null.
func (m Manifest) Encode() ([]byte, error) {
	names := m
	if names == nil {
		names = Manifest{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode([]string(names)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff returns the names present in m but not in prev, and the names present
// in prev but not in m. Both inputs must be sorted.
func (m Manifest) Diff(prev Manifest) (added, removed []string) {
	i, j := 0, 0
	for i < len(m) && j < len(prev) {
		switch {
		case m[i] == prev[j]:
			i++
			j++
		case m[i] < prev[j]:
			added = append(added, m[i])
			i++
		default:
			removed = append(removed, prev[j])
			j++
		}
	}
	added = append(added, m[i:]...)
	removed = append(removed, prev[j:]...)
	return added, removed
}

// Options configures a Generator
type Options struct {
	// ManifestName is excluded from the listing and is the output file name
	ManifestName string
	// Pattern is the glob student file names must match
	Pattern string
	// DryRun computes the manifest without writing it
	DryRun bool
	Logger *utils.Logger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() Options {
	return Options{
		ManifestName: DefaultManifestName,
		Pattern:      DefaultPattern,
	}
}

// Result describes one generator run
type Result struct {
	Manifest Manifest
	// Path is the manifest file location
	Path string
	// Data is the encoded manifest
	Data []byte
	// Changed reports whether Data differs from the file previously on disk
	Changed bool
	// Written reports whether the file was (re)written
	Written bool
	Added   []string
	Removed []string
}

// Count returns the number of student files in the manifest
func (r *Result) Count() int {
	return len(r.Manifest)
}

func sortNames(names []string) Manifest {
	sort.Strings(names)
	return Manifest(names)
}
