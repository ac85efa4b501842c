package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads an existing manifest file. A missing file yields an empty
// manifest. Student files themselves are never read.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	return Parse(data)
}

// Parse decodes manifest bytes and returns the names in sorted order
func Parse(data []byte) (Manifest, error) {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if names == nil {
		// JSON null
		return nil, fmt.Errorf("%w: got null", ErrInvalidFormat)
	}
	return sortNames(names), nil
}
