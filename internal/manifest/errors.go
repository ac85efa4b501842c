package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrDirNotFound indicates the student directory does not exist
	ErrDirNotFound = errors.New("student directory not found")

	// ErrNotDirectory indicates the student path exists but is not a directory
	ErrNotDirectory = errors.New("student path is not a directory")

	// ErrInvalidFormat indicates an existing manifest is not a JSON array of strings
	ErrInvalidFormat = errors.New("manifest must be a JSON array of file names")

	// ErrManifestStale indicates the manifest on disk differs from the directory contents
	ErrManifestStale = errors.New("manifest is out of date")

	// ErrWriteFailed indicates the manifest could not be written
	ErrWriteFailed = errors.New("failed to write manifest")
)
