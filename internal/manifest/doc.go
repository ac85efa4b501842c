// Package manifest builds the student manifest: a JSON array naming every
// student data file in a directory, used by the roster site to discover
// which files to fetch.
//
// # Manifest Format
//
// The manifest is written next to the student files (index.json by default)
// as a 2-space indented JSON array with a trailing newline:
//
//	[
//	  "ada-lovelace.json",
//	  "grace-hopper.json"
//	]
//
// Names are sorted lexicographically and the manifest never lists itself.
// Student files are never opened; only their names matter.
//
// # Usage
//
//	gen := manifest.NewGenerator(manifest.Options{Logger: logger})
//	result, err := gen.Generate(ctx, "data/students")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Updated manifest with %d student file(s).\n", result.Count())
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrDirNotFound: the student directory does not exist
//   - ErrNotDirectory: the student path is not a directory
//   - ErrInvalidFormat: an existing manifest is not a JSON array of strings
//   - ErrManifestStale: the manifest on disk does not match the directory
//   - ErrWriteFailed: the manifest could not be written
package manifest
