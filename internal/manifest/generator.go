package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quantmind-br/roster-go/internal/utils"
)

// Generator scans a student directory and maintains its manifest
type Generator struct {
	manifestName string
	pattern      string
	dryRun       bool
	logger       *utils.Logger
}

// NewGenerator creates a new Generator, filling unset options with defaults
func NewGenerator(opts Options) *Generator {
	defaults := DefaultOptions()
	if opts.ManifestName == "" {
		opts.ManifestName = defaults.ManifestName
	}
	if opts.Pattern == "" {
		opts.Pattern = defaults.Pattern
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Generator{
		manifestName: opts.ManifestName,
		pattern:      opts.Pattern,
		dryRun:       opts.DryRun,
		logger:       opts.Logger.WithComponent("manifest"),
	}
}

// ManifestPath returns the manifest location for a student directory
func (g *Generator) ManifestPath(dir string) string {
	return filepath.Join(dir, g.manifestName)
}

// Scan lists the student files in dir. Only regular files (or symlinks to
// regular files) matching the pattern are kept, the manifest itself is
// excluded, and the result is sorted.
func (g *Generator) Scan(ctx context.Context, dir string) (Manifest, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat student directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read student directory: %w", err)
	}

	log := g.logger.WithDir(dir)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if name == g.manifestName {
			continue
		}
		if ok, _ := filepath.Match(g.pattern, name); !ok {
			continue
		}
		if !g.isRegular(dir, entry) {
			log.Debug().Str("entry", name).Msg("Skipping non-regular entry")
			continue
		}
		names = append(names, name)
	}

	log.Debug().
		Int("entries", len(entries)).
		Int("students", len(names)).
		Msg("Scanned student directory")

	return sortNames(names), nil
}

func (g *Generator) isRegular(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// Generate rebuilds the manifest for dir and overwrites the manifest file.
// Nothing is written when the directory is missing or in dry-run mode.
func (g *Generator) Generate(ctx context.Context, dir string) (*Result, error) {
	result, err := g.build(ctx, dir)
	if err != nil {
		return nil, err
	}

	if g.dryRun {
		g.logger.Info().Str("path", result.Path).Msg("Dry run, manifest not written")
		return result, nil
	}

	if err := utils.WriteFileAtomic(result.Path, result.Data, 0644); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailed, result.Path, err)
	}
	result.Written = true

	g.logger.Debug().
		Str("path", result.Path).
		Int("students", result.Count()).
		Bool("changed", result.Changed).
		Msg("Manifest written")

	return result, nil
}

// Check rebuilds the manifest for dir in memory and compares it with the file
// on disk. It returns ErrManifestStale alongside the result when they differ.
func (g *Generator) Check(ctx context.Context, dir string) (*Result, error) {
	result, err := g.build(ctx, dir)
	if err != nil {
		return nil, err
	}
	if result.Changed {
		return result, fmt.Errorf("%w: %s", ErrManifestStale, result.Path)
	}
	return result, nil
}

func (g *Generator) build(ctx context.Context, dir string) (*Result, error) {
	current, err := g.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	data, err := current.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	result := &Result{
		Manifest: current,
		Path:     g.ManifestPath(dir),
		Data:     data,
	}

	prevData, err := os.ReadFile(result.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read existing manifest: %w", err)
	}
	result.Changed = err != nil || !bytes.Equal(prevData, data)

	if err == nil {
		prev, perr := Parse(prevData)
		if perr != nil {
			g.logger.Warn().Err(perr).Str("path", result.Path).Msg("Existing manifest is malformed")
		}
		result.Added, result.Removed = current.Diff(prev)
	} else {
		result.Added = append([]string(nil), current...)
	}

	for _, name := range result.Added {
		g.logger.Debug().Str("file", name).Msg("Student file added")
	}
	for _, name := range result.Removed {
		g.logger.Debug().Str("file", name).Msg("Student file removed")
	}

	return result, nil
}
