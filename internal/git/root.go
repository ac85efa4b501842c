package git

import (
	"errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/quantmind-br/roster-go/internal/utils"
)

// RootLocator finds the project root that relative student paths are resolved against
type RootLocator struct {
	client Client
	logger *utils.Logger
}

// NewRootLocator creates a RootLocator. A nil client uses go-git directly.
func NewRootLocator(client Client, logger *utils.Logger) *RootLocator {
	if client == nil {
		client = NewClient()
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &RootLocator{
		client: client,
		logger: logger.WithComponent("git"),
	}
}

// Root returns the work tree root of the repository containing start, or
// start itself when it is not inside a non-bare repository.
func (l *RootLocator) Root(start string) string {
	repo, err := l.client.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			l.logger.Warn().Err(err).Str("path", start).Msg("Failed to open repository")
		}
		return start
	}

	wt, err := repo.Worktree()
	if err != nil {
		l.logger.Debug().Err(err).Str("path", start).Msg("Repository has no work tree")
		return start
	}

	root := wt.Filesystem.Root()
	l.logger.Debug().Str("root", root).Msg("Detected project root")
	return root
}

// Resolve maps dir to an absolute path. Relative paths are taken relative to
// the project root containing start.
func (l *RootLocator) Resolve(start, dir string) (string, error) {
	dir = utils.ExpandPath(dir)
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}

	start, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.Root(start), dir), nil
}
