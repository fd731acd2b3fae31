// Package git provides repository validation helpers for calclog.
// It uses the go-git library for repository detection and root/branch
// resolution; the parsing-heavy history queries live behind the changelog
// package's git CLI source.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// openRepo opens the repository containing path, traversing up the
// directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		path = "."
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository checks whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := openRepo(path)
	return err == nil
}

// Root returns the absolute path of the repository root containing path.
func Root(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// CurrentBranch returns the checked-out branch name.
// Returns empty string in detached HEAD state.
func CurrentBranch(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}
