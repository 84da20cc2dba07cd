// Package git provides Git repository operations for diffsnap.
//
// This is a leaf package: it imports only stdlib, go-git, and os/exec —
// no internal packages. Repository and branch resolution run on go-git;
// raw diff text comes from the git binary via Differ, because go-git
// implements neither ':(exclude)' pathspecs nor git's exact textual
// diff output.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

var (
	// ErrNotRepository is returned when the path is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrBareRepository is returned when the repository has no working tree.
	ErrBareRepository = errors.New("repository is bare")

	// ErrBranchNotFound is returned when a branch exists neither locally
	// nor as an origin remote-tracking ref.
	ErrBranchNotFound = errors.New("branch does not exist locally or remotely")
)

// DefaultRemote is the remote consulted when a branch is missing locally.
const DefaultRemote = "origin"

// GitManager owns the repository handle and answers branch and ref
// questions for a single invocation.
type GitManager struct {
	repo     *gogit.Repository
	repoRoot string
}

// Open opens the git repository containing the given path, walking up
// the directory tree to find the repository root.
//
// Returns ErrNotRepository (wrapped) if path is not inside a git
// repository and ErrBareRepository (wrapped) if the repository has no
// working tree.
func Open(path string) (*GitManager, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("reading repository config: %w", err)
	}
	if cfg.Core.IsBare {
		return nil, fmt.Errorf("%w: %s", ErrBareRepository, path)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &GitManager{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
	}, nil
}

// NewGitManagerWithRepo creates a GitManager from an existing go-git
// Repository. This is primarily used for testing with in-memory
// repositories. The repoRoot is the logical root directory (can be a
// fake path for testing).
func NewGitManagerWithRepo(repo *gogit.Repository, repoRoot string) *GitManager {
	return &GitManager{
		repo:     repo,
		repoRoot: repoRoot,
	}
}

// Repository returns the underlying go-git Repository.
func (g *GitManager) Repository() *gogit.Repository {
	return g.repo
}

// RepoRoot returns the root directory of the git repository.
func (g *GitManager) RepoRoot() string {
	return g.repoRoot
}

// CurrentBranch returns the current branch name of the repository.
// Returns empty string and no error for detached HEAD state.
func (g *GitManager) CurrentBranch() (string, error) {
	head, err := g.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	if head.Name() == plumbing.HEAD {
		// Detached HEAD
		return "", nil
	}

	return head.Name().Short(), nil
}

// BranchExists checks if a local branch exists in the repository.
func (g *GitManager) BranchExists(branch string) (bool, error) {
	_, err := g.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking branch %q: %w", branch, err)
	}
	return true, nil
}

// RemoteBranchExists checks if a remote-tracking ref exists for the
// branch on the default remote (refs/remotes/origin/<branch>).
func (g *GitManager) RemoteBranchExists(branch string) (bool, error) {
	ref := plumbing.NewRemoteReferenceName(DefaultRemote, branch)
	_, err := g.repo.Reference(ref, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking remote branch %q: %w", branch, err)
	}
	return true, nil
}

// ResolveBranch resolves a branch name to a diffable revision:
// the local branch if it exists, otherwise the origin remote-tracking
// ref ("origin/<branch>"). The second return reports whether the
// remote fallback was used.
//
// Returns ErrBranchNotFound (wrapped, naming the branch) when neither
// exists.
func (g *GitManager) ResolveBranch(branch string) (string, bool, error) {
	local, err := g.BranchExists(branch)
	if err != nil {
		return "", false, err
	}
	if local {
		return branch, false, nil
	}

	remote, err := g.RemoteBranchExists(branch)
	if err != nil {
		return "", false, err
	}
	if remote {
		return DefaultRemote + "/" + branch, true, nil
	}

	return "", false, fmt.Errorf("branch %q: %w", branch, ErrBranchNotFound)
}
