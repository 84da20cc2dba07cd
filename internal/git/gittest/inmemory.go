// Package gittest provides test utilities for the git package.
package gittest

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/stretchr/testify/require"
)

// InMemoryRepo wraps *git.GitManager with test-only accessors.
// The underlying repository uses in-memory storage (memfs).
type InMemoryRepo struct {
	*git.GitManager
	repo       *gogit.Repository
	worktreeFS billy.Filesystem
}

// NewInMemoryRepo creates a GitManager backed by in-memory storage.
// The repoRoot is a logical path (not a real filesystem path) used for
// message construction in tests.
//
// The repository is seeded with an initial commit so HEAD exists.
func NewInMemoryRepo(t *testing.T, repoRoot string) *InMemoryRepo {
	t.Helper()

	dotGitFS := memfs.New()
	worktreeFS := memfs.New()

	storer := filesystem.NewStorage(dotGitFS, cache.NewObjectLRUDefault())

	repo, err := gogit.Init(storer, gogit.WithWorkTree(worktreeFS))
	require.NoError(t, err, "failed to init in-memory repo")

	wt, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")

	readme, err := worktreeFS.Create("README.md")
	require.NoError(t, err, "failed to create README")
	_, err = readme.Write([]byte("# Test Repository\n"))
	require.NoError(t, err, "failed to write README")
	require.NoError(t, readme.Close(), "failed to close README")

	_, err = wt.Add("README.md")
	require.NoError(t, err, "failed to add README")

	_, err = wt.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to create initial commit")

	return &InMemoryRepo{
		GitManager: git.NewGitManagerWithRepo(repo, repoRoot),
		repo:       repo,
		worktreeFS: worktreeFS,
	}
}

// Repo returns the underlying go-git Repository for test assertions.
func (r *InMemoryRepo) Repo() *gogit.Repository {
	return r.repo
}

// CreateBranch creates a local branch pointing at the current HEAD commit.
func (r *InMemoryRepo) CreateBranch(t *testing.T, name string) {
	t.Helper()

	head, err := r.repo.Head()
	require.NoError(t, err, "failed to get HEAD")

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), head.Hash())
	require.NoError(t, r.repo.Storer.SetReference(ref), "failed to create branch %s", name)
}

// CreateRemoteBranch creates a remote-tracking ref
// (refs/remotes/<remote>/<name>) pointing at the current HEAD commit.
func (r *InMemoryRepo) CreateRemoteBranch(t *testing.T, remote, name string) {
	t.Helper()

	head, err := r.repo.Head()
	require.NoError(t, err, "failed to get HEAD")

	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName(remote, name), head.Hash())
	require.NoError(t, r.repo.Storer.SetReference(ref), "failed to create remote branch %s/%s", remote, name)
}

// DetachHead points HEAD directly at the current commit hash.
func (r *InMemoryRepo) DetachHead(t *testing.T) {
	t.Helper()

	head, err := r.repo.Head()
	require.NoError(t, err, "failed to get HEAD")

	ref := plumbing.NewHashReference(plumbing.HEAD, head.Hash())
	require.NoError(t, r.repo.Storer.SetReference(ref), "failed to detach HEAD")
}

// FakeDiffer records diff invocations and returns canned output.
// Responses are consumed in order; once exhausted the last one repeats.
type FakeDiffer struct {
	// Calls holds the argument list of every Diff invocation.
	Calls [][]string
	// Responses are returned in order, one per call.
	Responses []string
	// Err, if set, is returned by every call.
	Err error
}

// Diff implements git.Differ.
func (f *FakeDiffer) Diff(_ context.Context, args ...string) (string, error) {
	f.Calls = append(f.Calls, args)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	i := len(f.Calls) - 1
	if i >= len(f.Responses) {
		i = len(f.Responses) - 1
	}
	return f.Responses[i], nil
}
