package compare

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/schmitthub/diffsnap/internal/git/gittest"
	"github.com/schmitthub/diffsnap/internal/iostreams/iostreamstest"
	"github.com/schmitthub/diffsnap/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

// fakeResolver implements BranchResolver and records lookups.
type fakeResolver struct {
	current  string
	branches map[string]string // name -> resolved revision
	lookups  []string
}

func (f *fakeResolver) CurrentBranch() (string, error) {
	return f.current, nil
}

func (f *fakeResolver) ResolveBranch(name string) (string, bool, error) {
	f.lookups = append(f.lookups, name)
	resolved, ok := f.branches[name]
	if !ok {
		return "", false, fmt.Errorf("branch %q: %w", name, git.ErrBranchNotFound)
	}
	return resolved, resolved != name, nil
}

func newOptions(t *testing.T) (*Options, *iostreamstest.TestIOStreams) {
	t.Helper()
	ios := iostreamstest.New()
	return &Options{
		IOStreams:     ios.IOStreams,
		RepoPath:      "/work/repo",
		FeatureBranch: "feature",
		TargetBranch:  "main",
		Output:        filepath.Join(t.TempDir(), "out.diff"),
	}, ios
}

func TestRun_WritesBranchDocument(t *testing.T) {
	opts, ios := newOptions(t)
	resolver := &fakeResolver{branches: map[string]string{"main": "main", "feature": "feature"}}
	fake := &gittest.FakeDiffer{Responses: []string{"BRANCH-DIFF-BODY"}}

	err := run(context.Background(), opts, resolver, fake)
	require.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Equal(t, "Diff between target branch 'main' and feature branch 'feature':\nBRANCH-DIFF-BODY", string(data))
	assert.Contains(t, ios.OutBuf.String(), "Diff result saved to file: "+opts.Output)
}

func TestRun_EmptyDiffUsesPlaceholder(t *testing.T) {
	opts, _ := newOptions(t)
	resolver := &fakeResolver{branches: map[string]string{"main": "main", "feature": "feature"}}
	fake := &gittest.FakeDiffer{}

	err := run(context.Background(), opts, resolver, fake)
	require.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No differences found between the branches.")
}

func TestRun_DefaultsFeatureToCurrentBranch(t *testing.T) {
	opts, ios := newOptions(t)
	opts.FeatureBranch = ""
	resolver := &fakeResolver{
		current:  "current-branch",
		branches: map[string]string{"main": "main", "current-branch": "current-branch"},
	}
	fake := &gittest.FakeDiffer{}

	err := run(context.Background(), opts, resolver, fake)
	require.NoError(t, err)

	assert.Contains(t, ios.OutBuf.String(), "No feature branch specified. Using current branch: current-branch")
	require.Len(t, fake.Calls, 1)
	assert.Equal(t, "current-branch", fake.Calls[0][1])
}

func TestRun_RemoteFallbackUsedAsEndpoint(t *testing.T) {
	opts, ios := newOptions(t)
	resolver := &fakeResolver{branches: map[string]string{"main": "origin/main", "feature": "feature"}}
	fake := &gittest.FakeDiffer{}

	err := run(context.Background(), opts, resolver, fake)
	require.NoError(t, err)

	assert.Contains(t, ios.OutBuf.String(), "Target branch 'main' not found locally. Using remote branch 'origin/main'.")
	require.Len(t, fake.Calls, 1)
	assert.Equal(t, []string{"origin/main", "feature", "--"}, fake.Calls[0])
}

func TestRun_MissingTargetShortCircuits(t *testing.T) {
	opts, _ := newOptions(t)
	resolver := &fakeResolver{branches: map[string]string{"feature": "feature"}}
	fake := &gittest.FakeDiffer{}

	err := run(context.Background(), opts, resolver, fake)
	require.ErrorIs(t, err, git.ErrBranchNotFound)

	// Target resolution failed, so the feature branch was never looked up
	// and no diff ran.
	assert.Equal(t, []string{"main"}, resolver.lookups)
	assert.Empty(t, fake.Calls)

	data, readErr := os.ReadFile(opts.Output)
	require.NoError(t, readErr)
	assert.Equal(t, "Error: Target branch 'main' does not exist locally or remotely.", string(data))
}

func TestRun_MissingFeatureWritesFailureReport(t *testing.T) {
	opts, _ := newOptions(t)
	resolver := &fakeResolver{branches: map[string]string{"main": "main"}}
	fake := &gittest.FakeDiffer{}

	err := run(context.Background(), opts, resolver, fake)
	require.ErrorIs(t, err, git.ErrBranchNotFound)

	assert.Equal(t, []string{"main", "feature"}, resolver.lookups)
	assert.Empty(t, fake.Calls)

	data, readErr := os.ReadFile(opts.Output)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Feature branch 'feature' does not exist locally or remotely.")
}

func TestRun_ExcludesReachDiffInvocation(t *testing.T) {
	opts, _ := newOptions(t)
	opts.Excludes = []string{"a/", "b/*.log"}
	resolver := &fakeResolver{branches: map[string]string{"main": "main", "feature": "feature"}}
	fake := &gittest.FakeDiffer{}

	err := run(context.Background(), opts, resolver, fake)
	require.NoError(t, err)

	require.Len(t, fake.Calls, 1)
	assert.Equal(t,
		[]string{"main", "feature", "--", ":(exclude)a/", ":(exclude)b/*.log"},
		fake.Calls[0])
}

func TestRun_DetachedHeadWithoutFeatureBranchFails(t *testing.T) {
	opts, _ := newOptions(t)
	opts.FeatureBranch = ""
	resolver := &fakeResolver{current: "", branches: map[string]string{"main": "main"}}

	err := run(context.Background(), opts, resolver, &gittest.FakeDiffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detached")
}

func TestRun_DiffFailurePropagates(t *testing.T) {
	opts, _ := newOptions(t)
	resolver := &fakeResolver{branches: map[string]string{"main": "main", "feature": "feature"}}
	fake := &gittest.FakeDiffer{Err: errors.New("git exploded")}

	err := run(context.Background(), opts, resolver, fake)
	require.Error(t, err)

	_, statErr := os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_AgainstInMemoryRepository(t *testing.T) {
	repo := gittest.NewInMemoryRepo(t, "/work/repo")
	repo.CreateBranch(t, "feature")
	repo.CreateRemoteBranch(t, "origin", "main")

	opts, ios := newOptions(t)
	fake := &gittest.FakeDiffer{Responses: []string{"BODY"}}

	err := run(context.Background(), opts, repo.GitManager, fake)
	require.NoError(t, err)

	assert.Contains(t, ios.OutBuf.String(), "Target branch 'main' not found locally. Using remote branch 'origin/main'.")
	require.Len(t, fake.Calls, 1)
	assert.Equal(t, "origin/main", fake.Calls[0][0])
	assert.Equal(t, "feature", fake.Calls[0][1])
}
