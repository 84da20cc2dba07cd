package snapshot

import (
	"context"
	"errors"
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

func newOptions(t *testing.T) (*Options, *iostreamstest.TestIOStreams) {
	t.Helper()
	ios := iostreamstest.New()
	return &Options{
		IOStreams: ios.IOStreams,
		RepoPath:  "/work/repo",
		Output:    filepath.Join(t.TempDir(), "out.diff"),
		Excludes:  []string{"a/", "b/*.log"},
	}, ios
}

func TestRun_CleanRepoWritesPlaceholders(t *testing.T) {
	fake := &gittest.FakeDiffer{}
	opts, ios := newOptions(t)

	err := run(context.Background(), opts, fake)
	require.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No unstaged changes.")
	assert.Contains(t, string(data), "No staged changes.")
	assert.Contains(t, ios.OutBuf.String(), "Diff result saved to file: "+opts.Output)
}

func TestRun_DiffTextAppearsVerbatim(t *testing.T) {
	fake := &gittest.FakeDiffer{Responses: []string{"UNSTAGED-BODY", "STAGED-BODY"}}
	opts, ios := newOptions(t)

	err := run(context.Background(), opts, fake)
	require.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "Repository: /work/repo")
	assert.Contains(t, doc, "==== Unstaged Changes ====\nUNSTAGED-BODY")
	assert.Contains(t, doc, "==== Staged Changes ====\nSTAGED-BODY")
	assert.Contains(t, ios.OutBuf.String(), doc)
}

func TestRun_DifferReceivesExcludePathspecs(t *testing.T) {
	fake := &gittest.FakeDiffer{}
	opts, _ := newOptions(t)

	err := run(context.Background(), opts, fake)
	require.NoError(t, err)

	require.Len(t, fake.Calls, 2)
	assert.Equal(t, []string{"--", ":(exclude)a/", ":(exclude)b/*.log"}, fake.Calls[0])
	assert.Equal(t, []string{"--cached", ":(exclude)a/", ":(exclude)b/*.log"}, fake.Calls[1])
}

func TestRun_DiffFailureWritesNothing(t *testing.T) {
	fake := &gittest.FakeDiffer{Err: errors.New("git exploded")}
	opts, _ := newOptions(t)

	err := run(context.Background(), opts, fake)
	require.Error(t, err)

	_, statErr := os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_RepositoryResolutionFailureAborts(t *testing.T) {
	ios := iostreamstest.New()
	opts := &Options{
		IOStreams: ios.IOStreams,
		GitManager: func(path string) (*git.GitManager, error) {
			return nil, git.ErrNotRepository
		},
		Differ: func(string) git.Differ {
			t.Fatal("differ must not be constructed when the repository is invalid")
			return nil
		},
		RepoPath: "/not/a/repo",
		Output:   filepath.Join(t.TempDir(), "out.diff"),
	}

	err := Run(context.Background(), opts)
	require.ErrorIs(t, err, git.ErrNotRepository)

	_, statErr := os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(statErr))
}
