// Package snapshot implements the local-changes mode: the working
// tree's unstaged and staged diffs, written to the output file.
package snapshot

import (
	"context"
	"fmt"

	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/schmitthub/diffsnap/internal/iostreams"
	"github.com/schmitthub/diffsnap/internal/logger"
	"github.com/schmitthub/diffsnap/internal/report"
)

// Options contains the options for the local-diff operation.
type Options struct {
	IOStreams  *iostreams.IOStreams
	GitManager func(path string) (*git.GitManager, error)
	Differ     func(repoRoot string) git.Differ

	RepoPath string
	Output   string
	Excludes []string
}

// Run retrieves the unstaged and staged diffs and persists the composed
// document. Repository resolution failures abort before anything is
// written.
func Run(ctx context.Context, opts *Options) error {
	mgr, err := opts.GitManager(opts.RepoPath)
	if err != nil {
		return err
	}

	return run(ctx, opts, opts.Differ(mgr.RepoRoot()))
}

func run(ctx context.Context, opts *Options, differ git.Differ) error {
	unstaged, err := git.UnstagedDiff(ctx, differ, opts.Excludes)
	if err != nil {
		return err
	}

	staged, err := git.StagedDiff(ctx, differ, opts.Excludes)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("repo", opts.RepoPath).
		Int("excludes", len(opts.Excludes)).
		Bool("unstaged_empty", unstaged == "").
		Bool("staged_empty", staged == "").
		Msg("local diff retrieved")

	doc := report.Local(opts.RepoPath, unstaged, staged)
	fmt.Fprintln(opts.IOStreams.Out, doc)

	if err := report.Write(opts.Output, doc); err != nil {
		return err
	}
	fmt.Fprintf(opts.IOStreams.Out, "\nDiff result saved to file: %s\n", opts.Output)

	return nil
}
