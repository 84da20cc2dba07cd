// Package compare implements the branch-comparison mode: the diff
// between a target branch and a feature branch, written to the output
// file.
package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/schmitthub/diffsnap/internal/iostreams"
	"github.com/schmitthub/diffsnap/internal/logger"
	"github.com/schmitthub/diffsnap/internal/report"
)

// BranchResolver answers branch questions for a repository.
// *git.GitManager implements it; tests substitute fakes to pin down
// resolution order.
type BranchResolver interface {
	CurrentBranch() (string, error)
	ResolveBranch(name string) (string, bool, error)
}

// Options contains the options for the branch-diff operation.
type Options struct {
	IOStreams  *iostreams.IOStreams
	GitManager func(path string) (*git.GitManager, error)
	Differ     func(repoRoot string) git.Differ

	RepoPath      string
	FeatureBranch string
	TargetBranch  string
	Output        string
	Excludes      []string
}

// Run resolves both branches and persists the comparison document.
// The target branch resolves first; if it is missing, a failure
// document is written to the output file and the feature branch is
// never consulted.
func Run(ctx context.Context, opts *Options) error {
	mgr, err := opts.GitManager(opts.RepoPath)
	if err != nil {
		return err
	}

	return run(ctx, opts, mgr, opts.Differ(mgr.RepoRoot()))
}

func run(ctx context.Context, opts *Options, branches BranchResolver, differ git.Differ) error {
	out := opts.IOStreams.Out

	feature := opts.FeatureBranch
	if feature == "" {
		current, err := branches.CurrentBranch()
		if err != nil {
			return err
		}
		if current == "" {
			return errors.New("cannot determine current branch: HEAD is detached")
		}
		feature = current
		fmt.Fprintf(out, "No feature branch specified. Using current branch: %s\n", feature)
	}

	// Target resolution happens first and short-circuits: a missing
	// target produces a failure document without ever consulting the
	// feature branch.
	target, err := resolve(opts, branches, report.RoleTarget, opts.TargetBranch)
	if err != nil {
		return err
	}

	feature, err = resolve(opts, branches, report.RoleFeature, feature)
	if err != nil {
		return err
	}

	diff, err := git.BranchDiff(ctx, differ, target, feature, opts.Excludes)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("target", target).
		Str("feature", feature).
		Int("excludes", len(opts.Excludes)).
		Bool("empty", diff == "").
		Msg("branch diff retrieved")

	doc := report.Branch(target, feature, diff)
	fmt.Fprintln(out, doc)

	if err := report.Write(opts.Output, doc); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nDiff result saved to file: %s\n", opts.Output)

	return nil
}

// resolve maps a branch name to a diffable revision, preferring the
// local branch and falling back to origin/<name>. A branch that exists
// nowhere writes a failure document to the output file before the
// error is returned; this is the one failure mode that guarantees a
// written file.
func resolve(opts *Options, branches BranchResolver, role report.Role, name string) (string, error) {
	resolved, usedRemote, err := branches.ResolveBranch(name)
	if err != nil {
		if errors.Is(err, git.ErrBranchNotFound) {
			doc := report.BranchMissing(role, name)
			if werr := report.Write(opts.Output, doc); werr != nil {
				logger.Warn().Err(werr).Msg("failed to write branch-missing report")
			} else {
				fmt.Fprintf(opts.IOStreams.Out, "\nDiff result saved to file: %s\n", opts.Output)
			}
		}
		return "", err
	}

	if usedRemote {
		fmt.Fprintf(opts.IOStreams.Out, "%s branch '%s' not found locally. Using remote branch '%s'.\n",
			role, name, resolved)
	}

	return resolved, nil
}
