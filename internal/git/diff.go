package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// excludePrefix is git's exclusion pathspec magic.
const excludePrefix = ":(exclude)"

// Differ produces raw diff text for a repository. It is the injection
// point for tests: the real implementation shells out to git, fakes
// record the argument list and return canned text.
type Differ interface {
	Diff(ctx context.Context, args ...string) (string, error)
}

// CLIDiffer runs the git binary against a repository root.
type CLIDiffer struct {
	dir string
}

// NewCLIDiffer creates a Differ for the repository rooted at dir.
func NewCLIDiffer(dir string) *CLIDiffer {
	return &CLIDiffer{dir: dir}
}

// Diff runs `git -C <dir> diff <args...>` and returns stdout with the
// trailing newline trimmed. An empty string means no differences.
func (d *CLIDiffer) Diff(ctx context.Context, args ...string) (string, error) {
	cmdArgs := append([]string{"-C", d.dir, "diff"}, args...)
	cmd := exec.CommandContext(ctx, "git", cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("git diff: %w: %s", err, msg)
		}
		return "", fmt.Errorf("git diff: %w", err)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

// ExcludePathspecs wraps each pattern in git's exclusion pathspec
// syntax, preserving order. Patterns pass through otherwise unmodified.
func ExcludePathspecs(patterns []string) []string {
	specs := make([]string, 0, len(patterns))
	for _, p := range patterns {
		specs = append(specs, excludePrefix+p)
	}
	return specs
}

// UnstagedDiff returns the diff of the working tree against the index.
func UnstagedDiff(ctx context.Context, d Differ, excludes []string) (string, error) {
	args := append([]string{"--"}, ExcludePathspecs(excludes)...)
	return d.Diff(ctx, args...)
}

// StagedDiff returns the diff of the index against the last commit.
func StagedDiff(ctx context.Context, d Differ, excludes []string) (string, error) {
	args := append([]string{"--cached"}, ExcludePathspecs(excludes)...)
	return d.Diff(ctx, args...)
}

// BranchDiff returns the diff between two resolved revisions: what
// changed in feature relative to target. Reversing the endpoints
// inverts the sign of every hunk.
func BranchDiff(ctx context.Context, d Differ, target, feature string, excludes []string) (string, error) {
	args := append([]string{target, feature, "--"}, ExcludePathspecs(excludes)...)
	return d.Diff(ctx, args...)
}
