// Package report composes the human-readable diff documents and writes
// them to disk. The exact wording of headers and placeholders is part of
// the tool's observable contract and must not drift.
package report

import "fmt"

const (
	// NoUnstagedChanges is the placeholder for an empty unstaged diff.
	NoUnstagedChanges = "No unstaged changes."

	// NoStagedChanges is the placeholder for an empty staged diff.
	NoStagedChanges = "No staged changes."

	// NoBranchDifferences is the placeholder for an empty branch diff.
	NoBranchDifferences = "No differences found between the branches."
)

// Role identifies which branch argument failed to resolve.
type Role string

const (
	// RoleTarget is the branch being merged into.
	RoleTarget Role = "Target"
	// RoleFeature is the branch carrying the changes.
	RoleFeature Role = "Feature"
)

// Local composes the local-changes document: repository path header,
// then labeled unstaged and staged sections with placeholders for empty
// blobs.
func Local(repoPath, unstaged, staged string) string {
	if unstaged == "" {
		unstaged = NoUnstagedChanges
	}
	if staged == "" {
		staged = NoStagedChanges
	}

	return fmt.Sprintf("Repository: %s\n\n==== Unstaged Changes ====\n%s\n\n==== Staged Changes ====\n%s",
		repoPath, unstaged, staged)
}

// Branch composes the branch-comparison document. The branch names are
// the resolved ones (possibly origin-prefixed).
func Branch(target, feature, diff string) string {
	if diff == "" {
		diff = NoBranchDifferences
	}

	return fmt.Sprintf("Diff between target branch '%s' and feature branch '%s':\n%s",
		target, feature, diff)
}

// BranchMissing composes the failure document written when a branch
// exists neither locally nor remotely.
func BranchMissing(role Role, branch string) string {
	return fmt.Sprintf("Error: %s branch '%s' does not exist locally or remotely.", role, branch)
}
