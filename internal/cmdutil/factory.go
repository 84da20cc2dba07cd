// Package cmdutil provides shared utilities for diffsnap commands.
package cmdutil

import (
	"github.com/schmitthub/diffsnap/internal/config"
	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/schmitthub/diffsnap/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations. Commands extract only the fields they need into
// per-command Options structs.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// SettingsLoader provides access to the user settings file.
	SettingsLoader func() (*config.SettingsLoader, error)

	// Settings loads user settings (lazily, cached).
	Settings func() (*config.Settings, error)

	// GitManager opens the repository containing path.
	GitManager func(path string) (*git.GitManager, error)

	// Differ produces raw diff text for a repository root.
	Differ func(repoRoot string) git.Differ
}
