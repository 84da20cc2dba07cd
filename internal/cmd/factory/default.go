// Package factory wires the real implementations into cmdutil.Factory.
package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/diffsnap/internal/cmdutil"
	"github.com/schmitthub/diffsnap/internal/config"
	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/schmitthub/diffsnap/internal/iostreams"
)

// New creates a fully-wired Factory with lazy-initialized dependency
// closures. Called exactly once at the CLI entry point. Tests should
// NOT import this package — construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	if ios.IsOutputTTY() {
		// Respect NO_COLOR environment variable
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	var (
		loaderOnce sync.Once
		loader     *config.SettingsLoader
		loaderErr  error
	)
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		loaderOnce.Do(func() {
			loader, loaderErr = config.NewSettingsLoader()
		})
		return loader, loaderErr
	}

	var (
		settingsOnce sync.Once
		settings     *config.Settings
		settingsErr  error
	)
	f.Settings = func() (*config.Settings, error) {
		settingsOnce.Do(func() {
			var l *config.SettingsLoader
			l, settingsErr = f.SettingsLoader()
			if settingsErr == nil {
				settings, settingsErr = l.Load()
			}
		})
		return settings, settingsErr
	}

	f.GitManager = git.Open
	f.Differ = func(repoRoot string) git.Differ {
		return git.NewCLIDiffer(repoRoot)
	}

	return f
}
