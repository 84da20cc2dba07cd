package diffsnap

import (
	"errors"

	"github.com/schmitthub/diffsnap/internal/cmd/factory"
	"github.com/schmitthub/diffsnap/internal/cmd/root"
	"github.com/schmitthub/diffsnap/internal/cmdutil"
	"github.com/schmitthub/diffsnap/internal/git"
	"github.com/schmitthub/diffsnap/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOk      = 0
	exitError   = 1
	exitUsage   = 2
	exitDataErr = 3
)

// Main is the entry point for the diffsnap CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)

	rootCmd := root.NewCmdRoot(f, Version, Commit)

	// Use ExecuteC to get the executed command for a contextual hint
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			cmdutil.PrintHelpHint(f.IOStreams, cmd.CommandPath())
		}
		if !errors.Is(err, cmdutil.SilentError) {
			logger.Error().Err(err).Str("command", cmd.CommandPath()).Msg("command failed")
		}
		return exitCode(err)
	}

	return exitOk
}

// exitCode maps an error to a process exit code. Usage mistakes and
// bad repository state get distinct codes so scripts can tell them
// apart from generic failures.
func exitCode(err error) int {
	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		return exitUsage
	}
	switch {
	case errors.Is(err, git.ErrNotRepository),
		errors.Is(err, git.ErrBareRepository),
		errors.Is(err, git.ErrBranchNotFound):
		return exitDataErr
	}
	return exitError
}
