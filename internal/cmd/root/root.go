// Package root builds the diffsnap root command.
package root

import (
	"path/filepath"

	"github.com/schmitthub/diffsnap/internal/cmd/compare"
	configcmd "github.com/schmitthub/diffsnap/internal/cmd/config"
	"github.com/schmitthub/diffsnap/internal/cmd/snapshot"
	versioncmd "github.com/schmitthub/diffsnap/internal/cmd/version"
	"github.com/schmitthub/diffsnap/internal/cmdutil"
	internalconfig "github.com/schmitthub/diffsnap/internal/config"
	"github.com/schmitthub/diffsnap/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the diffsnap CLI.
//
// The root command itself runs the diff: local changes by default,
// branch comparison with --compare. The positional argument is the
// repository path.
func NewCmdRoot(f *cmdutil.Factory, version, commit string) *cobra.Command {
	var (
		debug         bool
		compareMode   bool
		featureBranch string
		targetBranch  string
		output        string
		excludes      []string
	)

	cmd := &cobra.Command{
		Use:   "diffsnap [repo_path]",
		Short: "Snapshot git diffs to a file",
		Long: `Diffsnap retrieves git diffs and saves them to a file for review or archival.

By default it captures the working tree's unstaged and staged changes.
With --compare it captures the diff between two branches, preferring
local branches and falling back to origin remote-tracking refs.

Quick start:
  diffsnap                      # Snapshot local changes of the current directory
  diffsnap ~/src/app            # Snapshot local changes of another repository
  diffsnap -c -t main           # Compare the current branch against main
  diffsnap -c -s feat -t main   # Compare branch feat against main`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, commit),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f, debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("diffsnap starting")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) > 0 {
				repoPath = args[0]
			}

			settings, err := f.Settings()
			if err != nil {
				logger.Warn().Err(err).Msg("failed to load settings; using defaults")
				settings = internalconfig.DefaultSettings()
			}

			// User-supplied patterns append to the configured seed list;
			// they never replace it.
			excludeList := append(settings.ExcludeSeed(), excludes...)

			outputPath := output
			if outputPath == "" {
				outputPath = filepath.Join(repoPath, settings.OutputFileNameOrDefault())
			}

			if compareMode {
				if targetBranch == "" {
					return cmdutil.FlagErrorf("for branch comparison, provide a target branch with -t or --target-branch")
				}
				return compare.Run(cmd.Context(), &compare.Options{
					IOStreams:     f.IOStreams,
					GitManager:    f.GitManager,
					Differ:        f.Differ,
					RepoPath:      repoPath,
					FeatureBranch: featureBranch,
					TargetBranch:  targetBranch,
					Output:        outputPath,
					Excludes:      excludeList,
				})
			}

			return snapshot.Run(cmd.Context(), &snapshot.Options{
				IOStreams:  f.IOStreams,
				GitManager: f.GitManager,
				Differ:     f.Differ,
				RepoPath:   repoPath,
				Output:     outputPath,
				Excludes:   excludeList,
			})
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Diff flags
	cmd.Flags().BoolVarP(&compareMode, "compare", "c", false, "Compare two branches instead of showing local changes")
	cmd.Flags().StringVarP(&featureBranch, "feature-branch", "s", "", "Feature branch with your changes (default: current branch)")
	cmd.Flags().StringVarP(&targetBranch, "target-branch", "t", "", "Target branch you plan to merge into (required with --compare)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the diff result to (default: <repo_path>/gitbranch.diff)")
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil, "Path pattern to exclude; appends to the configured seed list (repeatable)")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, commit))

	// Subcommands
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, commit))
	cmd.AddCommand(configcmd.NewCmdConfig(f))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	settings, err := f.Settings()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
