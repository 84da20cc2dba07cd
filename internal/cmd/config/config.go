// Package config implements the "config" subcommands for managing the
// user settings file.
package config

import (
	"fmt"

	"github.com/schmitthub/diffsnap/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the "config" command group.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage diffsnap user settings",
	}

	cmd.AddCommand(newCmdInit(f))
	cmd.AddCommand(newCmdPath(f))

	return cmd
}

func newCmdInit(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the user settings file with a commented template",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := f.SettingsLoader()
			if err != nil {
				return err
			}

			created, err := loader.EnsureExists()
			if err != nil {
				return err
			}

			if created {
				fmt.Fprintf(f.IOStreams.Out, "Settings file created: %s\n", loader.Path())
			} else {
				fmt.Fprintf(f.IOStreams.Out, "Settings file already exists: %s\n", loader.Path())
			}
			return nil
		},
	}
}

func newCmdPath(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the user settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := f.SettingsLoader()
			if err != nil {
				return err
			}
			fmt.Fprintln(f.IOStreams.Out, loader.Path())
			return nil
		},
	}
}
