package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/cmd/e2settings/cmd/check"
	"github.com/agentstation/e2settings/cmd/e2settings/cmd/cleanup"
	"github.com/agentstation/e2settings/cmd/e2settings/cmd/export"
	"github.com/agentstation/e2settings/cmd/e2settings/cmd/movesat"
	"github.com/agentstation/e2settings/cmd/e2settings/cmd/renumber"
	"github.com/agentstation/e2settings/cmd/e2settings/cmd/repair"
	"github.com/agentstation/e2settings/internal/cmd/output"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(check.NewCommand(a))
	rootCmd.AddCommand(repair.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Editing commands
	rootCmd.AddCommand(cleanup.NewCommand(a))
	rootCmd.AddCommand(renumber.NewCommand(a))
	rootCmd.AddCommand(movesat.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// versionInfo is the structured form of the version command output.
type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Output != "" && output.Format(a.config.Output) != output.FormatTable {
				info := versionInfo{Version: a.version, Commit: a.commit, Date: a.date, BuiltBy: a.builtBy}
				return output.NewFormatter(output.DetectFormat(a.config.Output)).Format(cmd.OutOrStdout(), info)
			}
			cmd.Printf("e2settings %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
			return nil
		},
	}
}
