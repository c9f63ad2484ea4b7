// Package check provides the check command.
package check

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
)

// NewCommand creates the check command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		GroupID: "core",
		Short:   "Report unresolved references in the settings",
		Long: `Check loads the settings directory and links services to transponders,
transponders to catalog satellites and cables, and bouquet entries to
services and bouquet files. Nothing is written.

Every unresolved reference is listed as a warning.`,
		Example: `  e2settings check
  e2settings check --dir /media/backup/enigma2 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cmdutil.Open(cmd.Context(), app)
			if err != nil {
				return err
			}
			reports, err := session.Engine.Check()
			session.Collect(reports...)
			if err != nil {
				return err
			}
			return session.Print(cmd.OutOrStdout(), app.OutputFormat())
		},
	}
}
