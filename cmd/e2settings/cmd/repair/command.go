// Package repair provides the repair command.
package repair

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
)

// NewCommand creates the repair command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.ChangeFlags

	cmd := &cobra.Command{
		Use:     "repair",
		GroupID: "core",
		Short:   "Complete the satellite catalog and drop duplicate entries",
		Long: `Repair adds a catalog satellite for every orbital position used by a
transponder and a catalog transponder for every transponder missing from
its satellite, removes repeated bouquet entries and then runs check.`,
		Example: `  e2settings repair
  e2settings repair --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cmdutil.Open(cmd.Context(), app)
			if err != nil {
				return err
			}
			reports, err := session.Engine.Repair()
			session.Collect(reports...)
			if err != nil {
				return err
			}
			if _, err := session.Commit(flags.DryRun); err != nil {
				return err
			}
			if err := session.Print(cmd.OutOrStdout(), app.OutputFormat()); err != nil {
				return err
			}
			return session.Notify(cmd.ErrOrStderr(), app.OutputFormat())
		},
	}
	flags = cmdutil.AddChangeFlags(cmd)
	return cmd
}
