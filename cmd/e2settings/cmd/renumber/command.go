// Package renumber provides the renumber command.
package renumber

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/reconcile"
)

// NewCommand creates the renumber command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		change  *cmdutil.ChangeFlags
		markers bool
		files   bool
	)

	cmd := &cobra.Command{
		Use:     "renumber",
		GroupID: "edit",
		Short:   "Renumber markers and user bouquet files",
		Long: `Renumber gives markers a gap free sequence number and renames the
userbouquet.dbeNN files of each kind to userbouquet.dbe00, dbe01, ...
in order of their current names. Bouquet references follow the renames
and the old files are deleted.`,
		Example: `  e2settings renumber
  e2settings renumber --files=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !markers && !files {
				return errors.NewArgumentError("renumber", "nothing selected, enable --markers or --files")
			}
			session, err := cmdutil.Open(cmd.Context(), app)
			if err != nil {
				return err
			}

			var steps []cmdutil.Step
			if markers {
				steps = append(steps, (*reconcile.Engine).RenumberMarkers)
			}
			if files {
				steps = append(steps, (*reconcile.Engine).RenumberBouquetFileNames)
			}
			if err := session.Run(steps...); err != nil {
				return err
			}
			if _, err := session.Commit(change.DryRun); err != nil {
				return err
			}
			if err := session.Print(cmd.OutOrStdout(), app.OutputFormat()); err != nil {
				return err
			}
			return session.Notify(cmd.ErrOrStderr(), app.OutputFormat())
		},
	}
	cmd.Flags().BoolVar(&markers, "markers", true, "Renumber markers")
	cmd.Flags().BoolVar(&files, "files", true, "Renumber userbouquet.dbeNN files")
	change = cmdutil.AddChangeFlags(cmd)
	return cmd
}
