// Package cleanup provides the cleanup command.
package cleanup

import (
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
)

// NewCommand creates the cleanup command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		change *cmdutil.ChangeFlags
		flags  *cmdutil.CleanupFlags
	)

	cmd := &cobra.Command{
		Use:     "cleanup",
		GroupID: "edit",
		Short:   "Remove dead entries from bouquets",
		Long: `Cleanup removes bouquet entries that serve no purpose. By default it
removes unresolvable entries, repeated entries, empty bouquets and
markers that head no entries. Streams and services without transponder
are only removed when asked for.

Markers listed in keep_markers or with --keep-marker are never removed.`,
		Example: `  e2settings cleanup
  e2settings cleanup --streams --orphans
  e2settings cleanup --keep-marker "--- Sport ---"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cmdutil.Open(cmd.Context(), app)
			if err != nil {
				return err
			}
			if err := session.Run(Steps(flags, slices.Concat(app.KeepMarkers(), flags.KeepMarkers))...); err != nil {
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
	flags = cmdutil.AddCleanupFlags(cmd)
	change = cmdutil.AddChangeFlags(cmd)
	return cmd
}

// Steps returns the engine operations selected by flags. Orphaned services
// go first so their bouquet entries are gone before markers are judged,
// and empty bouquets go last.
func Steps(flags *cmdutil.CleanupFlags, keep []string) []cmdutil.Step {
	var steps []cmdutil.Step
	if flags.OrphanedServices {
		steps = append(steps, (*reconcile.Engine).RemoveServicesWithoutTransponder)
	}
	if flags.InvalidItems {
		steps = append(steps, (*reconcile.Engine).RemoveInvalidBouquetItems)
	}
	if flags.Streams {
		steps = append(steps, (*reconcile.Engine).RemoveStreams)
	}
	if flags.Duplicates {
		steps = append(steps, (*reconcile.Engine).RemoveDuplicateBouquetItems)
	}
	if flags.EmptyMarkers {
		keepFn := KeepLabels(keep)
		steps = append(steps, func(e *reconcile.Engine) (*reconcile.Report, error) {
			return e.RemoveEmptyMarkers(keepFn)
		})
	}
	if flags.EmptyBouquets {
		steps = append(steps, (*reconcile.Engine).RemoveEmptyBouquets)
	}
	return steps
}

// KeepLabels returns a predicate matching markers whose label equals one of
// labels, ignoring case. It returns nil when labels is empty.
func KeepLabels(labels []string) func(*settings.BouquetItem) bool {
	if len(labels) == 0 {
		return nil
	}
	fold := cases.Fold()
	keep := make(map[string]bool, len(labels))
	for _, l := range labels {
		keep[fold.String(l)] = true
	}
	return func(item *settings.BouquetItem) bool {
		return keep[fold.String(item.Label())]
	}
}
