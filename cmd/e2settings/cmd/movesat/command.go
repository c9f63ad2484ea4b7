// Package movesat provides the move-satellite command.
package movesat

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/reconcile"
)

// NewCommand creates the move-satellite command.
func NewCommand(app application.Application) *cobra.Command {
	var change *cmdutil.ChangeFlags

	cmd := &cobra.Command{
		Use:     "move-satellite <from> <to>",
		GroupID: "edit",
		Short:   "Move a catalog satellite to another orbital position",
		Long: `Move-satellite changes the orbital position of a catalog satellite and of
every transponder on it. Transponder namespaces are recalculated and the
services and bouquet entries on them follow.

Positions are given in tenths of a degree (192, -50) or in degrees with
a direction (19.2E, 5.0W). The target position must be free.`,
		Example: `  e2settings move-satellite 19.2E 23.5E
  e2settings move-satellite 192 235 --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := ParsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := ParsePosition(args[1])
			if err != nil {
				return err
			}

			session, err := cmdutil.Open(cmd.Context(), app)
			if err != nil {
				return err
			}
			sat, ok := session.Settings.SatelliteByPosition(from)
			if !ok {
				return errors.NewNotFoundError("satellite at position", args[0])
			}
			err = session.Run(func(e *reconcile.Engine) (*reconcile.Report, error) {
				return e.ChangeSatellitePosition(sat, to)
			})
			if err != nil {
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
	change = cmdutil.AddChangeFlags(cmd)
	return cmd
}

// ParsePosition parses an orbital position in tenths of a degree ("192",
// "-50") or in degrees with an E or W suffix ("19.2E", "5W").
func ParsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	upper := strings.ToUpper(s)
	sign := 0
	switch {
	case strings.HasSuffix(upper, "E"):
		sign = 1
	case strings.HasSuffix(upper, "W"):
		sign = -1
	default:
		return 0, errors.NewArgumentError("position", "invalid orbital position "+s)
	}
	deg, err := strconv.ParseFloat(upper[:len(upper)-1], 64)
	if err != nil || deg < 0 || deg > 180 {
		return 0, errors.NewArgumentError("position", "invalid orbital position "+s)
	}
	tenths := int(deg*10 + 0.5)
	return sign * tenths, nil
}
