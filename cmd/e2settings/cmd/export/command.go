// Package export provides the export command.
package export

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/output"
	"github.com/agentstation/e2settings/internal/cmd/table"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

// Resources lists what can be exported.
var Resources = []string{"services", "transponders", "bouquets", "satellites", "cables"}

// NewCommand creates the export command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:       "export <" + strings.Join(Resources, "|") + ">",
		GroupID:   "core",
		Short:     "List settings entities as a table, JSON or YAML",
		ValidArgs: Resources,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  e2settings export services
  e2settings export bouquets -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Store(cmd.Context())
			if err != nil {
				return err
			}
			s, err := st.Load()
			if err != nil {
				return err
			}
			data, err := TableData(s, args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)
			if format == output.FormatTable {
				return formatter.Format(cmd.OutOrStdout(), data)
			}
			return formatter.Format(cmd.OutOrStdout(), Records(data))
		},
	}
}

// TableData returns the table of one resource.
func TableData(s *settings.Settings, resource string) (table.Data, error) {
	switch resource {
	case "services":
		return table.ServicesToTableData(s.Services), nil
	case "transponders":
		return table.TranspondersToTableData(s.Transponders), nil
	case "bouquets":
		return table.BouquetsToTableData(s.Bouquets), nil
	case "satellites":
		return table.SatellitesToTableData(s.Satellites), nil
	case "cables":
		return table.CablesToTableData(s.Cables), nil
	}
	return table.Data{}, errors.NewArgumentError("resource", "unknown resource "+resource)
}

// Records turns table rows into maps keyed by snake_case header names for
// JSON and YAML output.
func Records(data table.Data) []map[string]string {
	keys := make([]string, len(data.Headers))
	for i, h := range data.Headers {
		keys[i] = strings.ReplaceAll(strings.ToLower(h), " ", "_")
	}
	records := make([]map[string]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		rec := make(map[string]string, len(keys))
		for i, cell := range row {
			if i < len(keys) {
				rec[keys[i]] = cell
			}
		}
		records = append(records, rec)
	}
	return records
}
