// Package table converts settings entities and engine reports into rows
// for the CLI table output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// empty renders blank cells as a dash.
func empty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func count(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

// ReportsToTableData converts engine reports to one row per operation.
func ReportsToTableData(reports []*reconcile.Report) Data {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Operation,
			count(r.Matched),
			count(r.Unmatched),
			count(r.Added),
			count(r.Removed),
			count(r.Renamed),
			count(r.Updated),
			count(len(r.Warnings)),
		})
	}
	return Data{
		Headers: []string{"Operation", "Matched", "Unmatched", "Added", "Removed", "Renamed", "Updated", "Warnings"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight,
		},
	}
}

// WarningsToTableData lists every warning of the reports.
func WarningsToTableData(reports []*reconcile.Report) Data {
	var rows [][]string
	for _, r := range reports {
		for _, w := range r.Warnings {
			rows = append(rows, []string{r.Operation, w})
		}
	}
	return Data{Headers: []string{"Operation", "Warning"}, Rows: rows}
}

// ServicesToTableData converts services to table format.
func ServicesToTableData(services []*settings.Service) Data {
	rows := make([][]string, 0, len(services))
	for _, svc := range services {
		security := ""
		if svc.Blacklisted {
			security = "blacklisted"
		}
		rows = append(rows, []string{
			svc.ID().String(),
			empty(svc.Name),
			empty(svc.ProviderName()),
			empty(security),
		})
	}
	return Data{Headers: []string{"ID", "Name", "Provider", "Security"}, Rows: rows}
}

// TranspondersToTableData converts transponders to table format.
func TranspondersToTableData(transponders []*settings.Transponder) Data {
	rows := make([][]string, 0, len(transponders))
	for _, t := range transponders {
		position := "-"
		if t.Kind == settings.KindDVBS {
			position = settings.PositionName(t.OrbitalPosition())
		}
		rows = append(rows, []string{
			t.ID().String(),
			t.Kind.String(),
			empty(t.Frequency),
			empty(t.SymbolRate),
			position,
		})
	}
	return Data{
		Headers:         []string{"ID", "Kind", "Frequency", "Symbol Rate", "Position"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight},
	}
}

// BouquetsToTableData converts bouquets to table format.
func BouquetsToTableData(bouquets []*settings.Bouquet) Data {
	rows := make([][]string, 0, len(bouquets))
	for _, b := range bouquets {
		file := b.FileName
		if !b.IsFile() {
			file = "order " + strconv.FormatInt(b.Order, 10)
		}
		var services, markers, streams int
		for _, item := range b.Items {
			switch item.Kind {
			case settings.ItemService:
				services++
			case settings.ItemMarker:
				markers++
			case settings.ItemStream:
				streams++
			}
		}
		rows = append(rows, []string{
			empty(b.Name),
			b.Kind.String(),
			file,
			count(services),
			count(markers),
			count(streams),
		})
	}
	return Data{
		Headers:         []string{"Name", "Kind", "File", "Services", "Markers", "Streams"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight},
	}
}

// SatellitesToTableData converts catalog satellites to table format.
func SatellitesToTableData(satellites []*settings.XmlSatellite) Data {
	rows := make([][]string, 0, len(satellites))
	for _, sat := range satellites {
		rows = append(rows, []string{
			settings.PositionName(sat.PositionValue()),
			empty(strings.TrimSpace(sat.Name)),
			count(len(sat.Transponders)),
		})
	}
	return Data{
		Headers:         []string{"Position", "Name", "Transponders"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight},
	}
}

// CablesToTableData converts catalog cables to table format.
func CablesToTableData(cables []*settings.XmlCable) Data {
	rows := make([][]string, 0, len(cables))
	for _, c := range cables {
		rows = append(rows, []string{empty(c.Name), empty(c.CountryCode), count(len(c.Transponders))})
	}
	return Data{Headers: []string{"Name", "Country", "Transponders"}, Rows: rows}
}
