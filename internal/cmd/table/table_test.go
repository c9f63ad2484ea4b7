package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
)

func TestReportsToTableData(t *testing.T) {
	reports := []*reconcile.Report{
		{Operation: "RemoveStreams", Removed: 2},
		{Operation: "MatchAllBouquetServices", Matched: 5, Unmatched: 1, Warnings: []string{"dead entry"}},
	}

	data := ReportsToTableData(reports)
	require.Len(t, data.Rows, 2)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
	assert.Equal(t, []string{"RemoveStreams", "-", "-", "-", "2", "-", "-", "-"}, data.Rows[0])
	assert.Equal(t, "1", data.Rows[1][7])

	warnings := WarningsToTableData(reports)
	assert.Equal(t, [][]string{{"MatchAllBouquetServices", "dead entry"}}, warnings.Rows)
}

func TestServicesToTableData(t *testing.T) {
	svc := settings.NewService("1", "283d", "0437", "0001", "00c00000", "Das Erste HD")
	svc.Provider = "p:ARD"
	blocked := settings.NewService("1", "2b66", "0437", "0001", "00c00000", "")
	blocked.Blacklisted = true

	data := ServicesToTableData([]*settings.Service{svc, blocked})
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{svc.ID().String(), "Das Erste HD", "ARD", "-"}, data.Rows[0])
	assert.Equal(t, []string{blocked.ID().String(), "-", "-", "blacklisted"}, data.Rows[1])
}

func TestBouquetsToTableData(t *testing.T) {
	b, err := settings.NewFileBouquet("Favourites", "userbouquet.dbe00.tv")
	require.NoError(t, err)
	require.NoError(t, b.AddItem(settings.NewMarkerItem("News")))
	legacy := settings.NewLegacyBouquet("Enigma1", 3)

	data := BouquetsToTableData([]*settings.Bouquet{b, legacy})
	assert.Equal(t, []string{"Favourites", "tv", "userbouquet.dbe00.tv", "-", "1", "-"}, data.Rows[0])
	assert.Equal(t, "order 3", data.Rows[1][2])
}

func TestSatellitesToTableData(t *testing.T) {
	data := SatellitesToTableData([]*settings.XmlSatellite{
		settings.NewXmlSatellite("Astra 19.2E", 192),
		settings.NewXmlSatellite("Thor 0.8W", -8),
	})
	assert.Equal(t, []string{"19.2E", "Astra 19.2E", "-"}, data.Rows[0])
	assert.Equal(t, "0.8W", data.Rows[1][0])
}
