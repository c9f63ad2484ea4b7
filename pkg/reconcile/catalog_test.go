package reconcile

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/settings"
)

func TestAddMissingSatelliteCatalogEntries(t *testing.T) {
	f := newFixture(t)
	zero := satTransponder(t, "00000000", "0001", "11000000", "27500000", "0", "0")
	f.s.Transponders = append(f.s.Transponders, zero)
	e := f.engine(t)

	report, err := e.AddMissingSatelliteCatalogEntries()
	require.NoError(t, err)

	hotbird, ok := f.s.SatelliteByPosition(130)
	require.True(t, ok)
	assert.Equal(t, "13.0E", hotbird.Name)
	assert.Equal(t, "0", hotbird.Flags)
	require.Len(t, hotbird.Transponders, 1)
	assert.Equal(t, "10992000", hotbird.Transponders[0].Frequency)
	assert.Equal(t, "1", hotbird.Transponders[0].Polarization)

	_, ok = f.s.SatelliteByPosition(0)
	assert.False(t, ok, "position 0 is never synthesized")
	assert.Len(t, f.s.Satellites, 2)
	assert.Equal(t, 2, report.Added, "one satellite and one transponder")

	sat, ok := f.s.SatelliteOf(f.tpB)
	require.True(t, ok)
	assert.Same(t, hotbird, sat)

	t.Run("idempotent", func(t *testing.T) {
		again, err := e.AddMissingSatelliteCatalogEntries()
		require.NoError(t, err)
		assert.Zero(t, again.Added)
	})
}

func TestAddMissingSatelliteLeavesExistingSatellites(t *testing.T) {
	f := newFixture(t)
	f.tpA.Frequency = "12000000"
	e := f.engine(t)

	_, err := e.AddMissingSatelliteCatalogEntries()
	require.NoError(t, err)
	assert.Len(t, f.astra.Transponders, 1, "only new satellites get transponders")
}

func TestAddMissingTransponderCatalogEntries(t *testing.T) {
	f := newFixture(t)
	extra := satTransponder(t, "00c00000", "0441", "12188000", "27500000", "0", "192")
	f.s.Transponders = append(f.s.Transponders, extra)
	e := f.engine(t)

	report, err := e.AddMissingTransponderCatalogEntries()
	require.NoError(t, err)
	assert.Equal(t, 3, report.Added, "hotbird, its transponder and the astra transponder")
	require.Len(t, f.astra.Transponders, 2)
	assert.Equal(t, "12188000", f.astra.Transponders[1].Frequency)
}

func TestToleranceBand(t *testing.T) {
	const freq = 11778000
	const tol = 30000

	tests := []struct {
		name    string
		catalog int
		added   int
	}{
		{"exact", freq, 0},
		{"just inside above", freq + tol - 1, 0},
		{"on upper bound", freq + tol, 1},
		{"just inside below", freq - tol + 1, 0},
		{"on lower bound", freq - tol, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings.New()
			sat := settings.NewXmlSatellite("Astra", 192)
			sat.AddTransponder(&settings.XmlTransponder{
				Frequency:    strconv.Itoa(tt.catalog),
				SymbolRate:   "27500000",
				Polarization: "1",
			})
			s.Satellites = append(s.Satellites, sat)
			s.Transponders = append(s.Transponders, satTransponder(t, "00c00000", "0437", strconv.Itoa(freq), "27500000", "1", "192"))

			e, err := New(s, WithTolerance(tol))
			require.NoError(t, err)
			report, err := e.AddMissingTransponderCatalogEntries()
			require.NoError(t, err)
			assert.Equal(t, tt.added, report.Added)
		})
	}
}

func TestCatalogMatchRequiresPolarizationAndRate(t *testing.T) {
	f := newFixture(t)
	f.astra.Transponders[0].Polarization = "0"
	e := f.engine(t)

	_, err := e.AddMissingTransponderCatalogEntries()
	require.NoError(t, err)
	assert.Len(t, f.astra.Transponders, 2)

	f = newFixture(t)
	f.astra.Transponders[0].SymbolRate = "22000000"
	e = f.engine(t)
	_, err = e.AddMissingTransponderCatalogEntries()
	require.NoError(t, err)
	assert.Len(t, f.astra.Transponders, 2)
}
