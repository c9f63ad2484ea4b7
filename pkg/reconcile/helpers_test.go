package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/settings"
)

func satTransponder(t *testing.T, ns, tsid, freq, sr, pol, pos string) *settings.Transponder {
	t.Helper()
	tp, err := settings.NewTransponder(settings.KindDVBS, ns, tsid, "1")
	require.NoError(t, err)
	tp.Frequency = freq
	tp.SymbolRate = sr
	tp.Satellite.Polarization = pol
	tp.Satellite.FEC = "3"
	tp.Satellite.OrbitalPosition = pos
	tp.FieldCount = 7
	return tp
}

func serviceOn(tp *settings.Transponder, sid, name string) *settings.Service {
	return settings.NewService("1", sid, tp.TSID, tp.NID, tp.Namespace, name)
}

func serviceItem(t *testing.T, svc *settings.Service) *settings.BouquetItem {
	t.Helper()
	item, err := settings.NewServiceItem(svc.ID())
	require.NoError(t, err)
	return item
}

func fileBouquet(t *testing.T, fileName string, items ...*settings.BouquetItem) *settings.Bouquet {
	t.Helper()
	b, err := settings.NewFileBouquet(fileName, fileName)
	require.NoError(t, err)
	b.Items = append(b.Items, items...)
	return b
}

// fixture builds a small graph:
//
//	astra (19.2E): tpA carries das erste and zdf
//	hotbird (13.0E): tpB carries rai, no catalog satellite
//	cable: tpC carries cable one
//	orphan: service on a transponder that does not exist
type fixture struct {
	s                      *settings.Settings
	tpA, tpB, tpC          *settings.Transponder
	erste, zdf, rai, cable *settings.Service
	orphan                 *settings.Service
	astra                  *settings.XmlSatellite
	unity                  *settings.XmlCable
	tv                     *settings.Bouquet
	index                  *settings.Bouquet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{s: settings.New()}

	f.tpA = satTransponder(t, "00c00000", "0437", "11778000", "27500000", "1", "192")
	f.tpB = satTransponder(t, "00820000", "0020", "10992000", "27500000", "1", "130")
	var err error
	f.tpC, err = settings.NewTransponder(settings.KindDVBC, "ffff0000", "0001", "1")
	require.NoError(t, err)
	f.tpC.Frequency = "346000"
	f.tpC.SymbolRate = "6900000"
	f.s.Transponders = []*settings.Transponder{f.tpA, f.tpB, f.tpC}

	f.erste = serviceOn(f.tpA, "283d", "Das Erste HD")
	f.zdf = serviceOn(f.tpA, "2b66", "ZDF HD")
	f.rai = serviceOn(f.tpB, "0d49", "Rai 1")
	f.cable = serviceOn(f.tpC, "0001", "Cable One")
	f.orphan = settings.NewService("1", "7", "99", "1", "00c00000", "Orphan")
	f.s.Services = []*settings.Service{f.erste, f.zdf, f.rai, f.cable, f.orphan}

	f.astra = settings.NewXmlSatellite("Astra", 192)
	f.astra.AddTransponder(&settings.XmlTransponder{Frequency: "11778000", SymbolRate: "27500000", Polarization: "1"})
	f.s.Satellites = []*settings.XmlSatellite{f.astra}

	f.unity = &settings.XmlCable{Name: "Unitymedia", Flags: "0"}
	f.unity.AddTransponder(&settings.XmlTransponder{Frequency: "346000", SymbolRate: "6900000"})
	f.s.Cables = []*settings.XmlCable{f.unity}

	f.tv = fileBouquet(t, "userbouquet.favourites.tv",
		settings.NewMarkerItem("Germany"),
		serviceItem(t, f.erste),
		serviceItem(t, f.zdf),
		settings.NewMarkerItem("Italy"),
		serviceItem(t, f.rai),
	)
	ref, err := settings.NewFileBouquetItem("userbouquet.favourites.tv")
	require.NoError(t, err)
	f.index = fileBouquet(t, "bouquets.tv", ref)
	f.s.Bouquets = []*settings.Bouquet{f.index, f.tv}
	return f
}

func (f *fixture) engine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(f.s, opts...)
	require.NoError(t, err)
	return e
}
