package settings

import (
	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
)

// Settings is the aggregate root of a receiver configuration.
//
// The collections are exported for reading and for the reconcile package.
// Entities must not be removed from them directly: use the cascading
// removals of the reconcile engine so no reference is left dangling.
type Settings struct {
	// Version is the lamedb version the services were read from.
	Version int

	Services     []*Service
	Transponders []*Transponder
	Satellites   []*XmlSatellite
	Cables       []*XmlCable
	Bouquets     []*Bouquet

	// BouquetFiles names the user bouquet files this graph was read from or
	// last saved to. Saving deletes the ones no bouquet owns any more.
	BouquetFiles []string
}

// New creates an empty settings graph.
func New() *Settings {
	return &Settings{Version: constants.LamedbVersion4}
}

// AddService appends a service.
func (s *Settings) AddService(svc *Service) error {
	if svc == nil {
		return errors.NewArgumentError("service", "cannot be nil")
	}
	s.Services = append(s.Services, svc)
	return nil
}

// AddTransponder appends a transponder.
func (s *Settings) AddTransponder(t *Transponder) error {
	if t == nil {
		return errors.NewArgumentError("transponder", "cannot be nil")
	}
	s.Transponders = append(s.Transponders, t)
	return nil
}

// AddSatellite appends a catalog satellite.
func (s *Settings) AddSatellite(sat *XmlSatellite) error {
	if sat == nil {
		return errors.NewArgumentError("satellite", "cannot be nil")
	}
	s.Satellites = append(s.Satellites, sat)
	return nil
}

// AddCable appends a catalog cable.
func (s *Settings) AddCable(c *XmlCable) error {
	if c == nil {
		return errors.NewArgumentError("cable", "cannot be nil")
	}
	s.Cables = append(s.Cables, c)
	return nil
}

// AddBouquet appends a bouquet.
func (s *Settings) AddBouquet(b *Bouquet) error {
	if b == nil {
		return errors.NewArgumentError("bouquet", "cannot be nil")
	}
	s.Bouquets = append(s.Bouquets, b)
	return nil
}

// ServiceIndex maps every service id to its service. The first service
// wins when ids collide.
func (s *Settings) ServiceIndex() map[ServiceID]*Service {
	index := make(map[ServiceID]*Service, len(s.Services))
	for _, svc := range s.Services {
		if _, ok := index[svc.ID()]; !ok {
			index[svc.ID()] = svc
		}
	}
	return index
}

// TransponderIndex maps every transponder id to its transponder.
func (s *Settings) TransponderIndex() map[TransponderID]*Transponder {
	index := make(map[TransponderID]*Transponder, len(s.Transponders))
	for _, t := range s.Transponders {
		if _, ok := index[t.ID()]; !ok {
			index[t.ID()] = t
		}
	}
	return index
}

// SatelliteIndex maps orbital positions to catalog satellites.
func (s *Settings) SatelliteIndex() map[int]*XmlSatellite {
	index := make(map[int]*XmlSatellite, len(s.Satellites))
	for _, sat := range s.Satellites {
		if _, ok := index[sat.PositionValue()]; !ok {
			index[sat.PositionValue()] = sat
		}
	}
	return index
}

// ServiceByID returns the service with the given id.
func (s *Settings) ServiceByID(id ServiceID) (*Service, bool) {
	for _, svc := range s.Services {
		if svc.ID() == id {
			return svc, true
		}
	}
	return nil, false
}

// TransponderByID returns the transponder with the given id.
func (s *Settings) TransponderByID(id TransponderID) (*Transponder, bool) {
	for _, t := range s.Transponders {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

// SatelliteByPosition returns the catalog satellite at position.
func (s *Settings) SatelliteByPosition(position int) (*XmlSatellite, bool) {
	for _, sat := range s.Satellites {
		if sat.PositionValue() == position {
			return sat, true
		}
	}
	return nil, false
}

// TransponderOf resolves the transponder a service is carried on.
func (s *Settings) TransponderOf(svc *Service) (*Transponder, bool) {
	if svc == nil {
		return nil, false
	}
	return s.TransponderByID(svc.TransponderID())
}

// SatelliteOf resolves the catalog satellite of a DVB-S transponder.
// Position 0 never resolves.
func (s *Settings) SatelliteOf(t *Transponder) (*XmlSatellite, bool) {
	if t == nil || t.Kind != KindDVBS || t.OrbitalPosition() == constants.NoSatellitePosition {
		return nil, false
	}
	return s.SatelliteByPosition(t.OrbitalPosition())
}

// CableOf resolves the catalog cable of a DVB-C transponder: the first
// cable listing a carrier within tolerance of the transponder frequency
// with the same symbol rate.
func (s *Settings) CableOf(t *Transponder, tolerance int64) (*XmlCable, bool) {
	if t == nil || t.Kind != KindDVBC {
		return nil, false
	}
	for _, c := range s.Cables {
		for _, ct := range c.Transponders {
			if InTolerance(t.FrequencyValue(), ct.FrequencyValue(), tolerance) &&
				t.SymbolRateValue() == ct.SymbolRateValue() {
				return c, true
			}
		}
	}
	return nil, false
}

// ServicesOn returns the services carried on t, in collection order.
func (s *Settings) ServicesOn(t *Transponder) []*Service {
	if t == nil {
		return nil
	}
	id := t.ID()
	var out []*Service
	for _, svc := range s.Services {
		if svc.TransponderID() == id {
			out = append(out, svc)
		}
	}
	return out
}

// TranspondersOn returns the DVB-S transponders at the orbital position.
func (s *Settings) TranspondersOn(position int) []*Transponder {
	var out []*Transponder
	for _, t := range s.Transponders {
		if t.Kind == KindDVBS && t.OrbitalPosition() == position {
			out = append(out, t)
		}
	}
	return out
}

// FileBouquet returns the file bouquet whose file name (with or without
// directory prefix) equals name.
func (s *Settings) FileBouquet(name string) (*Bouquet, bool) {
	for _, b := range s.Bouquets {
		if b.IsFile() && (b.FileName == name || b.BaseName() == name) {
			return b, true
		}
	}
	return nil, false
}

// LegacyBouquet returns the legacy container bouquet with the given order.
func (s *Settings) LegacyBouquet(order int64) (*Bouquet, bool) {
	for _, b := range s.Bouquets {
		if b.Kind == BouquetLegacy && b.Order == order {
			return b, true
		}
	}
	return nil, false
}

// FileBouquets returns the file bouquets of the given kind.
func (s *Settings) FileBouquets(kind BouquetKind) []*Bouquet {
	var out []*Bouquet
	for _, b := range s.Bouquets {
		if b.Kind == kind && b.IsFile() {
			out = append(out, b)
		}
	}
	return out
}

// LegacyBouquets returns the bouquets of the Enigma1 container.
func (s *Settings) LegacyBouquets() []*Bouquet {
	var out []*Bouquet
	for _, b := range s.Bouquets {
		if b.Kind == BouquetLegacy {
			out = append(out, b)
		}
	}
	return out
}

// InTolerance reports whether candidate lies strictly inside the band
// (reference-tolerance, reference+tolerance).
func InTolerance(reference, candidate, tolerance int64) bool {
	return reference-tolerance < candidate && candidate < reference+tolerance
}
