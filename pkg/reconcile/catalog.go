package reconcile

import (
	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/settings"
)

// AddMissingSatelliteCatalogEntries synthesizes a catalog satellite for
// every orbital position used by a DVB-S transponder but missing from the
// catalog, and gives the new satellites a catalog transponder for each
// runtime transponder on them. Position 0 is never synthesized.
func (e *Engine) AddMissingSatelliteCatalogEntries() (*Report, error) {
	return e.run("AddMissingSatelliteCatalogEntries", func(r *Report) error {
		e.addMissingSatellites(r)
		return nil
	})
}

// AddMissingTransponderCatalogEntries does what
// AddMissingSatelliteCatalogEntries does and then makes sure every DVB-S
// transponder has a catalog transponder on its satellite.
func (e *Engine) AddMissingTransponderCatalogEntries() (*Report, error) {
	return e.run("AddMissingTransponderCatalogEntries", func(r *Report) error {
		e.addMissingSatellites(r)
		index := e.settings.SatelliteIndex()
		for _, t := range e.settings.Transponders {
			if !hasSatellitePosition(t) {
				continue
			}
			if sat, ok := index[t.OrbitalPosition()]; ok {
				e.ensureCatalogTransponder(r, sat, t)
			}
		}
		return nil
	})
}

func (e *Engine) addMissingSatellites(r *Report) {
	index := e.settings.SatelliteIndex()
	synthesized := make(map[int]*settings.XmlSatellite)

	for _, t := range e.settings.Transponders {
		if !hasSatellitePosition(t) {
			continue
		}
		pos := t.OrbitalPosition()
		if _, ok := index[pos]; ok {
			continue
		}
		sat := settings.NewXmlSatellite("", pos)
		e.settings.Satellites = append(e.settings.Satellites, sat)
		index[pos] = sat
		synthesized[pos] = sat
		r.Added++
		r.warn("added catalog satellite %s for position %d", sat.Name, pos)
		e.logger.Info().Int("position", pos).Str("satellite", sat.Name).Msg("Added missing catalog satellite")
	}

	for _, t := range e.settings.Transponders {
		if !hasSatellitePosition(t) {
			continue
		}
		if sat, ok := synthesized[t.OrbitalPosition()]; ok {
			e.ensureCatalogTransponder(r, sat, t)
		}
	}
}

// ensureCatalogTransponder adds a catalog transponder for t to sat unless
// one already lies within tolerance with the same polarization and
// symbol rate.
func (e *Engine) ensureCatalogTransponder(r *Report, sat *settings.XmlSatellite, t *settings.Transponder) {
	for _, ct := range sat.Transponders {
		if e.catalogMatches(t, ct) {
			return
		}
	}
	p := t.Satellite
	ct := &settings.XmlTransponder{
		Frequency:    t.Frequency,
		SymbolRate:   t.SymbolRate,
		Polarization: p.Polarization,
		FECInner:     p.FEC,
		System:       p.System,
		Modulation:   p.Modulation,
		RollOff:      p.RollOff,
		Pilot:        p.Pilot,
		Inversion:    p.Inversion,
	}
	sat.AddTransponder(ct)
	r.Added++
	e.logger.Debug().
		Str("satellite", sat.Name).
		Str("frequency", t.Frequency).
		Msg("Added missing catalog transponder")
}

func (e *Engine) catalogMatches(t *settings.Transponder, ct *settings.XmlTransponder) bool {
	return settings.InTolerance(t.FrequencyValue(), ct.FrequencyValue(), e.tolerance) &&
		t.Polarization() == settings.PolarizationOf(ct.Polarization) &&
		t.SymbolRateValue() == ct.SymbolRateValue()
}

func hasSatellitePosition(t *settings.Transponder) bool {
	return t.Kind == settings.KindDVBS && t.Satellite != nil &&
		t.OrbitalPosition() != constants.NoSatellitePosition
}
