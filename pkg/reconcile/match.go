package reconcile

import (
	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

// MatchServicesToTransponders joins services to transponders on their
// transponder id. Unmatched services are reported and kept.
func (e *Engine) MatchServicesToTransponders() (*Report, error) {
	return e.run("MatchServicesToTransponders", func(r *Report) error {
		index := e.settings.TransponderIndex()
		for _, svc := range e.settings.Services {
			if _, ok := index[svc.TransponderID()]; ok {
				r.Matched++
				continue
			}
			r.Unmatched++
			r.warn("service %s (%s) has no transponder %s", svc.ID(), svc.Name, svc.TransponderID())
			e.logger.Warn().
				Str("service_id", svc.ID().String()).
				Str("transponder_id", svc.TransponderID().String()).
				Msg("Service has no transponder")
		}
		return nil
	})
}

// MatchSatellitesToTransponders joins DVB-S transponders to catalog
// satellites on orbital position. It does nothing when the catalog is empty.
func (e *Engine) MatchSatellitesToTransponders() (*Report, error) {
	return e.run("MatchSatellitesToTransponders", func(r *Report) error {
		if len(e.settings.Satellites) == 0 {
			return nil
		}
		index := e.settings.SatelliteIndex()
		for _, t := range e.settings.Transponders {
			if t.Kind != settings.KindDVBS || t.OrbitalPosition() == constants.NoSatellitePosition {
				continue
			}
			if _, ok := index[t.OrbitalPosition()]; ok {
				r.Matched++
				continue
			}
			r.Unmatched++
			r.warn("transponder %s has no satellite at position %d", t.ID(), t.OrbitalPosition())
			e.logger.Warn().
				Str("transponder_id", t.ID().String()).
				Int("position", t.OrbitalPosition()).
				Msg("Transponder has no catalog satellite")
		}
		return nil
	})
}

// MatchCablesToTransponders joins DVB-C transponders to catalog cables on
// frequency and symbol rate. It does nothing when the catalog is empty.
func (e *Engine) MatchCablesToTransponders() (*Report, error) {
	return e.run("MatchCablesToTransponders", func(r *Report) error {
		if len(e.settings.Cables) == 0 {
			return nil
		}
		for _, t := range e.settings.Transponders {
			if t.Kind != settings.KindDVBC {
				continue
			}
			if _, ok := e.settings.CableOf(t, e.tolerance); ok {
				r.Matched++
				continue
			}
			r.Unmatched++
			r.warn("transponder %s matches no catalog cable", t.ID())
			e.logger.Warn().Str("transponder_id", t.ID().String()).Msg("Transponder has no catalog cable")
		}
		return nil
	})
}

// MatchBouquetServices joins the service items of b to the services of the
// graph on their normalized ids. Unmatched items are reported, never removed.
func (e *Engine) MatchBouquetServices(b *settings.Bouquet) (*Report, error) {
	if b == nil {
		return nil, errors.NewArgumentError("bouquet", "cannot be nil")
	}
	return e.run("MatchBouquetServices", func(r *Report) error {
		e.matchBouquet(r, b, e.settings.ServiceIndex())
		return nil
	})
}

// MatchLegacyBouquetServices joins the items of the Enigma1 container.
// Bouquet references are resolved against the container's order numbers.
func (e *Engine) MatchLegacyBouquetServices() (*Report, error) {
	return e.run("MatchLegacyBouquetServices", func(r *Report) error {
		index := e.settings.ServiceIndex()
		for _, b := range e.settings.LegacyBouquets() {
			e.matchBouquet(r, b, index)
		}
		return nil
	})
}

// MatchAllBouquetServices matches every bouquet of the graph.
func (e *Engine) MatchAllBouquetServices() (*Report, error) {
	return e.run("MatchAllBouquetServices", func(r *Report) error {
		index := e.settings.ServiceIndex()
		for _, b := range e.settings.Bouquets {
			e.matchBouquet(r, b, index)
		}
		return nil
	})
}

func (e *Engine) matchBouquet(r *Report, b *settings.Bouquet, index map[settings.ServiceID]*settings.Service) {
	for _, item := range b.Items {
		var ok bool
		var ref string
		switch item.Kind {
		case settings.ItemService:
			ref = item.ServiceID().String()
			_, ok = index[item.ServiceID()]
		case settings.ItemFileBouquet:
			ref = item.RefFileName()
			_, ok = e.settings.FileBouquet(ref)
		case settings.ItemLegacyBouquet:
			ref = item.Line()
			_, ok = e.settings.LegacyBouquet(item.RefOrder())
		default:
			continue
		}
		if ok {
			r.Matched++
			continue
		}
		r.Unmatched++
		r.warn("bouquet %q: %s %s is not resolvable", b.Name, item.Kind, ref)
		e.logger.Warn().
			Str("bouquet", b.Name).
			Str("kind", item.Kind.String()).
			Str("reference", ref).
			Msg("Bouquet item is not resolvable")
	}
}
