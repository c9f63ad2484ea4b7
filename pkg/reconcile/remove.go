package reconcile

import (
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

// RemoveService removes svc and every bouquet item referencing it.
func (e *Engine) RemoveService(svc *settings.Service) (*Report, error) {
	if svc == nil {
		return nil, errors.NewArgumentError("service", "cannot be nil")
	}
	return e.run("RemoveService", func(r *Report) error {
		e.removeServices(r, []*settings.Service{svc})
		return nil
	})
}

// RemoveServices removes every service of list and the bouquet items
// referencing them. A single element list takes the RemoveService path.
func (e *Engine) RemoveServices(list []*settings.Service) (*Report, error) {
	if len(list) == 1 {
		return e.RemoveService(list[0])
	}
	return e.run("RemoveServices", func(r *Report) error {
		e.removeServices(r, list)
		return nil
	})
}

// RemoveTransponder removes t, the services carried on it and their
// bouquet items.
func (e *Engine) RemoveTransponder(t *settings.Transponder) (*Report, error) {
	if t == nil {
		return nil, errors.NewArgumentError("transponder", "cannot be nil")
	}
	return e.run("RemoveTransponder", func(r *Report) error {
		e.removeTransponders(r, []*settings.Transponder{t})
		return nil
	})
}

// RemoveTransponders removes every transponder of list with cascade.
// A single element list takes the RemoveTransponder path.
func (e *Engine) RemoveTransponders(list []*settings.Transponder) (*Report, error) {
	if len(list) == 1 {
		return e.RemoveTransponder(list[0])
	}
	return e.run("RemoveTransponders", func(r *Report) error {
		e.removeTransponders(r, list)
		return nil
	})
}

// RemoveTranspondersOfKind removes all transponders of one variant with
// cascade.
func (e *Engine) RemoveTranspondersOfKind(kind settings.Kind) (*Report, error) {
	return e.run("RemoveTranspondersOfKind", func(r *Report) error {
		var list []*settings.Transponder
		for _, t := range e.settings.Transponders {
			if t.Kind == kind {
				list = append(list, t)
			}
		}
		e.removeTransponders(r, list)
		return nil
	})
}

// RemoveSatellite removes a catalog satellite together with the DVB-S
// transponders at its position, their services and bouquet items.
func (e *Engine) RemoveSatellite(sat *settings.XmlSatellite) (*Report, error) {
	if sat == nil {
		return nil, errors.NewArgumentError("satellite", "cannot be nil")
	}
	return e.run("RemoveSatellite", func(r *Report) error {
		e.removeSatellite(r, sat.PositionValue(), sat)
		return nil
	})
}

// RemoveSatelliteByPosition removes the catalog satellite at position, if
// any, and the DVB-S transponders at that position with cascade.
func (e *Engine) RemoveSatelliteByPosition(position int) (*Report, error) {
	return e.run("RemoveSatelliteByPosition", func(r *Report) error {
		sat, _ := e.settings.SatelliteByPosition(position)
		e.removeSatellite(r, position, sat)
		return nil
	})
}

// RemoveCable removes a catalog cable together with the DVB-C transponders
// it carries, their services and bouquet items.
func (e *Engine) RemoveCable(cable *settings.XmlCable) (*Report, error) {
	if cable == nil {
		return nil, errors.NewArgumentError("cable", "cannot be nil")
	}
	return e.run("RemoveCable", func(r *Report) error {
		var list []*settings.Transponder
		for _, t := range e.settings.Transponders {
			if c, ok := e.settings.CableOf(t, e.tolerance); ok && c == cable {
				list = append(list, t)
			}
		}
		e.removeTransponders(r, list)

		kept := e.settings.Cables[:0]
		for _, c := range e.settings.Cables {
			if c == cable {
				r.Removed++
				continue
			}
			kept = append(kept, c)
		}
		e.settings.Cables = kept
		return nil
	})
}

// RemoveServicesWithoutTransponder removes services whose transponder is
// not part of the graph.
func (e *Engine) RemoveServicesWithoutTransponder() (*Report, error) {
	return e.run("RemoveServicesWithoutTransponder", func(r *Report) error {
		index := e.settings.TransponderIndex()
		var orphans []*settings.Service
		for _, svc := range e.settings.Services {
			if _, ok := index[svc.TransponderID()]; !ok {
				orphans = append(orphans, svc)
			}
		}
		e.removeServices(r, orphans)
		return nil
	})
}

func (e *Engine) removeSatellite(r *Report, position int, sat *settings.XmlSatellite) {
	e.removeTransponders(r, e.settings.TranspondersOn(position))
	if sat == nil {
		return
	}
	kept := e.settings.Satellites[:0]
	for _, s := range e.settings.Satellites {
		if s == sat {
			r.Removed++
			continue
		}
		kept = append(kept, s)
	}
	e.settings.Satellites = kept
}

func (e *Engine) removeTransponders(r *Report, list []*settings.Transponder) {
	if len(list) == 0 {
		return
	}
	drop := make(map[*settings.Transponder]bool, len(list))
	ids := make(map[settings.TransponderID]bool, len(list))
	for _, t := range list {
		if t == nil {
			continue
		}
		drop[t] = true
		ids[t.ID()] = true
	}

	var services []*settings.Service
	for _, svc := range e.settings.Services {
		if ids[svc.TransponderID()] {
			services = append(services, svc)
		}
	}
	e.removeServices(r, services)

	kept := e.settings.Transponders[:0]
	for _, t := range e.settings.Transponders {
		if drop[t] {
			r.Removed++
			e.logger.Debug().Str("transponder_id", t.ID().String()).Msg("Removed transponder")
			continue
		}
		kept = append(kept, t)
	}
	clearTail(e.settings.Transponders, len(kept))
	e.settings.Transponders = kept
}

func (e *Engine) removeServices(r *Report, list []*settings.Service) {
	if len(list) == 0 {
		return
	}
	drop := make(map[*settings.Service]bool, len(list))
	ids := make(map[settings.ServiceID]bool, len(list))
	for _, svc := range list {
		if svc == nil {
			continue
		}
		drop[svc] = true
		ids[svc.ID()] = true
	}

	kept := e.settings.Services[:0]
	for _, svc := range e.settings.Services {
		if drop[svc] {
			r.Removed++
			e.logger.Debug().Str("service_id", svc.ID().String()).Msg("Removed service")
			continue
		}
		kept = append(kept, svc)
	}
	clearTail(e.settings.Services, len(kept))
	e.settings.Services = kept

	for _, b := range e.settings.Bouquets {
		r.Removed += b.RemoveItemsFunc(func(item *settings.BouquetItem) bool {
			return item.Kind == settings.ItemService && ids[item.ServiceID()]
		})
	}
}

// clearTail nils the pointers past n so filtered-out entities can be
// collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
