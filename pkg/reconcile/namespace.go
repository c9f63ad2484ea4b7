package reconcile

import (
	"strconv"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

// UpdateSatelliteTransponderNamespaces recomputes the namespace of every
// DVB-S transponder and rewrites it when it differs. Services on the
// transponder and their bouquet items follow the new namespace.
func (e *Engine) UpdateSatelliteTransponderNamespaces() (*Report, error) {
	return e.run("UpdateSatelliteTransponderNamespaces", func(r *Report) error {
		for _, t := range e.settings.Transponders {
			if t.Kind != settings.KindDVBS {
				continue
			}
			if e.retarget(t, e.namespace(t)) {
				r.Updated++
			}
		}
		return nil
	})
}

// ChangeSatellitePosition moves sat to position and updates the position
// and namespace of every transponder on it. It fails with a ConflictError,
// before changing anything, when another satellite already uses position.
func (e *Engine) ChangeSatellitePosition(sat *settings.XmlSatellite, position int) (*Report, error) {
	if sat == nil {
		return nil, errors.NewArgumentError("satellite", "cannot be nil")
	}
	if position == constants.NoSatellitePosition {
		return nil, errors.NewArgumentError("position", "0 is reserved for transponders without satellite")
	}
	return e.run("ChangeSatellitePosition", func(r *Report) error {
		for _, other := range e.settings.Satellites {
			if other != sat && other.PositionValue() == position {
				return errors.NewConflictError("satellite position", strconv.Itoa(position), "")
			}
		}

		old := sat.PositionValue()
		if old == position {
			return nil
		}
		for _, t := range e.settings.TranspondersOn(old) {
			t.Satellite.OrbitalPosition = strconv.Itoa(position)
			e.retarget(t, e.namespace(t))
			r.Updated++
		}
		sat.Position = strconv.Itoa(position)
		r.Updated++
		e.logger.Info().Int("from", old).Int("to", position).Str("satellite", sat.Name).Msg("Moved satellite")
		return nil
	})
}

// retarget gives t the namespace ns. Services on t and the bouquet items
// referencing them are rewritten so they stay linked. It reports whether
// anything changed.
func (e *Engine) retarget(t *settings.Transponder, ns int64) bool {
	if t.NamespaceValue() == ns {
		return false
	}
	oldID := t.ID()
	namespace := fieldcodec.FormatHex(ns, 8)

	moved := make(map[settings.ServiceID]bool)
	for _, svc := range e.settings.Services {
		if svc.TransponderID() != oldID {
			continue
		}
		moved[svc.ID()] = true
		svc.Namespace = namespace
	}
	for _, b := range e.settings.Bouquets {
		for _, item := range b.Items {
			if item.Kind == settings.ItemService && moved[item.ServiceID()] {
				item.SetServiceNamespace(namespace)
			}
		}
	}
	t.Namespace = namespace
	e.logger.Debug().
		Str("transponder_id", oldID.String()).
		Str("namespace", namespace).
		Msg("Updated transponder namespace")
	return true
}
