// Package reconcile cross-links the independently parsed collections of a
// settings graph, fills gaps in the satellite catalog and performs the
// cascading structural edits (removal, renumbering, cleanup).
//
// Every operation is independently invokable and returns a Report. A panic
// raised inside an operation is turned into a ReconciliationError; changes
// made before the failure are kept.
package reconcile

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

// Engine runs reconciliation operations over one settings graph. It is
// not safe for concurrent use, like the graph itself.
type Engine struct {
	settings  *settings.Settings
	tolerance int64
	logger    *zerolog.Logger
	namespace NamespaceFunc
}

// New creates an engine for s.
func New(s *settings.Settings, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, errors.NewArgumentError("settings", "cannot be nil")
	}
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		settings:  s,
		tolerance: o.tolerance,
		logger:    o.logger,
		namespace: o.namespace,
	}, nil
}

// Settings returns the graph the engine operates on.
func (e *Engine) Settings() *settings.Settings {
	return e.settings
}

// Tolerance returns the frequency tolerance in use.
func (e *Engine) Tolerance() int64 {
	return e.tolerance
}

// run executes fn as the operation op. Argument and conflict errors are
// returned as they are, anything else becomes a ReconciliationError.
func (e *Engine) run(op string, fn func(r *Report) error) (report *Report, err error) {
	report = newReport(op)
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.NewReconciliationError(op, "unexpected failure", fmt.Errorf("%v", rec))
		}
		report.finish()

		event := e.logger.Info()
		if err != nil {
			event = e.logger.Error().Err(err)
		} else if !report.HasChanges() && report.Unmatched == 0 {
			event = e.logger.Debug()
		}
		event.Str("operation", op).
			Int("matched", report.Matched).
			Int("unmatched", report.Unmatched).
			Int("added", report.Added).
			Int("removed", report.Removed).
			Int("renamed", report.Renamed).
			Int("updated", report.Updated).
			Dur("duration", report.Duration).
			Msg("Reconciliation operation finished")
	}()

	if err = fn(report); err != nil {
		if errors.IsArgument(err) || errors.IsConflict(err) {
			return report, err
		}
		return report, errors.WrapReconciliation(op, "operation failed", err)
	}
	return report, nil
}

// CalculatedNamespace computes the namespace of a DVB-S transponder from
// its orbital position, frequency and polarization. West positions wrap
// to 3600+position. Frequency and polarization bits are only added when
// the current namespace already carries them in its low 16 bits.
func CalculatedNamespace(t *settings.Transponder) int64 {
	pos := int64(t.OrbitalPosition())
	if pos < 0 {
		pos += 3600
	}
	ns := pos << 16
	if t.NamespaceValue()&0xffff != 0 {
		freq := t.FrequencyValue() / 1000
		pol := int64(0)
		if t.Satellite != nil {
			pol = fieldcodec.ParseDecimal(t.Satellite.Polarization)
		}
		ns |= freq&0x7fff | (pol&1)<<15
	}
	return ns
}

// Check runs every matching operation without changing the graph.
func (e *Engine) Check() ([]*Report, error) {
	steps := []func() (*Report, error){
		e.MatchSatellitesToTransponders,
		e.MatchCablesToTransponders,
		e.MatchServicesToTransponders,
		e.MatchAllBouquetServices,
	}
	return runSteps(steps)
}

// Repair completes the satellite catalog, drops duplicate bouquet entries
// and then runs Check.
func (e *Engine) Repair() ([]*Report, error) {
	steps := []func() (*Report, error){
		e.AddMissingTransponderCatalogEntries,
		e.RemoveDuplicateBouquetItems,
	}
	reports, err := runSteps(steps)
	if err != nil {
		return reports, err
	}
	checks, err := e.Check()
	return append(reports, checks...), err
}

func runSteps(steps []func() (*Report, error)) ([]*Report, error) {
	reports := make([]*Report, 0, len(steps))
	for _, step := range steps {
		report, err := step()
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}
