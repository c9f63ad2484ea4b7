package cmdutil

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/e2settings/internal/cmd/alerts"
	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/output"
	"github.com/agentstation/e2settings/internal/cmd/table"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/logging"
	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
	"github.com/agentstation/e2settings/pkg/store"
)

// Step is one engine operation run by a command.
type Step func(e *reconcile.Engine) (*reconcile.Report, error)

// Session holds the settings of one command invocation.
type Session struct {
	Store    *store.Store
	Settings *settings.Settings
	Engine   *reconcile.Engine
	Reports  []*reconcile.Report

	logger  *zerolog.Logger
	dryRun  bool
	written bool
}

// Open loads the configured settings directory and builds an engine over it.
// The engine and the session log through the logger of ctx tagged with the
// settings directory.
func Open(ctx context.Context, app application.Application) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := app.Store(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewConfigError("store", "no settings directory configured", nil)
	}
	ctx = logging.WithSettingsDir(ctx, st.Dir())
	s, err := st.Load()
	if err != nil {
		return nil, err
	}
	engine, err := app.Engine(ctx, s)
	if err != nil {
		return nil, err
	}
	return &Session{Store: st, Settings: s, Engine: engine, logger: logging.FromContext(ctx)}, nil
}

// Run executes steps in order, collecting their reports. It stops at the
// first failing step; reports gathered so far are kept.
func (s *Session) Run(steps ...Step) error {
	for _, step := range steps {
		report, err := step(s.Engine)
		if report != nil {
			s.Reports = append(s.Reports, report)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Collect appends reports produced outside Run.
func (s *Session) Collect(reports ...*reconcile.Report) {
	s.Reports = append(s.Reports, reports...)
}

// Changed reports whether any collected report changed the settings.
func (s *Session) Changed() bool {
	for _, r := range s.Reports {
		if r.HasChanges() {
			return true
		}
	}
	return false
}

// Commit saves the settings when something changed, unless dryRun is set.
// It reports whether files were written.
func (s *Session) Commit(dryRun bool) (bool, error) {
	s.dryRun = dryRun
	if !s.Changed() {
		s.logger.Info().Msg("No changes to write")
		return false, nil
	}
	if dryRun {
		s.logger.Info().Msg("Dry run, settings not written")
		return false, nil
	}
	if err := s.Store.Save(s.Settings); err != nil {
		return false, err
	}
	s.written = true
	return true, nil
}

// Summary describes the outcome of Commit. Details list the operations
// that changed something.
func (s *Session) Summary() *alerts.Alert {
	var details []string
	for _, r := range s.Reports {
		if r.HasChanges() {
			details = append(details, r.Summary())
		}
	}
	switch {
	case s.written:
		return alerts.NewSuccess("Settings written to " + s.Store.Dir()).WithDetails(details...)
	case len(details) == 0:
		return alerts.NewInfo("No changes")
	case s.dryRun:
		return alerts.NewWarning("Dry run, settings not written").WithDetails(details...)
	default:
		return alerts.NewWarning("Settings not written").WithDetails(details...)
	}
}

// Notify writes Summary to w.
func (s *Session) Notify(w io.Writer, format string) error {
	return alerts.NewFormatWriter(w, output.DetectFormat(format)).WriteAlert(s.Summary())
}

// Print writes the collected reports in format. Table output lists one
// row per operation, followed by the warnings when there are any.
func (s *Session) Print(w io.Writer, format string) error {
	f := output.DetectFormat(format)
	formatter := output.NewFormatter(f)
	if f != output.FormatTable {
		return formatter.Format(w, s.Reports)
	}
	if err := formatter.Format(w, table.ReportsToTableData(s.Reports)); err != nil {
		return err
	}
	warnings := table.WarningsToTableData(s.Reports)
	if len(warnings.Rows) == 0 {
		return nil
	}
	return formatter.Format(w, warnings)
}
