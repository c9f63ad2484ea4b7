// Package app provides the application context and dependency management
// for the e2settings CLI. Configuration, logging and the settings store are
// built here and handed to commands through application.Application.
package app

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/logging"
	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
	"github.com/agentstation/e2settings/pkg/store"
)

// App represents the e2settings application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Filesystem the store works on, nil for the OS filesystem
	fs afero.Fs
}

// Option configures an App.
type Option func(*App) error

// WithConfig replaces the loaded configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewArgumentError("config", "cannot be nil")
		}
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		if logger == nil {
			return errors.NewArgumentError("logger", "cannot be nil")
		}
		a.logger = logger
		return nil
	}
}

// WithFS runs the store on fs instead of the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		if fs == nil {
			return errors.NewArgumentError("fs", "cannot be nil")
		}
		a.fs = fs
		return nil
	}
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the default locations and can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// KeepMarkers returns the marker labels exempt from empty marker removal.
func (a *App) KeepMarkers() []string {
	return a.config.KeepMarkers
}

// Store returns a store over the configured settings directory.
func (a *App) Store(ctx context.Context) (*store.Store, error) {
	opts := []store.Option{
		store.WithLogger(logging.FromContext(ctx)),
		store.WithLamedbVersion(a.config.LamedbVersion),
	}
	if a.fs != nil {
		opts = append(opts, store.WithAfero(a.fs))
	}
	return store.New(a.config.SettingsDir, opts...)
}

// Engine returns a reconciliation engine over s.
func (a *App) Engine(ctx context.Context, s *settings.Settings) (*reconcile.Engine, error) {
	return reconcile.New(s,
		reconcile.WithTolerance(a.config.FrequencyTolerance),
		reconcile.WithLogger(logging.FromContext(ctx)),
	)
}

// Shutdown performs graceful shutdown of the application.
// Commands write settings synchronously, so there is nothing left in flight.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}
