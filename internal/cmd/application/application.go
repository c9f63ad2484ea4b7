// Package application defines what commands need from the e2settings
// application: the settings store, a configured reconciliation engine, the
// logger and build information.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with Mock:
//
//	mock := &application.Mock{
//	    StoreFunc: func() (*store.Store, error) {
//	        return store.New("/etc/enigma2", store.WithFS(fileaccess.Memory()))
//	    },
//	}
//	cmd := check.NewCommand(mock)
//
// Store and Engine take the context of the running command so their log
// lines carry its logger and fields.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
	"github.com/agentstation/e2settings/pkg/store"
)

// Application provides the application interface that commands need.
type Application interface {
	// Store returns the store of the configured settings directory. It
	// logs through the logger carried by ctx.
	Store(ctx context.Context) (*store.Store, error)

	// Engine returns a reconciliation engine over s configured with the
	// frequency tolerance of the application and the logger of ctx.
	Engine(ctx context.Context, s *settings.Settings) (*reconcile.Engine, error)

	// KeepMarkers returns the marker labels exempt from empty marker removal.
	KeepMarkers() []string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
