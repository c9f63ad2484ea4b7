package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/e2settings/pkg/reconcile"
	"github.com/agentstation/e2settings/pkg/settings"
	"github.com/agentstation/e2settings/pkg/store"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	StoreFunc        func() (*store.Store, error)
	EngineFunc       func(s *settings.Settings) (*reconcile.Engine, error)
	KeepMarkersFunc  func() []string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Store returns a store using the mock function or nil.
func (m *Mock) Store(_ context.Context) (*store.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil, nil
}

// Engine returns an engine using the mock function or a default engine
// with the mock logger.
func (m *Mock) Engine(_ context.Context, s *settings.Settings) (*reconcile.Engine, error) {
	if m.EngineFunc != nil {
		return m.EngineFunc(s)
	}
	return reconcile.New(s, reconcile.WithLogger(m.Logger()))
}

// KeepMarkers returns labels using the mock function or nil.
func (m *Mock) KeepMarkers() []string {
	if m.KeepMarkersFunc != nil {
		return m.KeepMarkersFunc()
	}
	return nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
