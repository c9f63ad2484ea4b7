package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/logging"
	"github.com/agentstation/e2settings/pkg/settings"
)

// NamespaceFunc computes the namespace of a DVB-S transponder.
type NamespaceFunc func(t *settings.Transponder) int64

// Option configures an Engine.
type Option func(*options) error

type options struct {
	tolerance int64
	logger    *zerolog.Logger
	namespace NamespaceFunc
}

func defaultOptions() *options {
	return &options{
		tolerance: constants.DefaultFrequencyTolerance,
		logger:    &logging.Nop,
		namespace: CalculatedNamespace,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithTolerance sets the frequency tolerance used when matching catalog
// transponders. The band is exclusive on both ends.
func WithTolerance(tolerance int64) Option {
	return func(o *options) error {
		if tolerance < 0 {
			return errors.NewArgumentError("tolerance", "cannot be negative")
		}
		o.tolerance = tolerance
		return nil
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logging.OrNop(logger)
		return nil
	}
}

// WithNamespaceFunc replaces the namespace formula used by
// UpdateSatelliteTransponderNamespaces and ChangeSatellitePosition.
func WithNamespaceFunc(fn NamespaceFunc) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.NewArgumentError("namespace", "function cannot be nil")
		}
		o.namespace = fn
		return nil
	}
}
