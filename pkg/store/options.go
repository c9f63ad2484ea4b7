package store

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fileaccess"
	"github.com/agentstation/e2settings/pkg/logging"
)

// Option configures a Store.
type Option func(*options) error

type options struct {
	files         fileaccess.FileAccess
	logger        *zerolog.Logger
	lamedbVersion int
}

func defaultOptions() *options {
	return &options{
		files:  fileaccess.OS(),
		logger: &logging.Nop,
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

// WithFS sets the file access used for reading and writing.
func WithFS(files fileaccess.FileAccess) Option {
	return func(o *options) error {
		if files == nil {
			return errors.NewArgumentError("files", "cannot be nil")
		}
		o.files = files
		return nil
	}
}

// WithAfero is shorthand for WithFS(fileaccess.New(fs)).
func WithAfero(fs afero.Fs) Option {
	return func(o *options) error {
		if fs == nil {
			return errors.NewArgumentError("fs", "cannot be nil")
		}
		o.files = fileaccess.New(fs)
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

// WithLamedbVersion forces the lamedb version written by Save. Zero keeps
// the version the settings were read with.
func WithLamedbVersion(version int) Option {
	return func(o *options) error {
		switch version {
		case 0, constants.LamedbVersion4, constants.LamedbVersion5:
			o.lamedbVersion = version
			return nil
		}
		return errors.NewArgumentError("lamedb_version", "must be 4 or 5")
	}
}
