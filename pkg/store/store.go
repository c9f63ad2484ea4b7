// Package store loads and saves a complete receiver settings directory:
// lamedb, the bouquet files, the satellite and cable catalogs and the
// blacklist.
//
//	s, err := store.Load("/etc/enigma2")
//	...
//	err = store.Save("/etc/enigma2", s)
package store

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fileaccess"
	"github.com/agentstation/e2settings/pkg/settings"
)

// Store reads and writes the settings files of one directory.
type Store struct {
	dir           string
	files         fileaccess.FileAccess
	logger        *zerolog.Logger
	lamedbVersion int
}

// New returns a Store for dir.
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.NewArgumentError("dir", "cannot be empty")
	}
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &Store{
		dir:           dir,
		files:         o.files,
		logger:        o.logger,
		lamedbVersion: o.lamedbVersion,
	}, nil
}

// Load reads the settings directory dir.
func Load(dir string, opts ...Option) (*settings.Settings, error) {
	st, err := New(dir, opts...)
	if err != nil {
		return nil, err
	}
	return st.Load()
}

// Save writes s to the settings directory dir.
func Save(dir string, s *settings.Settings, opts ...Option) error {
	st, err := New(dir, opts...)
	if err != nil {
		return err
	}
	return st.Save(s)
}

// Dir returns the settings directory.
func (st *Store) Dir() string {
	return st.dir
}

func (st *Store) path(name string) string {
	return filepath.Join(st.dir, name)
}

// isUserBouquetFile reports whether name is a user bouquet written by Save
// and therefore subject to stale file cleanup.
func isUserBouquetFile(name string) bool {
	return strings.HasPrefix(name, "userbouquet.") &&
		(strings.HasSuffix(name, constants.TVExtension) || strings.HasSuffix(name, constants.RadioExtension))
}

// refFile maps a bouquet reference to a file name inside the directory.
func refFile(ref string) string {
	return path.Base(ref)
}

// Parse errors carry the file name relative to the directory.
func withFile(err error, name string) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) && pe.File == "" {
		pe.File = name
		return pe
	}
	return err
}
