package store

import (
	"github.com/agentstation/e2settings/pkg/catalogxml"
	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/records"
	"github.com/agentstation/e2settings/pkg/settings"
)

// Save writes s to the directory. Bouquet files are written under their
// current names. User bouquet files the graph was loaded from that no
// bouquet owns any more, such as the old names of renumbered or removed
// bouquets, are deleted; other files in the directory are left alone.
func (st *Store) Save(s *settings.Settings) error {
	if s == nil {
		return errors.NewArgumentError("settings", "cannot be nil")
	}
	if err := st.files.CreateDirectory(st.dir); err != nil {
		return err
	}

	if err := st.saveLamedb(s); err != nil {
		return err
	}
	if err := st.saveLegacyBouquets(s); err != nil {
		return err
	}
	written, err := st.saveFileBouquets(s)
	if err != nil {
		return err
	}
	if err := st.deleteStaleBouquets(s, written); err != nil {
		return err
	}
	if err := st.saveSatellites(s); err != nil {
		return err
	}
	if err := st.saveCables(s); err != nil {
		return err
	}
	if err := st.saveBlacklist(s); err != nil {
		return err
	}

	st.logger.Info().
		Str("dir", st.dir).
		Int("services", len(s.Services)).
		Int("bouquets", len(s.Bouquets)).
		Msg("Saved settings")
	return nil
}

func (st *Store) saveLamedb(s *settings.Settings) error {
	version := st.lamedbVersion
	if version == 0 {
		version = s.Version
	}
	if version == 0 {
		version = constants.LamedbVersion4
	}

	lines, err := records.FormatLamedb(&records.Lamedb{
		Version:      version,
		Transponders: s.Transponders,
		Services:     s.Services,
	})
	if err != nil {
		return err
	}

	name := constants.LamedbFile
	if version == constants.LamedbVersion5 {
		name = constants.Lamedb5File
	} else {
		// Load prefers lamedb5; a leftover one would shadow the new lamedb.
		if err := st.files.Delete(st.path(constants.Lamedb5File)); err != nil {
			return err
		}
	}
	return st.files.WriteLines(st.path(name), lines)
}

// The legacy container is rewritten when it exists even if no legacy
// bouquet is left, so removed bouquets do not come back on the next load.
func (st *Store) saveLegacyBouquets(s *settings.Settings) error {
	path := st.path(constants.LegacyBouquets)
	legacy := s.LegacyBouquets()
	if len(legacy) == 0 && !st.files.Exists(path) {
		return nil
	}
	return st.files.WriteLines(path, records.FormatLegacyContainer(legacy))
}

func (st *Store) saveFileBouquets(s *settings.Settings) (map[string]bool, error) {
	written := make(map[string]bool)
	for _, b := range s.Bouquets {
		if !b.IsFile() {
			continue
		}
		name := b.BaseName()
		if written[name] {
			return nil, errors.NewConflictError("bouquet file", name, "written twice")
		}
		if err := st.files.WriteLines(st.path(name), records.FormatBouquetFile(b)); err != nil {
			return nil, err
		}
		written[name] = true
		st.logger.Debug().Str("file", name).Int("items", len(b.Items)).Msg("Wrote bouquet")
	}
	return written, nil
}

func (st *Store) deleteStaleBouquets(s *settings.Settings, written map[string]bool) error {
	for _, name := range s.BouquetFiles {
		if written[name] || !isUserBouquetFile(name) {
			continue
		}
		if err := st.files.Delete(st.path(name)); err != nil {
			return err
		}
		st.logger.Info().Str("file", name).Msg("Deleted stale bouquet file")
	}

	s.BouquetFiles = s.BouquetFiles[:0]
	for _, b := range s.Bouquets {
		if b.IsFile() && written[b.BaseName()] && isUserBouquetFile(b.BaseName()) {
			s.BouquetFiles = append(s.BouquetFiles, b.BaseName())
		}
	}
	return nil
}

// Catalogs are written when they have entries or when the file exists, so
// emptying a catalog empties the file.
func (st *Store) saveSatellites(s *settings.Settings) error {
	path := st.path(constants.SatellitesFile)
	if len(s.Satellites) == 0 && !st.files.Exists(path) {
		return nil
	}
	w, err := st.files.Create(path)
	if err != nil {
		return err
	}
	if err := catalogxml.EncodeSatellites(w, s.Satellites); err != nil {
		w.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("write", path, w.Close())
}

func (st *Store) saveCables(s *settings.Settings) error {
	path := st.path(constants.CablesFile)
	if len(s.Cables) == 0 && !st.files.Exists(path) {
		return nil
	}
	w, err := st.files.Create(path)
	if err != nil {
		return err
	}
	if err := catalogxml.EncodeCables(w, s.Cables); err != nil {
		w.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("write", path, w.Close())
}

func (st *Store) saveBlacklist(s *settings.Settings) error {
	path := st.path(constants.BlacklistFile)
	lines := records.FormatBlacklist(s.Services)
	if len(lines) == 0 && !st.files.Exists(path) {
		return nil
	}
	return st.files.WriteLines(path, lines)
}
