package store

import (
	"github.com/agentstation/e2settings/pkg/catalogxml"
	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/records"
	"github.com/agentstation/e2settings/pkg/settings"
)

// Load reads every settings file of the directory into a new graph.
// Optional files that are missing are skipped; bouquet references to
// missing files are kept and logged.
func (st *Store) Load() (*settings.Settings, error) {
	if !st.files.DirectoryExists(st.dir) {
		return nil, errors.NewNotFoundError("settings directory", st.dir)
	}

	s := settings.New()
	loaders := []func(*settings.Settings) error{
		st.loadLamedb,
		st.loadLegacyBouquets,
		st.loadFileBouquets,
		st.loadSatellites,
		st.loadCables,
		st.loadBlacklist,
	}
	for _, load := range loaders {
		if err := load(s); err != nil {
			return nil, err
		}
	}

	st.logger.Info().
		Str("dir", st.dir).
		Int("lamedb_version", s.Version).
		Int("services", len(s.Services)).
		Int("transponders", len(s.Transponders)).
		Int("bouquets", len(s.Bouquets)).
		Int("satellites", len(s.Satellites)).
		Int("cables", len(s.Cables)).
		Msg("Loaded settings")
	return s, nil
}

func (st *Store) loadLamedb(s *settings.Settings) error {
	name := constants.Lamedb5File
	if !st.files.Exists(st.path(name)) {
		name = constants.LamedbFile
	}
	if !st.files.Exists(st.path(name)) {
		st.logger.Warn().Str("dir", st.dir).Msg("No lamedb found, starting with an empty service list")
		return nil
	}

	lines, err := st.files.ReadLines(st.path(name))
	if err != nil {
		return err
	}
	db, err := records.ParseLamedb(lines)
	if err != nil {
		return withFile(err, name)
	}
	s.Version = db.Version
	s.Transponders = db.Transponders
	s.Services = db.Services
	st.logger.Debug().Str("file", name).Int("services", len(db.Services)).Msg("Read lamedb")
	return nil
}

func (st *Store) loadLegacyBouquets(s *settings.Settings) error {
	name := constants.LegacyBouquets
	if !st.files.Exists(st.path(name)) {
		return nil
	}
	lines, err := st.files.ReadLines(st.path(name))
	if err != nil {
		return err
	}
	bouquets, err := records.ParseLegacyContainer(lines)
	if err != nil {
		return withFile(err, name)
	}
	s.Bouquets = append(s.Bouquets, bouquets...)
	st.logger.Debug().Str("file", name).Int("bouquets", len(bouquets)).Msg("Read legacy bouquets")
	return nil
}

// loadFileBouquets reads the two index files and, breadth first, every
// bouquet file they reference. Each file is read once.
func (st *Store) loadFileBouquets(s *settings.Settings) error {
	seen := make(map[string]bool)
	queue := []string{constants.TVBouquetsFile, constants.RadioBouquetFile}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true

		if !st.files.Exists(st.path(name)) {
			if name != constants.TVBouquetsFile && name != constants.RadioBouquetFile {
				st.logger.Warn().Str("file", name).Msg("Referenced bouquet file is missing")
			}
			continue
		}
		lines, err := st.files.ReadLines(st.path(name))
		if err != nil {
			return err
		}
		b, err := records.ParseBouquetFile(name, lines)
		if err != nil {
			return withFile(err, name)
		}
		s.Bouquets = append(s.Bouquets, b)
		if isUserBouquetFile(name) {
			s.BouquetFiles = append(s.BouquetFiles, name)
		}

		for _, item := range b.Items {
			if item.Kind == settings.ItemFileBouquet {
				queue = append(queue, refFile(item.RefFileName()))
			}
		}
	}
	return nil
}

func (st *Store) loadSatellites(s *settings.Settings) error {
	name := constants.SatellitesFile
	if !st.files.Exists(st.path(name)) {
		return nil
	}
	r, err := st.files.Open(st.path(name))
	if err != nil {
		return err
	}
	defer r.Close()

	sats, err := catalogxml.DecodeSatellites(r)
	if err != nil {
		return withFile(err, name)
	}
	s.Satellites = sats
	return nil
}

func (st *Store) loadCables(s *settings.Settings) error {
	name := constants.CablesFile
	if !st.files.Exists(st.path(name)) {
		return nil
	}
	r, err := st.files.Open(st.path(name))
	if err != nil {
		return err
	}
	defer r.Close()

	cables, err := catalogxml.DecodeCables(r)
	if err != nil {
		return withFile(err, name)
	}
	s.Cables = cables
	return nil
}

func (st *Store) loadBlacklist(s *settings.Settings) error {
	name := constants.BlacklistFile
	if !st.files.Exists(st.path(name)) {
		return nil
	}
	lines, err := st.files.ReadLines(st.path(name))
	if err != nil {
		return err
	}
	index := s.ServiceIndex()
	for _, id := range records.ParseBlacklist(lines) {
		svc, ok := index[id]
		if !ok {
			st.logger.Warn().Str("service_id", id.String()).Msg("Blacklisted service not in lamedb")
			continue
		}
		svc.Blacklisted = true
	}
	return nil
}
