// Package constants provides shared constants used throughout e2settings:
// file names of the receiver settings tree, file permissions and the
// defaults of the reconciliation engine.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Settings file names as written by the receiver.
const (
	LamedbFile       = "lamedb"
	Lamedb5File      = "lamedb5"
	LegacyBouquets   = "bouquets"
	TVBouquetsFile   = "bouquets.tv"
	RadioBouquetFile = "bouquets.radio"
	SatellitesFile   = "satellites.xml"
	CablesFile       = "cables.xml"
	BlacklistFile    = "blacklist"

	// UserBouquetPrefix is the prefix of bouquet files eligible for renumbering.
	UserBouquetPrefix = "userbouquet.dbe"
	TVExtension       = ".tv"
	RadioExtension    = ".radio"
)

// Reconciliation defaults.
const (
	// DefaultFrequencyTolerance is the half width of the band in which a catalog
	// transponder matches a runtime transponder, in the unit of the frequency field.
	DefaultFrequencyTolerance = 30000

	// NoSatellitePosition marks a DVB-S transponder without an orbital position.
	NoSatellitePosition = 0
)

// Receiver file format versions.
const (
	LamedbVersion4 = 4
	LamedbVersion5 = 5
)
