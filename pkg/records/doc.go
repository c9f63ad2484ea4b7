// Package records converts between receiver text records and the entities
// of package settings.
//
// Single record functions (ParseService, ParseTransponder, ParseBouquetItem,
// ParseLegacyItem and their Format counterparts) work on one line or a small
// group of lines. Document functions (ParseLamedb, ParseBouquetFile,
// ParseLegacyContainer, ParseBlacklist) walk whole files.
//
// A record that is parsed and formatted again without edits reproduces the
// input exactly, apart from surrounding whitespace.
package records
