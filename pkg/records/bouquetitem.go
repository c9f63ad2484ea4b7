package records

import (
	"strings"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

const recordBouquetItem = "bouquet item"

const (
	serviceKeyword      = "#SERVICE"
	descriptionKeyword  = "#DESCRIPTION"
	descriptionPrefix   = "#DESCRIPTION "
	descriptionE1Prefix = "#DESCRIPTION: "
)

// Reference types of IPTV streams (4097 gstreamer, 5001-5003 alternative
// players, 8193 and 8739 exteplayer variants).
var streamTypes = map[string]bool{
	"4097": true,
	"5001": true,
	"5002": true,
	"5003": true,
	"8193": true,
	"8739": true,
}

// ParseBouquetItem parses an item line of a bouquet file, with or without
// the "#SERVICE" keyword. next is the following line of the file, or "" at
// the end; when it is the item's "#DESCRIPTION" line it is consumed and the
// second return value is true.
func ParseBouquetItem(line, next string) (*settings.BouquetItem, bool, error) {
	trimmed := strings.TrimSpace(line)

	if fieldcodec.IsNegativeHex(trimmed) {
		return nil, false, errors.NewFormatError(recordBouquetItem, trimmed,
			"legacy bouquet reference outside of the bouquets container")
	}
	item := &settings.BouquetItem{}
	var payload string
	item.Prefix, payload = splitServicePrefix(trimmed)

	item.Fields = fieldcodec.SplitColon(payload)
	if len(item.Fields) < 10 {
		return nil, false, errors.NewFormatError(recordBouquetItem, trimmed, "expected at least 10 fields")
	}
	item.Kind = itemKind(item)

	consumed := false
	if desc, prefix, ok := parseDescription(next); ok {
		item.Description = desc
		item.DescriptionPrefix = prefix
		item.HasDescription = true
		consumed = true
	}
	return item, consumed, nil
}

// splitServicePrefix separates the "#SERVICE" keyword, in any of its
// spellings, from the reference.
func splitServicePrefix(line string) (settings.LinePrefix, string) {
	rest, ok := strings.CutPrefix(line, serviceKeyword)
	if !ok {
		return settings.PrefixBare, line
	}
	if after, ok := strings.CutPrefix(rest, ": "); ok {
		return settings.PrefixServiceColon, after
	}
	if after, ok := strings.CutPrefix(rest, ":"); ok {
		return settings.PrefixServiceColonTight, after
	}
	return settings.PrefixService, strings.TrimPrefix(rest, " ")
}

func itemKind(item *settings.BouquetItem) settings.ItemKind {
	flags := item.Flags()
	payload := ""
	if len(item.Fields) > 10 {
		payload = item.Fields[10]
	}
	switch {
	case flags&settings.FlagMarker != 0:
		return settings.ItemMarker
	case strings.Contains(payload, "FROM BOUQUET"), flags&settings.FlagDirectory != 0:
		return settings.ItemFileBouquet
	case streamTypes[item.FavType()], strings.Contains(fieldcodec.Lower(payload), "%3a//"):
		return settings.ItemStream
	default:
		return settings.ItemService
	}
}

// parseDescription returns the text of a "#DESCRIPTION" line and the
// keyword with its separator as written.
func parseDescription(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, descriptionKeyword)
	if !ok {
		return "", "", false
	}
	for _, sep := range []string{": ", ":", " "} {
		if desc, ok := strings.CutPrefix(rest, sep); ok {
			return desc, descriptionKeyword + sep, true
		}
	}
	if rest == "" {
		return "", descriptionKeyword, true
	}
	return "", "", false
}

// FormatBouquetItem renders an item as one line, or two when it carries a
// description. Legacy container items render as their single container line.
func FormatBouquetItem(item *settings.BouquetItem) []string {
	if item.Legacy {
		return []string{FormatLegacyItem(item)}
	}
	descPrefix := item.DescriptionPrefix
	if descPrefix == "" {
		descPrefix = descriptionPrefix
		if item.Prefix == settings.PrefixServiceColon || item.Prefix == settings.PrefixServiceColonTight {
			descPrefix = descriptionE1Prefix
		}
	}
	lines := []string{item.Prefix.String() + item.Line()}
	if item.HasDescription {
		lines = append(lines, descPrefix+item.Description)
	}
	return lines
}

// ParseLegacyItem parses an item line of the Enigma1 bouquets container:
// either a lamedb style service id or a negative hex bouquet order number.
func ParseLegacyItem(line string) (*settings.BouquetItem, error) {
	trimmed := strings.TrimSpace(line)
	if fieldcodec.IsNegativeHex(trimmed) {
		return &settings.BouquetItem{
			Kind:   settings.ItemLegacyBouquet,
			Fields: []string{trimmed},
			Legacy: true,
		}, nil
	}
	fields := fieldcodec.SplitColon(trimmed)
	if len(fields) < 5 {
		return nil, errors.NewFormatError(recordBouquetItem, trimmed, "expected at least 5 fields")
	}
	return &settings.BouquetItem{Kind: settings.ItemService, Fields: fields, Legacy: true}, nil
}

// FormatLegacyItem renders an item line of the Enigma1 bouquets container.
func FormatLegacyItem(item *settings.BouquetItem) string {
	return item.Line()
}
