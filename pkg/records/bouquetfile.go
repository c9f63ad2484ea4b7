package records

import (
	"strings"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

const (
	formatBouquet   = "bouquet"
	formatContainer = "bouquets"

	namePrefix      = "#NAME "
	containerHeader = "eDVB bouquets /3/"
)

// ParseBouquetFile parses an Enigma2 bouquet file (bouquets.tv,
// userbouquet.*.radio, ...). Lines other than #NAME, item references and the
// #DESCRIPTION following an item are ignored.
func ParseBouquetFile(fileName string, lines []string) (*settings.Bouquet, error) {
	b, err := settings.NewFileBouquet("", fileName)
	if err != nil {
		return nil, err
	}
	p := &lineReader{lines: lines}
	for {
		line, ok := p.next()
		if !ok {
			return b, nil
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#NAME"):
			b.Name = strings.TrimSpace(strings.TrimPrefix(trimmed, "#NAME"))
		case strings.HasPrefix(trimmed, serviceKeyword), isBareReference(trimmed):
			next, _ := p.peek()
			item, consumed, err := ParseBouquetItem(trimmed, next)
			if err != nil {
				return nil, &errors.ParseError{Format: formatBouquet, File: fileName, Line: p.pos, Message: err.Error(), Err: err}
			}
			if consumed {
				p.next()
			}
			b.Items = append(b.Items, item)
		}
	}
}

// FormatBouquetFile renders an Enigma2 bouquet file.
func FormatBouquetFile(b *settings.Bouquet) []string {
	lines := make([]string, 0, 1+2*len(b.Items))
	lines = append(lines, namePrefix+b.Name)
	for _, item := range b.Items {
		lines = append(lines, FormatBouquetItem(item)...)
	}
	return lines
}

// ParseLegacyContainer parses the Enigma1 "bouquets" container file.
func ParseLegacyContainer(lines []string) ([]*settings.Bouquet, error) {
	p := &lineReader{lines: lines}
	if header, _ := p.next(); strings.TrimSpace(header) != containerHeader {
		return nil, parseError(formatContainer, p.pos, "unrecognized header "+header)
	}
	if line, _ := p.next(); strings.TrimSpace(line) != "bouquets" {
		return nil, parseError(formatContainer, p.pos, `expected "bouquets" section`)
	}

	var bouquets []*settings.Bouquet
	for {
		orderLine, ok := p.next()
		if !ok {
			return nil, parseError(formatContainer, p.pos, "missing end marker")
		}
		orderLine = strings.TrimSpace(orderLine)
		if orderLine == sectionEnd {
			return bouquets, nil
		}
		if !fieldcodec.IsHex(orderLine) {
			return nil, parseError(formatContainer, p.pos, "invalid bouquet order "+orderLine)
		}
		name, _ := p.next()
		b := settings.NewLegacyBouquet(strings.TrimSpace(name), fieldcodec.ParseHex(orderLine))

		for {
			line, ok := p.next()
			if !ok {
				return nil, parseError(formatContainer, p.pos, "unterminated bouquet "+b.Name)
			}
			if strings.TrimSpace(line) == recordTerminator {
				break
			}
			item, err := ParseLegacyItem(line)
			if err != nil {
				return nil, wrapRecord(formatContainer, p.pos, err)
			}
			b.Items = append(b.Items, item)
		}
		bouquets = append(bouquets, b)
	}
}

// FormatLegacyContainer renders the Enigma1 "bouquets" container file.
func FormatLegacyContainer(bouquets []*settings.Bouquet) []string {
	lines := []string{containerHeader, "bouquets"}
	for _, b := range bouquets {
		lines = append(lines, fieldcodec.FormatHex(b.Order, 8), b.Name)
		for _, item := range b.Items {
			lines = append(lines, FormatLegacyItem(item))
		}
		lines = append(lines, recordTerminator)
	}
	return append(lines, sectionEnd)
}

// ParseBlacklist reads the service references listed in a blacklist file.
func ParseBlacklist(lines []string) []settings.ServiceID {
	var ids []settings.ServiceID
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ids = append(ids, ParseServiceID(line))
	}
	return ids
}

// FormatBlacklist renders the references of every blacklisted service.
func FormatBlacklist(services []*settings.Service) []string {
	var lines []string
	for _, s := range services {
		if s.Blacklisted {
			lines = append(lines, s.ID().Reference())
		}
	}
	return lines
}

// isBareReference reports whether line is an item reference written
// without the "#SERVICE" keyword.
func isBareReference(line string) bool {
	fields := fieldcodec.SplitColon(line)
	return len(fields) >= 10 && fieldcodec.IsHex(fields[0])
}
