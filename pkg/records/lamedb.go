package records

import (
	"fmt"
	"strings"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

const formatLamedb = "lamedb"

const (
	lamedbHeader     = "eDVB services /%d/"
	lamedbTrailer    = "Have a lot of bug fun!"
	sectionEnd       = "end"
	recordTerminator = "/"
)

// Lamedb is the content of a lamedb or lamedb5 file.
type Lamedb struct {
	Version      int
	Transponders []*settings.Transponder
	Services     []*settings.Service
}

// ParseLamedb parses a lamedb file of version 4 or 5. The version is taken
// from the header line.
func ParseLamedb(lines []string) (*Lamedb, error) {
	p := &lineReader{lines: lines}
	header, ok := p.next()
	if !ok {
		return nil, parseError(formatLamedb, 0, "empty file")
	}
	var version int
	if _, err := fmt.Sscanf(strings.TrimSpace(header), lamedbHeader, &version); err != nil {
		return nil, parseError(formatLamedb, p.pos, "unrecognized header "+header)
	}

	switch version {
	case constants.LamedbVersion4:
		return parseLamedb4(p)
	case constants.LamedbVersion5:
		return parseLamedb5(p)
	default:
		return nil, parseError(formatLamedb, p.pos, fmt.Sprintf("unsupported version %d", version))
	}
}

func parseLamedb4(p *lineReader) (*Lamedb, error) {
	db := &Lamedb{Version: constants.LamedbVersion4}

	if line, _ := p.next(); strings.TrimSpace(line) != "transponders" {
		return nil, parseError(formatLamedb, p.pos, `expected "transponders" section`)
	}
	for {
		idLine, ok := p.next()
		if !ok {
			return nil, parseError(formatLamedb, p.pos, "unterminated transponders section")
		}
		if strings.TrimSpace(idLine) == sectionEnd {
			break
		}
		freqLine, _ := p.next()
		t, err := ParseTransponder(KindAuto, idLine, freqLine)
		if err != nil {
			return nil, wrapRecord(formatLamedb, p.pos, err)
		}
		if term, _ := p.next(); strings.TrimSpace(term) != recordTerminator {
			return nil, parseError(formatLamedb, p.pos, `expected "/" after transponder`)
		}
		db.Transponders = append(db.Transponders, t)
	}

	if line, _ := p.next(); strings.TrimSpace(line) != "services" {
		return nil, parseError(formatLamedb, p.pos, `expected "services" section`)
	}
	for {
		idLine, ok := p.next()
		if !ok {
			return nil, parseError(formatLamedb, p.pos, "unterminated services section")
		}
		if strings.TrimSpace(idLine) == sectionEnd {
			break
		}
		name, _ := p.next()
		provider, _ := p.next()
		svc, err := ParseService(idLine, name, provider)
		if err != nil {
			return nil, wrapRecord(formatLamedb, p.pos, err)
		}
		db.Services = append(db.Services, svc)
	}
	return db, nil
}

func parseLamedb5(p *lineReader) (*Lamedb, error) {
	db := &Lamedb{Version: constants.LamedbVersion5}
	for {
		line, ok := p.next()
		if !ok {
			return db, nil
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "t:"):
			t, err := ParseTransponderV5(trimmed)
			if err != nil {
				return nil, wrapRecord(formatLamedb, p.pos, err)
			}
			db.Transponders = append(db.Transponders, t)
		case strings.HasPrefix(trimmed, "s:"):
			svc, err := ParseServiceV5(trimmed)
			if err != nil {
				return nil, wrapRecord(formatLamedb, p.pos, err)
			}
			db.Services = append(db.Services, svc)
		}
	}
}

// FormatLamedb renders db in the layout of db.Version.
func FormatLamedb(db *Lamedb) ([]string, error) {
	switch db.Version {
	case constants.LamedbVersion4:
		return formatLamedb4(db), nil
	case constants.LamedbVersion5:
		return formatLamedb5(db), nil
	default:
		return nil, errors.NewArgumentError("version", fmt.Sprintf("unsupported lamedb version %d", db.Version))
	}
}

func formatLamedb4(db *Lamedb) []string {
	lines := make([]string, 0, 4+3*len(db.Transponders)+3*len(db.Services)+3)
	lines = append(lines, fmt.Sprintf(lamedbHeader, constants.LamedbVersion4), "transponders")
	for _, t := range db.Transponders {
		id, freq := FormatTransponder(t)
		lines = append(lines, id, freq, recordTerminator)
	}
	lines = append(lines, sectionEnd, "services")
	for _, s := range db.Services {
		id, name, provider := FormatService(s)
		lines = append(lines, id, name, provider)
	}
	return append(lines, sectionEnd, lamedbTrailer)
}

func formatLamedb5(db *Lamedb) []string {
	lines := make([]string, 0, 1+len(db.Transponders)+len(db.Services))
	lines = append(lines, fmt.Sprintf(lamedbHeader, constants.LamedbVersion5))
	for _, t := range db.Transponders {
		lines = append(lines, FormatTransponderV5(t))
	}
	for _, s := range db.Services {
		lines = append(lines, FormatServiceV5(s))
	}
	return lines
}

// lineReader hands out lines and tracks the 1-based number of the last one.
type lineReader struct {
	lines []string
	pos   int
}

func (r *lineReader) next() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	line := r.lines[r.pos]
	r.pos++
	return line, true
}

func (r *lineReader) peek() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	return r.lines[r.pos], true
}

func parseError(format string, line int, message string) error {
	return &errors.ParseError{Format: format, Line: line, Message: message}
}

func wrapRecord(format string, line int, err error) error {
	return &errors.ParseError{Format: format, Line: line, Message: err.Error(), Err: err}
}
