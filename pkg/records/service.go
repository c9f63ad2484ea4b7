package records

import (
	"strings"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

const recordService = "service"

// ParseServiceID derives a service id from either a service reference
// ("1:0:19:283D:3FB:1:C00000:0:0:0:") or a lamedb id line
// ("283d:00c00000:0437:0001:25:0").
func ParseServiceID(line string) settings.ServiceID {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(strings.TrimPrefix(line, "#SERVICE: "), "#SERVICE ")
	return settings.ServiceIDFromFields(fieldcodec.SplitColon(line))
}

// ParseService builds a service from the three lines of a lamedb v4 record.
func ParseService(idLine, name, provider string) (*settings.Service, error) {
	trimmed := strings.TrimSpace(idLine)
	fields := fieldcodec.SplitColon(trimmed)
	if len(fields) < 5 {
		return nil, errors.NewFormatError(recordService, trimmed, "expected at least 5 fields")
	}

	svc := &settings.Service{
		SID:       fields[0],
		Namespace: fields[1],
		TSID:      fields[2],
		NID:       fields[3],
		Type:      fieldcodec.DecimalToHex(fields[4]),
		Name:      strings.TrimRight(name, "\r\n"),
		Provider:  strings.TrimSpace(provider),
	}
	if len(fields) > 5 {
		svc.Number = fields[5]
	}
	if len(fields) > 6 {
		svc.Extra = append([]string(nil), fields[6:]...)
	}
	return svc, nil
}

// FormatService renders the three lines of a lamedb v4 record.
func FormatService(s *settings.Service) (idLine, name, provider string) {
	return serviceKey(s), s.Name, s.Provider
}

// serviceKey renders the colon separated id part shared by v4 and v5.
func serviceKey(s *settings.Service) string {
	fields := []string{
		padHex(s.SID, 4),
		padHex(s.Namespace, 8),
		padHex(s.TSID, 4),
		padHex(s.NID, 4),
		fieldcodec.HexToDecimal(s.Type),
	}
	if s.Number != "" || len(s.Extra) > 0 {
		fields = append(fields, s.Number)
		fields = append(fields, s.Extra...)
	}
	return fieldcodec.JoinColon(fields)
}

// ParseServiceV5 parses a lamedb v5 service line:
// s:283d:00c00000:0437:0001:1:0,"Das Erste HD",p:ARD,C:0000
func ParseServiceV5(line string) (*settings.Service, error) {
	trimmed := strings.TrimSpace(line)
	body, ok := strings.CutPrefix(trimmed, "s:")
	if !ok {
		return nil, errors.NewFormatError(recordService, trimmed, `expected "s:" prefix`)
	}
	key, rest, _ := strings.Cut(body, ",")

	name, provider := rest, ""
	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return nil, errors.NewFormatError(recordService, trimmed, "unterminated service name")
		}
		name = rest[1 : end+1]
		provider = strings.TrimPrefix(rest[end+2:], ",")
	}
	return ParseService(key, name, provider)
}

// FormatServiceV5 renders a lamedb v5 service line.
func FormatServiceV5(s *settings.Service) string {
	line := "s:" + serviceKey(s) + `,"` + s.Name + `"`
	if s.Provider != "" {
		line += "," + s.Provider
	}
	return line
}

// padHex lowercases a hex component and pads it to width. Values that are
// not hex are written unchanged.
func padHex(s string, width int) string {
	s = fieldcodec.Lower(strings.TrimSpace(s))
	if !fieldcodec.IsHex(s) {
		return s
	}
	return fieldcodec.PadLeft(s, width, '0')
}
