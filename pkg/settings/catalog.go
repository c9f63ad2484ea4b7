package settings

import (
	"strconv"

	"github.com/agentstation/e2settings/pkg/fieldcodec"
)

// Attr is an XML attribute the catalog model has no field for. It is kept
// so that a decode/encode cycle does not drop data.
type Attr struct {
	Name  string
	Value string
}

// XmlTransponder is a catalog carrier of a satellite or cable entry.
type XmlTransponder struct {
	Frequency    string
	SymbolRate   string
	Polarization string
	FECInner     string
	System       string
	Modulation   string
	RollOff      string
	Pilot        string
	Inversion    string

	Attrs []Attr

	edit *xmlTransponderSnapshot
}

// FrequencyValue returns the frequency as a number, 0 when malformed.
func (t *XmlTransponder) FrequencyValue() int64 {
	return fieldcodec.ParseDecimal(t.Frequency)
}

// SymbolRateValue returns the symbol rate as a number, 0 when malformed.
func (t *XmlTransponder) SymbolRateValue() int64 {
	return fieldcodec.ParseDecimal(t.SymbolRate)
}

// XmlSatellite is an entry of satellites.xml.
type XmlSatellite struct {
	Name     string
	Flags    string
	Position string

	Transponders []*XmlTransponder
	Attrs        []Attr

	edit *xmlSatelliteSnapshot
}

// NewXmlSatellite creates a catalog satellite for an orbital position given
// in tenths of a degree, east positive.
func NewXmlSatellite(name string, position int) *XmlSatellite {
	if name == "" {
		name = PositionName(position)
	}
	return &XmlSatellite{Name: name, Flags: "0", Position: strconv.Itoa(position)}
}

// PositionValue returns the position as an integer, 0 when malformed.
func (s *XmlSatellite) PositionValue() int {
	return int(fieldcodec.ParseDecimal(s.Position))
}

// AddTransponder appends a catalog transponder.
func (s *XmlSatellite) AddTransponder(t *XmlTransponder) {
	if t != nil {
		s.Transponders = append(s.Transponders, t)
	}
}

// XmlCable is an entry of cables.xml.
type XmlCable struct {
	Name        string
	Flags       string
	SatFeed     string
	CountryCode string

	Transponders []*XmlTransponder
	Attrs        []Attr

	edit *xmlCableSnapshot
}

// AddTransponder appends a catalog transponder.
func (c *XmlCable) AddTransponder(t *XmlTransponder) {
	if t != nil {
		c.Transponders = append(c.Transponders, t)
	}
}

// PositionName renders an orbital position as "19.2E" or "5.0W".
func PositionName(position int) string {
	hemisphere := "E"
	if position < 0 {
		hemisphere = "W"
		position = -position
	}
	return strconv.Itoa(position/10) + "." + strconv.Itoa(position%10) + hemisphere
}
