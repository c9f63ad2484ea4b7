// Package catalogxml reads and writes the satellites.xml and cables.xml
// reference catalogs. Files are ISO-8859-1 encoded; attributes the model has
// no field for are preserved.
package catalogxml

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

const xmlHeader = `<?xml version="1.0" encoding="iso-8859-1"?>` + "\n"

type satellitesDoc struct {
	XMLName    xml.Name `xml:"satellites"`
	Satellites []satDTO `xml:"sat"`
}

type satDTO struct {
	Name         string           `xml:"name,attr,omitempty"`
	Flags        string           `xml:"flags,attr,omitempty"`
	Position     string           `xml:"position,attr"`
	Attrs        []xml.Attr       `xml:",any,attr"`
	Transponders []transponderDTO `xml:"transponder"`
}

type cablesDoc struct {
	XMLName xml.Name   `xml:"cables"`
	Cables  []cableDTO `xml:"cable"`
}

type cableDTO struct {
	Name         string           `xml:"name,attr,omitempty"`
	Flags        string           `xml:"flags,attr,omitempty"`
	SatFeed      string           `xml:"satfeed,attr,omitempty"`
	CountryCode  string           `xml:"countrycode,attr,omitempty"`
	Attrs        []xml.Attr       `xml:",any,attr"`
	Transponders []transponderDTO `xml:"transponder"`
}

type transponderDTO struct {
	Frequency    string     `xml:"frequency,attr"`
	SymbolRate   string     `xml:"symbol_rate,attr,omitempty"`
	Polarization string     `xml:"polarization,attr,omitempty"`
	FECInner     string     `xml:"fec_inner,attr,omitempty"`
	System       string     `xml:"system,attr,omitempty"`
	Modulation   string     `xml:"modulation,attr,omitempty"`
	RollOff      string     `xml:"rolloff,attr,omitempty"`
	Pilot        string     `xml:"pilot,attr,omitempty"`
	Inversion    string     `xml:"inversion,attr,omitempty"`
	Attrs        []xml.Attr `xml:",any,attr"`
}

// DecodeSatellites reads a satellites.xml document.
func DecodeSatellites(r io.Reader) ([]*settings.XmlSatellite, error) {
	var doc satellitesDoc
	if err := newDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapParse("xml", "satellites.xml", err)
	}
	out := make([]*settings.XmlSatellite, 0, len(doc.Satellites))
	for _, s := range doc.Satellites {
		out = append(out, &settings.XmlSatellite{
			Name:         s.Name,
			Flags:        s.Flags,
			Position:     s.Position,
			Attrs:        fromXMLAttrs(s.Attrs),
			Transponders: fromTransponderDTOs(s.Transponders),
		})
	}
	return out, nil
}

// EncodeSatellites writes a satellites.xml document.
func EncodeSatellites(w io.Writer, satellites []*settings.XmlSatellite) error {
	doc := satellitesDoc{Satellites: make([]satDTO, 0, len(satellites))}
	for _, s := range satellites {
		doc.Satellites = append(doc.Satellites, satDTO{
			Name:         s.Name,
			Flags:        s.Flags,
			Position:     s.Position,
			Attrs:        toXMLAttrs(s.Attrs),
			Transponders: toTransponderDTOs(s.Transponders),
		})
	}
	return encode(w, "satellites.xml", doc)
}

// DecodeCables reads a cables.xml document.
func DecodeCables(r io.Reader) ([]*settings.XmlCable, error) {
	var doc cablesDoc
	if err := newDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapParse("xml", "cables.xml", err)
	}
	out := make([]*settings.XmlCable, 0, len(doc.Cables))
	for _, c := range doc.Cables {
		out = append(out, &settings.XmlCable{
			Name:         c.Name,
			Flags:        c.Flags,
			SatFeed:      c.SatFeed,
			CountryCode:  c.CountryCode,
			Attrs:        fromXMLAttrs(c.Attrs),
			Transponders: fromTransponderDTOs(c.Transponders),
		})
	}
	return out, nil
}

// EncodeCables writes a cables.xml document.
func EncodeCables(w io.Writer, cables []*settings.XmlCable) error {
	doc := cablesDoc{Cables: make([]cableDTO, 0, len(cables))}
	for _, c := range cables {
		doc.Cables = append(doc.Cables, cableDTO{
			Name:         c.Name,
			Flags:        c.Flags,
			SatFeed:      c.SatFeed,
			CountryCode:  c.CountryCode,
			Attrs:        toXMLAttrs(c.Attrs),
			Transponders: toTransponderDTOs(c.Transponders),
		})
	}
	return encode(w, "cables.xml", doc)
}

func newDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader
	return d
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "", "utf-8", "utf8":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, errors.NewParseError("xml", "", "unsupported charset "+label, nil)
	}
	return enc.NewDecoder().Reader(input), nil
}

// encode writes doc as ISO-8859-1. Characters outside the charset are
// replaced instead of failing the whole document.
func encode(w io.Writer, file string, doc any) error {
	latin1 := transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()))
	if _, err := io.WriteString(latin1, xmlHeader); err != nil {
		return errors.WrapIO("write", file, err)
	}
	enc := xml.NewEncoder(latin1)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return errors.WrapIO("write", file, err)
	}
	if err := enc.Close(); err != nil {
		return errors.WrapIO("write", file, err)
	}
	if _, err := io.WriteString(latin1, "\n"); err != nil {
		return errors.WrapIO("write", file, err)
	}
	return errors.WrapIO("write", file, latin1.Close())
}

func fromTransponderDTOs(in []transponderDTO) []*settings.XmlTransponder {
	out := make([]*settings.XmlTransponder, 0, len(in))
	for _, t := range in {
		out = append(out, &settings.XmlTransponder{
			Frequency:    t.Frequency,
			SymbolRate:   t.SymbolRate,
			Polarization: t.Polarization,
			FECInner:     t.FECInner,
			System:       t.System,
			Modulation:   t.Modulation,
			RollOff:      t.RollOff,
			Pilot:        t.Pilot,
			Inversion:    t.Inversion,
			Attrs:        fromXMLAttrs(t.Attrs),
		})
	}
	return out
}

func toTransponderDTOs(in []*settings.XmlTransponder) []transponderDTO {
	out := make([]transponderDTO, 0, len(in))
	for _, t := range in {
		out = append(out, transponderDTO{
			Frequency:    t.Frequency,
			SymbolRate:   t.SymbolRate,
			Polarization: t.Polarization,
			FECInner:     t.FECInner,
			System:       t.System,
			Modulation:   t.Modulation,
			RollOff:      t.RollOff,
			Pilot:        t.Pilot,
			Inversion:    t.Inversion,
			Attrs:        toXMLAttrs(t.Attrs),
		})
	}
	return out
}

func fromXMLAttrs(in []xml.Attr) []settings.Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]settings.Attr, 0, len(in))
	for _, a := range in {
		out = append(out, settings.Attr{Name: a.Name.Local, Value: a.Value})
	}
	return out
}

func toXMLAttrs(in []settings.Attr) []xml.Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]xml.Attr, 0, len(in))
	for _, a := range in {
		out = append(out, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	return out
}
