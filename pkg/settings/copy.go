package settings

// Copy returns a deep copy of the settings graph. Every entity and owned
// collection is duplicated; open edit transactions are not carried over.
func (s *Settings) Copy() *Settings {
	if s == nil {
		return nil
	}
	out := &Settings{Version: s.Version}
	if s.Services != nil {
		out.Services = make([]*Service, len(s.Services))
		for i, svc := range s.Services {
			out.Services[i] = svc.Copy()
		}
	}
	if s.Transponders != nil {
		out.Transponders = make([]*Transponder, len(s.Transponders))
		for i, t := range s.Transponders {
			out.Transponders[i] = t.Copy()
		}
	}
	if s.Satellites != nil {
		out.Satellites = make([]*XmlSatellite, len(s.Satellites))
		for i, sat := range s.Satellites {
			out.Satellites[i] = sat.Copy()
		}
	}
	if s.Cables != nil {
		out.Cables = make([]*XmlCable, len(s.Cables))
		for i, c := range s.Cables {
			out.Cables[i] = c.Copy()
		}
	}
	if s.Bouquets != nil {
		out.Bouquets = make([]*Bouquet, len(s.Bouquets))
		for i, b := range s.Bouquets {
			out.Bouquets[i] = b.Copy()
		}
	}
	out.BouquetFiles = copyStrings(s.BouquetFiles)
	return out
}

// Copy returns a copy of the service.
func (s *Service) Copy() *Service {
	if s == nil {
		return nil
	}
	c := *s
	c.Extra = copyStrings(s.Extra)
	c.edit = nil
	return &c
}

// Copy returns a copy of the transponder including its payload.
func (t *Transponder) Copy() *Transponder {
	if t == nil {
		return nil
	}
	c := *t
	if t.Satellite != nil {
		p := *t.Satellite
		c.Satellite = &p
	}
	if t.Cable != nil {
		p := *t.Cable
		c.Cable = &p
	}
	if t.Terrestrial != nil {
		p := *t.Terrestrial
		c.Terrestrial = &p
	}
	if t.ATSC != nil {
		p := *t.ATSC
		c.ATSC = &p
	}
	c.Extra = copyStrings(t.Extra)
	c.edit = nil
	return &c
}

// Copy returns a copy of the catalog transponder.
func (t *XmlTransponder) Copy() *XmlTransponder {
	if t == nil {
		return nil
	}
	c := *t
	c.Attrs = copyAttrs(t.Attrs)
	c.edit = nil
	return &c
}

// Copy returns a copy of the satellite and its transponders.
func (s *XmlSatellite) Copy() *XmlSatellite {
	if s == nil {
		return nil
	}
	c := *s
	c.Transponders = copyXmlTransponders(s.Transponders)
	c.Attrs = copyAttrs(s.Attrs)
	c.edit = nil
	return &c
}

// Copy returns a copy of the cable and its transponders.
func (cb *XmlCable) Copy() *XmlCable {
	if cb == nil {
		return nil
	}
	c := *cb
	c.Transponders = copyXmlTransponders(cb.Transponders)
	c.Attrs = copyAttrs(cb.Attrs)
	c.edit = nil
	return &c
}

// Copy returns a copy of the bouquet and its items.
func (b *Bouquet) Copy() *Bouquet {
	if b == nil {
		return nil
	}
	c := *b
	if b.Items != nil {
		c.Items = make([]*BouquetItem, len(b.Items))
		for i, item := range b.Items {
			c.Items[i] = item.Copy()
		}
	}
	c.edit = nil
	return &c
}

// Copy returns a copy of the item.
func (it *BouquetItem) Copy() *BouquetItem {
	if it == nil {
		return nil
	}
	c := *it
	c.Fields = copyStrings(it.Fields)
	c.edit = nil
	return &c
}

func copyXmlTransponders(in []*XmlTransponder) []*XmlTransponder {
	if in == nil {
		return nil
	}
	out := make([]*XmlTransponder, len(in))
	for i, t := range in {
		out[i] = t.Copy()
	}
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyAttrs(in []Attr) []Attr {
	if in == nil {
		return nil
	}
	out := make([]Attr, len(in))
	copy(out, in)
	return out
}
