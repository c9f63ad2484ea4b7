package settings

// Edit transactions snapshot the mutable fields of an entity. BeginEdit
// while a transaction is open keeps the first snapshot, CancelEdit restores
// it and is a no-op without an open transaction, EndEdit commits.

type serviceSnapshot struct {
	typ, sid, tsid, nid, namespace string
	number, name, provider         string
	blacklisted                    bool
	extra                          []string
}

// BeginEdit opens an edit transaction.
func (s *Service) BeginEdit() {
	if s.edit != nil {
		return
	}
	s.edit = &serviceSnapshot{
		typ: s.Type, sid: s.SID, tsid: s.TSID, nid: s.NID, namespace: s.Namespace,
		number: s.Number, name: s.Name, provider: s.Provider,
		blacklisted: s.Blacklisted,
		extra:       copyStrings(s.Extra),
	}
}

// CancelEdit restores the state captured by BeginEdit.
func (s *Service) CancelEdit() {
	snap := s.edit
	if snap == nil {
		return
	}
	s.Type, s.SID, s.TSID, s.NID, s.Namespace = snap.typ, snap.sid, snap.tsid, snap.nid, snap.namespace
	s.Number, s.Name, s.Provider = snap.number, snap.name, snap.provider
	s.Blacklisted = snap.blacklisted
	s.Extra = snap.extra
	s.edit = nil
}

// EndEdit commits the transaction.
func (s *Service) EndEdit() { s.edit = nil }

// Editing reports whether a transaction is open.
func (s *Service) Editing() bool { return s.edit != nil }

type transponderSnapshot struct {
	namespace, tsid, nid  string
	frequency, symbolRate string
	satellite             *SatelliteParams
	cable                 *CableParams
	terrestrial           *TerrestrialParams
	atsc                  *ATSCParams
	fieldCount            int
	extra                 []string
	tail                  string
}

// BeginEdit opens an edit transaction.
func (t *Transponder) BeginEdit() {
	if t.edit != nil {
		return
	}
	c := t.Copy()
	t.edit = &transponderSnapshot{
		namespace: t.Namespace, tsid: t.TSID, nid: t.NID,
		frequency: t.Frequency, symbolRate: t.SymbolRate,
		satellite: c.Satellite, cable: c.Cable, terrestrial: c.Terrestrial, atsc: c.ATSC,
		fieldCount: t.FieldCount, extra: c.Extra, tail: t.Tail,
	}
}

// CancelEdit restores the state captured by BeginEdit.
func (t *Transponder) CancelEdit() {
	snap := t.edit
	if snap == nil {
		return
	}
	t.Namespace, t.TSID, t.NID = snap.namespace, snap.tsid, snap.nid
	t.Frequency, t.SymbolRate = snap.frequency, snap.symbolRate
	t.Satellite, t.Cable, t.Terrestrial, t.ATSC = snap.satellite, snap.cable, snap.terrestrial, snap.atsc
	t.FieldCount, t.Extra, t.Tail = snap.fieldCount, snap.extra, snap.tail
	t.edit = nil
}

// EndEdit commits the transaction.
func (t *Transponder) EndEdit() { t.edit = nil }

// Editing reports whether a transaction is open.
func (t *Transponder) Editing() bool { return t.edit != nil }

type xmlTransponderSnapshot struct {
	value XmlTransponder
}

// BeginEdit opens an edit transaction.
func (t *XmlTransponder) BeginEdit() {
	if t.edit != nil {
		return
	}
	t.edit = &xmlTransponderSnapshot{value: *t.Copy()}
}

// CancelEdit restores the state captured by BeginEdit.
func (t *XmlTransponder) CancelEdit() {
	if t.edit == nil {
		return
	}
	*t = t.edit.value
}

// EndEdit commits the transaction.
func (t *XmlTransponder) EndEdit() { t.edit = nil }

// Editing reports whether a transaction is open.
func (t *XmlTransponder) Editing() bool { return t.edit != nil }

type xmlSatelliteSnapshot struct {
	name, flags, position string
	transponders          []*XmlTransponder
	attrs                 []Attr
}

// BeginEdit opens an edit transaction. The transponder list is copied
// shallowly: the catalog transponders themselves are shared.
func (s *XmlSatellite) BeginEdit() {
	if s.edit != nil {
		return
	}
	s.edit = &xmlSatelliteSnapshot{
		name: s.Name, flags: s.Flags, position: s.Position,
		transponders: append([]*XmlTransponder(nil), s.Transponders...),
		attrs:        copyAttrs(s.Attrs),
	}
}

// CancelEdit restores the state captured by BeginEdit.
func (s *XmlSatellite) CancelEdit() {
	snap := s.edit
	if snap == nil {
		return
	}
	s.Name, s.Flags, s.Position = snap.name, snap.flags, snap.position
	s.Transponders, s.Attrs = snap.transponders, snap.attrs
	s.edit = nil
}

// EndEdit commits the transaction.
func (s *XmlSatellite) EndEdit() { s.edit = nil }

// Editing reports whether a transaction is open.
func (s *XmlSatellite) Editing() bool { return s.edit != nil }

type xmlCableSnapshot struct {
	name, flags, satFeed, countryCode string
	transponders                      []*XmlTransponder
	attrs                             []Attr
}

// BeginEdit opens an edit transaction.
func (c *XmlCable) BeginEdit() {
	if c.edit != nil {
		return
	}
	c.edit = &xmlCableSnapshot{
		name: c.Name, flags: c.Flags, satFeed: c.SatFeed, countryCode: c.CountryCode,
		transponders: append([]*XmlTransponder(nil), c.Transponders...),
		attrs:        copyAttrs(c.Attrs),
	}
}

// CancelEdit restores the state captured by BeginEdit.
func (c *XmlCable) CancelEdit() {
	snap := c.edit
	if snap == nil {
		return
	}
	c.Name, c.Flags, c.SatFeed, c.CountryCode = snap.name, snap.flags, snap.satFeed, snap.countryCode
	c.Transponders, c.Attrs = snap.transponders, snap.attrs
	c.edit = nil
}

// EndEdit commits the transaction.
func (c *XmlCable) EndEdit() { c.edit = nil }

// Editing reports whether a transaction is open.
func (c *XmlCable) Editing() bool { return c.edit != nil }

type bouquetSnapshot struct {
	kind     BouquetKind
	name     string
	fileName string
	order    int64
	items    []*BouquetItem
}

// BeginEdit opens an edit transaction. Items are copied shallowly so item
// order and membership are restored on cancel, item contents are not.
func (b *Bouquet) BeginEdit() {
	if b.edit != nil {
		return
	}
	b.edit = &bouquetSnapshot{
		kind: b.Kind, name: b.Name, fileName: b.FileName, order: b.Order,
		items: append([]*BouquetItem(nil), b.Items...),
	}
}

// CancelEdit restores the state captured by BeginEdit.
func (b *Bouquet) CancelEdit() {
	snap := b.edit
	if snap == nil {
		return
	}
	b.Kind, b.Name, b.FileName, b.Order = snap.kind, snap.name, snap.fileName, snap.order
	b.Items = snap.items
	b.edit = nil
}

// EndEdit commits the transaction.
func (b *Bouquet) EndEdit() { b.edit = nil }

// Editing reports whether a transaction is open.
func (b *Bouquet) Editing() bool { return b.edit != nil }

type bouquetItemSnapshot struct {
	kind           ItemKind
	fields         []string
	description    string
	hasDescription bool
	prefix         LinePrefix
	descPrefix     string
	legacy         bool
}

// BeginEdit opens an edit transaction.
func (it *BouquetItem) BeginEdit() {
	if it.edit != nil {
		return
	}
	it.edit = &bouquetItemSnapshot{
		kind: it.Kind, fields: copyStrings(it.Fields),
		description: it.Description, hasDescription: it.HasDescription,
		prefix: it.Prefix, descPrefix: it.DescriptionPrefix, legacy: it.Legacy,
	}
}

// CancelEdit restores the state captured by BeginEdit.
func (it *BouquetItem) CancelEdit() {
	snap := it.edit
	if snap == nil {
		return
	}
	it.Kind, it.Fields = snap.kind, snap.fields
	it.Description, it.HasDescription = snap.description, snap.hasDescription
	it.Prefix, it.DescriptionPrefix, it.Legacy = snap.prefix, snap.descPrefix, snap.legacy
	it.edit = nil
}

// EndEdit commits the transaction.
func (it *BouquetItem) EndEdit() { it.edit = nil }

// Editing reports whether a transaction is open.
func (it *BouquetItem) Editing() bool { return it.edit != nil }
