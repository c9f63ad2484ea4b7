package settings

import (
	"path"
	"strings"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
)

// BouquetKind distinguishes the Enigma1 container from per-file bouquets.
type BouquetKind int

const (
	BouquetLegacy BouquetKind = iota
	BouquetTV
	BouquetRadio
)

func (k BouquetKind) String() string {
	switch k {
	case BouquetTV:
		return "tv"
	case BouquetRadio:
		return "radio"
	default:
		return "legacy"
	}
}

// BouquetKindOf derives the kind of a file bouquet from its file extension.
func BouquetKindOf(fileName string) BouquetKind {
	if strings.HasSuffix(fileName, ".radio") {
		return BouquetRadio
	}
	return BouquetTV
}

// Bouquet is an ordered channel list. Item order is the on-air order.
type Bouquet struct {
	Kind     BouquetKind
	Name     string
	FileName string // file bouquets only, may carry a directory prefix
	Order    int64  // legacy bouquets only
	Items    []*BouquetItem

	edit *bouquetSnapshot
}

// NewFileBouquet creates an empty TV or radio bouquet stored in fileName.
func NewFileBouquet(name, fileName string) (*Bouquet, error) {
	if fileName == "" {
		return nil, errors.NewArgumentError("fileName", "cannot be empty")
	}
	return &Bouquet{Kind: BouquetKindOf(fileName), Name: name, FileName: fileName}, nil
}

// NewLegacyBouquet creates an empty bouquet of the Enigma1 container.
func NewLegacyBouquet(name string, order int64) *Bouquet {
	return &Bouquet{Kind: BouquetLegacy, Name: name, Order: order}
}

// IsFile reports whether the bouquet lives in its own file.
func (b *Bouquet) IsFile() bool {
	return b.Kind != BouquetLegacy
}

// BaseName returns the file name without directory prefix.
func (b *Bouquet) BaseName() string {
	return path.Base(b.FileName)
}

// AddItem appends an item.
func (b *Bouquet) AddItem(item *BouquetItem) error {
	if item == nil {
		return errors.NewArgumentError("item", "cannot be nil")
	}
	b.Items = append(b.Items, item)
	return nil
}

// InsertItem inserts an item at index, clamped to the valid range.
func (b *Bouquet) InsertItem(index int, item *BouquetItem) error {
	if item == nil {
		return errors.NewArgumentError("item", "cannot be nil")
	}
	if index < 0 {
		index = 0
	}
	if index > len(b.Items) {
		index = len(b.Items)
	}
	b.Items = append(b.Items, nil)
	copy(b.Items[index+1:], b.Items[index:])
	b.Items[index] = item
	return nil
}

// IndexOf returns the position of item or -1.
func (b *Bouquet) IndexOf(item *BouquetItem) int {
	for i, it := range b.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// RemoveItem removes item from the bouquet and reports whether it was found.
func (b *Bouquet) RemoveItem(item *BouquetItem) bool {
	i := b.IndexOf(item)
	if i < 0 {
		return false
	}
	b.RemoveItemAt(i)
	return true
}

// RemoveItemAt removes the item at index i.
func (b *Bouquet) RemoveItemAt(i int) {
	if i < 0 || i >= len(b.Items) {
		return
	}
	b.Items = append(b.Items[:i], b.Items[i+1:]...)
}

// MoveItem moves the item at from to position to.
func (b *Bouquet) MoveItem(from, to int) {
	if from < 0 || from >= len(b.Items) || to < 0 || to >= len(b.Items) || from == to {
		return
	}
	item := b.Items[from]
	b.RemoveItemAt(from)
	b.Items = append(b.Items[:to], append([]*BouquetItem{item}, b.Items[to:]...)...)
}

// RemoveItemsFunc removes every item for which drop returns true and
// returns the number removed.
func (b *Bouquet) RemoveItemsFunc(drop func(*BouquetItem) bool) int {
	kept := b.Items[:0]
	removed := 0
	for _, item := range b.Items {
		if drop(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(b.Items); i++ {
		b.Items[i] = nil
	}
	b.Items = kept
	return removed
}

// ItemKind tags the variant of a bouquet item.
type ItemKind int

const (
	ItemService ItemKind = iota
	ItemMarker
	ItemFileBouquet
	ItemLegacyBouquet
	ItemStream
)

func (k ItemKind) String() string {
	switch k {
	case ItemService:
		return "service"
	case ItemMarker:
		return "marker"
	case ItemFileBouquet:
		return "file bouquet"
	case ItemLegacyBouquet:
		return "legacy bouquet"
	case ItemStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Marker and bouquet reference flag bits of a service reference.
const (
	FlagDirectory = 0x01
	FlagMarker    = 0x40
)

// Field positions inside an Enigma2 service reference.
const (
	fieldFavType   = 0
	fieldFlags     = 1
	fieldNumber    = 2
	fieldPayload   = 10
	fieldName      = 11
	referenceWidth = 10
)

// LinePrefix is the form of the keyword in front of a bouquet item line.
type LinePrefix int

const (
	// PrefixService is "#SERVICE ", the form written for new items.
	PrefixService LinePrefix = iota
	// PrefixServiceColon is the Enigma1 colon form "#SERVICE: ".
	PrefixServiceColon
	// PrefixServiceColonTight is "#SERVICE:" without a following space.
	PrefixServiceColonTight
	// PrefixBare marks a reference written without any keyword.
	PrefixBare
)

// String returns the keyword text written in front of the reference.
func (p LinePrefix) String() string {
	switch p {
	case PrefixServiceColon:
		return "#SERVICE: "
	case PrefixServiceColonTight:
		return "#SERVICE:"
	case PrefixBare:
		return ""
	default:
		return "#SERVICE "
	}
}

// BouquetItem is one entry of a bouquet. Fields holds the colon separated
// record exactly as read so an unedited item formats back byte for byte.
type BouquetItem struct {
	Kind   ItemKind
	Fields []string

	// Description is the "#DESCRIPTION" line following the item.
	Description    string
	HasDescription bool

	// Prefix is the form the "#SERVICE" keyword had when read.
	Prefix LinePrefix

	// DescriptionPrefix is the "#DESCRIPTION" keyword as read, including
	// its separator. Empty means the default matching Prefix.
	DescriptionPrefix string

	// Legacy marks items of the Enigma1 bouquets container.
	Legacy bool

	edit *bouquetItemSnapshot
}

func (it *BouquetItem) field(i int) string {
	if i < len(it.Fields) {
		return it.Fields[i]
	}
	return ""
}

func (it *BouquetItem) setField(i int, value string) {
	for len(it.Fields) <= i {
		it.Fields = append(it.Fields, "")
	}
	it.Fields[i] = value
}

// Line returns the colon joined record without any prefix.
func (it *BouquetItem) Line() string {
	return fieldcodec.JoinColon(it.Fields)
}

// ServiceID returns the id of the referenced service. Only meaningful for
// service items.
func (it *BouquetItem) ServiceID() ServiceID {
	return ServiceIDFromFields(it.Fields)
}

// Flags returns the decimal flags field of an Enigma2 reference.
func (it *BouquetItem) Flags() int64 {
	if it.Legacy {
		return 0
	}
	return fieldcodec.ParseDecimal(it.field(fieldFlags))
}

// FavType returns the first field of an Enigma2 reference.
func (it *BouquetItem) FavType() string {
	return it.field(fieldFavType)
}

// MarkerNumber returns the hex sequence number of a marker.
func (it *BouquetItem) MarkerNumber() string {
	return it.field(fieldNumber)
}

// SetMarkerNumber sets the sequence number, rendered as uppercase hex.
func (it *BouquetItem) SetMarkerNumber(n int) {
	it.setField(fieldNumber, fieldcodec.FormatUpperHex(int64(n)))
}

// Label returns the marker label or the custom name of a stream.
func (it *BouquetItem) Label() string {
	if it.HasDescription {
		return it.Description
	}
	return it.field(fieldName)
}

// SetLabel updates the name field and the description line.
func (it *BouquetItem) SetLabel(label string) {
	if len(it.Fields) > fieldName || it.Kind == ItemMarker {
		it.setField(fieldName, label)
	}
	it.Description = label
	it.HasDescription = true
}

// RefFileName returns the file name quoted in a FROM BOUQUET reference.
func (it *BouquetItem) RefFileName() string {
	payload := it.field(fieldPayload)
	start := strings.Index(payload, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(payload[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return payload[start+1 : start+1+end]
}

// SetRefFileName replaces the file name quoted in a FROM BOUQUET reference.
func (it *BouquetItem) SetRefFileName(name string) {
	old := it.RefFileName()
	payload := it.field(fieldPayload)
	if old == "" && !strings.Contains(payload, `""`) {
		it.setField(fieldPayload, fromBouquet(name))
		return
	}
	it.setField(fieldPayload, strings.Replace(payload, `"`+old+`"`, `"`+name+`"`, 1))
}

// RefOrder returns the order number of the referenced legacy bouquet.
func (it *BouquetItem) RefOrder() int64 {
	return -fieldcodec.ParseHex(it.field(0))
}

// URL returns the decoded stream address.
func (it *BouquetItem) URL() string {
	return fieldcodec.UnescapeURL(it.field(fieldPayload))
}

// SetURL stores the stream address in its escaped form.
func (it *BouquetItem) SetURL(u string) {
	it.setField(fieldPayload, fieldcodec.EscapeURL(u))
}

func fromBouquet(fileName string) string {
	return `FROM BOUQUET "` + fileName + `" ORDER BY bouquet`
}

func zeroFields(n int) []string {
	fields := make([]string, n)
	for i := range fields {
		fields[i] = "0"
	}
	return fields
}

// NewServiceItem creates an Enigma2 reference to id.
func NewServiceItem(id ServiceID) (*BouquetItem, error) {
	if id == "" {
		return nil, errors.NewArgumentError("id", "cannot be empty")
	}
	fields := fieldcodec.SplitColon(id.Reference())
	return &BouquetItem{Kind: ItemService, Fields: fields}, nil
}

// NewMarkerItem creates a marker with the given label.
func NewMarkerItem(label string) *BouquetItem {
	fields := zeroFields(referenceWidth)
	fields[fieldFavType] = "1"
	fields[fieldFlags] = "64"
	fields = append(fields, "", label)
	return &BouquetItem{Kind: ItemMarker, Fields: fields, Description: label, HasDescription: true}
}

// NewFileBouquetItem creates a reference to a bouquet file.
func NewFileBouquetItem(fileName string) (*BouquetItem, error) {
	if fileName == "" {
		return nil, errors.NewArgumentError("fileName", "cannot be empty")
	}
	fields := zeroFields(referenceWidth)
	fields[fieldFavType] = "1"
	fields[fieldFlags] = "7"
	fields[fieldNumber] = "1"
	fields = append(fields, fromBouquet(fileName))
	return &BouquetItem{Kind: ItemFileBouquet, Fields: fields}, nil
}

// NewStreamItem creates an IPTV stream entry.
func NewStreamItem(url, name string) (*BouquetItem, error) {
	if url == "" {
		return nil, errors.NewArgumentError("url", "cannot be empty")
	}
	fields := zeroFields(referenceWidth)
	fields[fieldFavType] = "4097"
	fields[fieldNumber] = "1"
	fields = append(fields, fieldcodec.EscapeURL(url), name)
	item := &BouquetItem{Kind: ItemStream, Fields: fields}
	if name != "" {
		item.Description = name
		item.HasDescription = true
	}
	return item, nil
}

// NewLegacyServiceItem creates an Enigma1 container entry for a service.
func NewLegacyServiceItem(s *Service) (*BouquetItem, error) {
	if s == nil {
		return nil, errors.NewArgumentError("service", "cannot be nil")
	}
	fields := []string{
		fieldcodec.PadLeft(fieldcodec.Lower(s.SID), 4, '0'),
		fieldcodec.PadLeft(fieldcodec.Lower(s.Namespace), 8, '0'),
		fieldcodec.PadLeft(fieldcodec.Lower(s.TSID), 4, '0'),
		fieldcodec.PadLeft(fieldcodec.Lower(s.NID), 4, '0'),
		fieldcodec.HexToDecimal(s.Type),
		"0",
	}
	return &BouquetItem{Kind: ItemService, Fields: fields, Legacy: true}, nil
}

// NewLegacyBouquetItem creates an Enigma1 container reference to the legacy
// bouquet with the given order number.
func NewLegacyBouquetItem(order int64) *BouquetItem {
	return &BouquetItem{Kind: ItemLegacyBouquet, Fields: []string{fieldcodec.FormatHex(-order, 0)}, Legacy: true}
}

// SetServiceNamespace rewrites the namespace component of a service item,
// keeping the layout of the line.
func (it *BouquetItem) SetServiceNamespace(namespace string) {
	if it.Kind != ItemService {
		return
	}
	namespace = fieldcodec.NormalizeHex(namespace, defaultComponent)
	if it.Legacy {
		it.setField(1, fieldcodec.PadLeft(namespace, 8, '0'))
		return
	}
	it.setField(6, fieldcodec.Upper(namespace))
}
