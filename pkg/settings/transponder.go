package settings

import (
	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
)

// Kind tags the delivery system variant of a transponder.
type Kind int

const (
	KindUnknown Kind = iota
	KindDVBS
	KindDVBC
	KindDVBT
	KindIPTV
	KindATSC
)

// String returns a readable variant name.
func (k Kind) String() string {
	switch k {
	case KindDVBS:
		return "DVB-S"
	case KindDVBC:
		return "DVB-C"
	case KindDVBT:
		return "DVB-T"
	case KindIPTV:
		return "IPTV"
	case KindATSC:
		return "ATSC"
	default:
		return "unknown"
	}
}

// Letter returns the discriminator used on the lamedb frequency line.
func (k Kind) Letter() string {
	switch k {
	case KindDVBS, KindIPTV:
		return "s"
	case KindDVBC:
		return "c"
	case KindDVBT:
		return "t"
	case KindATSC:
		return "a"
	default:
		return ""
	}
}

// KindFromLetter maps a lamedb discriminator letter to its default variant.
// "s" maps to DVB-S; IPTV transponders have to be requested explicitly.
func KindFromLetter(letter string) Kind {
	switch letter {
	case "s":
		return KindDVBS
	case "c":
		return KindDVBC
	case "t":
		return KindDVBT
	case "a":
		return KindATSC
	default:
		return KindUnknown
	}
}

// SatelliteParams is the DVB-S (and IPTV) payload.
type SatelliteParams struct {
	Polarization    string
	FEC             string
	OrbitalPosition string
	Inversion       string
	Flags           string
	System          string
	Modulation      string
	RollOff         string
	Pilot           string
}

// CableParams is the DVB-C payload.
type CableParams struct {
	Inversion  string
	Modulation string
	FEC        string
	Flags      string
	System     string
}

// TerrestrialParams is the DVB-T payload.
type TerrestrialParams struct {
	Bandwidth        string
	CodeRateHP       string
	CodeRateLP       string
	Modulation       string
	TransmissionMode string
	GuardInterval    string
	Hierarchy        string
	Inversion        string
	Flags            string
	System           string
	PLPID            string
}

// ATSCParams is the ATSC payload.
type ATSCParams struct {
	Inversion  string
	Modulation string
	Flags      string
	System     string
}

// Transponder is a broadcast carrier of the runtime configuration. Exactly
// one payload pointer matching Kind is set.
type Transponder struct {
	Kind Kind

	Namespace string
	TSID      string
	NID       string

	Frequency  string
	SymbolRate string

	Satellite   *SatelliteParams
	Cable       *CableParams
	Terrestrial *TerrestrialParams
	ATSC        *ATSCParams

	// FieldCount is the number of frequency line fields present when the
	// record was parsed. Formatting never writes fewer fields.
	FieldCount int

	// Extra holds frequency line fields beyond the known layout.
	Extra []string

	// Tail is anything after the first ',' of the frequency line.
	Tail string

	edit *transponderSnapshot
}

// NewTransponder creates a transponder of the given kind with an empty payload.
func NewTransponder(kind Kind, namespace, tsid, nid string) (*Transponder, error) {
	t := &Transponder{Kind: kind, Namespace: namespace, TSID: tsid, NID: nid}
	switch kind {
	case KindDVBS, KindIPTV:
		t.Satellite = &SatelliteParams{}
	case KindDVBC:
		t.Cable = &CableParams{}
	case KindDVBT:
		t.Terrestrial = &TerrestrialParams{}
	case KindATSC:
		t.ATSC = &ATSCParams{}
	default:
		return nil, errors.NewArgumentError("kind", "unknown transponder kind")
	}
	return t, nil
}

// ID derives the transponder id from the current component values.
func (t *Transponder) ID() TransponderID {
	return NewTransponderID(t.Namespace, t.TSID, t.NID)
}

// LineFields returns pointers to the frequency line fields in file order.
// Record codecs read and write through them so the field layout of each
// variant lives in one place.
func (t *Transponder) LineFields() []*string {
	switch t.Kind {
	case KindDVBS, KindIPTV:
		p := t.satellite()
		return []*string{&t.Frequency, &t.SymbolRate, &p.Polarization, &p.FEC, &p.OrbitalPosition,
			&p.Inversion, &p.Flags, &p.System, &p.Modulation, &p.RollOff, &p.Pilot}
	case KindDVBC:
		p := t.cable()
		return []*string{&t.Frequency, &t.SymbolRate, &p.Inversion, &p.Modulation, &p.FEC, &p.Flags, &p.System}
	case KindDVBT:
		p := t.terrestrial()
		return []*string{&t.Frequency, &p.Bandwidth, &p.CodeRateHP, &p.CodeRateLP, &p.Modulation,
			&p.TransmissionMode, &p.GuardInterval, &p.Hierarchy, &p.Inversion, &p.Flags, &p.System, &p.PLPID}
	case KindATSC:
		p := t.atsc()
		return []*string{&t.Frequency, &p.Inversion, &p.Modulation, &p.Flags, &p.System}
	default:
		return []*string{&t.Frequency}
	}
}

// FrequencyValue returns the frequency as a number, 0 when malformed.
func (t *Transponder) FrequencyValue() int64 {
	return fieldcodec.ParseDecimal(t.Frequency)
}

// SymbolRateValue returns the symbol rate as a number, 0 when malformed.
func (t *Transponder) SymbolRateValue() int64 {
	return fieldcodec.ParseDecimal(t.SymbolRate)
}

// OrbitalPosition returns the DVB-S position in tenths of a degree, east
// positive. Non satellite transponders report 0.
func (t *Transponder) OrbitalPosition() int {
	if t.Kind != KindDVBS || t.Satellite == nil {
		return 0
	}
	return int(fieldcodec.ParseDecimal(t.Satellite.OrbitalPosition))
}

// NamespaceValue returns the namespace as a number.
func (t *Transponder) NamespaceValue() int64 {
	return fieldcodec.ParseHex(t.Namespace)
}

// Polarization projects the raw polarization code.
func (t *Transponder) Polarization() Polarization {
	if t.Satellite == nil {
		return PolarizationNone
	}
	return PolarizationOf(t.Satellite.Polarization)
}

// FEC projects the raw inner FEC code.
func (t *Transponder) FEC() FEC {
	switch {
	case t.Satellite != nil:
		return FECOf(t.Satellite.FEC)
	case t.Cable != nil:
		return FECOf(t.Cable.FEC)
	case t.Terrestrial != nil:
		return FECOf(t.Terrestrial.CodeRateHP)
	default:
		return FECAuto
	}
}

// Inversion projects the raw inversion code.
func (t *Transponder) Inversion() Inversion {
	switch {
	case t.Satellite != nil:
		return InversionOf(t.Satellite.Inversion)
	case t.Cable != nil:
		return InversionOf(t.Cable.Inversion)
	case t.Terrestrial != nil:
		return InversionOf(t.Terrestrial.Inversion)
	case t.ATSC != nil:
		return InversionOf(t.ATSC.Inversion)
	default:
		return InversionAuto
	}
}

// Modulation projects the raw modulation code using the table of the variant.
func (t *Transponder) Modulation() Modulation {
	switch t.Kind {
	case KindDVBS, KindIPTV:
		return satelliteModulation(t.satellite().Modulation)
	case KindDVBC:
		return cableModulation(t.cable().Modulation)
	case KindDVBT:
		return terrestrialModulation(t.terrestrial().Modulation)
	case KindATSC:
		return atscModulation(t.atsc().Modulation)
	default:
		return ModulationAuto
	}
}

// System projects the delivery system code.
func (t *Transponder) System() System {
	switch t.Kind {
	case KindDVBS, KindIPTV:
		if t.satellite().System == "1" {
			return SystemDVBS2
		}
		return SystemDVBS
	case KindDVBC:
		return SystemDVBC
	case KindDVBT:
		if t.terrestrial().System == "1" {
			return SystemDVBT2
		}
		return SystemDVBT
	case KindATSC:
		return SystemATSC
	default:
		return SystemUnknown
	}
}

func (t *Transponder) satellite() *SatelliteParams {
	if t.Satellite == nil {
		t.Satellite = &SatelliteParams{}
	}
	return t.Satellite
}

func (t *Transponder) cable() *CableParams {
	if t.Cable == nil {
		t.Cable = &CableParams{}
	}
	return t.Cable
}

func (t *Transponder) terrestrial() *TerrestrialParams {
	if t.Terrestrial == nil {
		t.Terrestrial = &TerrestrialParams{}
	}
	return t.Terrestrial
}

func (t *Transponder) atsc() *ATSCParams {
	if t.ATSC == nil {
		t.ATSC = &ATSCParams{}
	}
	return t.ATSC
}
