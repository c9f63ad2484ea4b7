package settings

import "strings"

// Polarization of a satellite carrier.
type Polarization int

const (
	PolarizationHorizontal Polarization = iota
	PolarizationVertical
	PolarizationCircularLeft
	PolarizationCircularRight
	PolarizationUnknown
	PolarizationNone
)

var polarizationNames = map[Polarization]string{
	PolarizationHorizontal:    "H",
	PolarizationVertical:      "V",
	PolarizationCircularLeft:  "L",
	PolarizationCircularRight: "R",
	PolarizationUnknown:       "unknown",
	PolarizationNone:          "none",
}

func (p Polarization) String() string {
	return polarizationNames[p]
}

// PolarizationOf projects a raw code; anything outside 0..3 is Unknown.
func PolarizationOf(code string) Polarization {
	switch strings.TrimSpace(code) {
	case "0":
		return PolarizationHorizontal
	case "1":
		return PolarizationVertical
	case "2":
		return PolarizationCircularLeft
	case "3":
		return PolarizationCircularRight
	default:
		return PolarizationUnknown
	}
}

// FEC is the inner forward error correction rate.
type FEC int

const (
	FECAuto FEC = iota
	FEC1_2
	FEC2_3
	FEC3_4
	FEC5_6
	FEC7_8
	FEC8_9
	FEC3_5
	FEC4_5
	FEC9_10
	FECNone
)

var fecCodes = map[string]FEC{
	"0": FECAuto, "1": FEC1_2, "2": FEC2_3, "3": FEC3_4, "4": FEC5_6,
	"5": FEC7_8, "6": FEC8_9, "7": FEC3_5, "8": FEC4_5, "9": FEC9_10,
	"15": FECNone,
}

var fecNames = []string{"auto", "1/2", "2/3", "3/4", "5/6", "7/8", "8/9", "3/5", "4/5", "9/10", "none"}

func (f FEC) String() string {
	if f < 0 || int(f) >= len(fecNames) {
		return "auto"
	}
	return fecNames[f]
}

// FECOf projects a raw code; unknown codes are Auto.
func FECOf(code string) FEC {
	if f, ok := fecCodes[strings.TrimSpace(code)]; ok {
		return f
	}
	return FECAuto
}

// Inversion is the spectral inversion setting.
type Inversion int

const (
	InversionOff Inversion = iota
	InversionOn
	InversionAuto
)

func (i Inversion) String() string {
	switch i {
	case InversionOff:
		return "off"
	case InversionOn:
		return "on"
	default:
		return "auto"
	}
}

// InversionOf projects a raw code; unknown codes are Auto.
func InversionOf(code string) Inversion {
	switch strings.TrimSpace(code) {
	case "0":
		return InversionOff
	case "1":
		return InversionOn
	default:
		return InversionAuto
	}
}

// Modulation is the constellation of a carrier.
type Modulation int

const (
	ModulationAuto Modulation = iota
	ModulationQPSK
	Modulation8PSK
	Modulation16APSK
	Modulation32APSK
	ModulationQAM16
	ModulationQAM32
	ModulationQAM64
	ModulationQAM128
	ModulationQAM256
	ModulationVSB8
	ModulationVSB16
)

var modulationNames = []string{"auto", "QPSK", "8PSK", "16APSK", "32APSK",
	"QAM16", "QAM32", "QAM64", "QAM128", "QAM256", "8VSB", "16VSB"}

func (m Modulation) String() string {
	if m < 0 || int(m) >= len(modulationNames) {
		return "auto"
	}
	return modulationNames[m]
}

func projectModulation(table map[string]Modulation, code string) Modulation {
	if m, ok := table[strings.TrimSpace(code)]; ok {
		return m
	}
	return ModulationAuto
}

var satelliteModulations = map[string]Modulation{
	"1": ModulationQPSK, "2": Modulation8PSK, "3": ModulationQAM16,
	"4": Modulation16APSK, "5": Modulation32APSK,
}

var cableModulations = map[string]Modulation{
	"1": ModulationQAM16, "2": ModulationQAM32, "3": ModulationQAM64,
	"4": ModulationQAM128, "5": ModulationQAM256,
}

var terrestrialModulations = map[string]Modulation{
	"0": ModulationQPSK, "1": ModulationQAM16, "2": ModulationQAM64,
}

var atscModulations = map[string]Modulation{
	"1": ModulationQAM16, "2": ModulationQAM32, "3": ModulationQAM64,
	"4": ModulationQAM128, "5": ModulationQAM256, "6": ModulationVSB8, "7": ModulationVSB16,
}

func satelliteModulation(code string) Modulation {
	return projectModulation(satelliteModulations, code)
}

func cableModulation(code string) Modulation {
	return projectModulation(cableModulations, code)
}

func terrestrialModulation(code string) Modulation {
	return projectModulation(terrestrialModulations, code)
}

func atscModulation(code string) Modulation {
	return projectModulation(atscModulations, code)
}

// System is the delivery system of a carrier.
type System int

const (
	SystemUnknown System = iota
	SystemDVBS
	SystemDVBS2
	SystemDVBC
	SystemDVBT
	SystemDVBT2
	SystemATSC
)

func (s System) String() string {
	switch s {
	case SystemDVBS:
		return "DVB-S"
	case SystemDVBS2:
		return "DVB-S2"
	case SystemDVBC:
		return "DVB-C"
	case SystemDVBT:
		return "DVB-T"
	case SystemDVBT2:
		return "DVB-T2"
	case SystemATSC:
		return "ATSC"
	default:
		return "unknown"
	}
}
