package catalogxml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

const rawSatellitesXML = `<?xml version="1.0" encoding="iso-8859-1"?>
<satellites>
	<sat name="Astra 1KR/1L/1M/1N (19.2DEG)" flags="1" position="192">
		<transponder frequency="10714250" symbol_rate="22000000" polarization="0" fec_inner="4" system="0" modulation="1"/>
		<transponder frequency="11778000" symbol_rate="27500000" polarization="1" fec_inner="3" system="0" modulation="1" is_id="0" pls_code="1"/>
	</sat>
	<sat name="Eutelsat 5 West B (5.0W)" flags="0" position="-50" custom="yes"></sat>
</satellites>
`

// The catalog is ISO-8859-1 encoded; "\xb0" is the degree sign.
var satellitesXML = strings.Replace(rawSatellitesXML, "DEG", "\xb0", 1)

const cablesXML = `<?xml version="1.0" encoding="iso-8859-1"?>
<cables>
	<cable name="Unitymedia" flags="9" satfeed="false" countrycode="DEU">
		<transponder frequency="346000" symbol_rate="6900000" modulation="5" fec_inner="0"/>
	</cable>
</cables>
`

func TestDecodeSatellites(t *testing.T) {
	sats, err := DecodeSatellites(strings.NewReader(satellitesXML))
	require.NoError(t, err)
	require.Len(t, sats, 2)

	astra := sats[0]
	assert.Equal(t, "Astra 1KR/1L/1M/1N (19.2°)", astra.Name)
	assert.Equal(t, 192, astra.PositionValue())
	require.Len(t, astra.Transponders, 2)
	assert.Equal(t, "27500000", astra.Transponders[1].SymbolRate)
	assert.Equal(t, []settings.Attr{{Name: "is_id", Value: "0"}, {Name: "pls_code", Value: "1"}}, astra.Transponders[1].Attrs)

	assert.Equal(t, -50, sats[1].PositionValue())
	assert.Equal(t, []settings.Attr{{Name: "custom", Value: "yes"}}, sats[1].Attrs)
}

func TestSatellitesRoundTrip(t *testing.T) {
	sats, err := DecodeSatellites(strings.NewReader(satellitesXML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSatellites(&buf, sats))
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="iso-8859-1"?>`))
	assert.Contains(t, buf.String(), "19.2\xb0)", "output is ISO-8859-1")
	assert.Contains(t, buf.String(), `pls_code="1"`)

	again, err := DecodeSatellites(&buf)
	require.NoError(t, err)
	assert.Equal(t, sats, again)
}

func TestCablesRoundTrip(t *testing.T) {
	cables, err := DecodeCables(strings.NewReader(cablesXML))
	require.NoError(t, err)
	require.Len(t, cables, 1)
	assert.Equal(t, "DEU", cables[0].CountryCode)
	assert.Equal(t, "false", cables[0].SatFeed)
	require.Len(t, cables[0].Transponders, 1)
	assert.Equal(t, int64(346000), cables[0].Transponders[0].FrequencyValue())

	var buf bytes.Buffer
	require.NoError(t, EncodeCables(&buf, cables))
	again, err := DecodeCables(&buf)
	require.NoError(t, err)
	assert.Equal(t, cables, again)
}

func TestEncodeOmitsMissingAttributes(t *testing.T) {
	const in = `<?xml version="1.0" encoding="iso-8859-1"?>
<satellites>
	<sat name="Hispasat 30.0W" position="-300"></sat>
</satellites>
`
	sats, err := DecodeSatellites(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, sats, 1)
	assert.Empty(t, sats[0].Flags)

	var buf bytes.Buffer
	require.NoError(t, EncodeSatellites(&buf, sats))
	assert.NotContains(t, buf.String(), "flags=")

	cables := []*settings.XmlCable{{Name: "KabelBW"}}
	buf.Reset()
	require.NoError(t, EncodeCables(&buf, cables))
	assert.NotContains(t, buf.String(), "flags=")
	assert.Contains(t, buf.String(), `name="KabelBW"`)
}

func TestEncodeReplacesUnsupportedCharacters(t *testing.T) {
	var buf bytes.Buffer
	sat := settings.NewXmlSatellite("Türksat ☆", 420)
	require.NoError(t, EncodeSatellites(&buf, []*settings.XmlSatellite{sat}))
	assert.Contains(t, buf.String(), "T\xfcrksat")
}

func TestDecodeMalformed(t *testing.T) {
	_, err := DecodeSatellites(strings.NewReader("<satellites><sat"))
	assert.True(t, errors.IsFormat(err))

	_, err = DecodeCables(strings.NewReader(`<?xml version="1.0" encoding="x-unknown"?><cables/>`))
	assert.Error(t, err)
}
