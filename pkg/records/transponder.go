package records

import (
	"strings"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

const recordTransponder = "transponder"

// KindAuto makes ParseTransponder take the variant from the discriminator
// letter of the frequency line.
const KindAuto = settings.KindUnknown

// ParseTransponder builds a transponder from a lamedb v4 id line
// ("00c00000:0437:0001") and frequency line ("\ts 11778000:27500000:1:3:192:2:0").
// The discriminator letter must match kind unless kind is KindAuto.
func ParseTransponder(kind settings.Kind, idLine, freqLine string) (*settings.Transponder, error) {
	freq := strings.TrimSpace(freqLine)
	letter, params, ok := strings.Cut(freq, " ")
	if !ok {
		return nil, errors.NewFormatError(recordTransponder, freq, "missing discriminator")
	}
	return parseTransponder(kind, idLine, letter, params)
}

// FormatTransponder renders the id line and the frequency line of a lamedb
// v4 transponder record. The closing "/" line is written by FormatLamedb.
func FormatTransponder(t *settings.Transponder) (idLine, freqLine string) {
	return transponderKey(t), "\t" + t.Kind.Letter() + " " + transponderParams(t)
}

// ParseTransponderV5 parses a lamedb v5 transponder line:
// t:00c00000:0437:0001,s:11778000:27500000:1:3:192:2:0
func ParseTransponderV5(line string) (*settings.Transponder, error) {
	trimmed := strings.TrimSpace(line)
	body, ok := strings.CutPrefix(trimmed, "t:")
	if !ok {
		return nil, errors.NewFormatError(recordTransponder, trimmed, `expected "t:" prefix`)
	}
	key, freq, ok := strings.Cut(body, ",")
	if !ok {
		return nil, errors.NewFormatError(recordTransponder, trimmed, "missing frequency parameters")
	}
	letter, params, ok := strings.Cut(freq, ":")
	if !ok {
		return nil, errors.NewFormatError(recordTransponder, trimmed, "missing discriminator")
	}
	return parseTransponder(KindAuto, key, letter, params)
}

// FormatTransponderV5 renders a lamedb v5 transponder line.
func FormatTransponderV5(t *settings.Transponder) string {
	return "t:" + transponderKey(t) + "," + t.Kind.Letter() + ":" + transponderParams(t)
}

func parseTransponder(kind settings.Kind, idLine, letter, params string) (*settings.Transponder, error) {
	id := strings.TrimSpace(idLine)
	keys := fieldcodec.SplitColon(id)
	if len(keys) != 3 {
		return nil, errors.NewFormatError(recordTransponder, id, "id line must have 3 fields")
	}

	if kind == KindAuto {
		kind = settings.KindFromLetter(letter)
		if kind == settings.KindUnknown {
			return nil, errors.NewFormatError(recordTransponder, letter+" "+params, "unknown discriminator "+letter)
		}
	} else if kind.Letter() != letter {
		return nil, errors.NewFormatError(recordTransponder, letter+" "+params,
			"discriminator "+letter+" does not match "+kind.String())
	}

	t, err := settings.NewTransponder(kind, keys[0], keys[1], keys[2])
	if err != nil {
		return nil, err
	}

	values, tail, hasTail := strings.Cut(params, ",")
	if hasTail {
		t.Tail = tail
	}
	tokens := fieldcodec.SplitColon(strings.TrimSuffix(strings.TrimSpace(values), "/"))
	fields := t.LineFields()
	for i, tok := range tokens {
		if i < len(fields) {
			*fields[i] = tok
			continue
		}
		t.Extra = append(t.Extra, tok)
	}
	t.FieldCount = min(len(tokens), len(fields))
	return t, nil
}

func transponderKey(t *settings.Transponder) string {
	return fieldcodec.JoinColon([]string{padHex(t.Namespace, 8), padHex(t.TSID, 4), padHex(t.NID, 4)})
}

// transponderParams renders the colon separated parameters. At least
// FieldCount fields are written, more when a later field has been set.
func transponderParams(t *settings.Transponder) string {
	fields := t.LineFields()
	n := t.FieldCount
	for i := len(fields) - 1; i >= n; i-- {
		if *fields[i] != "" {
			n = i + 1
			break
		}
	}
	if len(t.Extra) > 0 {
		n = len(fields)
	}
	values := make([]string, 0, n+len(t.Extra))
	for _, f := range fields[:n] {
		values = append(values, *f)
	}
	values = append(values, t.Extra...)

	out := fieldcodec.JoinColon(values)
	if t.Tail != "" {
		out += "," + t.Tail
	}
	return out
}
