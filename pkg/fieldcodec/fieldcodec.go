// Package fieldcodec holds the small field level helpers every record parser
// relies on: hex/decimal conversion with sign handling, colon and tab
// tokenization, padding and case normalization.
//
// The numeric helpers never fail. Receiver files are frequently edited by
// hand, so malformed numbers fall back to 0 (or "0") instead of returning an
// error.
package fieldcodec

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseHex parses s as a signed hexadecimal number. An optional "0x" prefix
// is accepted. Malformed input yields 0.
func ParseHex(s string) int64 {
	neg, digits := splitSign(s)
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0
	}
	if neg {
		return -int64(v)
	}
	return int64(v)
}

// ParseDecimal parses s as a signed decimal number. Malformed input yields 0.
func ParseDecimal(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// HexToDecimal converts a hexadecimal string to its decimal representation.
func HexToDecimal(s string) string {
	return strconv.FormatInt(ParseHex(s), 10)
}

// DecimalToHex converts a decimal string to lowercase hex without leading
// zeros. Negative values keep their sign: "-10" becomes "-a".
func DecimalToHex(s string) string {
	return FormatHex(ParseDecimal(s), 0)
}

// FormatHex renders v as lowercase hex, zero padded to width digits.
// A width of 0 means no padding.
func FormatHex(v int64, width int) string {
	if v < 0 {
		return "-" + PadLeft(strconv.FormatUint(uint64(-v), 16), width, '0')
	}
	return PadLeft(strconv.FormatUint(uint64(v), 16), width, '0')
}

// FormatUpperHex renders v as uppercase hex without padding.
func FormatUpperHex(v int64) string {
	return Upper(FormatHex(v, 0))
}

// NormalizeHex lowercases s and strips leading zeros. When nothing is left,
// or s is not a hex number, def is returned. "00ab" becomes "ab" and "0"
// becomes def.
func NormalizeHex(s, def string) string {
	s = Lower(strings.TrimSpace(s))
	if !IsHex(s) {
		return def
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return def
	}
	return s
}

// IsHex reports whether s is a non-empty unsigned hex number.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsNegativeHex reports whether s looks like "-<hex>".
func IsNegativeHex(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "-") && IsHex(s[1:])
}

// SplitColon splits a record line on ':' keeping empty fields.
func SplitColon(line string) []string {
	return strings.Split(line, ":")
}

// SplitTab splits a line on tabs keeping empty fields.
func SplitTab(line string) []string {
	return strings.Split(line, "\t")
}

// JoinColon is the inverse of SplitColon.
func JoinColon(fields []string) string {
	return strings.Join(fields, ":")
}

// PadLeft pads s on the left with pad up to width runes.
func PadLeft(s string, width int, pad rune) string {
	if n := width - len([]rune(s)); n > 0 {
		return strings.Repeat(string(pad), n) + s
	}
	return s
}

// PadRight pads s on the right with pad up to width runes.
func PadRight(s string, width int, pad rune) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(string(pad), n)
	}
	return s
}

// Lower lowercases s.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper uppercases s.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// UnescapeURL decodes the percent encoding receivers use for ':' inside
// stream URLs. Undecodable input is returned unchanged.
func UnescapeURL(s string) string {
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}

// EscapeURL encodes the characters that would break a colon separated record.
func EscapeURL(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "%", "%25"), ":", "%3a")
}

func splitSign(s string) (bool, string) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, strings.TrimPrefix(s, "+")
}
