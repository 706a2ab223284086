package contact

import (
	"strings"
	"unicode/utf8"
)

// Format identifies which decoder handles a payload.
type Format string

const (
	FormatEmpty     Format = "empty"
	FormatMeCard    Format = "mecard"
	FormatVCard     Format = "vcard"
	FormatHeuristic Format = "text"
	FormatBareName  Format = "name"
	FormatUnknown   Format = "unknown"
)

const (
	meCardMarker = "MECARD:"
	vCardMarker  = "BEGIN:VCARD"

	// maxBareNameLen is the exclusive upper bound, in characters, for a
	// payload to be taken verbatim as a name.
	maxBareNameLen = 100
)

// String returns the format identifier.
func (f Format) String() string {
	return string(f)
}

// Structured reports whether f is one of the marker-delimited encodings.
func (f Format) Structured() bool {
	return f == FormatMeCard || f == FormatVCard
}

// Detect classifies raw. Checks run in a fixed priority order and the first
// match wins: empty input, MECARD marker, vCard envelope, contact hints
// ("@", "tel:", "phone:"), short bare text, and finally unknown.
func Detect(raw string) Format {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return FormatEmpty
	case strings.HasPrefix(s, meCardMarker):
		return FormatMeCard
	case hasPrefixFold(s, vCardMarker):
		return FormatVCard
	case hasContactHint(s):
		return FormatHeuristic
	case utf8.RuneCountInString(s) < maxBareNameLen:
		return FormatBareName
	default:
		return FormatUnknown
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasContactHint(s string) bool {
	return strings.Contains(s, "@") ||
		strings.Contains(s, "tel:") ||
		strings.Contains(s, "phone:")
}
