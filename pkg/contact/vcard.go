package contact

import "strings"

// vCard ADR components, in positional order.
const (
	adrPOBox = iota
	adrExtended
	adrStreet
	adrCity
	adrState
	adrPostalCode
	adrCountry
)

var vCardRules = ruleSet{
	{key: "FN", apply: setName},
	{key: "N", apply: applyStructuredName},
	{key: "TEL", apply: setMobile},
	{key: "EMAIL", apply: setEmail},
	{key: "URL", apply: setWebsite},
	{key: "TITLE", apply: setJobTitle},
	{key: "ORG", apply: applyOrganization},
	{key: "ADR", apply: applyAddress},
}

// DecodeVCard decodes a line-oriented vCard payload. Property parameters
// ("TEL;TYPE=CELL") are dropped from the key. It returns nil when neither FN
// nor N yields a name.
//
// Lines are applied in order: FN always sets the name, N only fills it while
// it is still empty. An FN after N therefore wins, an N after FN is skipped.
func DecodeVCard(s string) *Record {
	rec := &Record{}
	for _, line := range splitLines(s) {
		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if value == "" {
			continue
		}
		key, _, _ := strings.Cut(tag, ";")
		vCardRules.apply(rec, key, value)
	}
	return rec.finish()
}

// applyStructuredName formats "Family;Given;..." as "Given Family".
func applyStructuredName(r *Record, v string) {
	if r.Name != "" {
		return
	}
	parts := strings.Split(v, ";")
	if len(parts) < 2 {
		r.Name = v
		return
	}
	family := strings.TrimSpace(parts[0])
	given := strings.TrimSpace(parts[1])
	r.Name = strings.TrimSpace(given + " " + family)
}

func applyOrganization(r *Record, v string) {
	org, _, _ := strings.Cut(v, ";")
	r.Company = ptr(org)
}

// applyAddress joins street through country with ", ". PO box and extended
// address are never included.
func applyAddress(r *Record, v string) {
	parts := strings.Split(v, ";")
	var out []string
	for i := adrStreet; i <= adrCountry && i < len(parts); i++ {
		if parts[i] != "" {
			out = append(out, parts[i])
		}
	}
	if len(out) == 0 {
		return
	}
	r.Address = ptr(strings.Join(out, ", "))
}

// splitLines splits on LF or CRLF and drops blank lines.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
