package contact

import "strings"

// meCardRules maps MECARD keys to record fields. NOTE and TITLE both feed
// JobTitle; the later field in the payload wins.
var meCardRules = ruleSet{
	{key: "N", apply: setName},
	{key: "TEL", apply: setMobile},
	{key: "EMAIL", apply: setEmail},
	{key: "URL", apply: setWebsite},
	{key: "NOTE", apply: setJobTitle},
	{key: "ORG", apply: setCompany},
	{key: "ADR", apply: setAddress},
	{key: "TITLE", apply: setJobTitle},
}

// DecodeMeCard decodes a "MECARD:KEY:value;KEY:value;;" payload. The leading
// marker is optional. It returns nil when no N field is present.
func DecodeMeCard(s string) *Record {
	s = strings.TrimPrefix(strings.TrimSpace(s), meCardMarker)

	rec := &Record{}
	for field := range strings.SplitSeq(s, ";") {
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, ":")
		if !ok || key == "" || value == "" {
			continue
		}
		meCardRules.apply(rec, key, value)
	}
	return rec.finish()
}
