package contact

import (
	"regexp"
	"strings"
)

// placeholderName is used when free-form text has contact details but no
// name and no e-mail local part to borrow one from.
const placeholderName = "Contact"

// maxNameLines bounds how many leading lines may supply a name.
const maxNameLines = 3

var (
	emailRegex     = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex     = regexp.MustCompile(`(?i)(?:tel:|phone:|call:)?\s*([\d\s+\-()]{7,})`)
	websiteRegex   = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z0-9-]+\.)+[a-z]{2,}(?:[/?#][^\s]*)?`)
	bareURLRegex   = regexp.MustCompile(`(?i)^https?://`)
	barePhoneRegex = regexp.MustCompile(`^[+\d\s()-]{7,}$`)
	separatorRegex = regexp.MustCompile(`[\r\n,;]`)
)

// DecodeHeuristic extracts contact fields from unstructured text. The text is
// split into candidate lines on newlines, commas and semicolons; for each
// field the first matching line wins.
//
// When no line qualifies as a name but an e-mail, phone or website was found,
// the name falls back to the e-mail local part or to "Contact". It returns nil
// when nothing at all was found.
func DecodeHeuristic(s string) *Record {
	rec := &Record{}
	for i, line := range candidateLines(s) {
		if rec.Email == nil {
			if m := emailRegex.FindString(line); m != "" {
				rec.Email = ptr(m)
			}
		}

		if rec.Mobile == nil {
			if m := phoneRegex.FindStringSubmatch(line); m != nil {
				if tok := strings.TrimSpace(m[1]); tok != "" {
					rec.Mobile = ptr(tok)
				}
			}
		}

		// The domain of an e-mail address looks like a website, so lines
		// containing "@" never supply one.
		if rec.Website == nil && !strings.Contains(line, "@") {
			if m := websiteRegex.FindString(line); m != "" {
				rec.Website = ptr(withScheme(m))
			}
		}

		if rec.Name == "" && i < maxNameLines && isNameCandidate(line) {
			rec.Name = line
		}
	}

	if rec.Name != "" {
		return rec
	}
	if rec.Email == nil && rec.Mobile == nil && rec.Website == nil {
		return nil
	}
	rec.Name = placeholderName
	if rec.Email != nil {
		local, _, _ := strings.Cut(*rec.Email, "@")
		rec.Name = local
	}
	return rec
}

func candidateLines(s string) []string {
	parts := separatorRegex.Split(s, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

func isNameCandidate(line string) bool {
	return !emailRegex.MatchString(line) &&
		!bareURLRegex.MatchString(line) &&
		!barePhoneRegex.MatchString(line)
}

func withScheme(u string) string {
	if strings.HasPrefix(strings.ToLower(u), "http") {
		return u
	}
	return "https://" + u
}
