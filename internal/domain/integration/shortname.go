package integration

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxShortNameLength bounds normalized short names so pattern searches
// against the LMS stay within its shortname column limits.
const maxShortNameLength = 32

// NormalizeShortName derives the canonical remote short name from a
// local course short name: lower-cased, diacritics stripped, spaces
// collapsed to hyphens, every other non-alphanumeric dropped, truncated
// to a bounded length.
//
// The normalization is heuristic: short or generic codes can produce
// false-positive pattern matches on the LMS, and no disambiguation rule
// exists when the pattern strategy matches more than one remote course.
func NormalizeShortName(shortName string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, shortName)
	if err != nil {
		stripped = shortName
	}

	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(stripped)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r):
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	result := strings.TrimSuffix(b.String(), "-")
	if len(result) > maxShortNameLength {
		result = strings.TrimSuffix(result[:maxShortNameLength], "-")
	}
	return result
}

// UsernameFromEmail derives the canonical remote username from an email
// address. The LMS requires lower-case usernames; the email is unique on
// both sides so it doubles as the username. The adapter and the
// EnrollmentLink record must agree on this derivation.
func UsernameFromEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
