package social

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 60

// Windows refuses these as filenames regardless of extension.
var reservedNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a prompt line into a filesystem-safe file stem:
// diacritics folded, remaining non-ASCII dropped, separators and
// disallowed filename characters collapsed to underscores, length
// capped, Windows device names avoided.
func Slugify(s string) string {
	if folded, _, err := transform.String(deaccenter, s); err == nil {
		s = folded
	}

	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	slug := strings.Trim(b.String(), "_")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "_")
	}
	if slug == "" {
		return "prompt"
	}
	if reservedNames[slug] {
		return slug + "_"
	}
	return slug
}
