package summary

import (
	"fmt"
	"regexp"
	"strings"
)

// Sentinel is returned for an empty or absent title. Callers must test
// against it, never against the empty string.
const Sentinel = "Summary unavailable"

const plainLabel = "Summary: "

// wordPattern keeps apostrophes inside words ("don't" stays one token).
var wordPattern = regexp.MustCompile(`[\pL\pN]+(?:'[\pL\pN]+)*`)

// gameweekPattern matches fixture-week tokens like gw12 or GW3.
var gameweekPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]+$`)

// keywords is the recognized tag vocabulary, matched case-insensitively.
var keywords = map[string]bool{
	"wildcard":  true,
	"free":      true,
	"hit":       true,
	"draft":     true,
	"watchlist": true,
	"team":      true,
	"selection": true,
	"tips":      true,
	"picks":     true,
}

type Synthesizer struct{}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Run derives a one-line synopsis from a video title. Recognized tags
// (fixture-week tokens and vocabulary keywords) are appended
// parenthetically in first-occurrence order without duplicates; a title
// with no tags is returned behind a fixed label instead.
func (s *Synthesizer) Run(title string) string {
	normalized := strings.Join(strings.Fields(title), " ")
	if normalized == "" {
		return Sentinel
	}

	tags := s.extractTags(normalized)
	if len(tags) == 0 {
		return plainLabel + normalized
	}

	return fmt.Sprintf("%s (%s)", normalized, strings.Join(tags, ", "))
}

func (s *Synthesizer) extractTags(title string) []string {
	var tags []string
	seen := make(map[string]bool)

	for _, token := range wordPattern.FindAllString(title, -1) {
		var tag string
		switch {
		case gameweekPattern.MatchString(token):
			tag = strings.ToUpper(token)
		case keywords[strings.ToLower(token)]:
			tag = capitalize(strings.ToLower(token))
		default:
			continue
		}

		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	return tags
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
