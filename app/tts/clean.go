// Package tts turns the social script into a voice-over track through
// the OpenAI speech API.
package tts

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

var (
	headingMarkerPattern = regexp.MustCompile(`^#{1,6}\s*`)
	bulletMarkerPattern  = regexp.MustCompile(`^[-*]\s*`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// CleanScript reads a markdown script and flattens it into plain prose:
// heading and bullet markers stripped, lines joined, whitespace
// collapsed. A missing file reads as empty.
func CleanScript(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	var parts []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		line = headingMarkerPattern.ReplaceAllString(line, "")
		line = bulletMarkerPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return whitespacePattern.ReplaceAllString(strings.Join(parts, " "), " "), nil
}
