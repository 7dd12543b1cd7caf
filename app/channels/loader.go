// Package channels reads the channel list file: one channel id per
// line, top to bottom. File order defines aggregation order, so the
// first listed channel's content leads the digest.
package channels

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load returns the channel ids in file order. Blank lines and lines
// starting with '#' are skipped.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open channel list: %w", err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read channel list: %w", err)
	}

	return ids, nil
}
