package social

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var markerPattern = regexp.MustCompile(`^\s*(?:#{1,6}|[-*])\s*`)

// PromptExtractor turns the social script into one prompt file per
// content line, ready for the image renderer. Heading and bullet
// markers are stripped here, on the consumer side.
type PromptExtractor struct {
	scriptPath string
	outDir     string
}

func NewPromptExtractor(scriptPath, outDir string) *PromptExtractor {
	return &PromptExtractor{
		scriptPath: scriptPath,
		outDir:     outDir,
	}
}

// Run writes NN_<slug>.txt files into the output directory. A missing
// script is a warning and produces no artifacts; the run continues.
func (e *PromptExtractor) Run() error {
	data, err := os.ReadFile(e.scriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Social script not found, no prompts extracted", "file", e.scriptPath)
			return nil
		}
		return fmt.Errorf("failed to read social script: %w", err)
	}

	var prompts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(markerPattern.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		prompts = append(prompts, line)
	}

	if len(prompts) == 0 {
		slog.Warn("Social script is empty, no prompts extracted", "file", e.scriptPath)
		return nil
	}

	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create prompts directory: %w", err)
	}

	for i, prompt := range prompts {
		name := fmt.Sprintf("%02d_%s.txt", i+1, Slugify(prompt))
		path := filepath.Join(e.outDir, name)
		if err := os.WriteFile(path, []byte(prompt+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write prompt file %s: %w", name, err)
		}
	}

	slog.Info("Prompts extracted", "count", len(prompts), "dir", e.outDir)
	return nil
}
