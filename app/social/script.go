package social

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fplradar/radar/app/feed"
	"github.com/fplradar/radar/app/summary"
)

// ScriptWriter drafts the social script markdown from the day's
// aggregated videos: one heading per video with its synthesized
// summary as a bullet underneath. Later stages read it back as plain
// lines of text.
type ScriptWriter struct {
	path        string
	date        string
	synthesizer *summary.Synthesizer
}

func NewScriptWriter(path, date string) *ScriptWriter {
	return &ScriptWriter{
		path:        path,
		date:        date,
		synthesizer: summary.NewSynthesizer(),
	}
}

func (w *ScriptWriter) Path() string {
	return w.path
}

func (w *ScriptWriter) Run(videos []feed.Video) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("failed to create script directory: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create social script: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "# Social script %s\n\n", w.date); err != nil {
		return fmt.Errorf("failed to write script header: %w", err)
	}

	for _, video := range videos {
		_, err := fmt.Fprintf(file, "## %s\n\n- %s\n\n", video.Title, w.synthesizer.Run(video.Title))
		if err != nil {
			return fmt.Errorf("failed to write script entry: %w", err)
		}
	}

	slog.Info("Social script drafted", "file", w.path, "videos", len(videos))
	return nil
}
