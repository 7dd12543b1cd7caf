package tts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Synthesizer narrates text into an audio stream. Implemented by the
// speech API client.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, w io.Writer) error
}

// Speaker reads the social script, cleans it and writes the narrated
// MP3 for the run date.
type Speaker struct {
	scriptPath  string
	outPath     string
	synthesizer Synthesizer
}

func NewSpeaker(scriptPath, outPath string, synthesizer Synthesizer) *Speaker {
	return &Speaker{
		scriptPath:  scriptPath,
		outPath:     outPath,
		synthesizer: synthesizer,
	}
}

// Run produces the voice-over track. An empty or missing script is a
// warning, not an error, and leaves no artifact behind.
func (s *Speaker) Run(ctx context.Context) error {
	text, err := CleanScript(s.scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	if text == "" {
		slog.Warn("Social script empty or missing, skipping voice-over", "file", s.scriptPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	file, err := os.Create(s.outPath)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}

	if err := s.synthesizer.Synthesize(ctx, text, file); err != nil {
		file.Close()
		os.Remove(s.outPath)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to finalize audio file: %w", err)
	}

	slog.Info("Voice-over generated", "file", s.outPath)
	return nil
}
