package images

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Generator renders a single prompt into PNG bytes. Implemented by the
// API client and by the offline placeholder renderer.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// Renderer walks a date directory of prompt .txt files and writes one
// PNG per prompt into the output date directory.
type Renderer struct {
	inDir     string
	outDir    string
	generator Generator
	limiter   *rate.Limiter
}

func NewRenderer(inDir, outDir string, generator Generator, pause time.Duration) *Renderer {
	return &Renderer{
		inDir:     inDir,
		outDir:    outDir,
		generator: generator,
		limiter:   rate.NewLimiter(rate.Every(pause), 1),
	}
}

// Run renders every prompt file in order and returns the paths of the
// PNGs written. A prompt that fails to render is logged and skipped;
// the batch continues.
func (r *Renderer) Run(ctx context.Context) ([]string, error) {
	files, err := listPromptFiles(r.inDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		slog.Warn("No prompt files found", "dir", r.inDir)
		return nil, nil
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for idx, path := range files {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read prompt file", "file", path, "error", err.Error())
			continue
		}
		prompt := strings.TrimSpace(string(data))
		if prompt == "" {
			slog.Warn("Empty prompt, skipping", "file", path)
			continue
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return written, err
		}

		png, err := r.generator.Generate(ctx, prompt)
		if err != nil {
			slog.Error("Failed to render image", "prompt", base, "error", err.Error())
			continue
		}

		outPath := filepath.Join(r.outDir, fmt.Sprintf("%02d_%s.png", idx+1, base))
		if err := os.WriteFile(outPath, png, 0o644); err != nil {
			slog.Error("Failed to write image", "file", outPath, "error", err.Error())
			continue
		}

		slog.Info("Image rendered", "file", outPath)
		written = append(written, outPath)
	}

	return written, nil
}

func listPromptFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read prompt directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
