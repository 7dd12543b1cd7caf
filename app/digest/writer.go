package digest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/fplradar/radar/app/feed"
	"github.com/fplradar/radar/app/summary"
)

// Writer appends per-channel sections to the markdown digest file. The
// file is opened in append mode once per section and closed after it,
// so interrupted runs leave a readable partial digest. A courtesy pause
// follows each per-video write.
type Writer struct {
	path        string
	synthesizer *summary.Synthesizer
	limiter     *rate.Limiter
}

func NewWriter(path string, pause time.Duration) *Writer {
	if pause <= 0 {
		pause = 500 * time.Millisecond
	}
	return &Writer{
		path:        path,
		synthesizer: summary.NewSynthesizer(),
		limiter:     rate.NewLimiter(rate.Every(pause), 1),
	}
}

func (w *Writer) Path() string {
	return w.path
}

// WriteSection appends one channel's block. The channel header is
// written even for an empty channel, so the digest records that the
// channel was polled.
func (w *Writer) WriteSection(ctx context.Context, channelID string, videos []feed.Video) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("failed to create digest directory: %w", err)
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open digest file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "# Channel %s\n\n", channelID); err != nil {
		return fmt.Errorf("failed to write channel header: %w", err)
	}

	for _, video := range videos {
		_, err := fmt.Fprintf(file, "## %s - %s\n\n%s\n\n%s\n\n---\n\n",
			video.PublishedAt.Format("2006-01-02"),
			video.Title,
			video.URL,
			w.synthesizer.Run(video.Title))
		if err != nil {
			return fmt.Errorf("failed to write video entry: %w", err)
		}

		if err := w.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	return nil
}
