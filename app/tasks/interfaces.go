package tasks

import (
	"context"

	"github.com/fplradar/radar/app/feed"
)

// VideoCollector gathers the day's videos across all channels and
// writes the digest sections.
type VideoCollector interface {
	Run(ctx context.Context, channelIDs []string) []feed.Video
}

// ScriptWriter drafts the social script from collected videos.
type ScriptWriter interface {
	Run(videos []feed.Video) error
}

// PromptExtractor turns the social script into per-line prompt files.
type PromptExtractor interface {
	Run() error
}

// ImageRenderer renders the prompt files into PNGs.
type ImageRenderer interface {
	Run(ctx context.Context) ([]string, error)
}

// VoiceOver narrates the social script into an audio track.
type VoiceOver interface {
	Run(ctx context.Context) error
}

// IdeasExporter builds ideas.json from the rendered images.
type IdeasExporter interface {
	Run() error
}

// ReportBuilder renders and optionally mails the HTML report.
type ReportBuilder interface {
	Run() error
}
