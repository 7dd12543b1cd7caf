package digest

import (
	"context"
	"log/slog"

	"github.com/fplradar/radar/app/feed"
)

// Aggregator runs the collection pipeline over a configured list of
// channels, in list order, and concatenates the per-channel slices.
// The combined result keeps channel grouping: records from the first
// channel all precede records from the second, even when that
// interleaves dates oddly. That is deliberate, not an oversight.
type Aggregator struct {
	fetcher   *feed.Fetcher
	collector *feed.Collector
	writer    *Writer
	limit     int
}

func NewAggregator(fetcher *feed.Fetcher, writer *Writer, limit int) *Aggregator {
	if limit < 1 {
		limit = 1
	}
	return &Aggregator{
		fetcher:   fetcher,
		collector: feed.NewCollector(),
		writer:    writer,
		limit:     limit,
	}
}

// Run processes every channel id in order. A channel whose fetch or
// parse fails contributes zero records and the run continues; its
// digest section header is still written.
func (a *Aggregator) Run(ctx context.Context, channelIDs []string) []feed.Video {
	var combined []feed.Video

	for _, channelID := range channelIDs {
		entries, err := a.fetcher.Run(ctx, channelID)
		if err != nil {
			slog.Warn("Channel fetch failed, contributing zero records", "channel", channelID, "error", err)
			entries = nil
		}

		videos := a.collector.Run(entries)
		kept := feed.Limit(feed.FilterShorts(videos), a.limit)

		slog.Info("Channel collected",
			"channel", channelID,
			"found", len(entries),
			"dated", len(videos),
			"kept", len(kept))

		if err := a.writer.WriteSection(ctx, channelID, kept); err != nil {
			slog.Error("Failed to write digest section", "channel", channelID, "error", err)
		}

		combined = append(combined, kept...)
	}

	return combined
}
