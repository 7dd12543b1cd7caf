package feed

import (
	"sort"
	"strings"
)

const shortsPathSegment = "/shorts/"

type Collector struct {
	normalizer *Normalizer
}

func NewCollector() *Collector {
	return &Collector{
		normalizer: NewNormalizer(),
	}
}

// Run normalizes every entry, keeps the successes and orders them most
// recent first. The sort is stable so entries sharing a timestamp keep
// their feed order. Truncation and the Shorts filter are left to the
// caller; the full ordered set stays available for callers that want a
// different limit or filter.
func (c *Collector) Run(entries []Entry) []Video {
	videos := make([]Video, 0, len(entries))
	for _, entry := range entries {
		video, ok := c.normalizer.Run(entry)
		if !ok {
			continue
		}
		videos = append(videos, video)
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})

	return videos
}

// FilterShorts drops short-form entries, identified by their URL path,
// preserving the relative order of everything else.
func FilterShorts(videos []Video) []Video {
	kept := make([]Video, 0, len(videos))
	for _, video := range videos {
		if strings.Contains(video.URL, shortsPathSegment) {
			continue
		}
		kept = append(kept, video)
	}
	return kept
}

// Limit truncates the slice to at most n videos.
func Limit(videos []Video, n int) []Video {
	if n < 0 {
		n = 0
	}
	if len(videos) <= n {
		return videos
	}
	return videos[:n]
}
