// Package report builds the HTML run report from ideas.json and
// optionally mails it.
package report

import (
	"time"

	"github.com/fplradar/radar/app/ideas"
	"github.com/fplradar/radar/app/rank"
)

const topSize = 3

// Summary is the aggregate header of a report: counts, averages and
// the top ideas by each metric.
type Summary struct {
	Count       int
	GeneratedAt string
	AvgViews    float64
	AvgScore    float64
	TopViews    []ideas.Idea
	TopScore    []ideas.Idea
}

// BuildSummary computes the report summary for a set of ideas.
// Averages only cover ideas that declare the metric and are rounded to
// two decimals; an empty set averages to zero.
func BuildSummary(list []ideas.Idea, now time.Time) Summary {
	return Summary{
		Count:       len(list),
		GeneratedAt: now.Format("2006-01-02 15:04"),
		AvgViews:    rank.Mean(list, "views", 0),
		AvgScore:    rank.Mean(list, "score", 0),
		TopViews:    rank.TopK(list, "views", topSize),
		TopScore:    rank.TopK(list, "score", topSize),
	}
}
