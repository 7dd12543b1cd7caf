// Package rank computes metric aggregates over ideas. Metric keys are
// open-ended: ranking and means work for any key, not a fixed pair.
package rank

import (
	"math"
	"sort"

	"github.com/fplradar/radar/app/ideas"
)

// TopK returns the k ideas with the highest value for the given metric
// key. Ideas missing the key rank as 0 rather than being excluded. The
// sort is stable: equal values keep their original relative order. Fewer
// than k items returns them all.
func TopK(list []ideas.Idea, key string, k int) []ideas.Idea {
	if k < 0 {
		k = 0
	}

	ranked := make([]ideas.Idea, len(list))
	copy(ranked, list)

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, _ := ranked[i].Metric(key)
		vj, _ := ranked[j].Metric(key)
		return vi > vj
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// Mean computes the arithmetic mean of a metric over the ideas that
// actually declare it, rounded to two decimal places. When no idea
// declares the key the caller-supplied fallback is returned.
func Mean(list []ideas.Idea, key string, fallback float64) float64 {
	sum := 0.0
	count := 0
	for _, idea := range list {
		if v, ok := idea.Metric(key); ok {
			sum += v
			count++
		}
	}

	if count == 0 {
		return fallback
	}

	return math.Round(sum/float64(count)*100) / 100
}
