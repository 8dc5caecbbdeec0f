package metrics

import (
	"math"
	"sort"

	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

// Contributions computes, per author, the percentage share of that
// author's messages within the given sentiment class relative to the
// class's total message count. Percentages are rounded to 2 decimals;
// the top N authors by share are returned (default 10). Only meaningful
// for the Overall view.
func (e *Engine) Contributions(class sentiment.Class) []AuthorShare {
	counts, total := e.classCounts(class)
	if total == 0 {
		return nil
	}

	out := make([]AuthorShare, 0, len(counts))
	for author, n := range counts {
		pct := math.Round(float64(n)/float64(total)*100*100) / 100
		out = append(out, AuthorShare{Author: author, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Author < out[j].Author
	})

	if len(out) > e.topUsers {
		out = out[:e.topUsers]
	}
	return out
}

// TopAuthors returns the top N authors by message count within the
// given sentiment class.
func (e *Engine) TopAuthors(class sentiment.Class) []AuthorCount {
	counts, total := e.classCounts(class)
	if total == 0 {
		return nil
	}

	out := make([]AuthorCount, 0, len(counts))
	for author, n := range counts {
		out = append(out, AuthorCount{Author: author, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Author < out[j].Author
	})

	if len(out) > e.topUsers {
		out = out[:e.topUsers]
	}
	return out
}

// classCounts tallies messages per author within one sentiment class.
// The total includes sentinel rows; the share denominator is the whole
// class, not just attributable authors.
func (e *Engine) classCounts(class sentiment.Class) (map[string]int, int) {
	counts := make(map[string]int)
	total := 0
	for _, m := range e.view(Filter{User: OverallUser, Class: &class}) {
		counts[m.Author]++
		total++
	}
	return counts, total
}
