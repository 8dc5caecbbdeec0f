// Package metrics computes descriptive statistics over the message table.
// Every operation is a pure, read-only query over a filtered view of the
// table; operations with no matching rows return empty results.
package metrics

import (
	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

// OverallUser selects the whole table instead of a single author.
const OverallUser = "Overall"

// Filter selects the view an operation runs over.
type Filter struct {
	// User restricts rows to one author. OverallUser (or empty) means
	// no restriction.
	User string `json:"user"`

	// Class restricts rows to one sentiment class. Nil means no
	// restriction.
	Class *sentiment.Class `json:"sentiment_class,omitempty"`
}

// ClassFilter returns a pointer suitable for Filter.Class.
func ClassFilter(c sentiment.Class) *sentiment.Class {
	return &c
}

// Stats are the headline counters for a filtered view.
type Stats struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`
}

// BucketCount is one (label, count) pair of a grouped aggregate.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TimelinePoint is one chronological bucket of a timeline.
type TimelinePoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Heatmap is a 2D table of message counts: weekday rows by hour-bucket
// columns. Cells with no messages are zero, never missing.
type Heatmap struct {
	Days   []string `json:"days"`
	Hours  []string `json:"hours"`
	Counts [][]int  `json:"counts"`
}

// IsEmpty reports whether the heatmap has no cells at all.
func (h *Heatmap) IsEmpty() bool {
	return len(h.Days) == 0 || len(h.Hours) == 0
}

// AuthorShare is one author's percentage share within a sentiment class.
type AuthorShare struct {
	Author  string  `json:"author"`
	Percent float64 `json:"percent"`
}

// AuthorCount is one author's message count within a sentiment class.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// WordCount is one token's frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// EmojiCount is one emoji's frequency.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}
