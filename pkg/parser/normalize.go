package parser

import (
	"fmt"
	"regexp"
	"time"
)

// authorPattern splits an entry body into author and message. The author
// is non-greedy up to the first colon-space; (?s) lets the message span
// the embedded line breaks of multi-line entries.
var authorPattern = regexp.MustCompile(`(?s)^(.+?): (.*)$`)

// Normalizer converts raw entries into fully populated message records.
type Normalizer struct {
	extractor *TimestampExtractor
}

// NewNormalizer creates a Normalizer that parses stamps with the given layout.
func NewNormalizer(layout string) *Normalizer {
	return &Normalizer{extractor: NewTimestampExtractor(layout)}
}

// Normalize produces a Message from a raw entry. The whole record fails
// if the timestamp cannot be parsed. Entries whose body has no
// "author: message" shape are system notices and get the sentinel author.
func (n *Normalizer) Normalize(raw *RawEntry) (*Message, error) {
	ts, err := n.extractor.Extract(raw.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("entry %d in %s: %w", raw.Index, raw.Source, err)
	}

	author := AuthorGroupNotify
	body := raw.Body
	if m := authorPattern.FindStringSubmatch(raw.Body); m != nil {
		author = m[1]
		body = m[2]
	}

	msg := &Message{
		Timestamp: ts,
		Author:    author,
		Body:      body,

		Year:     ts.Year(),
		Month:    ts.Month().String(),
		MonthNum: int(ts.Month()),
		Day:      ts.Day(),
		DayName:  ts.Weekday().String(),
		Hour:     ts.Hour(),
		Minute:   ts.Minute(),
		OnlyDate: time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()),
	}

	return msg, nil
}
