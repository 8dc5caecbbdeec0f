// Package parser turns raw chat-export text into normalized message records.
package parser

import (
	"strings"
	"time"

	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

const (
	// AuthorGroupNotify is the sentinel author for system and
	// group-notice entries that have no human sender.
	AuthorGroupNotify = "group_notify"

	// DefaultMediaPlaceholder is the string WhatsApp substitutes for
	// attachment content when exporting without media.
	DefaultMediaPlaceholder = "<Media omitted>"
)

// RawEntry is one timestamp-delimited block of transcript text before
// normalization. Body may span multiple lines.
type RawEntry struct {
	// Timestamp is the matched date-time stamp, including the trailing
	// separator (e.g. "12/01/23, 10:15 am - ").
	Timestamp string

	// Body is everything between this stamp and the next one.
	Body string

	// Source is the transcript file the entry came from.
	Source string

	// Index is the zero-based position of the entry within its source.
	Index int
}

// Message is the normalized, typed representation of one entry.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Body      string    `json:"message"`

	// Calendar fields derived once at normalization time.
	Year     int       `json:"year"`
	Month    string    `json:"month"`
	MonthNum int       `json:"month_num"`
	Day      int       `json:"day"`
	DayName  string    `json:"day_name"`
	Hour     int       `json:"hour"`
	Minute   int       `json:"minute"`
	OnlyDate time.Time `json:"only_date"`

	// Sentiment fields, populated by Table.ApplySentiment.
	Scores sentiment.Scores `json:"scores"`
	Class  sentiment.Class  `json:"sentiment_class"`
}

// IsNotice reports whether the message is a system/group notice.
func (m *Message) IsNotice() bool {
	return m.Author == AuthorGroupNotify
}

// IsMedia reports whether the message body equals the media placeholder.
func (m *Message) IsMedia(placeholder string) bool {
	return strings.TrimSpace(m.Body) == placeholder
}
