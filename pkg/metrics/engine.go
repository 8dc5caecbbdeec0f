package metrics

import (
	"github.com/ccollicutt/chatscope/pkg/parser"
	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

// Engine runs metric queries against one immutable message table.
// The table has a single writer (the builder) and many readers; the
// engine never mutates it.
type Engine struct {
	table *parser.Table

	mediaPlaceholder string
	stopwords        map[string]bool
	topWords         int
	topUsers         int
}

// Option configures engine behavior.
type Option func(*Engine)

// WithMediaPlaceholder overrides the media-omitted marker string.
func WithMediaPlaceholder(s string) Option {
	return func(e *Engine) {
		if s != "" {
			e.mediaPlaceholder = s
		}
	}
}

// WithStopwords overrides the embedded stop-word set.
func WithStopwords(words map[string]bool) Option {
	return func(e *Engine) {
		if words != nil {
			e.stopwords = words
		}
	}
}

// WithTopWords sets the common-words result cap (default 20).
func WithTopWords(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topWords = n
		}
	}
}

// WithTopUsers sets the contribution/top-author result cap (default 10).
func WithTopUsers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topUsers = n
		}
	}
}

// NewEngine creates an engine over the given table.
func NewEngine(table *parser.Table, opts ...Option) *Engine {
	e := &Engine{
		table:            table,
		mediaPlaceholder: parser.DefaultMediaPlaceholder,
		stopwords:        DefaultStopwords(),
		topWords:         20,
		topUsers:         10,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// view returns the rows selected by the filter, in table order.
func (e *Engine) view(f Filter) []parser.Message {
	msgs := e.table.Messages()
	if (f.User == "" || f.User == OverallUser) && f.Class == nil {
		return msgs
	}

	out := make([]parser.Message, 0, len(msgs))
	for i := range msgs {
		if f.User != "" && f.User != OverallUser && msgs[i].Author != f.User {
			continue
		}
		if f.Class != nil && msgs[i].Class != *f.Class {
			continue
		}
		out = append(out, msgs[i])
	}
	return out
}

// Users returns the selectable user list: OverallUser followed by the
// sorted distinct authors. The system-notice sentinel is excluded.
func (e *Engine) Users() []string {
	return append([]string{OverallUser}, e.table.Users()...)
}

// Dashboard bundles every metric for one filter. Per-author sections
// (contributions and top authors per sentiment class) are populated
// only for the Overall view.
type Dashboard struct {
	Filter          Filter          `json:"filter"`
	Stats           Stats           `json:"stats"`
	MonthActivity   []BucketCount   `json:"month_activity"`
	WeekActivity    []BucketCount   `json:"week_activity"`
	Heatmap         *Heatmap        `json:"heatmap"`
	DailyTimeline   []TimelinePoint `json:"daily_timeline"`
	MonthlyTimeline []TimelinePoint `json:"monthly_timeline"`
	CommonWords     []WordCount     `json:"common_words"`
	Emoji           []EmojiCount    `json:"emoji"`

	Contributions map[string][]AuthorShare `json:"contributions,omitempty"`
	TopAuthors    map[string][]AuthorCount `json:"top_authors,omitempty"`
}

// BuildDashboard computes the full metric set for one filter.
func (e *Engine) BuildDashboard(f Filter) *Dashboard {
	d := &Dashboard{
		Filter:          f,
		Stats:           e.Stats(f),
		MonthActivity:   e.MonthActivity(f),
		WeekActivity:    e.WeekActivity(f),
		Heatmap:         e.Heatmap(f),
		DailyTimeline:   e.DailyTimeline(f),
		MonthlyTimeline: e.MonthlyTimeline(f),
		CommonWords:     e.CommonWords(f),
		Emoji:           e.EmojiCounts(f),
	}

	if f.User == "" || f.User == OverallUser {
		d.Contributions = make(map[string][]AuthorShare)
		d.TopAuthors = make(map[string][]AuthorCount)
		for _, class := range []sentiment.Class{sentiment.Positive, sentiment.Neutral, sentiment.Negative} {
			d.Contributions[class.String()] = e.Contributions(class)
			d.TopAuthors[class.String()] = e.TopAuthors(class)
		}
	}

	return d
}
