// Package output provides formatting and output generation for analysis
// reports.
package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccollicutt/chatscope/pkg/metrics"
	"github.com/ccollicutt/chatscope/pkg/parser"
)

// Report is the complete analysis output for one session.
type Report struct {
	// Summary provides aggregate statistics for the selected view.
	Summary Summary `json:"summary"`

	// Users is the selectable user list (Overall first).
	Users []string `json:"users"`

	// Dashboard contains every metric for the selected filter.
	Dashboard *metrics.Dashboard `json:"dashboard"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Messages is the number of messages in the selected view.
	Messages int `json:"messages"`

	// Words is the whitespace-token count across those messages.
	Words int `json:"words"`

	// Media is the number of media-placeholder messages.
	Media int `json:"media"`

	// Links is the number of URL matches across message text.
	Links int `json:"links"`

	// Authors is the number of distinct human authors in the table.
	Authors int `json:"authors"`

	// EntriesDropped is the number of entries whose stamp failed to parse.
	EntriesDropped int `json:"entries_dropped"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// ReportID uniquely identifies this analysis session.
	ReportID string `json:"report_id"`

	// ConfigFile is the path to the configuration file used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// Sources lists the transcript files that were analyzed.
	Sources []string `json:"sources"`

	// Format names the export format the transcript was parsed with.
	Format string `json:"format,omitempty"`

	// SentimentApplied reports whether VADER scoring ran.
	SentimentApplied bool `json:"sentiment_applied"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a built table and its dashboard.
func NewReport(table *parser.Table, dash *metrics.Dashboard, users []string) *Report {
	return &Report{
		Summary: Summary{
			Messages:       dash.Stats.Messages,
			Words:          dash.Stats.Words,
			Media:          dash.Stats.Media,
			Links:          dash.Stats.Links,
			Authors:        len(table.Users()),
			EntriesDropped: table.Dropped(),
		},
		Users:     users,
		Dashboard: dash,
		Metadata: Metadata{
			ReportID:         uuid.NewString(),
			Sources:          table.Sources(),
			SentimentApplied: table.Scored(),
		},
	}
}

// IsEmpty reports whether the selected view contained no messages at
// all (e.g. a malformed upload). Callers substitute a fallback
// presentation instead of treating this as an error.
func (r *Report) IsEmpty() bool {
	return r.Summary.Messages == 0
}
