package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/chatscope/pkg/metrics"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text. Sections with no data print an
// explicit "no data" line rather than disappearing.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "ChatScope: %d messages, %d words, %d media, %d links, %d authors\n",
		report.Summary.Messages,
		report.Summary.Words,
		report.Summary.Media,
		report.Summary.Links,
		report.Summary.Authors)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== ChatScope Analysis Report ===")
	fmt.Fprintln(w)

	dash := report.Dashboard
	f.formatScope(dash.Filter, w)

	fmt.Fprintln(w, "Top Statistics")
	fmt.Fprintf(w, "  Messages: %d\n", report.Summary.Messages)
	fmt.Fprintf(w, "  Words:    %d\n", report.Summary.Words)
	fmt.Fprintf(w, "  Media:    %d\n", report.Summary.Media)
	fmt.Fprintf(w, "  Links:    %d\n", report.Summary.Links)
	fmt.Fprintln(w)

	if report.IsEmpty() {
		fmt.Fprintln(w, "No messages matched the selected view.")
		fmt.Fprintln(w)
	}

	f.formatBuckets("Monthly Activity", dash.MonthActivity, w)
	f.formatBuckets("Weekly Activity", dash.WeekActivity, w)
	f.formatHeatmap(dash.Heatmap, w)
	f.formatTimeline("Daily Timeline", dash.DailyTimeline, w)
	f.formatTimeline("Monthly Timeline", dash.MonthlyTimeline, w)
	f.formatContributions(dash, w)
	f.formatWords(dash.CommonWords, w)
	f.formatEmoji(dash.Emoji, w)

	// Summary footer
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d messages from %d author(s), %d entries dropped\n",
		report.Summary.Messages,
		report.Summary.Authors,
		report.Summary.EntriesDropped)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Report ID: %s\n", report.Metadata.ReportID)
		if report.Metadata.Format != "" {
			fmt.Fprintf(w, "Export format: %s\n", report.Metadata.Format)
		}
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		fmt.Fprintf(w, "Sentiment applied: %v\n", report.Metadata.SentimentApplied)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatScope(filter metrics.Filter, w io.Writer) {
	user := filter.User
	if user == "" {
		user = metrics.OverallUser
	}
	scope := fmt.Sprintf("User: %s", user)
	if filter.Class != nil {
		scope += fmt.Sprintf(", Sentiment: %s", filter.Class.String())
	}
	fmt.Fprintln(w, scope)
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatBuckets(title string, buckets []metrics.BucketCount, w io.Writer) {
	fmt.Fprintln(w, title)
	if len(buckets) == 0 {
		fmt.Fprintln(w, "  No data")
		fmt.Fprintln(w)
		return
	}
	for _, b := range buckets {
		fmt.Fprintf(w, "  %-10s %d\n", b.Label, b.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatHeatmap(h *metrics.Heatmap, w io.Writer) {
	fmt.Fprintln(w, "Activity Heatmap (weekday x hour)")
	if h == nil || h.IsEmpty() {
		fmt.Fprintln(w, "  No data")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "  %-10s %s\n", "", strings.Join(h.Hours, " "))
	for i, day := range h.Days {
		cells := make([]string, len(h.Counts[i]))
		for j, c := range h.Counts[i] {
			cells[j] = fmt.Sprintf("%*d", len(h.Hours[j]), c)
		}
		fmt.Fprintf(w, "  %-10s %s\n", day, strings.Join(cells, " "))
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatTimeline(title string, points []metrics.TimelinePoint, w io.Writer) {
	fmt.Fprintln(w, title)
	if len(points) == 0 {
		fmt.Fprintln(w, "  No data")
		fmt.Fprintln(w)
		return
	}
	for _, p := range points {
		fmt.Fprintf(w, "  %-14s %d\n", p.Label, p.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatContributions(dash *metrics.Dashboard, w io.Writer) {
	if dash.Contributions == nil {
		return
	}
	for _, class := range []string{"positive", "neutral", "negative"} {
		fmt.Fprintf(w, "Contribution (%s)\n", class)
		shares := dash.Contributions[class]
		if len(shares) == 0 {
			fmt.Fprintln(w, "  No data")
			fmt.Fprintln(w)
			continue
		}
		for _, s := range shares {
			fmt.Fprintf(w, "  %-20s %.2f%%\n", s.Author, s.Percent)
		}
		fmt.Fprintln(w)
	}
}

func (f *TextFormatter) formatWords(words []metrics.WordCount, w io.Writer) {
	fmt.Fprintln(w, "Most Common Words")
	if len(words) == 0 {
		fmt.Fprintln(w, "  No data")
		fmt.Fprintln(w)
		return
	}
	for _, wc := range words {
		fmt.Fprintf(w, "  %-20s %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatEmoji(emoji []metrics.EmojiCount, w io.Writer) {
	fmt.Fprintln(w, "Emoji Analysis")
	if len(emoji) == 0 {
		fmt.Fprintln(w, "  No data")
		fmt.Fprintln(w)
		return
	}
	for _, ec := range emoji {
		fmt.Fprintf(w, "  %-4s %d\n", ec.Emoji, ec.Count)
	}
	fmt.Fprintln(w)
}
