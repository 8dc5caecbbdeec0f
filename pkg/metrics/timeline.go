package metrics

import (
	"fmt"
	"sort"
	"time"
)

// DailyTimeline counts messages per calendar date, in chronological
// order. Labels are ISO dates (2006-01-02).
func (e *Engine) DailyTimeline(f Filter) []TimelinePoint {
	counts := make(map[time.Time]int)
	for _, m := range e.view(f) {
		counts[m.OnlyDate]++
	}

	dates := make([]time.Time, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]TimelinePoint, 0, len(dates))
	for _, d := range dates {
		out = append(out, TimelinePoint{Label: d.Format("2006-01-02"), Count: counts[d]})
	}
	return out
}

// MonthlyTimeline counts messages per (year, month), in chronological
// order across year boundaries. Labels are "January-2023".
func (e *Engine) MonthlyTimeline(f Filter) []TimelinePoint {
	type yearMonth struct {
		year  int
		month int
	}

	counts := make(map[yearMonth]int)
	for _, m := range e.view(f) {
		counts[yearMonth{m.Year, m.MonthNum}]++
	}

	keys := make([]yearMonth, 0, len(counts))
	for ym := range counts {
		keys = append(keys, ym)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]TimelinePoint, 0, len(keys))
	for _, ym := range keys {
		label := fmt.Sprintf("%s-%d", time.Month(ym.month).String(), ym.year)
		out = append(out, TimelinePoint{Label: label, Count: counts[ym]})
	}
	return out
}
