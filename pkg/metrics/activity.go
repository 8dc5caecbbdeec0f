package metrics

import (
	"fmt"
	"sort"
	"time"
)

// weekdayOrder lists weekday names Monday through Sunday, the order
// activity buckets and heatmap rows are reported in.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// MonthActivity counts messages per calendar month name. Buckets are
// reported in calendar order January through December; months with no
// messages are omitted.
func (e *Engine) MonthActivity(f Filter) []BucketCount {
	counts := make(map[int]int)
	for _, m := range e.view(f) {
		counts[m.MonthNum]++
	}

	out := make([]BucketCount, 0, len(counts))
	for mn := 1; mn <= 12; mn++ {
		if c, ok := counts[mn]; ok {
			out = append(out, BucketCount{Label: time.Month(mn).String(), Count: c})
		}
	}
	return out
}

// WeekActivity counts messages per weekday name. Buckets are reported
// Monday through Sunday; days with no messages are omitted.
func (e *Engine) WeekActivity(f Filter) []BucketCount {
	counts := make(map[string]int)
	for _, m := range e.view(f) {
		counts[m.DayName]++
	}

	out := make([]BucketCount, 0, len(counts))
	for _, wd := range weekdayOrder {
		if c, ok := counts[wd.String()]; ok {
			out = append(out, BucketCount{Label: wd.String(), Count: c})
		}
	}
	return out
}

// hourBucket labels the hour-long bucket starting at h, wrapping at
// midnight ("23-0").
func hourBucket(h int) string {
	return fmt.Sprintf("%d-%d", h, (h+1)%24)
}

// Heatmap builds the weekday-by-hour message count table for the
// filtered view. Rows are the observed weekdays in Monday-Sunday order,
// columns the observed hour buckets in ascending order; cells within
// that grid with no messages are zero.
func (e *Engine) Heatmap(f Filter) *Heatmap {
	type cell struct {
		day  string
		hour int
	}

	counts := make(map[cell]int)
	daysSeen := make(map[string]bool)
	hoursSeen := make(map[int]bool)
	for _, m := range e.view(f) {
		counts[cell{m.DayName, m.Hour}]++
		daysSeen[m.DayName] = true
		hoursSeen[m.Hour] = true
	}

	h := &Heatmap{}
	for _, wd := range weekdayOrder {
		if daysSeen[wd.String()] {
			h.Days = append(h.Days, wd.String())
		}
	}

	var hours []int
	for hr := range hoursSeen {
		hours = append(hours, hr)
	}
	sort.Ints(hours)
	for _, hr := range hours {
		h.Hours = append(h.Hours, hourBucket(hr))
	}

	h.Counts = make([][]int, len(h.Days))
	for i, day := range h.Days {
		row := make([]int, len(hours))
		for j, hr := range hours {
			row[j] = counts[cell{day, hr}]
		}
		h.Counts[i] = row
	}

	return h
}
