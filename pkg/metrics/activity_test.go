package metrics

import (
	"reflect"
	"testing"
)

func TestMonthActivity_CalendarOrder(t *testing.T) {
	// Rows arrive December first; buckets must come back Jan..Dec.
	e := buildTestEngine(t,
		"12/01/23, 10:15 am - Alice: one\n"+
			"03/05/23, 10:16 am - Bob: two\n"+
			"03/06/23, 10:17 am - Alice: three\n")

	got := e.MonthActivity(Filter{})
	want := []BucketCount{
		{Label: "March", Count: 2},
		{Label: "December", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthActivity() = %v, want %v", got, want)
	}
}

func TestWeekActivity_MondayFirst(t *testing.T) {
	// 12/01/23 is a Friday, 12/04/23 a Monday.
	e := buildTestEngine(t,
		"12/01/23, 10:15 am - Alice: fri\n"+
			"12/04/23, 10:16 am - Bob: mon\n"+
			"12/04/23, 10:17 am - Alice: mon again\n")

	got := e.WeekActivity(Filter{})
	want := []BucketCount{
		{Label: "Monday", Count: 2},
		{Label: "Friday", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeekActivity() = %v, want %v", got, want)
	}
}

func TestHourBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "0-1"},
		{9, "9-10"},
		{22, "22-23"},
		{23, "23-0"},
	}
	for _, tt := range tests {
		if got := hourBucket(tt.hour); got != tt.want {
			t.Errorf("hourBucket(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestHeatmap(t *testing.T) {
	// Friday 10am x2, Friday 11pm, Monday 10am.
	e := buildTestEngine(t,
		"12/01/23, 10:15 am - Alice: a\n"+
			"12/01/23, 10:45 am - Bob: b\n"+
			"12/01/23, 11:30 pm - Alice: c\n"+
			"12/04/23, 10:00 am - Bob: d\n")

	got := e.Heatmap(Filter{})

	if !reflect.DeepEqual(got.Days, []string{"Monday", "Friday"}) {
		t.Errorf("Days = %v", got.Days)
	}
	if !reflect.DeepEqual(got.Hours, []string{"10-11", "23-0"}) {
		t.Errorf("Hours = %v", got.Hours)
	}
	wantCounts := [][]int{
		{1, 0}, // Monday: one at 10am, zero at 11pm
		{2, 1}, // Friday
	}
	if !reflect.DeepEqual(got.Counts, wantCounts) {
		t.Errorf("Counts = %v, want %v", got.Counts, wantCounts)
	}
}

func TestHeatmap_ZeroFilledCells(t *testing.T) {
	e := buildTestEngine(t,
		"12/01/23, 9:00 am - Alice: a\n"+
			"12/04/23, 5:00 pm - Bob: b\n")

	got := e.Heatmap(Filter{})
	for i, row := range got.Counts {
		if len(row) != len(got.Hours) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(got.Hours))
		}
	}
	// Off-diagonal cells in this grid saw no messages and must be 0.
	if got.Counts[0][0]+got.Counts[0][1]+got.Counts[1][0]+got.Counts[1][1] != 2 {
		t.Errorf("Counts = %v, want exactly two populated cells", got.Counts)
	}
}
