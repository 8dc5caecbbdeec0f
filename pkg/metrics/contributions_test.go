package metrics

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

func TestContributions(t *testing.T) {
	// Three positive rows: Alice 2, Bob 1. One negative row is out of class.
	e := buildTestEngine(t,
		"12/01/23, 10:15 am - Alice: good one\n"+
			"12/01/23, 10:16 am - Alice: good two\n"+
			"12/01/23, 10:17 am - Bob: good three\n"+
			"12/01/23, 10:18 am - Bob: bad day\n")

	got := e.Contributions(sentiment.Positive)
	want := []AuthorShare{
		{Author: "Alice", Percent: 66.67},
		{Author: "Bob", Percent: 33.33},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Contributions(positive) = %v, want %v", got, want)
	}
}

func TestContributions_EmptyClass(t *testing.T) {
	e := buildTestEngine(t, "12/01/23, 10:15 am - Alice: good one\n")

	if got := e.Contributions(sentiment.Negative); got != nil {
		t.Errorf("Contributions(negative) = %v, want nil", got)
	}
}

func TestContributions_TopUsersCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "12/01/23, 10:%02d am - User%02d: good message\n", i, i)
	}
	e := buildTestEngine(t, b.String())

	if got := e.Contributions(sentiment.Positive); len(got) != 10 {
		t.Errorf("Contributions returned %d authors, want cap of 10", len(got))
	}

	e2 := buildTestEngine(t, b.String(), WithTopUsers(3))
	if got := e2.Contributions(sentiment.Positive); len(got) != 3 {
		t.Errorf("Contributions with WithTopUsers(3) returned %d authors", len(got))
	}
}

func TestContributions_SentinelInDenominator(t *testing.T) {
	// The notice row counts toward the class total, so Alice's single
	// positive message is 50%, not 100%.
	e := buildTestEngine(t,
		"12/01/23, 10:15 am - Alice: good one\n"+
			"12/01/23, 10:16 am - Alice added a good friend\n")

	got := e.Contributions(sentiment.Positive)
	var alice *AuthorShare
	for i := range got {
		if got[i].Author == "Alice" {
			alice = &got[i]
		}
	}
	if alice == nil {
		t.Fatalf("Contributions(positive) = %v, missing Alice", got)
	}
	if alice.Percent != 50.0 {
		t.Errorf("Alice share = %v, want 50.0", alice.Percent)
	}
}

func TestTopAuthors(t *testing.T) {
	e := buildTestEngine(t,
		"12/01/23, 10:15 am - Alice: good one\n"+
			"12/01/23, 10:16 am - Alice: good two\n"+
			"12/01/23, 10:17 am - Bob: good three\n")

	got := e.TopAuthors(sentiment.Positive)
	want := []AuthorCount{
		{Author: "Alice", Count: 2},
		{Author: "Bob", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopAuthors(positive) = %v, want %v", got, want)
	}
}
