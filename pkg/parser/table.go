package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

// Table is the canonical in-memory dataset for one analysis session:
// one row per surviving entry, in order of appearance in the transcript.
// It is immutable once built, except for the one-time addition of
// sentiment fields via ApplySentiment.
type Table struct {
	messages []Message
	sources  []string
	dropped  int
	scored   bool
}

// BuildTable consumes an entry source exactly once, normalizes each
// entry, and materializes the table. Entries whose timestamp fails to
// parse are dropped silently; the drop count is retained for reporting.
// The pipeline never aborts mid-parse.
func BuildTable(ctx context.Context, source EntrySource, norm *Normalizer) (*Table, error) {
	t := &Table{}
	seen := make(map[string]bool)

	for {
		entry, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading transcript: %w", err)
		}

		if entry.Source != "" && !seen[entry.Source] {
			seen[entry.Source] = true
			t.sources = append(t.sources, entry.Source)
		}

		msg, err := norm.Normalize(entry)
		if err != nil {
			t.dropped++
			continue
		}

		t.messages = append(t.messages, *msg)
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.messages)
}

// Messages returns the table rows. Callers must treat the slice as
// read-only.
func (t *Table) Messages() []Message {
	return t.messages
}

// Dropped returns the number of entries discarded during normalization.
func (t *Table) Dropped() int {
	return t.dropped
}

// Sources lists the transcript files the table was built from.
func (t *Table) Sources() []string {
	return t.sources
}

// Users returns the sorted distinct authors, excluding the
// system-notice sentinel.
func (t *Table) Users() []string {
	seen := make(map[string]bool)
	var users []string
	for i := range t.messages {
		author := t.messages[i].Author
		if author == AuthorGroupNotify || seen[author] {
			continue
		}
		seen[author] = true
		users = append(users, author)
	}
	sort.Strings(users)
	return users
}

// ApplySentiment scores every row and assigns its sentiment class.
// This is the table's only post-build mutation and may run once.
func (t *Table) ApplySentiment(scorer sentiment.Scorer) error {
	if t.scored {
		return errors.New("sentiment already applied to table")
	}
	for i := range t.messages {
		scores := scorer.Score(t.messages[i].Body)
		t.messages[i].Scores = scores
		t.messages[i].Class = sentiment.Classify(scores)
	}
	t.scored = true
	return nil
}

// Scored reports whether sentiment fields have been populated.
func (t *Table) Scored() bool {
	return t.scored
}
