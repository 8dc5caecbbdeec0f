package parser

import "context"

// EntrySource provides sequential access to raw transcript entries.
// Implementations yield entries in order of appearance. The sequence is
// finite, consumed in one pass, and not restartable.
type EntrySource interface {
	// Next returns the next raw entry.
	// Returns io.EOF when the source is exhausted.
	Next(ctx context.Context) (*RawEntry, error)

	// Close releases any resources held by the source.
	Close() error
}
