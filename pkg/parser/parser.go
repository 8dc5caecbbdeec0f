package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// NormalizeSpaces replaces the narrow no-break space (U+202F) and the
// no-break space (U+00A0) with plain spaces. WhatsApp inserts U+202F
// before the am/pm marker in newer exports; the stamp pattern expects a
// plain space.
func NormalizeSpaces(s string) string {
	s = strings.ReplaceAll(s, "\u202f", " ")
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// TextSource splits in-memory transcript text into raw entries.
// A stamp match starts a new entry; all text until the next match,
// including embedded line breaks, belongs to the current entry's body.
// Text before the first match is discarded.
type TextSource struct {
	text   string
	locs   [][]int
	source string
	pos    int
	closed bool
}

// NewTextSource creates an EntrySource over the given transcript text.
// The pattern must match the export's date-time stamp, including its
// trailing separator.
func NewTextSource(text string, pattern *regexp.Regexp, source string) *TextSource {
	normalized := NormalizeSpaces(text)
	return &TextSource{
		text:   normalized,
		locs:   pattern.FindAllStringIndex(normalized, -1),
		source: source,
	}
}

// Next returns the next raw entry, or io.EOF when the text is exhausted.
func (s *TextSource) Next(ctx context.Context) (*RawEntry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.closed || s.pos >= len(s.locs) {
		return nil, io.EOF
	}

	loc := s.locs[s.pos]
	end := len(s.text)
	if s.pos+1 < len(s.locs) {
		end = s.locs[s.pos+1][0]
	}

	entry := &RawEntry{
		Timestamp: s.text[loc[0]:loc[1]],
		Body:      strings.TrimRight(s.text[loc[1]:end], "\n"),
		Source:    s.source,
		Index:     s.pos,
	}
	s.pos++

	return entry, nil
}

// Close releases the source. Further Next calls return io.EOF.
func (s *TextSource) Close() error {
	s.closed = true
	s.text = ""
	s.locs = nil
	return nil
}

// FileSource reads transcript files in order and yields their entries.
// Files are read lazily, one at a time, when their entries are needed.
type FileSource struct {
	files   []string
	pattern *regexp.Regexp

	current   *TextSource
	fileIndex int
}

// NewFileSource creates an EntrySource that reads from the given files.
func NewFileSource(files []string, pattern *regexp.Regexp) *FileSource {
	return &FileSource{
		files:     files,
		pattern:   pattern,
		fileIndex: -1,
	}
}

// Next returns the next parsed entry across all files.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*RawEntry, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.current == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		entry, err := s.current.Next(ctx)
		if err == nil {
			return entry, nil
		}
		if err != io.EOF {
			return nil, err
		}

		// Current file exhausted, try next
		s.current = nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	if s.current != nil {
		err := s.current.Close()
		s.current = nil
		return err
	}
	return nil
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening transcript %s: %w", path, err)
	}

	s.current = NewTextSource(string(data), s.pattern, path)
	return nil
}
