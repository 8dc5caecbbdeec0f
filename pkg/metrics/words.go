package metrics

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed stopwords.txt
var embeddedStopwords []byte

// DefaultStopwords returns the embedded stop-word set. The list mixes
// common English and Hinglish tokens, matching the word-cloud filter
// the exported chats need in practice.
func DefaultStopwords() map[string]bool {
	words, _ := readStopwords(bytes.NewReader(embeddedStopwords))
	return words
}

// LoadStopwords reads a stop-word file: one token per line, blank lines
// and #-comments ignored, tokens lowercased.
func LoadStopwords(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("reading stopwords file: %w", err)
	}
	return readStopwords(bytes.NewReader(data))
}

func readStopwords(r *bytes.Reader) (map[string]bool, error) {
	words := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// CommonWords tokenizes the filtered view (lowercase, whitespace split),
// drops stop-word tokens, skips media-placeholder rows and system
// notices entirely, and returns the top N tokens by descending count
// (default 20). Ties break lexicographically for determinism.
func (e *Engine) CommonWords(f Filter) []WordCount {
	counts := make(map[string]int)
	for _, m := range e.view(f) {
		if m.IsNotice() || m.IsMedia(e.mediaPlaceholder) {
			continue
		}
		for _, token := range strings.Fields(strings.ToLower(m.Body)) {
			if e.stopwords[token] {
				continue
			}
			counts[token]++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, WordCount{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if len(out) > e.topWords {
		out = out[:e.topWords]
	}
	return out
}
