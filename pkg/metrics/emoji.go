package metrics

import (
	"sort"

	"github.com/forPelevin/gomoji"
)

// EmojiCounts scans each message in the filtered view for emoji
// characters and counts frequency per character. All distinct emoji are
// returned, ordered by descending count (ties lexicographically). An
// emoji-free view yields an empty result.
func (e *Engine) EmojiCounts(f Filter) []EmojiCount {
	counts := make(map[string]int)
	for _, m := range e.view(f) {
		for _, r := range m.Body {
			c := string(r)
			if _, err := gomoji.GetInfo(c); err != nil {
				continue
			}
			counts[c]++
		}
	}

	out := make([]EmojiCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, EmojiCount{Emoji: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emoji < out[j].Emoji
	})
	return out
}
