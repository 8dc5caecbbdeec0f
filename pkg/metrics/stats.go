package metrics

import (
	"strings"

	cregex "github.com/mingrammer/commonregex"
)

// Stats returns the message, word, media, and link counts for the
// filtered view. Words are whitespace-split tokens; media messages are
// rows whose body equals the media placeholder and contribute no words
// or links; links are URL-pattern matches across all message text.
func (e *Engine) Stats(f Filter) Stats {
	var s Stats
	for _, m := range e.view(f) {
		s.Messages++
		if m.IsMedia(e.mediaPlaceholder) {
			s.Media++
			continue
		}
		s.Words += len(strings.Fields(m.Body))
		s.Links += len(cregex.Links(m.Body))
	}
	return s
}
