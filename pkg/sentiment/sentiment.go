// Package sentiment scores message text with the VADER lexicon and
// assigns each message a single sentiment class.
package sentiment

import (
	"fmt"
	"sync"

	"github.com/jonreiter/govader"
)

// Scores holds the three non-negative polarity scores for one message.
// The scores are not guaranteed to sum to 1.
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Class is the single sentiment label derived from Scores.
type Class int

const (
	Negative Class = -1
	Neutral  Class = 0
	Positive Class = 1
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// ParseClass converts a class name to a Class.
func ParseClass(s string) (Class, error) {
	switch s {
	case "positive":
		return Positive, nil
	case "neutral":
		return Neutral, nil
	case "negative":
		return Negative, nil
	default:
		return Neutral, fmt.Errorf("unknown sentiment class %q (use positive, neutral, or negative)", s)
	}
}

// Classify derives the class from the three scores.
// Precedence on ties: positive, then negative, then neutral. An exact
// three-way tie is positive; a positive/negative tie with lower neutral
// is positive. The function is total and deterministic.
func Classify(s Scores) Class {
	if s.Positive >= s.Negative && s.Positive >= s.Neutral {
		return Positive
	}
	if s.Negative >= s.Positive && s.Negative >= s.Neutral {
		return Negative
	}
	return Neutral
}

// Scorer produces polarity scores for message text.
type Scorer interface {
	Score(text string) Scores
}

// VADERScorer scores text using the VADER sentiment lexicon.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADERScorer creates a scorer with a freshly loaded lexicon.
func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the polarity scores for the given text.
func (s *VADERScorer) Score(text string) Scores {
	polarity := s.analyzer.PolarityScores(text)
	return Scores{
		Positive: polarity.Positive,
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
	}
}

var (
	defaultScorer *VADERScorer
	defaultOnce   sync.Once
)

// Default returns the shared scorer, loading the lexicon on first use.
// Initialization happens exactly once per process.
func Default() *VADERScorer {
	defaultOnce.Do(func() {
		defaultScorer = NewVADERScorer()
	})
	return defaultScorer
}
