// Package sentiment scores free text for emotional polarity.
package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
)

// Scores is a four-component polarity breakdown. Negative, Neutral and
// Positive are proportions in [0, 1] that sum to 1; Compound is a
// normalized overall score in [-1, 1].
type Scores struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

// Scorer computes sentiment scores for text. Implementations must be
// deterministic for identical input.
type Scorer interface {
	Score(ctx context.Context, text string) (Scores, error)
}

// Vader scores text with the VADER lexicon and rule set.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader creates a VADER scorer. Loading the lexicon is done once here.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements Scorer.
func (v *Vader) Score(_ context.Context, text string) (Scores, error) {
	s := v.analyzer.PolarityScores(text)
	return Scores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}, nil
}

// Fixed is a Scorer that returns the same scores for every input.
type Fixed Scores

// Score implements Scorer.
func (f Fixed) Score(context.Context, string) (Scores, error) {
	return Scores(f), nil
}
