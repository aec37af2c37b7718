// Package analysis provides the in-process sentiment and category capabilities
// consumed by the ingestion pipeline.
package analysis

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// VaderScorer scores text polarity with the VADER compound score.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon once; the scorer is safe for
// concurrent use.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the polarity of text in [-1, 1]; 0 for blank text.
func (s *VaderScorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return Clamp(s.analyzer.PolarityScores(text).Compound)
}

// Clamp bounds a score to [-1, 1].
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
