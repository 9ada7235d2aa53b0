package sentiment

import (
	"github.com/jonreiter/govader"

	"sentimock/internal/domain"
)

// Label thresholds on the VADER compound score.
const (
	vaderPositiveThreshold = 0.20
	vaderNegativeThreshold = -0.20
)

// VaderScorer scores text with the VADER rule-based model. It keeps the same
// result contract as the lexicon scorer: the compound score already lands in
// [-1, 1], and a neutral label forces the score to exactly 0.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ domain.Scorer = (*VaderScorer)(nil)

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Score(text string) domain.SentimentResult {
	compound := s.analyzer.PolarityScores(text).Compound

	result := domain.SentimentResult{Sentiment: domain.SentimentNeutral, Text: text}
	switch {
	case compound >= vaderPositiveThreshold:
		result.Sentiment = domain.SentimentPositive
		result.Score = compound
	case compound <= vaderNegativeThreshold:
		result.Sentiment = domain.SentimentNegative
		result.Score = compound
	}
	return result
}
