package sentiment

import (
	"regexp"
	"strings"

	"sentimock/internal/domain"
)

// smoothing keeps the denominator nonzero and caps the score magnitude
// strictly below 1 whenever the opposing count is nonzero. A single matching
// word with no opposition scores 1/1.1, never exactly 1.
const smoothing = 0.1

var tokenSplitter = regexp.MustCompile(`\W+`)

// LexiconScorer classifies text by counting matches against the fixed
// positive and negative word lists. Pure function of its input.
type LexiconScorer struct{}

var _ domain.Scorer = (*LexiconScorer)(nil)

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

func (s *LexiconScorer) Score(text string) domain.SentimentResult {
	var positiveCount, negativeCount int
	for _, word := range tokenize(text) {
		if _, ok := positiveWords[word]; ok {
			positiveCount++
		}
		if _, ok := negativeWords[word]; ok {
			negativeCount++
		}
	}

	result := domain.SentimentResult{Sentiment: domain.SentimentNeutral, Text: text}
	switch {
	case positiveCount > negativeCount:
		result.Sentiment = domain.SentimentPositive
		result.Score = float64(positiveCount) / (float64(positiveCount+negativeCount) + smoothing)
	case negativeCount > positiveCount:
		result.Sentiment = domain.SentimentNegative
		result.Score = -(float64(negativeCount) / (float64(positiveCount+negativeCount) + smoothing))
	}
	return result
}

// tokenize lowercases the text and splits on runs of non-word characters.
// Underscore counts as a word character, mirroring the \W semantics the
// original clients were scored against.
func tokenize(text string) []string {
	parts := tokenSplitter.Split(strings.ToLower(text), -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
