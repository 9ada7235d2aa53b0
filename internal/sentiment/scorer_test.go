package sentiment

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sentimock/internal/domain"
)

func TestLexiconScorer_Positive(t *testing.T) {
	result := NewLexiconScorer().Score("I love this, it is the best")

	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
	// positiveCount=2 (love, best), negativeCount=0 -> 2/2.1
	assert.InDelta(t, 2.0/2.1, result.Score, 1e-9)
	assert.Equal(t, "I love this, it is the best", result.Text)
}

func TestLexiconScorer_Negative(t *testing.T) {
	result := NewLexiconScorer().Score("this is terrible and awful")

	assert.Equal(t, domain.SentimentNegative, result.Sentiment)
	assert.InDelta(t, -(2.0 / 2.1), result.Score, 1e-9)
}

func TestLexiconScorer_Neutral(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no lexicon matches", "the weather report arrives at noon"},
		{"balanced counts", "good but bad"},
		{"empty string", ""},
		{"punctuation only", "?!, .;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewLexiconScorer().Score(tt.text)
			assert.Equal(t, domain.SentimentNeutral, result.Sentiment)
			assert.Zero(t, result.Score)
		})
	}
}

func TestLexiconScorer_CaseInsensitive(t *testing.T) {
	result := NewLexiconScorer().Score("GREAT and WoNdErFuL")
	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 2.0/2.1, result.Score, 1e-9)
}

func TestLexiconScorer_PunctuationSplitsTokens(t *testing.T) {
	// "love!!!best" must count as two separate tokens.
	result := NewLexiconScorer().Score("love!!!best")
	assert.InDelta(t, 2.0/2.1, result.Score, 1e-9)
}

func TestLexiconScorer_NoSubstringMatches(t *testing.T) {
	// "lovely" and "goodness" are not lexicon words.
	result := NewLexiconScorer().Score("lovely goodness")
	assert.Equal(t, domain.SentimentNeutral, result.Sentiment)
}

func TestLexiconScorer_NeverReachesOne(t *testing.T) {
	result := NewLexiconScorer().Score("love")
	assert.InDelta(t, 1.0/1.1, result.Score, 1e-9)
	assert.Less(t, result.Score, 1.0)
}

func TestLexiconScorer_ScoreBounds(t *testing.T) {
	texts := []string{
		"love",
		strings.Repeat("love hate ", 50),
		strings.Repeat("amazing wonderful best ", 30),
		strings.Repeat("awful ", 100),
		"mixed good bad great terrible feelings",
	}
	scorer := NewLexiconScorer()
	for _, text := range texts {
		result := scorer.Score(text)
		assert.LessOrEqual(t, math.Abs(result.Score), 1.0, "text %q", text)
		if result.Sentiment == domain.SentimentNeutral {
			assert.Zero(t, result.Score)
		} else {
			assert.NotZero(t, result.Score)
		}
	}
}

func TestLexiconScorer_Idempotent(t *testing.T) {
	scorer := NewLexiconScorer()
	first := scorer.Score("I love this, it is the best")
	second := scorer.Score("I love this, it is the best")
	assert.Equal(t, first, second)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "Hello World", []string{"hello", "world"}},
		{"punctuation runs", "wow--what?!a day", []string{"wow", "what", "a", "day"}},
		{"underscore kept", "snake_case stays", []string{"snake_case", "stays"}},
		{"digits kept", "route 66", []string{"route", "66"}},
		{"leading and trailing", "  spaced out  ", []string{"spaced", "out"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
