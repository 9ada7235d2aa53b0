package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"sentimock/internal/domain"
)

func TestVaderScorer_Positive(t *testing.T) {
	result := NewVaderScorer().Score("I absolutely love this, it is fantastic")
	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
	assert.Positive(t, result.Score)
}

func TestVaderScorer_Negative(t *testing.T) {
	result := NewVaderScorer().Score("this is horrible, I hate everything about it")
	assert.Equal(t, domain.SentimentNegative, result.Sentiment)
	assert.Negative(t, result.Score)
}

func TestVaderScorer_NeutralForcesZeroScore(t *testing.T) {
	result := NewVaderScorer().Score("the meeting is at three")
	assert.Equal(t, domain.SentimentNeutral, result.Sentiment)
	assert.Zero(t, result.Score)
}

func TestVaderScorer_ContractHolds(t *testing.T) {
	texts := []string{
		"wonderful amazing best day ever",
		"worst experience of my life",
		"a chair is in the room",
		"",
	}
	scorer := NewVaderScorer()
	for _, text := range texts {
		result := scorer.Score(text)
		assert.LessOrEqual(t, math.Abs(result.Score), 1.0, "text %q", text)
		assert.Equal(t, text, result.Text)
		if result.Sentiment == domain.SentimentNeutral {
			assert.Zero(t, result.Score)
		}
	}
}
