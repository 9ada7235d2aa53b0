package domain

// Sentiment classifies the emotional valence of a piece of text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentResult is the outcome of scoring one text. Score is a signed
// confidence: positive sentiment lands in (0, 1], negative in [-1, 0), and
// neutral is exactly 0. Text echoes the input verbatim. Results are
// transient - computed per request, never persisted.
type SentimentResult struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"`
	Text      string    `json:"text"`
}

// Scorer maps input text to a sentiment result. Implementations must be pure:
// identical input yields identical output, with no side effects.
type Scorer interface {
	Score(text string) SentimentResult
}
