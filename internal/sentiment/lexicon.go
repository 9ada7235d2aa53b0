package sentiment

// Fixed lexicons. Matching is case-insensitive and exact per token; changing
// these lists changes scores observed by every existing caller, so treat them
// as part of the wire contract.
var (
	positiveWords = wordSet("good", "great", "excellent", "happy", "love", "best", "amazing", "wonderful")
	negativeWords = wordSet("bad", "terrible", "awful", "sad", "hate", "worst", "horrible", "disappointing")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
