package textmine

// extractionStopWords is the stop-word set used by the TF-IDF keyword
// extractor. Kept deliberately distinct from trendingStopWords
// because the two filters serve different surfaces and must not be merged.
var extractionStopWords = buildSet([]string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "her",
	"was", "one", "our", "out", "day", "get", "has", "him", "his", "how",
	"man", "new", "now", "old", "see", "two", "way", "who", "boy", "did",
	"its", "let", "put", "say", "she", "too", "use", "with", "that", "this",
	"have", "from", "they", "will", "would", "there", "their", "what",
	"about", "which", "when", "make", "like", "time", "just", "know",
	"take", "into", "your", "some", "could", "them", "than", "then",
	"these", "other", "were", "been", "more", "very", "also", "only",
	"here", "over", "such", "most", "even", "same", "does", "doing",
	"while", "where", "after", "before", "again", "once", "should",
	"because", "through", "between", "being", "each", "both", "those",
})

// trendingStopWords augments extractionStopWords with video-platform
// boilerplate excluded only from the trending warm-up's keyword
// extraction, never from the per-keyword extractor's.
var trendingStopWords = buildSet([]string{
	"video", "videos", "official", "watch", "channel", "subscribe",
	"trending", "shorts", "live", "stream", "episode", "season", "part",
	"full", "new", "latest", "clip", "highlights", "reaction",
})

// IsStopWord reports whether w is in the extraction stop-word set, for
// callers outside this package that filter plain word sequences.
func IsStopWord(w string) bool {
	_, ok := extractionStopWords[w]
	return ok
}

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// combinedSet merges the extraction set with any additional words,
// building the per-call stop-word set used by a specific extraction mode.
func combinedSet(extra map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(extractionStopWords)+len(extra))
	for w := range extractionStopWords {
		out[w] = struct{}{}
	}
	for w := range extra {
		out[w] = struct{}{}
	}
	return out
}
