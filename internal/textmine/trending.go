package textmine

import (
	"sort"
	"strings"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// TrendingKeyword is one weighted phrase accumulated across a region's
// trending video set, before it is handed to the keyword-analysis actor.
type TrendingKeyword struct {
	Phrase     string
	Score      float64
	VideoCount int
}

const (
	titleWeight       = 3.0
	tagWeight         = 2.0
	descriptionWeight = 1.0
	maxTagsConsidered = 10
	maxDescChars      = 500
	minVideoAppear    = 2
)

// ExtractTrendingKeywords mines title/tags/description across a set of
// trending videos, weighting each source differently, and returns the
// top-N phrases by (score desc, video-count desc) that appear in at
// least minVideoAppear distinct videos.
func ExtractTrendingKeywords(videos []domain.Video, topN int) []TrendingKeyword {
	stopWords := combinedSet(trendingStopWords)
	scores := make(map[string]float64)
	videoSets := make(map[string]map[int]struct{})

	addPhrase := func(phrase string, weight float64, videoIdx int) {
		scores[phrase] += weight
		set, ok := videoSets[phrase]
		if !ok {
			set = make(map[int]struct{})
			videoSets[phrase] = set
		}
		set[videoIdx] = struct{}{}
	}

	for idx, v := range videos {
		for _, phrase := range trendingPhrases(v.Title, stopWords) {
			addPhrase(phrase, titleWeight, idx)
		}
		tags := v.Tags
		if len(tags) > maxTagsConsidered {
			tags = tags[:maxTagsConsidered]
		}
		for _, tag := range tags {
			if t, ok := TermsFromTag(tag); ok {
				addPhrase(t, tagWeight, idx)
			}
		}
		desc := v.Description
		if len(desc) > maxDescChars {
			desc = desc[:maxDescChars]
		}
		for _, phrase := range trendingPhrases(desc, stopWords) {
			addPhrase(phrase, descriptionWeight, idx)
		}
	}

	out := make([]TrendingKeyword, 0, len(scores))
	for phrase, score := range scores {
		count := len(videoSets[phrase])
		if count < minVideoAppear {
			continue
		}
		out = append(out, TrendingKeyword{Phrase: phrase, Score: score, VideoCount: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].VideoCount != out[j].VideoCount {
			return out[i].VideoCount > out[j].VideoCount
		}
		return out[i].Phrase < out[j].Phrase
	})

	if topN <= 0 {
		topN = 20
	}
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// trendingPhrases emits 1-, 2-, and 3-word phrases from text where every
// constituent word is at least 3 characters and not in the trending stop
// set.
func trendingPhrases(text string, stopWords map[string]struct{}) []string {
	raw := strings.Fields(clean(text))
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.Trim(w, ".,!?;:\"'()[]{}")
		if len(w) < 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	out := make([]string, 0, len(words)*3)
	for i := range words {
		out = append(out, words[i])
		if i+1 < len(words) {
			out = append(out, words[i]+" "+words[i+1])
		}
		if i+2 < len(words) {
			out = append(out, words[i]+" "+words[i+1]+" "+words[i+2])
		}
	}
	return out
}
