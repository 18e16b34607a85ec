package textmine

import (
	"math"
	"sort"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// DocumentTerms collects every term-occurrence in one video's title,
// description, tags, transcript, and first-50 comments, the "document"
// unit TF-IDF is computed over.
func DocumentTerms(v domain.EnrichedVideo) map[string]int {
	counts := make(map[string]int)
	add := func(terms []string) {
		for _, t := range terms {
			counts[t]++
		}
	}
	add(TermsFromText(v.Video.Title, extractionStopWords))
	add(TermsFromText(v.Video.Description, extractionStopWords))
	for _, tag := range v.Video.Tags {
		if t, ok := TermsFromTag(tag); ok {
			counts[t]++
		}
	}
	if v.Transcript != nil && v.Transcript.Present {
		add(TermsFromText(v.Transcript.Text, extractionStopWords))
	}
	comments := v.Comments
	if len(comments) > 50 {
		comments = comments[:50]
	}
	for _, c := range comments {
		add(TermsFromText(c.Text, extractionStopWords))
	}
	return counts
}

// ExtractKeywords computes TF-IDF over the document corpus formed by one
// research result's videos and returns the top-K terms by score
// descending. Corpus size N is always ≥1 for a non-empty video
// list, so every counted term has df ≥ 1 and ln(N/df) is finite.
func ExtractKeywords(videos []domain.EnrichedVideo, topK int) []domain.ExtractedKeyword {
	if len(videos) == 0 {
		return nil
	}
	docs := make([]map[string]int, len(videos))
	for i, v := range videos {
		docs[i] = DocumentTerms(v)
	}

	totalCount := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		for term, count := range doc {
			totalCount[term] += count
			docFreq[term]++
		}
	}

	n := float64(len(docs))
	scored := make([]domain.ExtractedKeyword, 0, len(totalCount))
	for term, count := range totalCount {
		df := docFreq[term]
		score := float64(count) * math.Log(n/float64(df))
		scored = append(scored, domain.ExtractedKeyword{Term: term, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Term < scored[j].Term
	})

	if topK <= 0 {
		topK = 50
	}
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// DefaultTopK is the default number of extracted keywords returned when a
// caller doesn't specify one.
const DefaultTopK = 50
