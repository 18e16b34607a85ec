package signal

import (
	"sort"
	"strconv"
	"strings"

	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/textmine"
)

// transcriptClusterBlacklist excludes generic conversational bigrams that
// are not genuine topic clusters.
var transcriptClusterBlacklist = map[string]struct{}{
	"you know":    {},
	"i mean":      {},
	"i think":     {},
	"kind of":     {},
	"sort of":     {},
	"like this":   {},
	"this video":  {},
	"thank you":   {},
	"let me":      {},
	"going to":    {},
	"want to":     {},
	"have to":     {},
	"make sure":   {},
	"right now":   {},
	"look at":     {},
}

// OptimiseRecommendations implements the recommendation optimiser over
// a keyword's top-ranked enriched videos.
func OptimiseRecommendations(keyword string, videos []domain.EnrichedVideo) domain.RecommendationOptimization {
	overlaps := tagOverlaps(videos)
	mustUse := mustUseTags(overlaps, len(videos))
	clusters := topicClusters(videos)
	targets := targetVideos(videos, mustUse)
	score := topicMatchScore(keyword, videos)
	transcriptKeywords := transcriptKeywordsToUse(videos)

	return domain.RecommendationOptimization{
		TagOverlaps:             overlaps,
		MustUseTags:             mustUse,
		TopicClusters:           clusters,
		TargetVideos:            targets,
		TopicMatchScore:         score,
		TranscriptKeywordsToUse: transcriptKeywords,
	}
}

func tagOverlaps(videos []domain.EnrichedVideo) []domain.TagOverlap {
	counts := make(map[string]int)
	views := make(map[string]int64)
	for _, v := range videos {
		seen := make(map[string]struct{})
		for _, tag := range v.Video.Tags {
			norm := strings.ToLower(strings.TrimSpace(tag))
			if norm == "" {
				continue
			}
			if _, dup := seen[norm]; dup {
				continue
			}
			seen[norm] = struct{}{}
			counts[norm]++
			views[norm] += v.Video.ViewCount
		}
	}
	out := make([]domain.TagOverlap, 0, len(counts))
	for tag, count := range counts {
		if count < 2 {
			continue
		}
		out = append(out, domain.TagOverlap{Tag: tag, Count: count, TotalViews: views[tag]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].TotalViews != out[j].TotalViews {
			return out[i].TotalViews > out[j].TotalViews
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > 20 {
		out = out[:20]
	}
	return out
}

// mustUseTags are overlap tags appearing in at least half the analysed
// videos (never fewer than 2 of them), capped at 15; overlaps arrive
// already ordered by count descending.
func mustUseTags(overlaps []domain.TagOverlap, videoCount int) []string {
	if videoCount == 0 {
		return nil
	}
	threshold := (videoCount + 1) / 2
	if threshold < 2 {
		threshold = 2
	}
	var out []string
	for _, o := range overlaps {
		if o.Count < threshold {
			continue
		}
		out = append(out, o.Tag)
		if len(out) >= 15 {
			break
		}
	}
	return out
}

func topicClusters(videos []domain.EnrichedVideo) []domain.TopicCluster {
	bigramVideos := make(map[string]map[string]struct{})
	related := make(map[string]map[string]struct{})
	for idx, v := range videos {
		if v.Transcript == nil || !v.Transcript.Present {
			continue
		}
		words := textmine.Words(v.Transcript.Text)
		for i := 0; i+1 < len(words); i++ {
			bigram := words[i] + " " + words[i+1]
			if _, blocked := transcriptClusterBlacklist[bigram]; blocked {
				continue
			}
			set, ok := bigramVideos[bigram]
			if !ok {
				set = make(map[string]struct{})
				bigramVideos[bigram] = set
			}
			set[videoKey(v, idx)] = struct{}{}

			relSet, ok := related[bigram]
			if !ok {
				relSet = make(map[string]struct{})
				related[bigram] = relSet
			}
			if i+2 < len(words) {
				relSet[words[i+2]] = struct{}{}
			}
			if i > 0 {
				relSet[words[i-1]] = struct{}{}
			}
		}
	}

	type cluster struct {
		term  string
		count int
	}
	var candidates []cluster
	for bigram, set := range bigramVideos {
		if len(set) < 2 {
			continue
		}
		candidates = append(candidates, cluster{term: bigram, count: len(set)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].term < candidates[j].term
	})
	if len(candidates) > 10 {
		candidates = candidates[:10]
	}

	out := make([]domain.TopicCluster, 0, len(candidates))
	for _, c := range candidates {
		relSet := related[c.term]
		rel := make([]string, 0, len(relSet))
		for r := range relSet {
			rel = append(rel, r)
		}
		sort.Strings(rel)
		if len(rel) > 5 {
			rel = rel[:5]
		}
		out = append(out, domain.TopicCluster{Term: c.term, RelatedTerms: rel})
	}
	return out
}

func videoKey(v domain.EnrichedVideo, idx int) string {
	if v.Video.ID != "" {
		return v.Video.ID
	}
	return strconv.Itoa(idx)
}

// targetVideos surfaces the 5 highest-view videos with non-trivial
// must-use-tag overlap to appear alongside; similarity is the share of
// must-use tags present on that video.
func targetVideos(videos []domain.EnrichedVideo, mustUse []string) []domain.TargetVideo {
	if len(videos) == 0 || len(mustUse) == 0 {
		return nil
	}

	ranked := make([]domain.EnrichedVideo, len(videos))
	copy(ranked, videos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Video.ViewCount > ranked[j].Video.ViewCount
	})

	out := make([]domain.TargetVideo, 0, 5)
	for _, v := range ranked {
		tagSet := make(map[string]struct{}, len(v.Video.Tags))
		for _, tag := range v.Video.Tags {
			tagSet[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
		}
		present := 0
		for _, tag := range mustUse {
			if _, ok := tagSet[tag]; ok {
				present++
			}
		}
		if present == 0 {
			continue
		}
		similarity := round2(float64(present) / float64(len(mustUse)))
		out = append(out, domain.TargetVideo{VideoID: v.Video.ID, Title: v.Video.Title, Similarity: similarity})
		if len(out) >= 5 {
			break
		}
	}
	return out
}

// topicMatchScore is the percentage (0-100) of transcript-bearing videos
// whose transcript mentions the seed keyword.
func topicMatchScore(keyword string, videos []domain.EnrichedVideo) float64 {
	lower := strings.ToLower(keyword)
	withTranscript, matches := 0, 0
	for _, v := range videos {
		if v.Transcript == nil || !v.Transcript.Present {
			continue
		}
		withTranscript++
		if strings.Contains(strings.ToLower(v.Transcript.Text), lower) {
			matches++
		}
	}
	if withTranscript == 0 {
		return 0
	}
	return round2(float64(matches) / float64(withTranscript) * 100)
}

// transcriptKeywordsToUse surfaces recurring transcript terms worth
// saying on camera: unigrams and bigrams of at least 4 characters,
// outside the stop set, appearing in at least max(transcriptCount/3, 2)
// distinct transcripts, top-15 by transcript count.
func transcriptKeywordsToUse(videos []domain.EnrichedVideo) []string {
	termVideos := make(map[string]map[int]struct{})
	transcriptCount := 0
	for idx, v := range videos {
		if v.Transcript == nil || !v.Transcript.Present {
			continue
		}
		transcriptCount++
		ws := textmine.Words(v.Transcript.Text)
		add := func(term string) {
			if len(term) < 4 {
				return
			}
			set, ok := termVideos[term]
			if !ok {
				set = make(map[int]struct{})
				termVideos[term] = set
			}
			set[idx] = struct{}{}
		}
		for i, w := range ws {
			if textmine.IsStopWord(w) {
				continue
			}
			add(w)
			if i+1 < len(ws) && !textmine.IsStopWord(ws[i+1]) {
				add(w + " " + ws[i+1])
			}
		}
	}
	if transcriptCount == 0 {
		return nil
	}
	threshold := transcriptCount / 3
	if threshold < 2 {
		threshold = 2
	}
	type scored struct {
		term  string
		count int
	}
	var candidates []scored
	for term, set := range termVideos {
		if len(set) < threshold {
			continue
		}
		candidates = append(candidates, scored{term: term, count: len(set)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].term < candidates[j].term
	})
	if len(candidates) > 15 {
		candidates = candidates[:15]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.term)
	}
	return out
}
