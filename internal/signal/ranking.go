package signal

import (
	"math"
	"sort"
	"strings"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// PositionBias computes the normalised deviation of the mean rank of a
// factor-positive subset from the overall expected mean rank, in
// [-1, +1].
func PositionBias(ranks []int, n int) float64 {
	if len(ranks) == 0 || n == 0 {
		return 0
	}
	expected := float64(n+1) / 2
	bias := (expected - meanInt(ranks)) / expected
	return round2(clamp(bias, -1, 1))
}

func meanInt(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// halfComparison compares the mean of values over the top half of a
// rank-ordered slice against the bottom half, returning positiveMagnitude
// if the top half leads and negativeMagnitude otherwise.
func halfComparison(values []float64, positiveMagnitude, negativeMagnitude float64) float64 {
	n := len(values)
	half := n / 2
	if half == 0 {
		return 0
	}
	top := mean(values[:half])
	bottom := mean(values[n-half:])
	if top > bottom {
		return positiveMagnitude
	}
	return negativeMagnitude
}

// AnalyseRanking implements the ranking-factor analyser. videos
// must be ordered by search-result position (rank 1..N).
func AnalyseRanking(keyword string, videos []domain.EnrichedVideo, youtubeSuggestions, googleSuggestions []string, extracted []domain.ExtractedKeyword) domain.RankingInsights {
	n := len(videos)
	lowerKeyword := strings.ToLower(keyword)

	factor := func(name string, predicate func(domain.EnrichedVideo) bool) domain.RankingFactor {
		ranks := make([]int, 0, n)
		for i, v := range videos {
			if predicate(v) {
				ranks = append(ranks, i+1)
			}
		}
		return domain.RankingFactor{Name: name, Correlation: PositionBias(ranks, n)}
	}

	factors := []domain.RankingFactor{
		factor("keyword-in-title", func(v domain.EnrichedVideo) bool {
			return strings.Contains(strings.ToLower(v.Video.Title), lowerKeyword)
		}),
		factor("keyword-in-description", func(v domain.EnrichedVideo) bool {
			return strings.Contains(strings.ToLower(v.Video.Description), lowerKeyword)
		}),
		factor("keyword-in-description-first-100", func(v domain.EnrichedVideo) bool {
			desc := v.Video.Description
			if len(desc) > 100 {
				desc = desc[:100]
			}
			return strings.Contains(strings.ToLower(desc), lowerKeyword)
		}),
		factor("keyword-in-tags", func(v domain.EnrichedVideo) bool {
			for _, tag := range v.Video.Tags {
				if strings.Contains(strings.ToLower(tag), lowerKeyword) {
					return true
				}
			}
			return false
		}),
		factor("keyword-in-transcript", func(v domain.EnrichedVideo) bool {
			return v.Transcript != nil && v.Transcript.Present &&
				strings.Contains(strings.ToLower(v.Transcript.Text), lowerKeyword)
		}),
	}

	engagement := make([]float64, n)
	authority := make([]float64, n)
	niche := make([]int, 0, n)
	for i, v := range videos {
		views := float64(v.Video.ViewCount)
		if views > 0 {
			engagement[i] = float64(v.Video.LikeCount+v.Video.CommentCount) / views
		}
		if v.Channel != nil {
			authority[i] = float64(v.Channel.SubscriberCount)
			if isNicheChannel(*v.Channel) {
				niche = append(niche, i+1)
			}
		}
	}
	factors = append(factors,
		domain.RankingFactor{Name: "like-ratio", Correlation: halfComparison(engagement, 0.5, -0.1)},
		domain.RankingFactor{Name: "channel-authority", Correlation: halfComparison(authority, 0.4, -0.1)},
		domain.RankingFactor{Name: "channel-niche-focus", Correlation: PositionBias(niche, n)},
	)

	sort.SliceStable(factors, func(i, j int) bool {
		return math.Abs(factors[i].Correlation) > math.Abs(factors[j].Correlation)
	})
	if len(factors) > 5 {
		factors = factors[:5]
	}

	summary := channelAuthoritySummary(videos)
	placement := optimalPlacement(lowerKeyword, videos)
	longTail := BuildLongTailVariations(keyword, append(append([]string{}, youtubeSuggestions...), googleSuggestions...), extracted, summary.NeedsEstablished)

	return domain.RankingInsights{
		TopFactors:         factors,
		ChannelAuthority:   summary,
		OptimalPlacement:   placement,
		LongTailVariations: longTail,
	}
}

func isNicheChannel(ch domain.Channel) bool {
	return len(ch.Keywords) > 0 && len(ch.Keywords) <= 8
}

func channelAuthoritySummary(videos []domain.EnrichedVideo) domain.ChannelAuthoritySummary {
	top := videos
	if len(top) > 10 {
		top = top[:10]
	}
	var subs []float64
	for _, v := range top {
		if v.Channel != nil {
			subs = append(subs, float64(v.Channel.SubscriberCount))
		}
	}
	avg := mean(subs)
	return domain.ChannelAuthoritySummary{
		AverageSubscribers:     avg,
		NeedsEstablished:       avg > 100_000,
		EstimatedMinSubsToRank: int64(avg * 0.10),
	}
}

func optimalPlacement(lowerKeyword string, videos []domain.EnrichedVideo) domain.OptimalPlacement {
	if len(videos) == 0 {
		return domain.OptimalPlacement{}
	}
	var inFirst3, inFirst100 int
	var tagTotal int
	var mentionsPerMin []float64
	for _, v := range videos {
		words := strings.Fields(v.Video.Title)
		if len(words) > 3 {
			words = words[:3]
		}
		if strings.Contains(strings.ToLower(strings.Join(words, " ")), lowerKeyword) {
			inFirst3++
		}
		desc := v.Video.Description
		if len(desc) > 100 {
			desc = desc[:100]
		}
		if strings.Contains(strings.ToLower(desc), lowerKeyword) {
			inFirst100++
		}
		tagTotal += len(v.Video.Tags)
		if v.Transcript != nil && v.Transcript.Present && v.Video.Duration > 0 {
			mentions := strings.Count(strings.ToLower(v.Transcript.Text), lowerKeyword)
			minutes := v.Video.Duration.Minutes()
			if minutes > 0 {
				mentionsPerMin = append(mentionsPerMin, float64(mentions)/minutes)
			}
		}
	}
	n := float64(len(videos))
	return domain.OptimalPlacement{
		InFirst3TitleWords:       float64(inFirst3)/n >= 0.5,
		InFirst100DescChars:      float64(inFirst100)/n >= 0.5,
		MeanTagCount:             float64(tagTotal) / n,
		TranscriptMentionsPerMin: mean(mentionsPerMin),
	}
}

// PerVideoRankingSignals extracts the boolean/count vector the
// channel-keyword-authority post-pass and downstream reporting read.
// channelRecentVideos is the channel's own recent upload list,
// used to gauge whether the channel is a repeat publisher on this
// keyword.
func PerVideoRankingSignals(keyword string, ev domain.EnrichedVideo, channelRecentVideos []domain.Video) domain.RankingSignals {
	lowerKeyword := strings.ToLower(keyword)
	title := strings.ToLower(ev.Video.Title)
	desc := strings.ToLower(ev.Video.Description)

	titleWords := strings.Fields(title)
	if len(titleWords) > 3 {
		titleWords = titleWords[:3]
	}

	tagMatches := 0
	for _, tag := range ev.Video.Tags {
		if strings.Contains(strings.ToLower(tag), lowerKeyword) {
			tagMatches++
		}
	}

	transcriptMentions := 0
	if ev.Transcript != nil && ev.Transcript.Present {
		transcriptMentions = strings.Count(strings.ToLower(ev.Transcript.Text), lowerKeyword)
	}

	commentMentions := 0
	for _, c := range ev.Comments {
		if strings.Contains(strings.ToLower(c.Text), lowerKeyword) {
			commentMentions++
		}
	}

	engagement := 0.0
	if ev.Video.ViewCount > 0 {
		engagement = float64(ev.Video.LikeCount+ev.Video.CommentCount) / float64(ev.Video.ViewCount)
	}

	tier := 1
	var channelMatches int
	var inChannelName, inChannelDesc bool
	var niche bool
	if ev.Channel != nil {
		tier = domain.ChannelAuthorityTier(ev.Channel.SubscriberCount)
		inChannelName = strings.Contains(strings.ToLower(ev.Channel.Title), lowerKeyword)
		inChannelDesc = strings.Contains(strings.ToLower(ev.Channel.Description), lowerKeyword)
		for _, kw := range ev.Channel.Keywords {
			if strings.Contains(strings.ToLower(kw), lowerKeyword) {
				channelMatches++
			}
		}
		niche = isNicheChannel(*ev.Channel)
	}

	analysed := len(channelRecentVideos)
	withKeyword := 0
	for _, rv := range channelRecentVideos {
		if strings.Contains(strings.ToLower(rv.Title), lowerKeyword) || strings.Contains(strings.ToLower(rv.Description), lowerKeyword) {
			withKeyword++
		}
	}
	ratio := 0.0
	if analysed > 0 {
		ratio = float64(withKeyword) / float64(analysed)
	}

	var reasons []string
	if strings.Contains(title, lowerKeyword) {
		reasons = append(reasons, "keyword appears in title")
	}
	if strings.Contains(strings.Join(titleWords, " "), lowerKeyword) {
		reasons = append(reasons, "keyword in first 3 title words")
	}
	if tagMatches > 0 {
		reasons = append(reasons, "keyword matched in tags")
	}
	if ratio >= domain.KeywordAuthorityRatio {
		reasons = append(reasons, "channel is a repeat publisher on this keyword")
	}

	return domain.RankingSignals{
		KeywordInTitle:           strings.Contains(title, lowerKeyword),
		KeywordInFirst3Words:     strings.Contains(strings.Join(titleWords, " "), lowerKeyword),
		KeywordInDescription:     strings.Contains(desc, lowerKeyword),
		TagMatchCount:            tagMatches,
		TranscriptMentions:       transcriptMentions,
		EngagementRate:           engagement,
		ChannelAuthorityTier:     tier,
		KeywordInChannelName:     inChannelName,
		KeywordInChannelDesc:     inChannelDesc,
		ChannelKeywordMatchCount: channelMatches,
		IsNicheChannel:           niche,
		CommentKeywordMentions:   commentMentions,
		ChannelVideosAnalysed:    analysed,
		ChannelVideosWithKeyword: withKeyword,
		ChannelKeywordRatio:      ratio,
		IsKeywordAuthority:       ratio >= domain.KeywordAuthorityRatio,
		Reasons:                  reasons,
	}
}

// ChannelKeywordAuthorityFactor is the post-pass correlation factor that
// compares rank and keyword-authority-ratio between authority and
// non-authority channels. videos must already carry their
// Signals and be ordered by rank.
func ChannelKeywordAuthorityFactor(videos []domain.EnrichedVideo) domain.RankingFactor {
	n := len(videos)
	var authorityRanks, nonAuthorityRanks []int
	var ratios []float64
	for i, v := range videos {
		if v.Signals == nil {
			continue
		}
		ratios = append(ratios, v.Signals.ChannelKeywordRatio)
		if v.Signals.IsKeywordAuthority {
			authorityRanks = append(authorityRanks, i+1)
		} else {
			nonAuthorityRanks = append(nonAuthorityRanks, i+1)
		}
	}

	rankComponent := 0.0
	if len(authorityRanks) > 0 && len(nonAuthorityRanks) > 0 && n > 0 {
		rankComponent = (meanInt(nonAuthorityRanks) - meanInt(authorityRanks)) / float64(n)
	}

	top3 := ratios
	if len(top3) > 3 {
		top3 = top3[:3]
	}
	meanAll := mean(ratios)
	ratioComponent := 0.0
	if denom := math.Max(meanAll, 1); denom != 0 {
		ratioComponent = (mean(top3) - meanAll) / denom * 0.5
	}

	correlation := round2(clamp(rankComponent+ratioComponent, -1, 1))
	return domain.RankingFactor{Name: "channel-keyword-authority", Correlation: correlation}
}

// MergeChannelKeywordAuthority folds the post-pass factor into an
// already-selected top-factor list, re-sorts by |correlation|, and trims
// to 6.
func MergeChannelKeywordAuthority(factors []domain.RankingFactor, postPass domain.RankingFactor) []domain.RankingFactor {
	merged := append(append([]domain.RankingFactor{}, factors...), postPass)
	sort.SliceStable(merged, func(i, j int) bool {
		return math.Abs(merged[i].Correlation) > math.Abs(merged[j].Correlation)
	})
	if len(merged) > 6 {
		merged = merged[:6]
	}
	return merged
}

// BuildLongTailVariations generates candidate long-tail keyword
// variations from autocomplete suggestions and extracted multi-word
// terms, falling back to synthetic seed+term combos when fewer than 3
// are found, returning at most 10 ordered by ascending difficulty.
func BuildLongTailVariations(seed string, suggestions []string, extracted []domain.ExtractedKeyword, needsEstablished bool) []domain.LongTailVariation {
	base := 40
	if needsEstablished {
		base = 70
	}
	lowerSeed := strings.ToLower(seed)
	seedLen := len(strings.Fields(lowerSeed))

	seen := make(map[string]struct{})
	var out []domain.LongTailVariation
	add := func(kw string, difficulty int) {
		key := strings.ToLower(kw)
		if key == lowerSeed {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, domain.LongTailVariation{Keyword: kw, Difficulty: difficulty})
	}

	for _, s := range suggestions {
		lower := strings.ToLower(s)
		if !strings.Contains(lower, lowerSeed) {
			continue
		}
		wordLen := len(strings.Fields(lower))
		if wordLen <= seedLen {
			continue
		}
		bonus := 2 * (wordLen - seedLen)
		if bonus > 30 {
			bonus = 30
		}
		difficulty := base - bonus
		if difficulty < 10 {
			difficulty = 10
		}
		add(s, difficulty)
	}

	for _, kw := range extracted {
		lower := strings.ToLower(kw.Term)
		if !strings.Contains(lower, lowerSeed) {
			continue
		}
		if len(strings.Fields(lower)) < 2 {
			continue
		}
		difficulty := base - 15
		if difficulty < 20 {
			difficulty = 20
		}
		add(kw.Term, difficulty)
	}

	if len(out) < 3 {
		for _, kw := range extracted {
			if len(strings.Fields(kw.Term)) != 1 {
				continue
			}
			difficulty := base - 15
			if difficulty < 20 {
				difficulty = 20
			}
			add(seed+" "+kw.Term, difficulty)
			if len(out) >= 3 {
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Difficulty != out[j].Difficulty {
			return out[i].Difficulty < out[j].Difficulty
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}
