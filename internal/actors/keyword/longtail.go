package keyword

import (
	"context"
	"sort"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/flowx"
	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// AnalyseLongTails returns the batched long-tail variation list for
// keyword, computing and persisting a fresh one if the durable long-tail
// cache is stale or absent.
func (r *Registry) AnalyseLongTails(ctx context.Context, keyword string, maxVariations int) ([]domain.LongTailResult, error) {
	ref := r.reg.Get(keyword)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) ([]domain.LongTailResult, error) {
		return inst.analyseLongTails(ctx, maxVariations)
	})
}

func (inst *instance) analyseLongTails(ctx context.Context, maxVariations int) ([]domain.LongTailResult, error) {
	slot, err := inst.ensureSlot(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	state := slot.Get()
	if state.LongTails != nil && domain.Fresh(state.LongTailsCachedAt, now) {
		return state.LongTails, nil
	}

	trendQueries := inst.relatedTrendQueries(ctx, now)
	ideas, _ := inst.deps.KeywordPlanner.Ideas(ctx, inst.keyword, keywordPlannerLimit)
	set := inst.gatherCandidates(trendQueries, ideas, true, true)

	results := flowx.RunBatches(ctx, set.out, longTailBatchSize, longTailBatchDelay,
		func(ctx context.Context, c candidate) (domain.LongTailResult, error) {
			return inst.analyseCandidate(ctx, c)
		})

	filtered := filterAndRankLongTails(results, maxVariations)

	newState := domain.KeywordCacheState{
		Result:            state.Result,
		CachedAt:          state.CachedAt,
		LongTails:         filtered,
		LongTailsCachedAt: now,
	}
	if err := slot.Commit(ctx, newState); err != nil {
		return filtered, err
	}
	return filtered, nil
}

// StreamLongTails yields one good (A/B/C) long-tail result at a time as
// soon as it's analysed, stopping at maxVariations results; it never
// persists.
func (r *Registry) StreamLongTails(ctx context.Context, keyword string, maxVariations int) <-chan domain.LongTailResult {
	out := make(chan domain.LongTailResult, maxVariations)
	ref := r.reg.Get(keyword)
	xsync.Go(func() {
		defer close(out)
		_, _ = grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (struct{}, error) {
			inst.streamLongTails(ctx, maxVariations, out)
			return struct{}{}, nil
		})
	})
	return out
}

func (inst *instance) streamLongTails(ctx context.Context, maxVariations int, out chan<- domain.LongTailResult) {
	now := time.Now()
	trendQueries := inst.relatedTrendQueries(ctx, now)
	ideas, _ := inst.deps.KeywordPlanner.Ideas(ctx, inst.keyword, keywordPlannerLimit)

	// Relaxation rule (a): a single-word seed skips the relevance filter
	// entirely, admitting every ad-network idea.
	requireRelevance := !isSingleWord(inst.keyword)
	set := inst.gatherCandidates(trendQueries, ideas, requireRelevance, true)

	// Relaxation rule (b): if the pool is still thin, admit high-
	// competition candidates too.
	if set.len() < 3*maxVariations {
		relaxed := inst.gatherCandidates(trendQueries, ideas, requireRelevance, false)
		for _, c := range relaxed.out {
			set.add(c)
		}
	}

	yielded := 0
	for _, c := range set.out {
		if yielded >= maxVariations {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		result, err := inst.analyseCandidate(ctx, c)
		if err != nil || !result.Grade.IsGood() {
			continue
		}
		select {
		case out <- result:
			yielded++
		case <-ctx.Done():
			return
		}
	}
}

func (inst *instance) relatedTrendQueries(ctx context.Context, now time.Time) []string {
	trendData, err := inst.deps.Trends.Get(ctx, source.TrendsKey(inst.keyword, inst.deps.Region), now)
	if err != nil || trendData == nil {
		return nil
	}
	queries := make([]string, 0, len(trendData.TopQueries)+len(trendData.RisingQueries))
	queries = append(queries, trendData.TopQueries...)
	queries = append(queries, trendData.RisingQueries...)
	return queries
}

// gatherCandidates unions trend queries and keyword-planner ideas into
// one deduplicated candidate set, applying the relevance filter and, for ideas, the low-competition filter
// (competition=low or competition-index<=40) when requested.
func (inst *instance) gatherCandidates(trendQueries []string, ideas []domain.KeywordMetrics, requireRelevance, requireLowCompetition bool) *candidateSet {
	set := newCandidateSet(inst.keyword)
	for _, q := range trendQueries {
		if requireRelevance && !isRelated(q, inst.keyword) {
			continue
		}
		set.add(candidate{keyword: q, source: sourceYouTubeTrends})
	}
	for _, idea := range ideas {
		lowCompetition := idea.Competition == domain.CompetitionLow || idea.CompetitionIndex <= 40
		if requireLowCompetition && !lowCompetition {
			continue
		}
		if requireRelevance && !isRelated(idea.Keyword, inst.keyword) {
			continue
		}
		set.add(candidate{
			keyword:        idea.Keyword,
			source:         sourceGoogleAds,
			volume:         idea.MonthlySearchVolume,
			hasVolume:      true,
			competitionLow: lowCompetition,
		})
	}
	return set
}

// analyseCandidate recursively invokes the keyword-analysis actor for
// one long-tail candidate and projects its result into a LongTailResult,
// preferring the candidate's own ad-network volume when it exceeds the
// analysis's demand-classifier estimate.
func (inst *instance) analyseCandidate(ctx context.Context, c candidate) (domain.LongTailResult, error) {
	result, err := inst.self.Analyse(ctx, c.keyword)
	if err != nil {
		return domain.LongTailResult{}, err
	}
	volume := result.SearchDemand.Volume
	if c.hasVolume && c.volume > volume {
		volume = c.volume
	}
	return domain.LongTailResult{
		Keyword:                c.keyword,
		Source:                 c.source,
		Opportunity:            result.Scores.Opportunity,
		Difficulty:             result.Scores.Difficulty,
		Grade:                  result.Scores.Grade,
		SearchVolume:           volume,
		Competition:            result.ContentSupply.Competition,
		VideoCount:             int(result.ContentSupply.TotalVideos),
		AverageCompetitorViews: result.ContentSupply.AvgViews,
		AnalysedAt:             result.AnalysedAt,
	}, nil
}

// filterAndRankLongTails keeps only grade A/B/C results, orders by
// descending (opportunity-difficulty) then ascending difficulty, and
// trims to max.
func filterAndRankLongTails(results []domain.LongTailResult, max int) []domain.LongTailResult {
	filtered := make([]domain.LongTailResult, 0, len(results))
	for _, r := range results {
		if r.Grade.IsGood() {
			filtered = append(filtered, r)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		ni := filtered[i].Opportunity - filtered[i].Difficulty
		nj := filtered[j].Opportunity - filtered[j].Difficulty
		if ni != nj {
			return ni > nj
		}
		return filtered[i].Difficulty < filtered[j].Difficulty
	})
	if max > 0 && len(filtered) > max {
		filtered = filtered[:max]
	}
	return filtered
}
