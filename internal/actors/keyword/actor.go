// Package keyword implements the keyword-analysis actor: the
// per-keyword actor that drives the signal-mining services over a
// research result and owns the durable analysis/long-tail cache. It is
// the only actor that calls itself recursively, once per long-tail
// candidate.
package keyword

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/flowx"
	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/signal"
	"github.com/McZenith/liza.ai.server/internal/store"
	"github.com/McZenith/liza.ai.server/internal/textmine"
	"github.com/McZenith/liza.ai.server/internal/xfuture"
)

// SlotKind names the durable record kind for grain.MountSlot.
const SlotKind = "keyword-analysis"

// Batching and fan-out constants for long-tail analysis.
const (
	longTailBatchSize   = 3
	longTailBatchDelay  = 2 * time.Second
	keywordPlannerLimit = 50
	topVideosForSignals = 5
	extractTopK         = 20
)

// Dependencies are every collaborator the keyword-analysis actor calls
// out to.
type Dependencies struct {
	Store          store.Store
	Research       *research.Registry
	Trends         *source.Registry[*domain.TrendData]
	Channel        *source.ChannelRegistry
	KeywordPlanner adapters.KeywordPlannerAdapter
	Region         string
}

type instance struct {
	keyword string
	deps    Dependencies
	self    *Registry
	slot    *grain.Slot[domain.KeywordCacheState]
}

func (inst *instance) ensureSlot(ctx context.Context) (*grain.Slot[domain.KeywordCacheState], error) {
	if inst.slot != nil {
		return inst.slot, nil
	}
	slot, err := grain.MountSlot[domain.KeywordCacheState](ctx, inst.deps.Store, SlotKind, inst.keyword)
	if err != nil {
		return nil, err
	}
	inst.slot = slot
	return slot, nil
}

// Registry is the per-keyword keyword-analysis actor registry.
type Registry struct {
	reg *grain.Registry[*instance]
}

// NewRegistry builds the keyword-analysis actor registry. Each instance
// keeps a reference back to the registry so long-tail analysis can
// invoke the same actor kind under a different key.
func NewRegistry(deps Dependencies) *Registry {
	r := &Registry{}
	r.reg = grain.NewRegistry(func(keyword string) *instance {
		return &instance{keyword: keyword, deps: deps, self: r}
	})
	return r
}

// Analyse returns the full analysis result for keyword, computing and
// persisting a fresh one through the full research-and-mining pipeline if the
// durable cache is stale or absent.
func (r *Registry) Analyse(ctx context.Context, keyword string) (*domain.AnalysisResult, error) {
	ref := r.reg.Get(keyword)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (*domain.AnalysisResult, error) {
		return inst.analyse(ctx)
	})
}

func (inst *instance) analyse(ctx context.Context) (*domain.AnalysisResult, error) {
	slot, err := inst.ensureSlot(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	state := slot.Get()
	if state.Result != nil && domain.Fresh(state.CachedAt, now) {
		return state.Result, nil
	}

	researchResult, err := inst.deps.Research.Research(ctx, inst.keyword)
	if err != nil {
		return nil, err
	}

	trendData, err := inst.deps.Trends.Get(ctx, source.TrendsKey(inst.keyword, inst.deps.Region), now)
	if err != nil {
		return nil, err
	}

	extracted := textmine.ExtractKeywords(researchResult.EnrichedVideos, extractTopK)

	demandFuture := xfuture.Go(func(<-chan struct{}) (domain.SearchDemand, error) {
		return signal.ClassifySearchDemand(inst.keyword, trendData, researchResult.KeywordMetrics), nil
	})
	gapFuture := xfuture.Go(func(<-chan struct{}) (domain.ContentGap, error) {
		return signal.ScoreContentGap(now, researchResult.EnrichedVideos, researchResult.KeywordMetrics, researchResult.TotalSearchResults), nil
	})
	rankingFuture := xfuture.Go(func(<-chan struct{}) (domain.RankingInsights, error) {
		return signal.AnalyseRanking(inst.keyword, researchResult.EnrichedVideos, researchResult.YouTubeAutocomplete, researchResult.GoogleAutocomplete, extracted), nil
	})
	recommendFuture := xfuture.Go(func(<-chan struct{}) (domain.RecommendationOptimization, error) {
		return signal.OptimiseRecommendations(inst.keyword, researchResult.EnrichedVideos), nil
	})

	demand, _ := demandFuture.GetWithContext(ctx)
	gap, _ := gapFuture.GetWithContext(ctx)
	ranking, _ := rankingFuture.GetWithContext(ctx)
	recommend, _ := recommendFuture.GetWithContext(ctx)

	scores := signal.ComputeScores(now, demand, gap, ranking)

	topVideos := topN(researchResult.EnrichedVideos, topVideosForSignals)
	signalled := inst.annotateTopVideos(ctx, now, topVideos)

	authorityFactor := signal.ChannelKeywordAuthorityFactor(signalled)
	ranking.TopFactors = signal.MergeChannelKeywordAuthority(ranking.TopFactors, authorityFactor)

	result := &domain.AnalysisResult{
		Keyword:              inst.keyword,
		AnalysedAt:           now,
		SearchDemand:         demand,
		ContentSupply:        gap,
		RankingInsights:      ranking,
		Scores:               scores,
		Recommendations:      recommend,
		TopExtractedKeywords: extracted,
		TopVideos:            signalled,
	}

	newState := domain.KeywordCacheState{
		Result:            result,
		CachedAt:          now,
		LongTails:         state.LongTails,
		LongTailsCachedAt: state.LongTailsCachedAt,
	}
	if err := slot.Commit(ctx, newState); err != nil {
		return result, err
	}
	return result, nil
}

type channelRecent struct {
	channelID string
	videos    []domain.Video
}

// annotateTopVideos runs the per-video signal pass: for the top-5
// videos, fetch each distinct channel's recent-50 videos in parallel and
// replace each entry with its signal-annotated copy.
func (inst *instance) annotateTopVideos(ctx context.Context, now time.Time, videos []domain.EnrichedVideo) []domain.EnrichedVideo {
	seen := make(map[string]struct{})
	var channelIDs []string
	for _, v := range videos {
		if v.Video.ChannelID == "" {
			continue
		}
		if _, ok := seen[v.Video.ChannelID]; !ok {
			seen[v.Video.ChannelID] = struct{}{}
			channelIDs = append(channelIDs, v.Video.ChannelID)
		}
	}
	pairs := flowx.RunParallel(ctx, channelIDs, func(ctx context.Context, channelID string) (channelRecent, error) {
		recent, err := inst.deps.Channel.RecentVideos(ctx, channelID, now)
		return channelRecent{channelID: channelID, videos: recent}, err
	})
	recentByChannel := make(map[string][]domain.Video, len(pairs))
	for _, p := range pairs {
		recentByChannel[p.channelID] = p.videos
	}

	out := make([]domain.EnrichedVideo, len(videos))
	for i, v := range videos {
		signals := signal.PerVideoRankingSignals(inst.keyword, v, recentByChannel[v.Video.ChannelID])
		annotated := v
		annotated.Signals = &signals
		out[i] = annotated
	}
	return out
}

func topN(videos []domain.EnrichedVideo, n int) []domain.EnrichedVideo {
	if len(videos) <= n {
		return videos
	}
	return videos[:n]
}
