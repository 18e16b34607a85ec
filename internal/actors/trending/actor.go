// Package trending implements the trending-analysis actor: a
// per-region actor that owns the durable explore-surface cache (trending
// videos plus their mined, scored keywords) and is rebuilt by the
// scheduled warm-up.
package trending

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/keyword"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/store"
	"github.com/McZenith/liza.ai.server/internal/textmine"
)

// SlotKind names the durable record kind for grain.MountSlot.
const SlotKind = "trending-analysis"

const (
	trendingVideoLimit  = 50
	trendingKeywordTopN = 20
)

// Dependencies are the trending-analysis actor's collaborators.
type Dependencies struct {
	Store    store.Store
	Trending adapters.TrendingVideosAdapter
	Keyword  *keyword.Registry
}

type instance struct {
	region string
	deps   Dependencies
	slot   *grain.Slot[domain.TrendingCacheState]
}

func (inst *instance) ensureSlot(ctx context.Context) (*grain.Slot[domain.TrendingCacheState], error) {
	if inst.slot != nil {
		return inst.slot, nil
	}
	slot, err := grain.MountSlot[domain.TrendingCacheState](ctx, inst.deps.Store, SlotKind, inst.region)
	if err != nil {
		return nil, err
	}
	inst.slot = slot
	return slot, nil
}

// Registry is the per-region trending-analysis actor registry.
type Registry struct {
	reg *grain.Registry[*instance]
}

// NewRegistry builds the trending-analysis actor registry.
func NewRegistry(deps Dependencies) *Registry {
	return &Registry{
		reg: grain.NewRegistry(func(region string) *instance {
			return &instance{region: region, deps: deps}
		}),
	}
}

// WarmUp runs the warm-up procedure for region: fetch trending
// videos, mine and score keywords from them, analyse the top 20, and
// persist the result. Aborts without committing if no trending videos
// are returned.
func (r *Registry) WarmUp(ctx context.Context, region string) error {
	ref := r.reg.Get(region)
	_, err := grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (struct{}, error) {
		return struct{}{}, inst.warmUp(ctx)
	})
	return err
}

func (inst *instance) warmUp(ctx context.Context) error {
	slot, err := inst.ensureSlot(ctx)
	if err != nil {
		return err
	}

	videos, err := inst.deps.Trending.GetTrending(ctx, inst.region, trendingVideoLimit)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return nil
	}

	mined := textmine.ExtractTrendingKeywords(videos, trendingKeywordTopN)

	summaries := make([]domain.TrendingKeywordSummary, 0, len(mined))
	for _, m := range mined {
		result, err := inst.deps.Keyword.Analyse(ctx, m.Phrase)
		if err != nil {
			slog.Warn("trending candidate analysis failed, skipping",
				slog.String("region", inst.region), slog.String("keyword", m.Phrase), slog.String("err", err.Error()))
			continue
		}
		summaries = append(summaries, buildSummary(m, result))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		ni := summaries[i].Opportunity - summaries[i].Difficulty
		nj := summaries[j].Opportunity - summaries[j].Difficulty
		if ni != nj {
			return ni > nj
		}
		return summaries[i].TrendingVideoCount > summaries[j].TrendingVideoCount
	})

	projections := make([]domain.TrendingVideoProjection, 0, len(videos))
	for _, v := range videos {
		projections = append(projections, domain.TrendingVideoProjection{
			ID:           v.ID,
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			ViewCount:    v.ViewCount,
			Thumbnail:    firstThumbnail(v.ThumbnailURLs),
		})
	}

	state := domain.TrendingCacheState{
		Keywords:     summaries,
		Videos:       projections,
		LastWarmupAt: time.Now(),
		RegionCode:   inst.region,
	}
	return slot.Commit(ctx, state)
}

func buildSummary(mined textmine.TrendingKeyword, result *domain.AnalysisResult) domain.TrendingKeywordSummary {
	summary := domain.TrendingKeywordSummary{
		Keyword:            mined.Phrase,
		Grade:              result.Scores.Grade,
		Opportunity:        result.Scores.Opportunity,
		Difficulty:         result.Scores.Difficulty,
		Volume:             result.SearchDemand.Volume,
		TrendingVideoCount: mined.VideoCount,
	}
	if len(result.TopVideos) > 0 {
		top := result.TopVideos[0].Video
		summary.TopVideoTitle = top.Title
		summary.TopVideoThumbnail = firstThumbnail(top.ThumbnailURLs)
	}
	return summary
}

func firstThumbnail(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// GetCachedTrendingKeywords returns the region's current durable keyword
// summaries verbatim; it never computes.
func (r *Registry) GetCachedTrendingKeywords(ctx context.Context, region string) ([]domain.TrendingKeywordSummary, error) {
	ref := r.reg.Get(region)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) ([]domain.TrendingKeywordSummary, error) {
		slot, err := inst.ensureSlot(ctx)
		if err != nil {
			return nil, err
		}
		return slot.Get().Keywords, nil
	})
}

// GetCachedTrendingVideos returns the region's current durable video
// projections verbatim; it never computes.
func (r *Registry) GetCachedTrendingVideos(ctx context.Context, region string) ([]domain.TrendingVideoProjection, error) {
	ref := r.reg.Get(region)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) ([]domain.TrendingVideoProjection, error) {
		slot, err := inst.ensureSlot(ctx)
		if err != nil {
			return nil, err
		}
		return slot.Get().Videos, nil
	})
}
