// Package research implements the research orchestrator actor: a
// per-keyword actor that fans phase-1 out across the four source actors
// (search, two autocompletes, keyword-planner), then runs phase-2 fast
// enrichment over the first 10 results, memoising the composed result
// for an hour.
package research

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/flowx"
	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/xfuture"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// MemoTTL is the orchestrator's in-process memo horizon.
const MemoTTL = time.Hour

// searchMax and enrichTopN bound phase-1's search call and phase-2's
// fast-enrichment fan-out.
const (
	searchMax  = 50
	enrichTopN = 10
)

// Dependencies are the per-source actor registries the orchestrator fans
// phase-1 out across, plus the enrichment actor used for phase-2.
type Dependencies struct {
	Search              *source.Registry[source.SearchResult]
	YouTubeAutocomplete *source.Registry[[]string]
	GoogleAutocomplete  *source.Registry[[]string]
	KeywordPlanner      *source.Registry[*domain.KeywordMetrics]
	Enrichment          *enrichment.Registry
}

type instance struct {
	keyword string
	deps    Dependencies
	memo    xsync.TTLCache[*domain.ResearchResult]
}

// Registry is the per-keyword research orchestrator actor registry.
type Registry struct {
	reg *grain.Registry[*instance]
}

// NewRegistry builds the research orchestrator registry.
func NewRegistry(deps Dependencies) *Registry {
	return &Registry{
		reg: grain.NewRegistry(func(keyword string) *instance {
			return &instance{keyword: keyword, deps: deps}
		}),
	}
}

// Research returns the memoised research result for keyword, computing a
// fresh one through the two-phase protocol if the memo is stale.
func (r *Registry) Research(ctx context.Context, keyword string) (*domain.ResearchResult, error) {
	ref := r.reg.Get(keyword)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (*domain.ResearchResult, error) {
		return inst.research(ctx)
	})
}

func (inst *instance) research(ctx context.Context) (*domain.ResearchResult, error) {
	now := time.Now()
	if cached, ok := inst.memo.Get(MemoTTL, now); ok {
		return cached, nil
	}

	searchFuture := xfuture.Go(func(<-chan struct{}) (source.SearchResult, error) {
		return inst.deps.Search.Get(ctx, inst.keyword, now)
	})
	youtubeFuture := xfuture.Go(func(<-chan struct{}) ([]string, error) {
		return inst.deps.YouTubeAutocomplete.Get(ctx, inst.keyword, now)
	})
	googleFuture := xfuture.Go(func(<-chan struct{}) ([]string, error) {
		return inst.deps.GoogleAutocomplete.Get(ctx, inst.keyword, now)
	})
	metricsFuture := xfuture.Go(func(<-chan struct{}) (*domain.KeywordMetrics, error) {
		return inst.deps.KeywordPlanner.Get(ctx, inst.keyword, now)
	})

	searchResult, err := searchFuture.GetWithContext(ctx)
	if err != nil {
		return nil, err
	}
	youtubeAutocomplete, _ := youtubeFuture.GetWithContext(ctx)
	googleAutocomplete, _ := googleFuture.GetWithContext(ctx)
	metrics, _ := metricsFuture.GetWithContext(ctx)

	top := searchResult.Videos
	if len(top) > enrichTopN {
		top = top[:enrichTopN]
	}
	enriched := flowx.RunParallel(ctx, top, func(ctx context.Context, v domain.Video) (domain.EnrichedVideo, error) {
		ev, err := inst.deps.Enrichment.Fast(ctx, v.ID)
		if err != nil {
			return domain.EnrichedVideo{}, err
		}
		return *ev, nil
	})

	result := &domain.ResearchResult{
		Keyword:             inst.keyword,
		ProducedAt:          now,
		EnrichedVideos:      enriched,
		YouTubeAutocomplete: youtubeAutocomplete,
		GoogleAutocomplete:  googleAutocomplete,
		KeywordMetrics:      metrics,
		TotalSearchResults:  searchResult.Total,
	}
	inst.memo.Set(result, now)
	return result, nil
}

// PartialSource names one of the three sources the streaming variant
// yields a partial result for.
type PartialSource string

const (
	PartialSearch              PartialSource = "search"
	PartialYouTubeAutocomplete PartialSource = "youtube-autocomplete"
	PartialGoogleAutocomplete  PartialSource = "google-autocomplete"
)

// Partial is one streamed research fragment: exactly one of Search or
// Suggestions is populated, selected by Source.
type Partial struct {
	Source      PartialSource
	Search      source.SearchResult
	Suggestions []string
}

// StreamResearch yields one Partial per source (search, then each
// autocomplete provider) as each completes, in completion order, then
// closes the channel; it does not memoise and cannot be resubscribed to.
// The channel closes early if ctx is cancelled.
func (r *Registry) StreamResearch(ctx context.Context, keyword string) <-chan Partial {
	out := make(chan Partial, 3)
	ref := r.reg.Get(keyword)
	xsync.Go(func() {
		defer close(out)
		_, _ = grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (struct{}, error) {
			inst.streamResearch(ctx, out)
			return struct{}{}, nil
		})
	})
	return out
}

// streamResearch fans the three sources out onto a shared completion
// channel and relays each success to out in completion order, the
// "no replay, no resubscribe" streaming variant of the orchestrator.
func (inst *instance) streamResearch(ctx context.Context, out chan<- Partial) {
	now := time.Now()
	completions := make(chan Partial, 3)

	fetchOne := func(src PartialSource, fn func() (Partial, error)) {
		xsync.Go(func() {
			p, err := fn()
			if err != nil {
				// per-source actors never return errors except on ctx
				// cancellation; the outer select's ctx.Done() case
				// handles that, so just drop here.
				return
			}
			completions <- p
		})
	}

	fetchOne(PartialSearch, func() (Partial, error) {
		res, err := inst.deps.Search.Get(ctx, inst.keyword, now)
		return Partial{Source: PartialSearch, Search: res}, err
	})
	fetchOne(PartialYouTubeAutocomplete, func() (Partial, error) {
		sugg, err := inst.deps.YouTubeAutocomplete.Get(ctx, inst.keyword, now)
		return Partial{Source: PartialYouTubeAutocomplete, Suggestions: sugg}, err
	})
	fetchOne(PartialGoogleAutocomplete, func() (Partial, error) {
		sugg, err := inst.deps.GoogleAutocomplete.Get(ctx, inst.keyword, now)
		return Partial{Source: PartialGoogleAutocomplete, Suggestions: sugg}, err
	})

	for i := 0; i < 3; i++ {
		select {
		case p := <-completions:
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
