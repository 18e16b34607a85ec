// Package enrichment implements the enrichment actor: keyed by
// video id, it composes the details/transcript/comments/channel
// per-source actors into one bundled EnrichedVideo, exposing Full (used
// when a single video is asked for directly) and Fast (used by the
// research orchestrator's phase-2 fan-out, which skips the transcript to
// bound latency).
package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/xfuture"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// fastCommentsLimit and fullCommentsLimit are the top-N comments each
// method bundles.
const (
	fastCommentsLimit = 20
	fullCommentsLimit = 50
)

// Dependencies are the per-source actor registries and the raw video
// details adapter the enrichment actor composes over.
type Dependencies struct {
	Details    adapters.VideoDetailsAdapter
	Transcript *source.Registry[*domain.Transcript]
	Comments   *source.Registry[[]domain.Comment]
	Channel    *source.ChannelRegistry
}

// detailsTTL is effectively process lifetime:
// videos are effectively immutable once published.
const detailsTTL = 0

type instance struct {
	id      string
	deps    Dependencies
	details xsync.TTLCache[*domain.Video]
	full    xsync.TTLCache[*domain.EnrichedVideo]
	fast    xsync.TTLCache[*domain.EnrichedVideo]
}

// Registry is the per-video-id enrichment actor registry.
type Registry struct {
	reg *grain.Registry[*instance]
}

// NewRegistry builds the enrichment actor registry.
func NewRegistry(deps Dependencies) *Registry {
	return &Registry{
		reg: grain.NewRegistry(func(id string) *instance {
			return &instance{id: id, deps: deps}
		}),
	}
}

// Full fetches details, transcript, and top-50 comments in parallel, then
// best-effort channel details; it fails with grain.NotFound if details
// don't resolve.
func (r *Registry) Full(ctx context.Context, videoID string) (*domain.EnrichedVideo, error) {
	ref := r.reg.Get(videoID)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (*domain.EnrichedVideo, error) {
		return inst.get(ctx, true)
	})
}

// Fast fetches details and top-20 comments in parallel, skipping the
// transcript; used to bound phase-2 research latency.
func (r *Registry) Fast(ctx context.Context, videoID string) (*domain.EnrichedVideo, error) {
	ref := r.reg.Get(videoID)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *instance) (*domain.EnrichedVideo, error) {
		return inst.get(ctx, false)
	})
}

func (inst *instance) get(ctx context.Context, full bool) (*domain.EnrichedVideo, error) {
	now := time.Now()
	cache := &inst.fast
	if full {
		cache = &inst.full
	}
	if cached, ok := cache.Get(detailsTTL, now); ok {
		return cached, nil
	}

	detailsFuture := xfuture.Go(func(<-chan struct{}) (*domain.Video, error) {
		return inst.fetchDetails(ctx, now)
	})
	commentsLimit := fastCommentsLimit
	if full {
		commentsLimit = fullCommentsLimit
	}
	commentsFuture := xfuture.Go(func(<-chan struct{}) ([]domain.Comment, error) {
		comments, err := inst.deps.Comments.Get(ctx, inst.id, now)
		if err != nil {
			return nil, err
		}
		if len(comments) > commentsLimit {
			comments = comments[:commentsLimit]
		}
		return comments, nil
	})
	var transcriptFuture *xfuture.Task[*domain.Transcript]
	if full {
		transcriptFuture = xfuture.Go(func(<-chan struct{}) (*domain.Transcript, error) {
			return inst.deps.Transcript.Get(ctx, inst.id, now)
		})
	}

	details, err := detailsFuture.GetWithContext(ctx)
	if err != nil {
		return nil, err
	}
	comments, _ := commentsFuture.GetWithContext(ctx)
	var transcript *domain.Transcript
	if transcriptFuture != nil {
		transcript, _ = transcriptFuture.GetWithContext(ctx)
	}

	if details == nil {
		return nil, fmt.Errorf("%w: video %s", grain.NotFound, inst.id)
	}

	channel, _ := inst.deps.Channel.Details(ctx, details.ChannelID, now)

	ev := &domain.EnrichedVideo{
		Video:      *details,
		Transcript: transcript,
		Comments:   comments,
		Channel:    channel,
	}
	cache.Set(ev, now)
	return ev, nil
}

// fetchDetails resolves this instance's video details, cached for the
// process lifetime; adapter failure or a nil video both mean "missing"
// (the caller turns that into grain.NotFound).
func (inst *instance) fetchDetails(ctx context.Context, now time.Time) (*domain.Video, error) {
	if cached, ok := inst.details.Get(detailsTTL, now); ok {
		return cached, nil
	}
	v, err := inst.deps.Details.GetVideo(ctx, inst.id)
	if err != nil || v == nil {
		return nil, nil
	}
	inst.details.Set(v, now)
	return v, nil
}
