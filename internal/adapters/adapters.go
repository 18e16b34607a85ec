// Package adapters defines the interface contracts for the ten external
// signal-source collaborators. Wire formats, HTML-scraping heuristics,
// and API-key rotation bookkeeping live behind these interfaces; every
// per-source actor (internal/actors/source) and the research
// orchestrator depend on the interfaces, not on any concrete client.
// Requests are synchronous and idempotent. A failing call returns a
// plain error, which every per-source actor swallows into a neutral
// value; adapters themselves are never responsible for that swallowing.
package adapters

import (
	"context"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// SearchAdapter is the video platform's search endpoint.
type SearchAdapter interface {
	// Search returns up to max videos ranked by relevance, plus the
	// platform's reported total result count.
	Search(ctx context.Context, keyword string, max int) ([]domain.Video, int64, error)
}

// AutocompleteAdapter is one of the two autocomplete providers; the
// youtube and google providers are distinct actor instances over the
// same interface.
type AutocompleteAdapter interface {
	Suggest(ctx context.Context, keyword string) ([]string, error)
}

// KeywordPlannerAdapter is the ad-network keyword-ideas service.
type KeywordPlannerAdapter interface {
	// Metrics returns the monthly-volume/competition record for exactly
	// keyword, or nil if the network has no data for it.
	Metrics(ctx context.Context, keyword string) (*domain.KeywordMetrics, error)
	// Ideas returns up to limit related keyword-metrics records, the
	// candidate pool the long-tail analysis filters and unions.
	Ideas(ctx context.Context, keyword string, limit int) ([]domain.KeywordMetrics, error)
}

// TrendsAdapter is the trends service.
type TrendsAdapter interface {
	Trends(ctx context.Context, keyword, region string) (*domain.TrendData, error)
}

// VideoDetailsAdapter resolves a video id to its full Video record.
type VideoDetailsAdapter interface {
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
}

// ChannelAdapter is the channel-details/recent-videos source.
type ChannelAdapter interface {
	GetChannel(ctx context.Context, id string) (*domain.Channel, error)
	// GetRecentVideos returns the channel's most recent uploads, newest
	// first, capped at max.
	GetRecentVideos(ctx context.Context, channelID string, max int) ([]domain.Video, error)
}

// TranscriptAdapter is the transcript-scraper source.
type TranscriptAdapter interface {
	GetTranscript(ctx context.Context, videoID string) (*domain.Transcript, error)
}

// CommentsAdapter is the comments source.
type CommentsAdapter interface {
	GetComments(ctx context.Context, videoID string, max int) ([]domain.Comment, error)
}

// RedditPost is one community-forum result surfaced by search-reddit:
// the minimal shape the boundary layer passes through verbatim.
type RedditPost struct {
	ID          string
	Title       string
	Body        string
	Permalink   string
	Upvotes     int64
	NumComments int64
}

// RedditAdapter is the community-forum source.
type RedditAdapter interface {
	Search(ctx context.Context, query string) ([]RedditPost, error)
}

// GoogleVideoAdapter is the general-web video-search source, cached
// per query like the other pass-through query sources.
type GoogleVideoAdapter interface {
	Search(ctx context.Context, query string) ([]domain.Video, error)
}

// TrendingVideosAdapter is the video platform's regional trending feed,
// consumed once per warm-up.
type TrendingVideosAdapter interface {
	GetTrending(ctx context.Context, region string, max int) ([]domain.Video, error)
}

// Sources bundles every adapter dependency the actor fabric needs,
// constructed once at process bootstrap and injected into each
// per-source actor registry (internal/actors/source).
type Sources struct {
	Search              SearchAdapter
	YouTubeAutocomplete AutocompleteAdapter
	GoogleAutocomplete  AutocompleteAdapter
	KeywordPlanner      KeywordPlannerAdapter
	Trends              TrendsAdapter
	VideoDetails        VideoDetailsAdapter
	Channel             ChannelAdapter
	Transcript          TranscriptAdapter
	Comments            CommentsAdapter
	Reddit              RedditAdapter
	GoogleVideo         GoogleVideoAdapter
	Trending            TrendingVideosAdapter
}
