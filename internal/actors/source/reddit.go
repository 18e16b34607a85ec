package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
)

// RedditTTL is the reddit actor's cache horizon.
const RedditTTL = 6 * time.Hour

// NewRedditRegistry builds the per-query community-forum actor registry.
func NewRedditRegistry(adapter adapters.RedditAdapter) *Registry[[]adapters.RedditPost] {
	return NewRegistry("reddit", RedditTTL, nil, func(ctx context.Context, query string) ([]adapters.RedditPost, error) {
		return adapter.Search(ctx, query)
	})
}
