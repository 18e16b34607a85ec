package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// GoogleVideoTTL is the google-video actor's cache horizon; it shares
// the same per-query bucket other pass-through query actors use.
const GoogleVideoTTL = 6 * time.Hour

// NewGoogleVideoRegistry builds the per-query general-web video search
// actor registry.
func NewGoogleVideoRegistry(adapter adapters.GoogleVideoAdapter) *Registry[[]domain.Video] {
	return NewRegistry("google-video", GoogleVideoTTL, nil, func(ctx context.Context, query string) ([]domain.Video, error) {
		return adapter.Search(ctx, query)
	})
}
