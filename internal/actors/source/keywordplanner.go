package source

import (
	"context"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// KeywordPlannerTTL is "process lifetime": once fetched, a
// keyword's monthly ad-network metrics never expire for this process.
const KeywordPlannerTTL = 0

// NewKeywordPlannerRegistry builds the per-keyword ad-network metrics
// actor registry. Long-tail candidate ideas go through the adapter
// directly from the keyword-analysis actor rather than this per-keyword
// cache, since ideas are keyed by the seed but fan out to many distinct
// candidate keywords.
func NewKeywordPlannerRegistry(adapter adapters.KeywordPlannerAdapter) *Registry[*domain.KeywordMetrics] {
	return NewRegistry("keyword-planner", KeywordPlannerTTL, nil, func(ctx context.Context, keyword string) (*domain.KeywordMetrics, error) {
		return adapter.Metrics(ctx, keyword)
	})
}
