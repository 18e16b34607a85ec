package source

import (
	"context"
	"strings"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// TrendsTTL is the trends actor's cache horizon.
const TrendsTTL = time.Hour

// TrendsKey builds the composite (keyword, region) identity the trends
// actor is keyed by.
func TrendsKey(keyword, region string) string {
	return keyword + "\x00" + region
}

func splitTrendsKey(key string) (keyword, region string) {
	parts := strings.SplitN(key, "\x00", 2)
	if len(parts) != 2 {
		return key, ""
	}
	return parts[0], parts[1]
}

// NewTrendsRegistry builds the per-(keyword,region) trends actor
// registry.
func NewTrendsRegistry(adapter adapters.TrendsAdapter) *Registry[*domain.TrendData] {
	return NewRegistry("trends", TrendsTTL, nil, func(ctx context.Context, key string) (*domain.TrendData, error) {
		keyword, region := splitTrendsKey(key)
		return adapter.Trends(ctx, keyword, region)
	})
}
