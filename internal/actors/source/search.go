package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// SearchTTL is the search actor's cache horizon.
const SearchTTL = 10 * time.Minute

// SearchResult is the cached search-actor payload: top-50 videos plus
// the platform's reported total result count.
type SearchResult struct {
	Videos []domain.Video
	Total  int64
}

// NewSearchRegistry builds the per-keyword search actor registry.
func NewSearchRegistry(adapter adapters.SearchAdapter) *Registry[SearchResult] {
	return NewRegistry("search", SearchTTL, SearchResult{}, func(ctx context.Context, keyword string) (SearchResult, error) {
		videos, total, err := adapter.Search(ctx, keyword, 50)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Videos: videos, Total: total}, nil
	})
}
