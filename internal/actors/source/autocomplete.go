package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
)

// AutocompleteTTL is the autocomplete actor's cache horizon.
const AutocompleteTTL = time.Hour

// NewAutocompleteRegistry builds a per-keyword autocomplete actor
// registry for one provider; youtube and google each get their own
// Registry instance.
func NewAutocompleteRegistry(provider string, adapter adapters.AutocompleteAdapter) *Registry[[]string] {
	return NewRegistry("autocomplete:"+provider, AutocompleteTTL, nil, func(ctx context.Context, keyword string) ([]string, error) {
		return adapter.Suggest(ctx, keyword)
	})
}
