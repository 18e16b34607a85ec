package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// Actor is the generic shape every per-source actor shares: one cached
// value behind one adapter call, TTL-gated, falling back to a neutral
// value on adapter failure. V is the adapter's result type; fetch
// performs the real call.
type Actor[V any] struct {
	name    string
	key     string
	ttl     time.Duration
	neutral V
	fetch   func(ctx context.Context, key string) (V, error)
	cache   xsync.TTLCache[V]
}

// get returns the cached value if fresh, otherwise calls fetch, caches,
// and returns its result (or the neutral value on failure). It never
// returns an error itself; the only error a Registry.Get caller sees is
// ctx cancellation, surfaced by the owning grain.Ref's mailbox.
func (a *Actor[V]) get(ctx context.Context, now time.Time) (V, error) {
	if cached, ok := a.cache.Get(a.ttl, now); ok {
		cacheLookups.WithLabelValues(a.name, outcomeHit).Inc()
		return cached, nil
	}
	v, err := a.fetch(ctx, a.key)
	if err != nil {
		logAdapterError(a.name, a.key, err)
		cacheLookups.WithLabelValues(a.name, outcomeNeutral).Inc()
		v = a.neutral
	} else {
		cacheLookups.WithLabelValues(a.name, outcomeMiss).Inc()
	}
	a.cache.Set(v, now)
	return v, nil
}

// Registry bundles a grain.Registry[*Actor[V]] with the constructor
// closure every per-source actor kind needs: one instance per key,
// serialised through its own mailbox.
type Registry[V any] struct {
	reg *grain.Registry[*Actor[V]]
}

// NewRegistry builds a Registry for one actor kind. fetch receives the
// natural key (keyword, video id, channel id, region...) this actor kind
// is addressed by.
func NewRegistry[V any](name string, ttl time.Duration, neutral V, fetch func(ctx context.Context, key string) (V, error)) *Registry[V] {
	return &Registry[V]{
		reg: grain.NewRegistry(func(key string) *Actor[V] {
			return &Actor[V]{name: name, key: key, ttl: ttl, neutral: neutral, fetch: fetch}
		}),
	}
}

// Get activates (if needed) the actor for key and returns its current
// value, serialised through the instance mailbox.
func (r *Registry[V]) Get(ctx context.Context, key string, now time.Time) (V, error) {
	ref := r.reg.Get(key)
	return grain.Call(ctx, ref, func(ctx context.Context, a *Actor[V]) (V, error) {
		return a.get(ctx, now)
	})
}

// Len reports how many instances have been activated.
func (r *Registry[V]) Len() int { return r.reg.Len() }
