// Package source wraps each external signal-source adapter (internal/
// adapters) in a thin per-key grain actor with its own in-process TTL
// cache. Every actor here shares the
// same behavioural contract: on a fresh cache hit, return it; otherwise
// call the adapter, cache the result, and return it; on adapter failure,
// log and return the type's neutral value, never propagate.
package source

import (
	"log/slog"
)

// logAdapterError is the single place every per-source actor reports an
// adapter failure before substituting its neutral value.
func logAdapterError(actor, key string, err error) {
	slog.Warn("source adapter failure, returning neutral value",
		slog.String("actor", actor), slog.String("key", key), slog.String("err", err.Error()))
}
