package grain

import "errors"

// The three error kinds surfaced to callers outside the actor fabric.
// Everything else is swallowed at the source-adapter boundary.
var (
	// NotFound means a video or channel id did not resolve.
	NotFound = errors.New("grain: not found")
	// Persist means a durable-slot commit failed; the in-memory result
	// the caller already has is still usable.
	Persist = errors.New("grain: persist failed")
	// RouteUnavailable means the runtime could not activate an actor
	// because its mounted durable slot's store was unreachable.
	RouteUnavailable = errors.New("grain: route unavailable")
)
