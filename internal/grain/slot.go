package grain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/McZenith/liza.ai.server/internal/store"
)

// Slot is an actor's durable state: read once at activation, written
// through on explicit Commit. Values evolve by adding fields; a
// missing field on load decodes to its zero value.
type Slot[T any] struct {
	store store.Store
	kind  string
	key   string
	value T
	ready bool
}

// MountSlot activates a durable slot, loading its current value (or the
// zero value if none exists yet). Fails with RouteUnavailable when the
// underlying store itself fails or the stored record cannot be decoded,
// never for a simple not-found.
func MountSlot[T any](ctx context.Context, s store.Store, kind, key string) (*Slot[T], error) {
	slot := &Slot[T]{store: s, kind: kind, key: key}
	raw, err := s.Load(ctx, kind, key)
	switch {
	case err == nil:
		if uErr := json.Unmarshal(raw, &slot.value); uErr != nil {
			return nil, fmt.Errorf("%w: decoding slot %s/%s: %v", RouteUnavailable, kind, key, uErr)
		}
	case errors.Is(err, store.ErrNotFound):
		// no record yet; slot.value stays at its zero value
	default:
		return nil, fmt.Errorf("%w: loading slot %s/%s: %v", RouteUnavailable, kind, key, err)
	}
	slot.ready = true
	return slot, nil
}

// Get returns the current in-memory value of the slot.
func (s *Slot[T]) Get() T {
	return s.value
}

// Commit writes value through to the store and, on success, updates the
// in-memory value. Durable writes only ever happen with a complete,
// already-produced result; callers must not call Commit with a
// partially constructed value.
func (s *Slot[T]) Commit(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding slot %s/%s: %v", Persist, s.kind, s.key, err)
	}
	if err := s.store.Commit(ctx, s.kind, s.key, raw); err != nil {
		return fmt.Errorf("%w: %v", Persist, err)
	}
	s.value = value
	return nil
}
