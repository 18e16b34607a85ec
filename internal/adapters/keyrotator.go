package adapters

import (
	"errors"
	"sync"
)

// ErrQuotaExhausted is returned by Rotate when the pool holds a single
// key, so there is no other key to rotate to.
var ErrQuotaExhausted = errors.New("adapters: all keys exhausted their quota")

// KeyRotator is the process-wide, mutex-protected current-key index the
// ad-network (keyword-planner) adapter rotates on quota-exceeded. The
// rotator itself does not count how many keys a request has used; the
// ad-network request loop (doAdNetwork) tries each key at most once per
// request and fails once every attempt has hit the quota.
type KeyRotator struct {
	mu      sync.Mutex
	keys    []string
	current int
}

// NewKeyRotator builds a rotator over a fixed, non-empty key pool.
func NewKeyRotator(keys []string) *KeyRotator {
	if len(keys) == 0 {
		panic("adapters: key rotator needs at least one key")
	}
	return &KeyRotator{keys: keys}
}

// Current returns the key currently in use.
func (r *KeyRotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keys[r.current]
}

// Rotate advances to the next key in the pool (wrapping around) and
// returns it. A single-key pool cannot rotate and returns
// ErrQuotaExhausted; a multi-key pool always rotates and does not detect
// a completed cycle.
func (r *KeyRotator) Rotate() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := r.current
	next := (r.current + 1) % len(r.keys)
	if next == start && len(r.keys) > 1 {
		return "", ErrQuotaExhausted
	}
	if len(r.keys) == 1 {
		return "", ErrQuotaExhausted
	}
	r.current = next
	return r.keys[r.current], nil
}

// Len reports the size of the key pool.
func (r *KeyRotator) Len() int {
	return len(r.keys)
}
