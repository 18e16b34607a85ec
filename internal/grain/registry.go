package grain

import "sync"

// Registry lazily activates and retains one Ref[T] per string key,
// giving every actor kind the "at most one logical instance per identity"
// guarantee without a central scheduler: a concurrent map from key
// to actor instance, each with its own worker goroutine.
type Registry[T any] struct {
	mu      sync.Mutex
	refs    map[string]*Ref[T]
	factory func(key string) T
}

// NewRegistry creates a registry for one actor kind. factory constructs a
// new instance's dependencies the first time a key is referenced.
func NewRegistry[T any](factory func(key string) T) *Registry[T] {
	return &Registry[T]{
		refs:    make(map[string]*Ref[T]),
		factory: factory,
	}
}

// Get returns the Ref for key, constructing and retaining a new instance
// on first reference (lazy activation).
func (r *Registry[T]) Get(key string) *Ref[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ref, ok := r.refs[key]; ok {
		return ref
	}
	ref := newRef[T](r.factory(key))
	r.refs[key] = ref
	return ref
}

// Len reports how many instances have been activated, mostly useful for
// tests and metrics.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.refs)
}
