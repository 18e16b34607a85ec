package grain

import "context"

// Ref serialises every call against one actor instance: its worker
// goroutine drains a single mailbox channel, so two calls against the
// same key never interleave while calls against different keys run
// fully concurrently. A call that itself awaits another actor (even
// the same kind under a different key) merely blocks its own worker
// goroutine, never the whole runtime.
type Ref[T any] struct {
	instance T
	mailbox  chan func()
}

func newRef[T any](instance T) *Ref[T] {
	r := &Ref[T]{instance: instance, mailbox: make(chan func(), 16)}
	go r.loop()
	return r
}

func (r *Ref[T]) loop() {
	for task := range r.mailbox {
		task()
	}
}

// Call schedules fn to run exclusively against this ref's instance and
// blocks for its result. fn itself may suspend on further awaited
// sub-calls; the ref holds no lock on shared state while suspended, it simply occupies its own worker goroutine.
func Call[T any, R any](ctx context.Context, ref *Ref[T], fn func(context.Context, T) (R, error)) (R, error) {
	type result struct {
		value R
		err   error
	}
	done := make(chan result, 1)
	ref.mailbox <- func() {
		v, err := fn(ctx, ref.instance)
		done <- result{v, err}
	}
	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
