package xsync

// Limiter is a counting semaphore bounding concurrent operations, used by
// job.StreamJob to cap how many messages it works on at once.
type Limiter struct {
	semaphore chan struct{}
}

// NewLimiter creates a Limiter allowing at most max concurrent holders.
func NewLimiter(max int) *Limiter {
	if max <= 0 {
		panic("xsync: limiter max must be > 0")
	}
	return &Limiter{semaphore: make(chan struct{}, max)}
}

// Acquire blocks until a slot is available.
func (l *Limiter) Acquire() {
	l.semaphore <- struct{}{}
}

// Release frees a slot acquired with Acquire.
func (l *Limiter) Release() {
	<-l.semaphore
}
