package xsync

import (
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// Pool is the common interface every goroutine pool implementation
// satisfies, so callers can submit work without caring whether it lands
// on a raw goroutine or a bounded ants pool.
type Pool interface {
	Submit(f func()) error
}

var defaultPool atomic.Value

// Default returns the package-level default pool.
func Default() Pool {
	return defaultPool.Load().(Pool)
}

// SetDefault replaces the package-level default pool.
func SetDefault(p Pool) {
	if p == nil {
		return
	}
	defaultPool.Store(p)
}

func init() {
	defaultPool.Store(NoPool())
}

type poolAdapter func(f func()) error

func (p poolAdapter) Submit(f func()) error { return p(f) }

// NoPool returns a Pool that launches an unbounded goroutine per
// submission, with panic recovery. Used for tests and for call sites that
// don't need bounding.
func NoPool() Pool {
	return poolAdapter(func(f func()) error {
		Go(f)
		return nil
	})
}

// OfAnts adapts a github.com/panjf2000/ants/v2 pool, the bounded
// implementation cmd/server installs as the default pool, which every
// flowx fan-out (phase-2 enrichment, channel lookups, long-tail batches)
// submits to.
func OfAnts(pool *ants.Pool) Pool {
	if pool == nil {
		panic("xsync: ants pool is nil")
	}
	return poolAdapter(func(f func()) error {
		return pool.Submit(f)
	})
}
