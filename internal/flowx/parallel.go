// Package flowx is a small Processor/RunParallel/RunBatches
// composition layer for the places the keyword
// pipeline fans work out over a homogeneous item list: phase-2 enrichment
// of the top-10 search results, and the keyword-analysis actor's channel
// lookups and batched long-tail pipeline. Heterogeneous fan-out (the four distinct phase-1
// sources) is composed directly with xfuture instead, since flowx's
// Parallel only models "same processor, many items."
package flowx

import (
	"context"
	"errors"
	"sync"

	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// Processor transforms one input item into one output item.
type Processor[I any, O any] func(ctx context.Context, item I) (O, error)

// itemResult pairs a processed output with the error from processing it,
// stored at the item's input index so outputs keep input order.
type itemResult[O any] struct {
	value O
	err   error
	ok    bool
}

// RunParallel runs proc over every item concurrently and returns the
// successful outputs in input order, silently dropping items whose
// processor failed (the enrichment fan-out thus drops failed videos, and
// in the batched long-tail fan-out a failed candidate is simply absent
// from the result).
func RunParallel[I any, O any](ctx context.Context, items []I, proc Processor[I, O]) []O {
	if len(items) == 0 {
		return nil
	}
	results := make([]itemResult[O], len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		submit(func(i int, item I) func() {
			return func() {
				defer wg.Done()
				v, err := proc(ctx, item)
				results[i] = itemResult[O]{value: v, err: err, ok: err == nil}
			}
		}(i, item))
	}
	wg.Wait()

	out := make([]O, 0, len(items))
	for _, r := range results {
		if r.ok {
			out = append(out, r.value)
		}
	}
	return out
}

// submit hands a fan-out task to the shared bounded pool, falling back to
// running it inline if the pool refuses it (full or released), so a
// saturated pool degrades to serial progress instead of dropping work.
func submit(task func()) {
	if err := xsync.Default().Submit(task); err != nil {
		task()
	}
}

// RunParallelAll is RunParallel but fails the whole call if any item
// fails, for the rare fan-out where partial success isn't acceptable.
func RunParallelAll[I any, O any](ctx context.Context, items []I, proc Processor[I, O]) ([]O, error) {
	if len(items) == 0 {
		return nil, nil
	}
	results := make([]itemResult[O], len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		submit(func(i int, item I) func() {
			return func() {
				defer wg.Done()
				v, err := proc(ctx, item)
				results[i] = itemResult[O]{value: v, err: err, ok: err == nil}
			}
		}(i, item))
	}
	wg.Wait()

	out := make([]O, 0, len(items))
	errs := make([]error, 0)
	for _, r := range results {
		if r.ok {
			out = append(out, r.value)
		} else if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
