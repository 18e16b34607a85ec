package flowx

import (
	"context"
	"time"
)

// Chunk splits items into groups of at most size, preserving order. Used
// to split long-tail candidates into batches of 3.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		size = len(items)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// RunBatches processes items in fixed-size batches, running each batch's
// items concurrently via proc and sleeping delay between batches. The
// sleep is skipped after the last batch: that decision is made by
// comparing the batch's position against the batch count, not by
// comparing slice references, so it can't become ambiguous if the caller
// regenerates its batch slice between calls.
func RunBatches[I any, O any](ctx context.Context, items []I, batchSize int, delay time.Duration, proc Processor[I, O]) []O {
	batches := Chunk(items, batchSize)
	out := make([]O, 0, len(items))
	for i, batch := range batches {
		out = append(out, RunParallel(ctx, batch, proc)...)
		isLast := i == len(batches)-1
		if isLast || delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return out
		case <-time.After(delay):
		}
	}
	return out
}
