// Package worker defines the unit of work a Trigger drives and a
// StreamJob repeatedly invokes against a Broker: the scheduling fabric
// behind the scheduled warm-up worker.
package worker

import (
	"context"

	"github.com/McZenith/liza.ai.server/internal/message"
)

// Worker is a no-argument unit of work invoked by a Trigger (e.g. on a
// cron schedule).
type Worker interface {
	Work()
}

// StreamWorker consumes one message from a Broker and optionally produces
// follow-up messages. Returning a non-nil error nacks the input message.
type StreamWorker interface {
	Work(ctx context.Context, msg *message.Msg) ([]*message.Msg, error)
	Sleep()
}
