// Package trigger drives Workers on a cadence. CronTrigger is the concrete
// implementation that pivots the trending-analysis warm-up at 06:00 UTC.
package trigger

import (
	"context"

	"github.com/McZenith/liza.ai.server/internal/worker"
)

// Trigger fires registered Workers according to its own schedule.
type Trigger interface {
	AddWorkers(ctx context.Context, workers ...worker.Worker) (int, error)
}
