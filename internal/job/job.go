// Package job composes a Trigger/StreamWorker/Broker into a start/stop
// lifecycle: the scheduling fabric behind the scheduled warm-up
// worker.
package job

import "context"

// Job is a started/stopped background process.
type Job interface {
	Start(ctx context.Context) error
	Stop() error
}
