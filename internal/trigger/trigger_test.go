package trigger

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingWorker struct {
	calls atomic.Int64
}

func (w *countingWorker) Work() {
	w.calls.Add(1)
}

func TestCronTrigger_FiresWorkerOnSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ct := NewCronTrigger(&CronTriggerOptions{Spec: "@every 50ms"})
	w := &countingWorker{}
	if _, err := ct.AddWorkers(ctx, w); err != nil {
		t.Fatalf("AddWorkers: %v", err)
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if w.calls.Load() > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if w.calls.Load() == 0 {
		t.Error("worker was never fired by the cron schedule")
	}
}

func TestCronTrigger_StopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ct := NewCronTrigger(&CronTriggerOptions{Spec: "@every 30ms"})
	w := &countingWorker{}
	if _, err := ct.AddWorkers(ctx, w); err != nil {
		t.Fatalf("AddWorkers: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
	stoppedAt := w.calls.Load()

	time.Sleep(150 * time.Millisecond)
	if w.calls.Load() != stoppedAt {
		t.Errorf("worker fired after context cancellation: %d calls before, %d after", stoppedAt, w.calls.Load())
	}
}
