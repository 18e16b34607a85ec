package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/McZenith/liza.ai.server/internal/broker"
	"github.com/McZenith/liza.ai.server/internal/message"
)

type capturingWorker struct {
	mu      sync.Mutex
	handled []string
	failOn  string
}

func (w *capturingWorker) Work(_ context.Context, msg *message.Msg) ([]*message.Msg, error) {
	var payload string
	msg.Unmarshal(&payload)
	if payload == w.failOn {
		return nil, errors.New("forced failure")
	}
	w.mu.Lock()
	w.handled = append(w.handled, payload)
	w.mu.Unlock()
	return nil, nil
}

func (w *capturingWorker) Sleep() {
	time.Sleep(5 * time.Millisecond)
}

func (w *capturingWorker) snapshot() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.handled))
	copy(out, w.handled)
	return out
}

func TestStreamJob_DrainsQueuedMessages(t *testing.T) {
	b := broker.NewMemory()
	w := &capturingWorker{}
	sj := NewStreamJob(&StreamJobOptions{
		Config: &StreamJobConfig{MaxWorkers: 2},
		Worker: w,
		Broker: b,
	})

	b.Produce(context.Background(), message.New("a"), message.New("b"), message.New("c"))

	if err := sj.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer sj.Stop()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(w.snapshot()) == 3 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := w.snapshot()
	if len(got) != 3 {
		t.Fatalf("handled %d messages, want 3 (got %v)", len(got), got)
	}
}

func TestStreamJob_StopIsIdempotent(t *testing.T) {
	b := broker.NewMemory()
	w := &capturingWorker{}
	sj := NewStreamJob(&StreamJobOptions{
		Config: &StreamJobConfig{MaxWorkers: 1},
		Worker: w,
		Broker: b,
	})
	if err := sj.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := sj.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}
	if err := sj.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestStreamJob_FailedMessageIsNacked(t *testing.T) {
	b := broker.NewMemory()
	w := &capturingWorker{failOn: "bad"}
	sj := NewStreamJob(&StreamJobOptions{
		Config: &StreamJobConfig{MaxWorkers: 1},
		Worker: w,
		Broker: b,
	})
	b.Produce(context.Background(), message.New("bad"), message.New("good"))

	if err := sj.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer sj.Stop()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(w.snapshot()) == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	got := w.snapshot()
	if len(got) != 1 || got[0] != "good" {
		t.Errorf("handled = %v, want [good] (the failing message should have been dropped after Nack, not blocked or retried indefinitely)", got)
	}
}
