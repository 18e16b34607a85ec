package xfuture

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGo_ReturnsValue(t *testing.T) {
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		return 42, nil
	})
	v, err := task.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 42 {
		t.Errorf("v = %d, want 42", v)
	}
	if task.State() != StateSucceeded {
		t.Errorf("State() = %v, want StateSucceeded", task.State())
	}
}

func TestGo_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		return 0, wantErr
	})
	_, err := task.Get()
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if task.State() != StateFailed {
		t.Errorf("State() = %v, want StateFailed", task.State())
	}
}

func TestGetWithTimeout_ExpiresBeforeCompletion(t *testing.T) {
	block := make(chan struct{})
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		select {
		case <-block:
			return 1, nil
		case <-interrupt:
			return 0, ErrCancelled
		}
	})
	_, err := task.GetWithTimeout(10 * time.Millisecond)
	if !errors.Is(err, ErrTimedOut) {
		t.Errorf("err = %v, want ErrTimedOut", err)
	}
	close(block)
}

func TestGetWithTimeout_ReturnsFastResult(t *testing.T) {
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		return 7, nil
	})
	v, err := task.GetWithTimeout(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("GetWithTimeout: %v", err)
	}
	if v != 7 {
		t.Errorf("v = %d, want 7", v)
	}
}

func TestGetWithContext_CancellationJoinsContextError(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		select {
		case <-block:
			return 1, nil
		case <-interrupt:
			return 0, ErrCancelled
		}
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := task.GetWithContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want to wrap context.DeadlineExceeded", err)
	}
}

func TestCancel_ReportsCancelledOnlyOnce(t *testing.T) {
	block := make(chan struct{})
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		<-interrupt
		return 0, ErrCancelled
	})
	first := task.Cancel(true)
	second := task.Cancel(true)
	if !first {
		t.Error("first Cancel() = false, want true")
	}
	if second {
		t.Error("second Cancel() = true, want false (already terminal)")
	}
	close(block)
}

func TestIsDone_ReflectsCompletion(t *testing.T) {
	gate := make(chan struct{})
	task := Go(func(interrupt <-chan struct{}) (int, error) {
		<-gate
		return 1, nil
	})
	if task.IsDone() {
		t.Error("IsDone() = true before the task was released")
	}
	close(gate)
	task.Get()
	if !task.IsDone() {
		t.Error("IsDone() = false after Get() returned")
	}
}
