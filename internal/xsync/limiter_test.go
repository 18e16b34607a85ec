package xsync

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestLimiter_BoundsConcurrency(t *testing.T) {
	l := NewLimiter(2)
	var inFlight int32
	var maxObserved int32
	done := make(chan struct{})

	for i := 0; i < 6; i++ {
		go func() {
			l.Acquire()
			defer l.Release()
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&maxObserved)
				if n <= old || atomic.CompareAndSwapInt32(&maxObserved, old, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 6; i++ {
		<-done
	}
	if atomic.LoadInt32(&maxObserved) > 2 {
		t.Errorf("max concurrent holders = %d, want <= 2", maxObserved)
	}
}

func TestGo_RecoversPanicWithoutHandlers(t *testing.T) {
	done := make(chan struct{})
	Go(func() {
		defer close(done)
		panic("boom")
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panicking goroutine never completed")
	}
}

func TestGo_InvokesHandlerOnPanic(t *testing.T) {
	caught := make(chan error, 1)
	Go(func() {
		panic("boom")
	}, func(err error) {
		caught <- err
	})
	select {
	case err := <-caught:
		if err == nil {
			t.Error("handler received nil error")
		}
	case <-time.After(time.Second):
		t.Fatal("panic handler never invoked")
	}
}

func TestWithRecover_ReturnsNilForNilFunc(t *testing.T) {
	if got := WithRecover(nil); got != nil {
		t.Error("WithRecover(nil) should return nil")
	}
}

func TestNoPool_SubmitsAndRuns(t *testing.T) {
	done := make(chan struct{})
	pool := NoPool()
	if err := pool.Submit(func() { close(done) }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("submitted function never ran")
	}
}
