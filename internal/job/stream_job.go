package job

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/McZenith/liza.ai.server/internal/broker"
	"github.com/McZenith/liza.ai.server/internal/worker"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// StreamJobConfig bounds how many in-flight Work calls a StreamJob runs
// concurrently.
type StreamJobConfig struct {
	MaxWorkers int `yaml:"MaxWorkers"`
}

// StreamJobOptions wires a StreamJob to its worker and broker.
type StreamJobOptions struct {
	Config *StreamJobConfig
	Worker worker.StreamWorker
	Broker broker.Broker
}

// StreamJob repeatedly consumes one message from its Broker, hands it to
// its StreamWorker, and acks or nacks depending on the outcome. It is the
// process that drains the warm-up region queue.
type StreamJob struct {
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool
	limiter *xsync.Limiter
	worker  worker.StreamWorker
	broker  broker.Broker
}

// NewStreamJob constructs a StreamJob from options.
func NewStreamJob(opt *StreamJobOptions) *StreamJob {
	max := opt.Config.MaxWorkers
	if max <= 0 {
		max = 1
	}
	return &StreamJob{
		limiter: xsync.NewLimiter(max),
		worker:  opt.Worker,
		broker:  opt.Broker,
	}
}

func (s *StreamJob) Start(ctx context.Context) error {
	if s.running.Load() {
		return nil
	}
	s.running.Store(true)
	nctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	xsync.Go(func() { s.run(nctx) })
	return nil
}

func (s *StreamJob) Stop() error {
	if !s.running.Load() {
		return nil
	}
	s.running.Store(false)
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	return nil
}

func (s *StreamJob) run(ctx context.Context) {
	for {
		s.limiter.Acquire()
		if !s.running.Load() || ctx.Err() != nil {
			s.limiter.Release()
			return
		}
		s.wg.Add(1)
		xsync.Go(func() {
			if err := s.work(ctx); err != nil {
				slog.Warn("warm-up stream job error", slog.String("err", err.Error()))
			}
		})
	}
}

func (s *StreamJob) work(ctx context.Context) error {
	defer s.wg.Done()
	defer s.limiter.Release()

	msg, id, err := s.broker.Consume(ctx)
	if err != nil {
		return err
	}
	if msg == nil {
		s.worker.Sleep()
		return nil
	}
	msgs, err := s.worker.Work(ctx, msg)
	if err != nil {
		return s.broker.Nack(ctx, id)
	}
	if len(msgs) > 0 {
		if err := s.broker.Produce(ctx, msgs...); err != nil {
			return err
		}
	}
	return s.broker.Ack(ctx, id)
}
