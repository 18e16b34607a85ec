// Package scheduler wires the job/worker/trigger/broker fabric into the
// scheduled warm-up contract: run once at process start, then again
// every day at 06:00 UTC, retrying an individual region an hour later if
// its warm-up raised an error, with clean cancellation at shutdown.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/trending"
	"github.com/McZenith/liza.ai.server/internal/broker"
	"github.com/McZenith/liza.ai.server/internal/job"
	"github.com/McZenith/liza.ai.server/internal/message"
	"github.com/McZenith/liza.ai.server/internal/trigger"
	"github.com/McZenith/liza.ai.server/internal/worker"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// DailyWarmupSpec is the standard 6-field cron expression (seconds
// included) for the daily 06:00 UTC pivot.
const DailyWarmupSpec = "0 0 6 * * *"

// retryDelay is how long a failed region warm-up waits before it's
// re-enqueued.
const retryDelay = time.Hour

const idleSleep = 2 * time.Second

// Dependencies configure the warm-up job.
type Dependencies struct {
	Trending   *trending.Registry
	Broker     broker.Broker
	Regions    []string
	MaxWorkers int
}

// regionMsg is the broker payload naming one region to warm up.
type regionMsg struct {
	Region string
}

// Job runs the scheduled warm-up: a CronTrigger fires a Worker that
// re-enqueues every configured region once a day, and a StreamJob drains
// the queue through a StreamWorker that performs the actual warm-up and
// self-schedules a retry on failure.
type Job struct {
	deps   Dependencies
	cron   *trigger.CronTrigger
	stream *job.StreamJob
}

// New builds the warm-up Job. Call Start to seed the queue and begin the
// daily cron schedule; call Stop for clean shutdown.
func New(deps Dependencies) *Job {
	maxWorkers := deps.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	streamWorker := &streamWorker{trending: deps.Trending, broker: deps.Broker}
	return &Job{
		deps: deps,
		cron: trigger.NewCronTrigger(&trigger.CronTriggerOptions{Spec: DailyWarmupSpec}),
		stream: job.NewStreamJob(&job.StreamJobOptions{
			Config: &job.StreamJobConfig{MaxWorkers: maxWorkers},
			Worker: streamWorker,
			Broker: deps.Broker,
		}),
	}
}

// Start seeds the queue with every configured region (the "run at
// process start" leg), begins the StreamJob drain, and registers the
// daily cron trigger.
func (j *Job) Start(ctx context.Context) error {
	if err := j.enqueueAll(ctx); err != nil {
		return err
	}
	if err := j.stream.Start(ctx); err != nil {
		return err
	}
	_, err := j.cron.AddWorkers(ctx, dailyTrigger{job: j})
	return err
}

// Stop cancels the StreamJob drain; the cron trigger stops on ctx
// cancellation (wired at AddWorkers time).
func (j *Job) Stop() error {
	return j.stream.Stop()
}

func (j *Job) enqueueAll(ctx context.Context) error {
	msgs := make([]*message.Msg, 0, len(j.deps.Regions))
	for _, region := range j.deps.Regions {
		msgs = append(msgs, message.New(regionMsg{Region: region}))
	}
	if len(msgs) == 0 {
		return nil
	}
	return j.deps.Broker.Produce(ctx, msgs...)
}

// dailyTrigger is the worker.Worker the cron schedule fires; each fire
// re-enqueues every region for a fresh warm-up.
type dailyTrigger struct {
	job *Job
}

func (t dailyTrigger) Work() {
	if err := t.job.enqueueAll(context.Background()); err != nil {
		slog.Error("daily warm-up enqueue failed", slog.String("err", err.Error()))
	}
}

// streamWorker drains the region queue and runs the actual warm-up,
// self-scheduling a retry an hour later on failure rather than relying
// on broker-level redelivery (the in-process Memory broker has none).
type streamWorker struct {
	trending *trending.Registry
	broker   broker.Producer
}

func (w *streamWorker) Work(ctx context.Context, msg *message.Msg) ([]*message.Msg, error) {
	var payload regionMsg
	if err := msg.Unmarshal(&payload); err != nil {
		return nil, err
	}
	start := time.Now()
	if err := w.trending.WarmUp(ctx, payload.Region); err != nil {
		warmupFailures.WithLabelValues(payload.Region).Inc()
		slog.Warn("warm-up failed, retrying in 1h",
			slog.String("region", payload.Region), slog.String("err", err.Error()))
		w.scheduleRetry(ctx, payload)
		return nil, err
	}
	warmupDuration.WithLabelValues(payload.Region).Observe(time.Since(start).Seconds())
	return nil, nil
}

func (w *streamWorker) scheduleRetry(ctx context.Context, payload regionMsg) {
	xsync.Go(func() {
		select {
		case <-time.After(retryDelay):
			if err := w.broker.Produce(context.Background(), message.New(payload)); err != nil {
				slog.Error("warm-up retry enqueue failed",
					slog.String("region", payload.Region), slog.String("err", err.Error()))
			}
		case <-ctx.Done():
		}
	})
}

func (w *streamWorker) Sleep() {
	time.Sleep(idleSleep)
}

var _ worker.StreamWorker = (*streamWorker)(nil)
var _ worker.Worker = dailyTrigger{}
