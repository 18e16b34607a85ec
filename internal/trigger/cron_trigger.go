package trigger

import (
	"context"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/McZenith/liza.ai.server/internal/worker"
)

// CronTriggerOptions configures a CronTrigger. Spec is a standard cron
// expression with seconds, e.g. "0 0 6 * * *" for the daily 06:00 UTC
// warm-up pivot.
type CronTriggerOptions struct {
	Spec string `yaml:"Spec"`
}

// CronTrigger drives Workers on a github.com/robfig/cron/v3 schedule.
type CronTrigger struct {
	spec string
	cron *cron.Cron
	once sync.Once
}

// NewCronTrigger creates a CronTrigger with its own internal cron
// scheduler running in UTC.
func NewCronTrigger(opt *CronTriggerOptions) *CronTrigger {
	return &CronTrigger{
		spec: opt.Spec,
		cron: cron.New(cron.WithSeconds(), cron.WithLocation(timeUTC())),
	}
}

// NewCronTriggerWithCron lets callers share one cron.Cron instance across
// several triggers.
func NewCronTriggerWithCron(c *cron.Cron, opt *CronTriggerOptions) *CronTrigger {
	return &CronTrigger{spec: opt.Spec, cron: c}
}

func (c *CronTrigger) AddWorkers(ctx context.Context, workers ...worker.Worker) (int, error) {
	errs := make([]error, 0, len(workers))
	count := 0
	for _, w := range workers {
		if _, err := c.cron.AddFunc(c.spec, w.Work); err != nil {
			errs = append(errs, err)
			continue
		}
		count++
	}
	c.once.Do(func() {
		c.cron.Start()
		go func() {
			<-ctx.Done()
			c.cron.Stop()
		}()
	})
	return count, errors.Join(errs...)
}
