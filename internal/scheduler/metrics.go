package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	warmupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trending_warmup_duration_seconds",
		Help:    "Wall-clock duration of one successful region warm-up.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"region"})

	warmupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trending_warmup_failures_total",
		Help: "Region warm-ups that raised an error and were re-queued.",
	}, []string{"region"})
)
