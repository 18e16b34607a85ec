package boundary

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boundary_requests_total",
		Help: "Boundary HTTP entry point request count.",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "boundary_request_duration_seconds",
		Help: "Boundary HTTP entry point latency.",
	}, []string{"route", "status"})

	activeStreamSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "boundary_long_tail_stream_subscribers",
		Help: "Currently connected on-long-tail-analysed subscribers.",
	})
)

func metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		requestsTotal.WithLabelValues(route, status).Inc()
		requestDuration.WithLabelValues(route, status).Observe(time.Since(start).Seconds())
	}
}
