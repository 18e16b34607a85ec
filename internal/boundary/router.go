package boundary

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// requestID stamps every request with an id: the incoming X-Request-Id
// header when present, otherwise a fresh UUID. Grounded on the
// api_gateway-style request tracing the pack's gin services use.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// requestLogger logs one structured line per request through logrus.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}

// NewRouter assembles the gin engine serving every public entry point over
// deps, wired with the request-id, structured-logging and prometheus
// middleware the rest of the pack's gin services carry.
func NewRouter(deps Dependencies, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log), metrics())

	r.GET("/healthz", func(c *gin.Context) { c.Status(204) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &handlers{deps: deps}

	r.POST("/keywords/:keyword/research", h.researchKeyword)
	r.GET("/keywords/:keyword/research/stream", h.streamResearchKeyword)
	r.POST("/keywords/:keyword/analyse", h.analyseKeyword)
	r.POST("/keywords/:keyword/long-tail-analysis", h.startLongTailAnalysis)
	r.GET("/keywords/:keyword/long-tail-analysis/stream", h.onLongTailAnalysed)
	r.GET("/keywords/:keyword/metrics", h.getKeywordMetrics)
	r.GET("/keywords/:keyword/ideas", h.getKeywordIdeas)

	r.GET("/trending/keywords", h.getTrendingKeywords)
	r.GET("/trending/videos", h.getTrendingVideos)

	r.GET("/videos", h.searchVideos)
	r.GET("/videos/:id", h.getVideo)
	r.GET("/videos/:id/transcript", h.getTranscript)
	r.GET("/videos/:id/comments", h.getComments)

	r.GET("/channels/:id", h.getChannel)
	r.GET("/channels/:id/videos", h.getChannelVideos)

	r.GET("/autocomplete/youtube", h.getYouTubeAutocomplete)
	r.GET("/autocomplete/google", h.getGoogleAutocomplete)

	r.GET("/reddit/search", h.searchReddit)
	r.GET("/trends", h.getTrends)
	r.GET("/google-video/search", h.searchGoogleVideo)

	return r
}
