package boundary

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// handlers implements every public entry point as a gin.HandlerFunc method,
// closing over the Dependencies bundle injected at router construction.
type handlers struct {
	deps Dependencies
}

func (h *handlers) region(c *gin.Context) string {
	if region := c.Query("region"); region != "" {
		return region
	}
	return defaultRegion
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// researchKeyword serves the research-keyword entry point: the
// multi-source synchronous orchestration.
func (h *handlers) researchKeyword(c *gin.Context) {
	result, err := h.deps.Research.Research(c.Request.Context(), c.Param("keyword"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// streamResearchKeyword serves the orchestrator's streaming variant: one
// SSE event per source (search, each autocomplete) in completion order,
// then the stream ends.
func (h *handlers) streamResearchKeyword(c *gin.Context) {
	partials := h.deps.Research.StreamResearch(c.Request.Context(), c.Param("keyword"))
	if err := writeSSEStream(c.Request.Context(), c.Writer, "research-partial", partials); err != nil {
		return
	}
}

// analyseKeyword serves the analyse-keyword entry point: it
// returns the synchronous opportunity/difficulty analysis, and as a
// side effect fires the long-tail stream in the background, fanning
// each emission out over the bus so a concurrent on-long-tail-analysed
// subscriber observes it.
func (h *handlers) analyseKeyword(c *gin.Context) {
	keyword := c.Param("keyword")
	maxLongTails := queryInt(c, "maxLongTails", defaultMaxLongTails)
	result, err := h.deps.Keyword.Analyse(c.Request.Context(), keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)

	go h.publishLongTailStream(keyword, maxLongTails, false)
}

// startLongTailAnalysis serves the start-long-tail-analysis entry
// point: it acknowledges immediately and drives the stream in the
// background, exactly as analyseKeyword's side effect does, but without
// requiring a full re-analysis of the parent keyword first. Unlike the
// analyse-keyword side effect it also runs the batched variant once the
// stream ends, so the long-tail list lands in the durable cache (each
// candidate's own analysis is already cached, making that pass cheap).
func (h *handlers) startLongTailAnalysis(c *gin.Context) {
	keyword := c.Param("keyword")
	maxVariations := queryInt(c, "max", defaultMaxLongTails)
	c.JSON(http.StatusAccepted, gin.H{"parent": keyword, "maxVariations": maxVariations})

	go h.publishLongTailStream(keyword, maxVariations, true)
}

func (h *handlers) publishLongTailStream(keyword string, maxVariations int, persist bool) {
	updates := h.deps.Keyword.StreamLongTails(context.Background(), keyword, maxVariations)
	var soFar []domain.LongTailResult
	count := 0
	for r := range updates {
		soFar = append(soFar, r)
		count++
		h.deps.Bus.Publish(keyword, fromLongTail(keyword, r, count, maxVariations, soFar))
	}
	if count < maxVariations {
		h.deps.Bus.Publish(keyword, completeMarker(keyword, count, maxVariations, soFar))
	}
	if persist {
		_, _ = h.deps.Keyword.AnalyseLongTails(context.Background(), keyword, maxVariations)
	}
}

// onLongTailAnalysed serves the on-long-tail-analysed subscription: an
// SSE stream of every LongTailUpdate published for this keyword until
// the client disconnects.
func (h *handlers) onLongTailAnalysed(c *gin.Context) {
	keyword := c.Param("keyword")
	updates, unsubscribe := h.deps.Bus.Subscribe(keyword)
	defer unsubscribe()
	activeStreamSubscribers.Inc()
	defer activeStreamSubscribers.Dec()

	if err := writeSSEStream(c.Request.Context(), c.Writer, "long-tail-analysed", updates); err != nil {
		return
	}
}

func (h *handlers) getKeywordMetrics(c *gin.Context) {
	metrics, err := h.deps.KeywordPlannerReg.Get(c.Request.Context(), c.Param("keyword"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// getKeywordIdeas serves get-keyword-ideas: it calls the keyword
// planner adapter directly rather than through a per-key cache actor
// (see Dependencies.KeywordPlanner's doc comment).
func (h *handlers) getKeywordIdeas(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	ideas, err := h.deps.KeywordPlanner.Ideas(c.Request.Context(), c.Param("keyword"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ideas)
}

func (h *handlers) getTrendingKeywords(c *gin.Context) {
	result, err := h.deps.Trending.GetCachedTrendingKeywords(c.Request.Context(), h.region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) getTrendingVideos(c *gin.Context) {
	result, err := h.deps.Trending.GetCachedTrendingVideos(c.Request.Context(), h.region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) searchVideos(c *gin.Context) {
	result, err := h.deps.Search.Get(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": result.Videos, "total": result.Total})
}

// getVideo serves the single-video lookup with the enrichment actor's
// Full method (transcript included); the latency-bounded Fast variant is
// reserved for the research orchestrator's fan-out.
func (h *handlers) getVideo(c *gin.Context) {
	video, err := h.deps.Enrichment.Full(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *handlers) getTranscript(c *gin.Context) {
	result, err := h.deps.Transcript.Get(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) getComments(c *gin.Context) {
	result, err := h.deps.Comments.Get(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) getChannel(c *gin.Context) {
	channel, err := h.deps.Channel.Details(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, channel)
}

func (h *handlers) getChannelVideos(c *gin.Context) {
	videos, err := h.deps.Channel.RecentVideos(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *handlers) getYouTubeAutocomplete(c *gin.Context) {
	suggestions, err := h.deps.YouTubeAutocomplete.Get(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (h *handlers) getGoogleAutocomplete(c *gin.Context) {
	suggestions, err := h.deps.GoogleAutocomplete.Get(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (h *handlers) searchReddit(c *gin.Context) {
	posts, err := h.deps.Reddit.Get(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *handlers) getTrends(c *gin.Context) {
	key := source.TrendsKey(c.Query("q"), h.region(c))
	trend, err := h.deps.Trends.Get(c.Request.Context(), key, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trend)
}

func (h *handlers) searchGoogleVideo(c *gin.Context) {
	videos, err := h.deps.GoogleVideo.Get(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, videos)
}
