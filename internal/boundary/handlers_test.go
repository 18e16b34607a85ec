package boundary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/keyword"
	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/actors/trending"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/store"
)

func testRouter(fake *adapters.Fake) *gin.Engine {
	gin.SetMode(gin.TestMode)
	src := fake.Sources()

	channelReg := source.NewChannelRegistry(src.Channel)
	transcriptReg := source.NewTranscriptRegistry(src.Transcript)
	commentsReg := source.NewCommentsRegistry(src.Comments)
	enr := enrichment.NewRegistry(enrichment.Dependencies{
		Details:    src.VideoDetails,
		Transcript: transcriptReg,
		Comments:   commentsReg,
		Channel:    channelReg,
	})
	searchReg := source.NewSearchRegistry(src.Search)
	trendsReg := source.NewTrendsRegistry(src.Trends)
	researchReg := research.NewRegistry(research.Dependencies{
		Search:              searchReg,
		YouTubeAutocomplete: source.NewAutocompleteRegistry("youtube", src.YouTubeAutocomplete),
		GoogleAutocomplete:  source.NewAutocompleteRegistry("google", src.GoogleAutocomplete),
		KeywordPlanner:      source.NewKeywordPlannerRegistry(src.KeywordPlanner),
		Enrichment:          enr,
	})
	kwDeps := keyword.Dependencies{
		Store:          store.NewMemory(),
		Research:       researchReg,
		Trends:         trendsReg,
		Channel:        channelReg,
		KeywordPlanner: src.KeywordPlanner,
		Region:         "US",
	}
	kwReg := keyword.NewRegistry(kwDeps)

	trendingReg := trending.NewRegistry(trending.Dependencies{
		Store:    store.NewMemory(),
		Trending: src.Trending,
		Keyword:  kwReg,
	})

	deps := Dependencies{
		Keyword:             kwReg,
		Research:            researchReg,
		Trending:            trendingReg,
		Search:              searchReg,
		YouTubeAutocomplete: source.NewAutocompleteRegistry("youtube", src.YouTubeAutocomplete),
		GoogleAutocomplete:  source.NewAutocompleteRegistry("google", src.GoogleAutocomplete),
		KeywordPlannerReg:   source.NewKeywordPlannerRegistry(src.KeywordPlanner),
		Trends:              trendsReg,
		Transcript:          transcriptReg,
		Comments:            commentsReg,
		Reddit:              source.NewRedditRegistry(src.Reddit),
		GoogleVideo:         source.NewGoogleVideoRegistry(src.GoogleVideo),
		Channel:             channelReg,
		Enrichment:          enr,
		KeywordPlanner:      src.KeywordPlanner,
		Bus:                 NewBus(),
	}

	log := logrus.New()
	log.SetOutput(httptest.NewRecorder().Body)
	return NewRouter(deps, log)
}

func TestHealthz_Returns204(t *testing.T) {
	r := testRouter(adapters.NewFake())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestSearchVideos_ReturnsEmptyResultForUnseenKeyword(t *testing.T) {
	r := testRouter(adapters.NewFake())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/videos?q=nosuchkeyword", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Videos []domain.Video `json:"videos"`
		Total  int64          `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Videos) != 0 || body.Total != 0 {
		t.Errorf("body = %+v, want empty", body)
	}
}

func TestGetVideo_ReturnsSeededVideo(t *testing.T) {
	fake := adapters.NewFake()
	fake.Videos["v1"] = &domain.Video{ID: "v1", Title: "widget review", PublishedAt: time.Now()}
	r := testRouter(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/videos/v1", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var video domain.EnrichedVideo
	if err := json.Unmarshal(rec.Body.Bytes(), &video); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if video.Video.ID != "v1" {
		t.Errorf("Video.ID = %q, want v1", video.Video.ID)
	}
}

func TestGetVideo_MissingVideoReturns500(t *testing.T) {
	r := testRouter(adapters.NewFake())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/videos/doesnotexist", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d for a missing video", rec.Code, http.StatusInternalServerError)
	}
}

func TestAnalyseKeyword_ReturnsGradedResult(t *testing.T) {
	r := testRouter(adapters.NewFake())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/keywords/widgets/analyse", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var result domain.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	switch result.Scores.Grade {
	case domain.GradeA, domain.GradeB, domain.GradeC, domain.GradeD, domain.GradeF:
	default:
		t.Errorf("invalid grade %v", result.Scores.Grade)
	}
}

func TestGetTrendingKeywords_EmptyBeforeWarmup(t *testing.T) {
	r := testRouter(adapters.NewFake())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trending/keywords", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var keywords []domain.TrendingKeywordSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &keywords); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("len(keywords) = %d, want 0 before any warm-up has run", len(keywords))
	}
}

func TestRequestID_IsEchoedInResponseHeader(t *testing.T) {
	r := testRouter(adapters.NewFake())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "fixed-id" {
		t.Errorf("X-Request-Id = %q, want fixed-id", got)
	}
}
