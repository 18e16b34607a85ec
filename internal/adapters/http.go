package adapters

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// HTTPConfig configures the resty-backed adapter implementations. No base
// URL has a default: the caller supplies each one (cmd/server passes the
// public endpoints of the sources).
type HTTPConfig struct {
	VideoPlatformBaseURL   string
	YouTubeAutocompleteURL string
	GoogleAutocompleteURL  string
	TrendsBaseURL          string
	AdNetworkBaseURL       string
	RedditBaseURL          string
	GoogleSearchBaseURL    string
	TranscriptBaseURL      string
	Timeout                time.Duration

	// YouTubeAPIKey, when set, is sent as a "key" query param on every
	// request this client makes, whichever base URL it targets.
	YouTubeAPIKey string
}

// HTTPClient is the concrete, non-mocked implementation of every source
// adapter interface, grounded on kirbs-btw-spotify-playlist-dataset's
// resty client shape (bearer/basic auth, JSON decode). One HTTPClient per
// process; individual methods are reentrant and safe for concurrent use
// from many per-source actor goroutines.
type HTTPClient struct {
	cfg    HTTPConfig
	client *resty.Client
	keys   *KeyRotator
}

// NewHTTPClient builds an HTTPClient with its own resty.Client, retrying
// each request once on a transient network error.
func NewHTTPClient(cfg HTTPConfig, keys *KeyRotator) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rc := resty.New().
		SetTimeout(timeout).
		SetRetryCount(1)
	if cfg.YouTubeAPIKey != "" {
		rc.SetQueryParam("key", cfg.YouTubeAPIKey)
	}
	return &HTTPClient{cfg: cfg, client: rc, keys: keys}
}

// --- wire DTOs: a stable contract this client decodes the source
// platforms' responses against. ---

type wireVideo struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PublishedAt  string   `json:"publishedAt"`
	ChannelID    string   `json:"channelId"`
	ChannelTitle string   `json:"channelTitle"`
	Tags         []string `json:"tags"`
	CategoryID   string   `json:"categoryId"`
	ViewCount    int64    `json:"viewCount"`
	LikeCount    int64    `json:"likeCount"`
	CommentCount int64    `json:"commentCount"`
	DurationSecs int64    `json:"durationSeconds"`
	Definition   string   `json:"definition"`
	Thumbnails   []string `json:"thumbnails"`
}

func (w wireVideo) toDomain() domain.Video {
	published, _ := time.Parse(time.RFC3339, w.PublishedAt)
	return domain.Video{
		ID:            w.ID,
		Title:         w.Title,
		Description:   w.Description,
		PublishedAt:   published,
		ChannelID:     w.ChannelID,
		ChannelTitle:  w.ChannelTitle,
		Tags:          w.Tags,
		CategoryID:    w.CategoryID,
		ViewCount:     w.ViewCount,
		LikeCount:     w.LikeCount,
		CommentCount:  w.CommentCount,
		Duration:      time.Duration(w.DurationSecs) * time.Second,
		Definition:    w.Definition,
		ThumbnailURLs: w.Thumbnails,
	}
}

type wireSearchResponse struct {
	Items      []wireVideo `json:"items"`
	TotalCount int64       `json:"totalResults"`
}

func (c *HTTPClient) Search(ctx context.Context, keyword string, max int) ([]domain.Video, int64, error) {
	var out wireSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": keyword, "maxResults": strconv.Itoa(max)}).
		SetResult(&out).
		Get(c.cfg.VideoPlatformBaseURL + "/search")
	if err != nil {
		return nil, 0, err
	}
	if resp.IsError() {
		return nil, 0, fmt.Errorf("adapters: search %q: %s", keyword, resp.Status())
	}
	videos := make([]domain.Video, 0, len(out.Items))
	for _, v := range out.Items {
		videos = append(videos, v.toDomain())
	}
	return videos, out.TotalCount, nil
}

func (c *HTTPClient) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	var out wireVideo
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.cfg.VideoPlatformBaseURL + "/videos/" + id)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 404 {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: get video %q: %s", id, resp.Status())
	}
	v := out.toDomain()
	return &v, nil
}

type wireChannel struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CustomURL       string   `json:"customUrl"`
	SubscriberCount int64    `json:"subscriberCount"`
	VideoCount      int64    `json:"videoCount"`
	ViewCount       int64    `json:"viewCount"`
	Keywords        string   `json:"keywords"`
	Thumbnails      []string `json:"thumbnails"`
}

func (c *HTTPClient) GetChannel(ctx context.Context, id string) (*domain.Channel, error) {
	var out wireChannel
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.cfg.VideoPlatformBaseURL + "/channels/" + id)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 404 {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: get channel %q: %s", id, resp.Status())
	}
	return &domain.Channel{
		ID:              out.ID,
		Title:           out.Title,
		Description:     out.Description,
		CustomURL:       out.CustomURL,
		SubscriberCount: out.SubscriberCount,
		VideoCount:      out.VideoCount,
		ViewCount:       out.ViewCount,
		Keywords:        ParseDeclaredKeywords(out.Keywords),
		ThumbnailURLs:   out.Thumbnails,
	}, nil
}

// ParseDeclaredKeywords splits a channel's declared-keywords string on
// spaces/commas and strips surrounding quotes.
func ParseDeclaredKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `"'`)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (c *HTTPClient) GetRecentVideos(ctx context.Context, channelID string, max int) ([]domain.Video, error) {
	var out wireSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"channelId": channelID, "maxResults": strconv.Itoa(max), "order": "date"}).
		SetResult(&out).
		Get(c.cfg.VideoPlatformBaseURL + "/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: recent videos %q: %s", channelID, resp.Status())
	}
	videos := make([]domain.Video, 0, len(out.Items))
	for _, v := range out.Items {
		videos = append(videos, v.toDomain())
	}
	return videos, nil
}

func (c *HTTPClient) GetTrending(ctx context.Context, region string, max int) ([]domain.Video, error) {
	var out wireSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"regionCode": region, "chart": "mostPopular", "maxResults": strconv.Itoa(max)}).
		SetResult(&out).
		Get(c.cfg.VideoPlatformBaseURL + "/videos")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: trending %q: %s", region, resp.Status())
	}
	videos := make([]domain.Video, 0, len(out.Items))
	for _, v := range out.Items {
		videos = append(videos, v.toDomain())
	}
	return videos, nil
}

type wireTranscript struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

func (c *HTTPClient) GetTranscript(ctx context.Context, videoID string) (*domain.Transcript, error) {
	var out wireTranscript
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.cfg.TranscriptBaseURL + "/transcripts/" + videoID)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 404 {
		return &domain.Transcript{VideoID: videoID, Present: false}, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: transcript %q: %s", videoID, resp.Status())
	}
	return &domain.Transcript{VideoID: videoID, Text: out.Text, Lang: out.Lang, Present: out.Text != ""}, nil
}

type wireComment struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	LikeCount   int64  `json:"likeCount"`
	PublishedAt string `json:"publishedAt"`
	ReplyCount  int64  `json:"replyCount"`
}

func (c *HTTPClient) GetComments(ctx context.Context, videoID string, max int) ([]domain.Comment, error) {
	var out struct {
		Items []wireComment `json:"items"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"videoId": videoID, "maxResults": strconv.Itoa(max)}).
		SetResult(&out).
		Get(c.cfg.VideoPlatformBaseURL + "/commentThreads")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: comments %q: %s", videoID, resp.Status())
	}
	comments := make([]domain.Comment, 0, len(out.Items))
	for _, wc := range out.Items {
		published, _ := time.Parse(time.RFC3339, wc.PublishedAt)
		comments = append(comments, domain.NewComment(wc.ID, videoID, wc.Author, wc.Text, wc.LikeCount, wc.ReplyCount, published))
	}
	return comments, nil
}

type autocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// suggestFrom issues one autocomplete request; the two providers share
// this shape and differ only in base URL.
func (c *HTTPClient) suggestFrom(ctx context.Context, baseURL, keyword string) ([]string, error) {
	var out autocompleteResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": keyword}).
		SetResult(&out).
		Get(baseURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: autocomplete %q: %s", keyword, resp.Status())
	}
	return out.Suggestions, nil
}

// youTubeAutocomplete and googleAutocomplete adapt HTTPClient to the
// AutocompleteAdapter interface for each of the two distinct providers.
type youTubeAutocomplete struct{ c *HTTPClient }
type googleAutocomplete struct{ c *HTTPClient }

func (a youTubeAutocomplete) Suggest(ctx context.Context, keyword string) ([]string, error) {
	return a.c.suggestFrom(ctx, a.c.cfg.YouTubeAutocompleteURL, keyword)
}
func (a googleAutocomplete) Suggest(ctx context.Context, keyword string) ([]string, error) {
	return a.c.suggestFrom(ctx, a.c.cfg.GoogleAutocompleteURL, keyword)
}

// YouTubeAutocomplete wraps this client as the youtube-suggest provider.
func (c *HTTPClient) YouTubeAutocomplete() AutocompleteAdapter { return youTubeAutocomplete{c} }

// GoogleAutocomplete wraps this client as the google-suggest provider.
func (c *HTTPClient) GoogleAutocomplete() AutocompleteAdapter { return googleAutocomplete{c} }

type wireTrend struct {
	InterestScore int      `json:"interestScore"`
	Direction     string   `json:"direction"`
	TopQueries    []string `json:"topQueries"`
	RisingQueries []string `json:"risingQueries"`
}

func (c *HTTPClient) Trends(ctx context.Context, keyword, region string) (*domain.TrendData, error) {
	var out wireTrend
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": keyword, "geo": region}).
		SetResult(&out).
		Get(c.cfg.TrendsBaseURL + "/explore")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: trends %q: %s", keyword, resp.Status())
	}
	top := out.TopQueries
	if len(top) > 10 {
		top = top[:10]
	}
	rising := out.RisingQueries
	if len(rising) > 10 {
		rising = rising[:10]
	}
	return &domain.TrendData{
		Keyword:       keyword,
		InterestScore: out.InterestScore,
		Direction:     parseDirection(out.Direction),
		TopQueries:    top,
		RisingQueries: rising,
	}, nil
}

func parseDirection(s string) domain.TrendDirection {
	switch strings.ToLower(s) {
	case "rising":
		return domain.TrendRising
	case "falling":
		return domain.TrendFalling
	case "stable":
		return domain.TrendStable
	default:
		return domain.TrendUnknown
	}
}

type wireKeywordMetrics struct {
	Keyword        string `json:"keyword"`
	MonthlyVolume  int64  `json:"avgMonthlySearches"`
	Competition    string `json:"competition"`
	CompetitionIdx int    `json:"competitionIndex"`
	LowBid         int64  `json:"lowTopOfPageBidMicros"`
	HighBid        int64  `json:"highTopOfPageBidMicros"`
}

func (w wireKeywordMetrics) toDomain() domain.KeywordMetrics {
	return domain.KeywordMetrics{
		Keyword:             w.Keyword,
		MonthlySearchVolume: w.MonthlyVolume,
		Competition:         parseCompetition(w.Competition),
		CompetitionIndex:    w.CompetitionIdx,
		LowTopOfPageBid:     w.LowBid,
		HighTopOfPageBid:    w.HighBid,
	}
}

func parseCompetition(s string) domain.CompetitionLabel {
	switch strings.ToLower(s) {
	case "low":
		return domain.CompetitionLow
	case "medium":
		return domain.CompetitionMedium
	case "high":
		return domain.CompetitionHigh
	default:
		return domain.CompetitionUnknown
	}
}

// doAdNetwork issues req against the ad-network base URL with the
// rotator's current key, rotating and retrying once per additional key
// in the pool on a quota-exceeded response.
func (c *HTTPClient) doAdNetwork(ctx context.Context, path string, params map[string]string, out any) error {
	attempts := 1
	if c.keys != nil {
		attempts = c.keys.Len()
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		req := c.client.R().SetContext(ctx).SetQueryParams(params).SetResult(out)
		if c.keys != nil {
			req.SetHeader("Authorization", "Bearer "+c.keys.Current())
		}
		resp, err := req.Get(c.cfg.AdNetworkBaseURL + path)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode() == 429 {
			if c.keys == nil {
				return fmt.Errorf("adapters: ad network quota exceeded")
			}
			if _, rotErr := c.keys.Rotate(); rotErr != nil {
				return rotErr
			}
			lastErr = fmt.Errorf("adapters: ad network quota exceeded")
			continue
		}
		if resp.IsError() {
			return fmt.Errorf("adapters: ad network %s: %s", path, resp.Status())
		}
		return nil
	}
	return lastErr
}

func (c *HTTPClient) Metrics(ctx context.Context, keyword string) (*domain.KeywordMetrics, error) {
	var out wireKeywordMetrics
	if err := c.doAdNetwork(ctx, "/keywordMetrics", map[string]string{"keyword": keyword}, &out); err != nil {
		return nil, err
	}
	m := out.toDomain()
	return &m, nil
}

func (c *HTTPClient) Ideas(ctx context.Context, keyword string, limit int) ([]domain.KeywordMetrics, error) {
	var out struct {
		Ideas []wireKeywordMetrics `json:"ideas"`
	}
	if err := c.doAdNetwork(ctx, "/keywordIdeas", map[string]string{"keyword": keyword, "limit": strconv.Itoa(limit)}, &out); err != nil {
		return nil, err
	}
	ideas := out.Ideas
	if limit > 0 && len(ideas) > limit {
		ideas = ideas[:limit]
	}
	metrics := make([]domain.KeywordMetrics, 0, len(ideas))
	for _, i := range ideas {
		metrics = append(metrics, i.toDomain())
	}
	return metrics, nil
}

func (c *HTTPClient) searchGoogleVideo(ctx context.Context, query string) ([]domain.Video, error) {
	var out wireSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": query}).
		SetResult(&out).
		Get(c.cfg.GoogleSearchBaseURL + "/video-search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: google video search %q: %s", query, resp.Status())
	}
	videos := make([]domain.Video, 0, len(out.Items))
	for _, v := range out.Items {
		videos = append(videos, v.toDomain())
	}
	return videos, nil
}

// GoogleVideo wraps this client as the GoogleVideoAdapter.
func (c *HTTPClient) GoogleVideo() GoogleVideoAdapter { return googleVideoAdapter{c} }

type googleVideoAdapter struct{ c *HTTPClient }

func (a googleVideoAdapter) Search(ctx context.Context, query string) ([]domain.Video, error) {
	return a.c.searchGoogleVideo(ctx, query)
}

type wireRedditPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Selftext    string `json:"selftext"`
	Permalink   string `json:"permalink"`
	Ups         int64  `json:"ups"`
	NumComments int64  `json:"num_comments"`
}

func (c *HTTPClient) SearchReddit(ctx context.Context, query string) ([]RedditPost, error) {
	var out struct {
		Data struct {
			Children []struct {
				Data wireRedditPost `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": query}).
		SetResult(&out).
		Get(c.cfg.RedditBaseURL + "/search.json")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adapters: reddit search %q: %s", query, resp.Status())
	}
	posts := make([]RedditPost, 0, len(out.Data.Children))
	for _, child := range out.Data.Children {
		d := child.Data
		posts = append(posts, RedditPost{
			ID: d.ID, Title: d.Title, Body: d.Selftext, Permalink: d.Permalink,
			Upvotes: d.Ups, NumComments: d.NumComments,
		})
	}
	return posts, nil
}

// Reddit wraps this client as the RedditAdapter.
func (c *HTTPClient) Reddit() RedditAdapter { return redditAdapter{c} }

type redditAdapter struct{ c *HTTPClient }

func (a redditAdapter) Search(ctx context.Context, query string) ([]RedditPost, error) {
	return a.c.SearchReddit(ctx, query)
}
