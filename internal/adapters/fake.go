package adapters

import (
	"context"
	"sync"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// Fake is an in-memory implementation of every adapter interface, built
// for tests: every lookup is driven by a programmable map keyed on the
// same identity the real source would use, and anything not seeded
// returns the same "no data" shape the real adapters return on a miss
// (nil/empty, never an error), matching the per-source neutral-value contract so
// tests can exercise the swallow-on-error composition without a fake
// HTTP server.
type Fake struct {
	mu sync.Mutex

	SearchResults     map[string][]domain.Video
	SearchTotals      map[string]int64
	YouTubeSuggest    map[string][]string
	GoogleSuggest     map[string][]string
	KeywordMetrics    map[string]*domain.KeywordMetrics
	KeywordIdeas      map[string][]domain.KeywordMetrics
	TrendsByKeyword   map[string]*domain.TrendData
	Videos            map[string]*domain.Video
	Channels          map[string]*domain.Channel
	ChannelRecent     map[string][]domain.Video
	Transcripts       map[string]*domain.Transcript
	Comments          map[string][]domain.Comment
	RedditResults     map[string][]RedditPost
	GoogleVideoResult map[string][]domain.Video
	TrendingByRegion  map[string][]domain.Video

	// Errs lets a test force one call to fail, keyed by a caller-chosen
	// label (e.g. "search:keyword").
	Errs map[string]error
}

// NewFake builds an empty Fake with every map initialised.
func NewFake() *Fake {
	return &Fake{
		SearchResults:     map[string][]domain.Video{},
		SearchTotals:      map[string]int64{},
		YouTubeSuggest:    map[string][]string{},
		GoogleSuggest:     map[string][]string{},
		KeywordMetrics:    map[string]*domain.KeywordMetrics{},
		KeywordIdeas:      map[string][]domain.KeywordMetrics{},
		TrendsByKeyword:   map[string]*domain.TrendData{},
		Videos:            map[string]*domain.Video{},
		Channels:          map[string]*domain.Channel{},
		ChannelRecent:     map[string][]domain.Video{},
		Transcripts:       map[string]*domain.Transcript{},
		Comments:          map[string][]domain.Comment{},
		RedditResults:     map[string][]RedditPost{},
		GoogleVideoResult: map[string][]domain.Video{},
		TrendingByRegion:  map[string][]domain.Video{},
		Errs:              map[string]error{},
	}
}

func (f *Fake) errFor(label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Errs[label]
}

func (f *Fake) Search(_ context.Context, keyword string, max int) ([]domain.Video, int64, error) {
	if err := f.errFor("search:" + keyword); err != nil {
		return nil, 0, err
	}
	vids := f.SearchResults[keyword]
	if len(vids) > max && max > 0 {
		vids = vids[:max]
	}
	return vids, f.SearchTotals[keyword], nil
}

func (f *Fake) GetVideo(_ context.Context, id string) (*domain.Video, error) {
	if err := f.errFor("video:" + id); err != nil {
		return nil, err
	}
	return f.Videos[id], nil
}

func (f *Fake) GetChannel(_ context.Context, id string) (*domain.Channel, error) {
	if err := f.errFor("channel:" + id); err != nil {
		return nil, err
	}
	return f.Channels[id], nil
}

func (f *Fake) GetRecentVideos(_ context.Context, channelID string, max int) ([]domain.Video, error) {
	if err := f.errFor("channel-recent:" + channelID); err != nil {
		return nil, err
	}
	vids := f.ChannelRecent[channelID]
	if len(vids) > max && max > 0 {
		vids = vids[:max]
	}
	return vids, nil
}

func (f *Fake) GetTranscript(_ context.Context, videoID string) (*domain.Transcript, error) {
	if err := f.errFor("transcript:" + videoID); err != nil {
		return nil, err
	}
	if t, ok := f.Transcripts[videoID]; ok {
		return t, nil
	}
	return &domain.Transcript{VideoID: videoID, Present: false}, nil
}

func (f *Fake) GetComments(_ context.Context, videoID string, max int) ([]domain.Comment, error) {
	if err := f.errFor("comments:" + videoID); err != nil {
		return nil, err
	}
	cs := f.Comments[videoID]
	if len(cs) > max && max > 0 {
		cs = cs[:max]
	}
	return cs, nil
}

func (f *Fake) GetTrending(_ context.Context, region string, max int) ([]domain.Video, error) {
	if err := f.errFor("trending:" + region); err != nil {
		return nil, err
	}
	vids := f.TrendingByRegion[region]
	if len(vids) > max && max > 0 {
		vids = vids[:max]
	}
	return vids, nil
}

func (f *Fake) Trends(_ context.Context, keyword, region string) (*domain.TrendData, error) {
	if err := f.errFor("trends:" + keyword + ":" + region); err != nil {
		return nil, err
	}
	return f.TrendsByKeyword[keyword], nil
}

func (f *Fake) Metrics(_ context.Context, keyword string) (*domain.KeywordMetrics, error) {
	if err := f.errFor("metrics:" + keyword); err != nil {
		return nil, err
	}
	return f.KeywordMetrics[keyword], nil
}

func (f *Fake) Ideas(_ context.Context, keyword string, limit int) ([]domain.KeywordMetrics, error) {
	if err := f.errFor("ideas:" + keyword); err != nil {
		return nil, err
	}
	ideas := f.KeywordIdeas[keyword]
	if len(ideas) > limit && limit > 0 {
		ideas = ideas[:limit]
	}
	return ideas, nil
}

func (f *Fake) SearchRedditQuery(_ context.Context, query string) ([]RedditPost, error) {
	if err := f.errFor("reddit:" + query); err != nil {
		return nil, err
	}
	return f.RedditResults[query], nil
}

func (f *Fake) SearchGoogleVideoQuery(_ context.Context, query string) ([]domain.Video, error) {
	if err := f.errFor("google-video:" + query); err != nil {
		return nil, err
	}
	return f.GoogleVideoResult[query], nil
}

// YouTube and Google wrap Fake as the two distinct AutocompleteAdapter
// instances.
type fakeYouTubeAutocomplete struct{ f *Fake }
type fakeGoogleAutocomplete struct{ f *Fake }
type fakeReddit struct{ f *Fake }
type fakeGoogleVideo struct{ f *Fake }

func (a fakeYouTubeAutocomplete) Suggest(_ context.Context, keyword string) ([]string, error) {
	if err := a.f.errFor("yt-autocomplete:" + keyword); err != nil {
		return nil, err
	}
	return a.f.YouTubeSuggest[keyword], nil
}

func (a fakeGoogleAutocomplete) Suggest(_ context.Context, keyword string) ([]string, error) {
	if err := a.f.errFor("google-autocomplete:" + keyword); err != nil {
		return nil, err
	}
	return a.f.GoogleSuggest[keyword], nil
}

func (a fakeReddit) Search(ctx context.Context, query string) ([]RedditPost, error) {
	return a.f.SearchRedditQuery(ctx, query)
}

func (a fakeGoogleVideo) Search(ctx context.Context, query string) ([]domain.Video, error) {
	return a.f.SearchGoogleVideoQuery(ctx, query)
}

// YouTubeAutocomplete returns this Fake wrapped as the youtube provider.
func (f *Fake) YouTubeAutocomplete() AutocompleteAdapter { return fakeYouTubeAutocomplete{f} }

// GoogleAutocomplete returns this Fake wrapped as the google provider.
func (f *Fake) GoogleAutocomplete() AutocompleteAdapter { return fakeGoogleAutocomplete{f} }

// Reddit returns this Fake wrapped as the RedditAdapter.
func (f *Fake) Reddit() RedditAdapter { return fakeReddit{f} }

// GoogleVideo returns this Fake wrapped as the GoogleVideoAdapter.
func (f *Fake) GoogleVideo() GoogleVideoAdapter { return fakeGoogleVideo{f} }

// Sources builds a Sources bundle entirely backed by this Fake.
func (f *Fake) Sources() *Sources {
	return &Sources{
		Search:              f,
		YouTubeAutocomplete: f.YouTubeAutocomplete(),
		GoogleAutocomplete:  f.GoogleAutocomplete(),
		KeywordPlanner:      f,
		Trends:              f,
		VideoDetails:        f,
		Channel:             f,
		Transcript:          f,
		Comments:            f,
		Reddit:              f.Reddit(),
		GoogleVideo:         f.GoogleVideo(),
		Trending:            f,
	}
}
