package trending

import (
	"context"
	"testing"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/keyword"
	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/store"
)

func wireKeyword(fake *adapters.Fake) *keyword.Registry {
	srcs := fake.Sources()
	channelReg := source.NewChannelRegistry(srcs.Channel)
	enr := enrichment.NewRegistry(enrichment.Dependencies{
		Details:    srcs.VideoDetails,
		Transcript: source.NewTranscriptRegistry(srcs.Transcript),
		Comments:   source.NewCommentsRegistry(srcs.Comments),
		Channel:    channelReg,
	})
	researchReg := research.NewRegistry(research.Dependencies{
		Search:              source.NewSearchRegistry(srcs.Search),
		YouTubeAutocomplete: source.NewAutocompleteRegistry("youtube", srcs.YouTubeAutocomplete),
		GoogleAutocomplete:  source.NewAutocompleteRegistry("google", srcs.GoogleAutocomplete),
		KeywordPlanner:      source.NewKeywordPlannerRegistry(srcs.KeywordPlanner),
		Enrichment:          enr,
	})
	deps := keyword.Dependencies{
		Store:          store.NewMemory(),
		Research:       researchReg,
		Trends:         source.NewTrendsRegistry(srcs.Trends),
		Channel:        channelReg,
		KeywordPlanner: srcs.KeywordPlanner,
		Region:         "US",
	}
	return keyword.NewRegistry(deps)
}

func TestWarmUp_NoTrendingVideosAbortsWithoutCommit(t *testing.T) {
	fake := adapters.NewFake()
	reg := NewRegistry(Dependencies{
		Store:    store.NewMemory(),
		Trending: fake,
		Keyword:  wireKeyword(fake),
	})

	if err := reg.WarmUp(context.Background(), "US"); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}

	keywords, err := reg.GetCachedTrendingKeywords(context.Background(), "US")
	if err != nil {
		t.Fatalf("GetCachedTrendingKeywords: %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("len(keywords) = %d, want 0 after an aborted warm-up", len(keywords))
	}
}

func TestWarmUp_PopulatesDurableCache(t *testing.T) {
	fake := adapters.NewFake()
	now := time.Now()
	fake.TrendingByRegion["US"] = []domain.Video{
		{ID: "v1", Title: "widget unboxing special", Tags: []string{"widget"}, Description: "widget talk", ViewCount: 10000, PublishedAt: now},
		{ID: "v2", Title: "widget unboxing special", Tags: []string{"widget"}, Description: "widget talk", ViewCount: 20000, PublishedAt: now},
	}

	reg := NewRegistry(Dependencies{
		Store:    store.NewMemory(),
		Trending: fake,
		Keyword:  wireKeyword(fake),
	})

	if err := reg.WarmUp(context.Background(), "US"); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}

	videos, err := reg.GetCachedTrendingVideos(context.Background(), "US")
	if err != nil {
		t.Fatalf("GetCachedTrendingVideos: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("len(videos) = %d, want 2", len(videos))
	}

	keywords, err := reg.GetCachedTrendingKeywords(context.Background(), "US")
	if err != nil {
		t.Fatalf("GetCachedTrendingKeywords: %v", err)
	}
	if len(keywords) == 0 {
		t.Fatal("expected at least one mined trending keyword summary")
	}
}

func TestWarmUp_KeywordSummariesOrderedByNetScoreDescending(t *testing.T) {
	fake := adapters.NewFake()
	now := time.Now()
	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		fake.TrendingByRegion["US"] = append(fake.TrendingByRegion["US"], domain.Video{
			ID: id, Title: "alpha beta gamma delta " + id, Description: "alpha beta gamma delta content",
			Tags: []string{"alpha", "beta"}, ViewCount: 5000, PublishedAt: now,
		})
	}

	reg := NewRegistry(Dependencies{
		Store:    store.NewMemory(),
		Trending: fake,
		Keyword:  wireKeyword(fake),
	})
	if err := reg.WarmUp(context.Background(), "US"); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}

	keywords, err := reg.GetCachedTrendingKeywords(context.Background(), "US")
	if err != nil {
		t.Fatalf("GetCachedTrendingKeywords: %v", err)
	}
	for i := 1; i < len(keywords); i++ {
		prevNet := keywords[i-1].Opportunity - keywords[i-1].Difficulty
		currNet := keywords[i].Opportunity - keywords[i].Difficulty
		if currNet > prevNet {
			t.Errorf("keyword summaries not ordered by descending net score at index %d", i)
		}
	}
}

func TestGetCachedTrendingKeywords_MissingRegionIsEmptyNotError(t *testing.T) {
	fake := adapters.NewFake()
	reg := NewRegistry(Dependencies{
		Store:    store.NewMemory(),
		Trending: fake,
		Keyword:  wireKeyword(fake),
	})
	got, err := reg.GetCachedTrendingKeywords(context.Background(), "never-warmed")
	if err != nil {
		t.Fatalf("GetCachedTrendingKeywords: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0 for a region that was never warmed", len(got))
	}
}
