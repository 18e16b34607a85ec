package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/keyword"
	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/actors/trending"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/broker"
	"github.com/McZenith/liza.ai.server/internal/store"
)

func wireTrending(fake *adapters.Fake) *trending.Registry {
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
	kwDeps := keyword.Dependencies{
		Store:          store.NewMemory(),
		Research:       researchReg,
		Trends:         source.NewTrendsRegistry(srcs.Trends),
		Channel:        channelReg,
		KeywordPlanner: srcs.KeywordPlanner,
		Region:         "US",
	}
	kwReg := keyword.NewRegistry(kwDeps)

	return trending.NewRegistry(trending.Dependencies{
		Store:    store.NewMemory(),
		Trending: fake,
		Keyword:  kwReg,
	})
}

// Starting the job seeds every configured region onto the queue
// immediately, without waiting for the daily cron pivot.
func TestJob_StartDrainsConfiguredRegionsAtStartup(t *testing.T) {
	fake := adapters.NewFake()
	trendingReg := wireTrending(fake)
	b := broker.NewMemory()

	j := New(Dependencies{
		Trending:   trendingReg,
		Broker:     b,
		Regions:    []string{"US", "GB"},
		MaxWorkers: 2,
	})

	if err := j.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer j.Stop()

	// An empty Fake never returns trending videos, so warm-up aborts
	// without committing on both regions; this just confirms the queue
	// drains without the job hanging and each region stays queryable.
	time.Sleep(100 * time.Millisecond)
	if _, err := trendingReg.GetCachedTrendingKeywords(context.Background(), "US"); err != nil {
		t.Errorf("GetCachedTrendingKeywords(US): %v", err)
	}
	if _, err := trendingReg.GetCachedTrendingKeywords(context.Background(), "GB"); err != nil {
		t.Errorf("GetCachedTrendingKeywords(GB): %v", err)
	}
}

func TestJob_StopIsIdempotent(t *testing.T) {
	fake := adapters.NewFake()
	j := New(Dependencies{
		Trending:   wireTrending(fake),
		Broker:     broker.NewMemory(),
		Regions:    nil,
		MaxWorkers: 1,
	})
	if err := j.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := j.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}
	if err := j.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}
