package keyword

import (
	"context"
	"testing"
	"time"

	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/store"
)

// wiring builds one fully-wired keyword-analysis actor registry backed by
// a Fake adapter bundle and an in-memory store, the way cmd/server wires
// the real one.
func wiring(t *testing.T, fake *adapters.Fake) *Registry {
	t.Helper()
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

	deps := Dependencies{
		Store:          store.NewMemory(),
		Research:       researchReg,
		Trends:         source.NewTrendsRegistry(srcs.Trends),
		Channel:        channelReg,
		KeywordPlanner: srcs.KeywordPlanner,
		Region:         "US",
	}
	return NewRegistry(deps)
}

func seedVideo(fake *adapters.Fake, id, title, description, channelID string, views, likes int64, published time.Time) {
	fake.Videos[id] = &domain.Video{
		ID: id, Title: title, Description: description, ChannelID: channelID,
		ChannelTitle: channelID, ViewCount: views, LikeCount: likes,
		PublishedAt: published, Tags: []string{"tag1", "tag2"},
	}
}

// Empty research across every adapter still produces a
// complete, gradeable result rather than an error.
func TestAnalyse_EmptyResearchStillGrades(t *testing.T) {
	fake := adapters.NewFake()
	reg := wiring(t, fake)

	result, err := reg.Analyse(context.Background(), "__zzznoresults")
	if err != nil {
		t.Fatalf("Analyse returned error for empty research: %v", err)
	}
	if result.SearchDemand.Volume != 0 {
		t.Errorf("Volume = %d, want 0", result.SearchDemand.Volume)
	}
	if result.ContentSupply.Gap != 0 {
		t.Errorf("Gap = %v, want 0", result.ContentSupply.Gap)
	}
	if result.ContentSupply.Competition != domain.CompetitionLow {
		t.Errorf("Competition = %v, want Low", result.ContentSupply.Competition)
	}
	switch result.Scores.Grade {
	case domain.GradeA, domain.GradeB, domain.GradeC, domain.GradeD, domain.GradeF:
	default:
		t.Errorf("invalid grade %v", result.Scores.Grade)
	}
}

// A fresh cached analysis is returned verbatim on the next call
// within the 24h horizon, without re-invoking the research orchestrator.
func TestAnalyse_CacheHitSkipsResearch(t *testing.T) {
	fake := adapters.NewFake()
	seedVideo(fake, "v1", "widget guide", "how to use widgets", "c1", 1000, 10, time.Now().Add(-24*time.Hour))
	fake.SearchResults["widgets"] = []domain.Video{*fake.Videos["v1"]}
	fake.SearchTotals["widgets"] = 1

	reg := wiring(t, fake)
	ctx := context.Background()

	first, err := reg.Analyse(ctx, "widgets")
	if err != nil {
		t.Fatalf("first Analyse: %v", err)
	}

	// Break the search adapter; a cache hit must not notice.
	fake.Errs["search:widgets"] = context.Canceled

	second, err := reg.Analyse(ctx, "widgets")
	if err != nil {
		t.Fatalf("second Analyse (expected cache hit): %v", err)
	}
	if second.AnalysedAt != first.AnalysedAt {
		t.Errorf("expected verbatim cached result, got a different AnalysedAt (%v vs %v)", second.AnalysedAt, first.AnalysedAt)
	}
}

func TestAnalyse_PopulatesTopVideosWithSignals(t *testing.T) {
	fake := adapters.NewFake()
	now := time.Now()
	var vids []domain.Video
	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		fake.Videos[id] = &domain.Video{
			ID: id, Title: "widget review " + id, Description: "widget description", ChannelID: "chan-" + id,
			ViewCount: 1000, PublishedAt: now.Add(-time.Hour),
		}
		fake.Channels["chan-"+id] = &domain.Channel{ID: "chan-" + id, SubscriberCount: 50000}
		vids = append(vids, *fake.Videos[id])
	}
	fake.SearchResults["widgets"] = vids
	fake.SearchTotals["widgets"] = int64(len(vids))

	reg := wiring(t, fake)
	result, err := reg.Analyse(context.Background(), "widgets")
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}
	if len(result.TopVideos) != 3 {
		t.Fatalf("len(TopVideos) = %d, want 3", len(result.TopVideos))
	}
	for _, v := range result.TopVideos {
		if v.Signals == nil {
			t.Errorf("video %s missing ranking signals annotation", v.Video.ID)
		}
	}
}
