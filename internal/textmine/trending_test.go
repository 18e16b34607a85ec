package textmine

import (
	"testing"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

func TestExtractTrendingKeywords_RequiresTwoVideos(t *testing.T) {
	videos := []domain.Video{
		{Title: "unique special topic only here"},
	}
	got := ExtractTrendingKeywords(videos, 20)
	for _, k := range got {
		if k.Phrase == "unique" || k.Phrase == "special" {
			t.Errorf("phrase %q appeared in only one video but was kept", k.Phrase)
		}
	}
}

func TestExtractTrendingKeywords_WeightsBySource(t *testing.T) {
	videos := []domain.Video{
		{Title: "amazing widget review", Tags: []string{"widget"}, Description: "widget talk"},
		{Title: "another widget moment", Tags: []string{"widget"}, Description: "widget talk"},
	}
	got := ExtractTrendingKeywords(videos, 20)
	var widgetScore float64
	found := false
	for _, k := range got {
		if k.Phrase == "widget" {
			widgetScore = k.Score
			found = true
		}
	}
	if !found {
		t.Fatal("expected \"widget\" in trending keywords")
	}
	// title(3) + tag(2) + description(1) per video, x2 videos = 12.
	if widgetScore != 12 {
		t.Errorf("widget score = %v, want 12 (title+tag+desc weights x2 videos)", widgetScore)
	}
}

func TestExtractTrendingKeywords_ExcludesPlatformBoilerplate(t *testing.T) {
	videos := []domain.Video{
		{Title: "official trailer video"},
		{Title: "official trailer video"},
	}
	got := ExtractTrendingKeywords(videos, 20)
	for _, k := range got {
		if k.Phrase == "official" || k.Phrase == "video" {
			t.Errorf("platform boilerplate %q should have been excluded by the trending stop set", k.Phrase)
		}
	}
}

func TestExtractTrendingKeywords_TopNLimit(t *testing.T) {
	videos := []domain.Video{
		{Title: "alpha bravo charlie delta echo"},
		{Title: "alpha bravo charlie delta echo"},
	}
	got := ExtractTrendingKeywords(videos, 2)
	if len(got) > 2 {
		t.Errorf("len(got) = %d, want <= 2", len(got))
	}
}
