package signal

import (
	"testing"
	"time"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// Empty research, all adapters neutral. The classifier always resolves
// a momentum-0, no-trend-data keyword to TrendTypeConsistent (15
// momentum points), so the empty result still grades as B.
func TestComputeScores_EmptyResearch(t *testing.T) {
	demand := ClassifySearchDemand("__zzznoresults", nil, nil)
	gap := domain.ContentGap{Gap: 0, Competition: domain.CompetitionLow, TotalVideos: 0, AvgViews: 0}
	ranking := domain.RankingInsights{
		ChannelAuthority: domain.ChannelAuthoritySummary{NeedsEstablished: false, AverageSubscribers: 0},
	}

	scores := ComputeScores(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), demand, gap, ranking)

	if scores.Opportunity != 48 {
		t.Errorf("Opportunity = %d, want 48 (3+5+15+25)", scores.Opportunity)
	}
	if scores.Difficulty != 16 {
		t.Errorf("Difficulty = %d, want 16 (5+3+3+5)", scores.Difficulty)
	}
	if scores.Grade != domain.GradeB {
		t.Errorf("Grade = %v, want B (net=32)", scores.Grade)
	}
}

// Seasonal keyword analysed inside its peak month.
func TestComputeScores_SeasonalInSeason(t *testing.T) {
	demand := domain.SearchDemand{
		Volume:       120_000,
		TrendType:    domain.TrendTypeSeasonal,
		SeasonalPeak: "December",
	}
	gap := domain.ContentGap{
		Gap:         0.8,
		Competition: domain.CompetitionMedium,
		TotalVideos: 15,
		AvgViews:    40_000,
	}
	ranking := domain.RankingInsights{
		ChannelAuthority: domain.ChannelAuthoritySummary{
			NeedsEstablished:       false,
			AverageSubscribers:     80_000,
			EstimatedMinSubsToRank: 8_000,
		},
	}

	scores := ComputeScores(time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC), demand, gap, ranking)

	if scores.Opportunity != 83 {
		t.Errorf("Opportunity = %d, want 83 (25+15+18+25)", scores.Opportunity)
	}
	if scores.Difficulty != 29 {
		t.Errorf("Difficulty = %d, want 29 (10+6+8+5)", scores.Difficulty)
	}
	if scores.Grade != domain.GradeA {
		t.Errorf("Grade = %v, want A (net=54)", scores.Grade)
	}
}

// The same seasonal keyword analysed outside its peak month earns the
// off-season momentum points (8 instead of 18).
func TestComputeScores_SeasonalOffSeason(t *testing.T) {
	demand := domain.SearchDemand{
		Volume:       120_000,
		TrendType:    domain.TrendTypeSeasonal,
		SeasonalPeak: "December",
	}
	gap := domain.ContentGap{
		Gap:         0.8,
		Competition: domain.CompetitionMedium,
		TotalVideos: 15,
		AvgViews:    40_000,
	}
	ranking := domain.RankingInsights{
		ChannelAuthority: domain.ChannelAuthoritySummary{
			NeedsEstablished:       false,
			AverageSubscribers:     80_000,
			EstimatedMinSubsToRank: 8_000,
		},
	}

	scores := ComputeScores(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), demand, gap, ranking)

	if scores.Opportunity != 73 {
		t.Errorf("Opportunity = %d, want 73 (25+15+8+25)", scores.Opportunity)
	}
}

// Saturated topic: difficulty clamps to 100 and grade is F.
func TestComputeScores_Saturated(t *testing.T) {
	demand := domain.SearchDemand{Volume: 200_000, TrendType: domain.TrendTypeConsistent}
	gap := domain.ContentGap{
		Gap:         0.3,
		Competition: domain.CompetitionHigh,
		TotalVideos: 120,
		AvgViews:    2_000_000,
	}
	ranking := domain.RankingInsights{
		ChannelAuthority: domain.ChannelAuthoritySummary{
			NeedsEstablished:       true,
			AverageSubscribers:     2_000_000,
			EstimatedMinSubsToRank: 200_000,
		},
	}

	scores := ComputeScores(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), demand, gap, ranking)

	if scores.Difficulty != 100 {
		t.Errorf("Difficulty = %d, want 100 (30+25+25+25 clamped)", scores.Difficulty)
	}
	if scores.Grade != domain.GradeF {
		t.Errorf("Grade = %v, want F", scores.Grade)
	}
}

func TestComputeScores_ClampBounds(t *testing.T) {
	demand := domain.SearchDemand{Volume: 10_000_000, TrendType: domain.TrendTypeTrending}
	gap := domain.ContentGap{Gap: 5, Competition: domain.CompetitionLow, TotalVideos: 1}
	ranking := domain.RankingInsights{}
	scores := ComputeScores(time.Now(), demand, gap, ranking)
	if scores.Opportunity < 0 || scores.Opportunity > 100 {
		t.Errorf("Opportunity out of bounds: %d", scores.Opportunity)
	}
	if scores.Difficulty < 0 || scores.Difficulty > 100 {
		t.Errorf("Difficulty out of bounds: %d", scores.Difficulty)
	}
}
