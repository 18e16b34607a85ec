package signal

import (
	"testing"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

func TestClassifySearchDemand_NilInputs(t *testing.T) {
	// Momentum for trend-data=nil returns 0 and trend-type is
	// Seasonal if the seed matches, else Consistent.
	demand := ClassifySearchDemand("golang tutorial", nil, nil)
	if demand.Momentum != 0 {
		t.Errorf("Momentum = %d, want 0", demand.Momentum)
	}
	if demand.TrendType != domain.TrendTypeConsistent {
		t.Errorf("TrendType = %v, want Consistent", demand.TrendType)
	}
	if demand.Volume != 0 {
		t.Errorf("Volume = %d, want 0", demand.Volume)
	}
}

func TestClassifySearchDemand_SeasonalOverridesTrend(t *testing.T) {
	trend := &domain.TrendData{Direction: domain.TrendFalling, InterestScore: 80}
	demand := ClassifySearchDemand("christmas gift ideas", trend, nil)
	if demand.TrendType != domain.TrendTypeSeasonal {
		t.Errorf("TrendType = %v, want Seasonal", demand.TrendType)
	}
	if demand.SeasonalPeak != "December" {
		t.Errorf("SeasonalPeak = %q, want December", demand.SeasonalPeak)
	}
	if demand.Momentum != -25 {
		t.Errorf("Momentum = %d, want -25 (falling, interest>50)", demand.Momentum)
	}
}

func TestMomentumBuckets(t *testing.T) {
	cases := []struct {
		name string
		td   *domain.TrendData
		want int
	}{
		{"rising high", &domain.TrendData{Direction: domain.TrendRising, InterestScore: 80}, 50},
		{"rising low", &domain.TrendData{Direction: domain.TrendRising, InterestScore: 30}, 25},
		{"stable", &domain.TrendData{Direction: domain.TrendStable, InterestScore: 50}, 0},
		{"falling high", &domain.TrendData{Direction: domain.TrendFalling, InterestScore: 80}, -25},
		{"falling low", &domain.TrendData{Direction: domain.TrendFalling, InterestScore: 30}, -50},
		{"unknown", &domain.TrendData{Direction: domain.TrendUnknown, InterestScore: 80}, 0},
	}
	for _, c := range cases {
		got := ClassifySearchDemand("widgets", c.td, nil).Momentum
		if got != c.want {
			t.Errorf("%s: momentum = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestClassifySearchDemand_TrendingViaRisingQueries(t *testing.T) {
	trend := &domain.TrendData{
		Direction:     domain.TrendStable,
		InterestScore: 50,
		RisingQueries: []string{"Widgets 2026 Review"},
	}
	demand := ClassifySearchDemand("widgets", trend, nil)
	if demand.TrendType != domain.TrendTypeTrending {
		t.Errorf("TrendType = %v, want Trending (rising-queries match)", demand.TrendType)
	}
}

func TestClassifySearchDemand_VolumeFromMetrics(t *testing.T) {
	metrics := &domain.KeywordMetrics{MonthlySearchVolume: 12345}
	demand := ClassifySearchDemand("widgets", nil, metrics)
	if demand.Volume != 12345 {
		t.Errorf("Volume = %d, want 12345", demand.Volume)
	}
}
