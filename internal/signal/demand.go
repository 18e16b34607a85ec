// Package signal holds the pure, stateless signal-mining services the
// keyword-analysis actor composes over a research result: demand
// classification, content-gap scoring, ranking-factor correlation,
// recommendation optimisation, and the final score/grade calculator.
package signal

import (
	"strings"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// ClassifySearchDemand implements the search-demand classifier.
func ClassifySearchDemand(keyword string, trend *domain.TrendData, metrics *domain.KeywordMetrics) domain.SearchDemand {
	var volume int64
	if metrics != nil {
		volume = metrics.MonthlySearchVolume
	}
	momentum := momentumFor(trend)

	if month, ok := domain.SeasonalPeakFor(keyword); ok {
		return domain.SearchDemand{
			Keyword:      keyword,
			Volume:       volume,
			TrendType:    domain.TrendTypeSeasonal,
			Momentum:     momentum,
			SeasonalPeak: month,
		}
	}

	trendType := domain.TrendTypeConsistent
	switch {
	case momentum > 30:
		trendType = domain.TrendTypeTrending
	case momentum < -30:
		trendType = domain.TrendTypeDeclining
	default:
		if trend != nil && containsFold(trend.RisingQueries, keyword) {
			trendType = domain.TrendTypeTrending
		}
	}

	return domain.SearchDemand{
		Keyword:   keyword,
		Volume:    volume,
		TrendType: trendType,
		Momentum:  momentum,
	}
}

func momentumFor(trend *domain.TrendData) int {
	if trend == nil {
		return 0
	}
	switch trend.Direction {
	case domain.TrendRising:
		if trend.InterestScore > 50 {
			return 50
		}
		return 25
	case domain.TrendFalling:
		if trend.InterestScore > 50 {
			return -25
		}
		return -50
	case domain.TrendStable:
		return 0
	default:
		return 0
	}
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
