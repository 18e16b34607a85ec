package domain

import "strings"

// SeasonalPeak maps a lower-cased substring phrase to the month it peaks
// in. Checked case-insensitively against the keyword.
var SeasonalPeak = []struct {
	Phrases []string
	Month   string
}{
	{[]string{"christmas", "holiday", "gift"}, "December"},
	{[]string{"halloween", "costume", "scary"}, "October"},
	{[]string{"summer", "beach", "vacation"}, "July"},
	{[]string{"back to school", "school supplies"}, "August"},
	{[]string{"tax", "taxes", "tax return"}, "April"},
	{[]string{"valentine", "romantic"}, "February"},
	{[]string{"thanksgiving", "turkey"}, "November"},
	{[]string{"new year", "resolution"}, "January"},
}

// SeasonalPeakFor returns the peak month for a keyword, and whether the
// keyword matched the seasonal phrase set at all.
func SeasonalPeakFor(keyword string) (month string, ok bool) {
	lower := strings.ToLower(keyword)
	for _, entry := range SeasonalPeak {
		for _, phrase := range entry.Phrases {
			if strings.Contains(lower, phrase) {
				return entry.Month, true
			}
		}
	}
	return "", false
}

// Opportunity volume-score buckets: search volume -> points, first
// matching (highest) threshold wins.
func OpportunityVolumePoints(volume int64) int {
	switch {
	case volume > 100_000:
		return 25
	case volume > 50_000:
		return 22
	case volume > 10_000:
		return 18
	case volume > 1_000:
		return 12
	case volume > 100:
		return 6
	default:
		return 3
	}
}

// OpportunityGapPoints buckets the content-gap score.
func OpportunityGapPoints(gap float64) int {
	switch {
	case gap > 1.5:
		return 30
	case gap > 1.0:
		return 25
	case gap > 0.5:
		return 15
	default:
		return 5
	}
}

// OpportunityMomentumPoints maps the demand classifier's trend type (and,
// for Seasonal, whether the keyword is currently in-season) to points.
func OpportunityMomentumPoints(trendType TrendType, inSeason bool) int {
	switch trendType {
	case TrendTypeTrending:
		return 20
	case TrendTypeConsistent:
		return 15
	case TrendTypeSeasonal:
		if inSeason {
			return 18
		}
		return 8
	case TrendTypeDeclining:
		return 3
	default:
		return 10
	}
}

// DifficultyAuthorityPoints buckets average channel subscriber count.
func DifficultyAuthorityPoints(avgSubs float64) int {
	switch {
	case avgSubs > 1_000_000:
		return 30
	case avgSubs > 500_000:
		return 25
	case avgSubs > 100_000:
		return 18
	case avgSubs > 10_000:
		return 10
	default:
		return 5
	}
}

// DifficultySaturationPoints buckets the competing video count.
func DifficultySaturationPoints(videoCount int) int {
	switch {
	case videoCount > 100:
		return 25
	case videoCount > 50:
		return 20
	case videoCount > 20:
		return 12
	case videoCount > 10:
		return 6
	default:
		return 3
	}
}

// DifficultyViewCompetitionPoints buckets average competitor view counts.
func DifficultyViewCompetitionPoints(avgViews float64) int {
	switch {
	case avgViews > 1_000_000:
		return 25
	case avgViews > 500_000:
		return 20
	case avgViews > 100_000:
		return 15
	case avgViews > 10_000:
		return 8
	default:
		return 3
	}
}

// ChannelAuthorityTier buckets subscriber count into the 1-5 tiers used by
// per-video ranking-signal extraction.
func ChannelAuthorityTier(subscribers int64) int {
	switch {
	case subscribers >= 10_000_000:
		return 5
	case subscribers >= 1_000_000:
		return 4
	case subscribers >= 100_000:
		return 3
	case subscribers >= 10_000:
		return 2
	default:
		return 1
	}
}

// KeywordAuthorityRatio is the minimum fraction of a channel's recent
// videos that must bear the keyword for it to count as a keyword
// authority channel (glossary: "Keyword authority channel").
const KeywordAuthorityRatio = 0.30

// GradeFromNet derives the letter grade from opportunity minus difficulty.
func GradeFromNet(net int) Grade {
	switch {
	case net > 40:
		return GradeA
	case net > 20:
		return GradeB
	case net > 0:
		return GradeC
	case net > -20:
		return GradeD
	default:
		return GradeF
	}
}
