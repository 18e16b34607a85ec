package signal

import (
	"time"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// ComputeScores implements the score-and-grade calculator:
// opportunity and difficulty are each a sum of bucketed points clamped to
// [0, 100], and the letter grade is read off their net. now decides
// whether a seasonal keyword is currently inside its peak month.
func ComputeScores(now time.Time, demand domain.SearchDemand, gap domain.ContentGap, ranking domain.RankingInsights) domain.Scores {
	inSeason := demand.SeasonalPeak != "" && demand.SeasonalPeak == now.UTC().Month().String()

	opportunity := domain.OpportunityVolumePoints(demand.Volume) +
		domain.OpportunityGapPoints(gap.Gap) +
		domain.OpportunityMomentumPoints(demand.TrendType, inSeason) +
		rankabilityPoints(ranking.ChannelAuthority.NeedsEstablished, gap.Competition)
	opportunity = clampInt(opportunity, 0, 100)

	difficulty := domain.DifficultyAuthorityPoints(ranking.ChannelAuthority.AverageSubscribers) +
		domain.DifficultySaturationPoints(int(gap.TotalVideos)) +
		domain.DifficultyViewCompetitionPoints(gap.AvgViews) +
		channelRequirementPoints(ranking.ChannelAuthority.NeedsEstablished, ranking.ChannelAuthority.EstimatedMinSubsToRank)
	difficulty = clampInt(difficulty, 0, 100)

	grade := domain.GradeFromNet(opportunity - difficulty)

	return domain.Scores{
		Opportunity: opportunity,
		Difficulty:  difficulty,
		Grade:       grade,
	}
}

// rankabilityPoints is the opportunity rankability-score term:
// 25 if the keyword doesn't need an established channel to rank, else 5;
// +5 if competition is Low; capped at 25.
func rankabilityPoints(needsEstablished bool, competition domain.CompetitionLabel) int {
	points := 25
	if needsEstablished {
		points = 5
	}
	if competition == domain.CompetitionLow {
		points += 5
	}
	return clampInt(points, 0, 25)
}

// channelRequirementPoints is the difficulty channel-requirement term:
// 20 if an established channel is needed, else 5; +5 if the estimated
// minimum subscribers to rank exceeds 50k; capped at 20.
func channelRequirementPoints(needsEstablished bool, minSubsToRank int64) int {
	points := 5
	if needsEstablished {
		points = 20
	}
	if minSubsToRank > 50_000 {
		points += 5
	}
	return clampInt(points, 0, 20)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
