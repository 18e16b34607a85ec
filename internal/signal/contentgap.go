package signal

import (
	"math"
	"time"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// ScoreContentGap implements the content-gap scorer.
func ScoreContentGap(now time.Time, videos []domain.EnrichedVideo, metrics *domain.KeywordMetrics, totalSearchResults int64) domain.ContentGap {
	var volume int64
	if metrics != nil {
		volume = metrics.MonthlySearchVolume
	}

	var totalViews, totalSubs float64
	var today, last3d, last7d, last30d, last365d int

	for _, v := range videos {
		totalViews += float64(v.Video.ViewCount)
		if v.Channel != nil {
			totalSubs += float64(v.Channel.SubscriberCount)
		}
		age := now.Sub(v.Video.PublishedAt)
		if age <= 24*time.Hour {
			today++
		}
		if age <= 3*24*time.Hour {
			last3d++
		}
		if age <= 7*24*time.Hour {
			last7d++
		}
		if age <= 30*24*time.Hour {
			last30d++
		}
		if age <= 365*24*time.Hour {
			last365d++
		}
	}

	n := float64(len(videos))
	avgViews := 0.0
	if n > 0 {
		avgViews = totalViews / n
	}
	avgSubs := 0.0
	if n > 0 {
		// channels default to 0 for missing channels, so the average is
		// still over all videos, not just those with a channel.
		avgSubs = totalSubs / n
	}

	gap := computeGap(volume, totalSearchResults, avgSubs)

	var activity domain.ActivityLabel
	switch {
	case last7d >= 3:
		activity = domain.ActivityHot
	case last7d >= 1:
		activity = domain.ActivityActive
	case last30d >= 1:
		activity = domain.ActivityModerate
	case totalSearchResults > 0:
		activity = domain.ActivitySlow
	default:
		activity = domain.ActivityDormant
	}

	var competition domain.CompetitionLabel
	switch {
	case gap > 1:
		competition = domain.CompetitionLow
	case avgSubs > 500_000 || avgViews > 1_000_000:
		competition = domain.CompetitionHigh
	case avgSubs > 100_000 || avgViews > 100_000:
		competition = domain.CompetitionMedium
	default:
		competition = domain.CompetitionLow
	}

	dormant := (volume >= 5000 && last30d == 0) ||
		(volume >= 2000 && last7d == 0 && last30d <= 2) ||
		(volume >= 1000 && last7d == 0 && totalSearchResults > 0)

	return domain.ContentGap{
		AvgViews:         avgViews,
		AvgSubscribers:   avgSubs,
		UploadedToday:    today,
		UploadedLast3d:   last3d,
		UploadedLast7d:   last7d,
		UploadedLast30d:  last30d,
		UploadedLast365d: last365d,
		Gap:              gap,
		Activity:         activity,
		Competition:      competition,
		IsDormantNiche:   dormant,
		TotalVideos:      totalSearchResults,
	}
}

func computeGap(volume, videoCount int64, avgSubs float64) float64 {
	if volume == 0 {
		return 0
	}
	if videoCount == 0 {
		return 2.0
	}
	demand := math.Min(float64(volume)/10000, 1)
	supply := math.Min(float64(videoCount)/50, 1) + 0.1
	authority := math.Min(avgSubs/1_000_000, 1) + 0.1
	gap := demand / (supply * authority)
	gap = math.Round(gap*100) / 100
	if gap < 0 {
		gap = 0
	}
	if gap > 2 {
		gap = 2
	}
	return gap
}
