// Package boundary is the thin public request/subscription layer over
// the actor fabric: one entry point per actor method, one mutation, and
// the pub/sub fan-out the AnalyseKeyword entry triggers for its
// streaming long-tail side effect.
package boundary

import (
	"time"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// LongTailUpdate is one emission of the on-long-tail-analysed stream:
// either a freshly analysed long-tail result, or the final
// "complete" marker sent if the stream finishes before reaching the
// target count.
type LongTailUpdate struct {
	Parent                 string                  `json:"parent"`
	LongTail               string                  `json:"longTail,omitempty"`
	Opportunity            int                     `json:"opportunity,omitempty"`
	Difficulty             int                     `json:"difficulty,omitempty"`
	Grade                  domain.Grade            `json:"grade,omitempty"`
	SearchVolume           int64                   `json:"searchVolume,omitempty"`
	Competition            domain.CompetitionLabel `json:"competition,omitempty"`
	VideoCount             int                     `json:"videoCount,omitempty"`
	AverageCompetitorViews float64                 `json:"averageCompetitorViews,omitempty"`
	AnalysedAt             time.Time               `json:"analysedAt,omitempty"`
	Source                 string                  `json:"source,omitempty"`
	IsComplete             bool                    `json:"isComplete"`
	AnalysedCount          int                     `json:"analysedCount"`
	TotalCount             int                     `json:"totalCount"`
	AllResultsSoFar        []domain.LongTailResult `json:"allResultsSoFar"`
}

func fromLongTail(parent string, r domain.LongTailResult, analysedCount, totalCount int, soFar []domain.LongTailResult) LongTailUpdate {
	return LongTailUpdate{
		Parent:                 parent,
		LongTail:               r.Keyword,
		Opportunity:            r.Opportunity,
		Difficulty:             r.Difficulty,
		Grade:                  r.Grade,
		SearchVolume:           r.SearchVolume,
		Competition:            r.Competition,
		VideoCount:             r.VideoCount,
		AverageCompetitorViews: r.AverageCompetitorViews,
		AnalysedAt:             r.AnalysedAt,
		Source:                 r.Source,
		AnalysedCount:          analysedCount,
		TotalCount:             totalCount,
		AllResultsSoFar:        soFar,
	}
}

func completeMarker(parent string, analysedCount, totalCount int, soFar []domain.LongTailResult) LongTailUpdate {
	return LongTailUpdate{
		Parent:          parent,
		IsComplete:      true,
		AnalysedCount:   analysedCount,
		TotalCount:      totalCount,
		AllResultsSoFar: soFar,
	}
}
