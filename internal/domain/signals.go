package domain

import "time"

// EnrichedVideo bundles a Video with its optional transcript, a bounded
// slice of comments, its optional channel, and (once the ranking-factor
// analyser has run over it) a per-video ranking signal annotation.
type EnrichedVideo struct {
	Video      Video
	Transcript *Transcript
	Comments   []Comment
	Channel    *Channel
	Signals    *RankingSignals
}

// CompetitionLabel is the ad-network competition classification.
type CompetitionLabel string

const (
	CompetitionLow     CompetitionLabel = "low"
	CompetitionMedium  CompetitionLabel = "medium"
	CompetitionHigh    CompetitionLabel = "high"
	CompetitionUnknown CompetitionLabel = "unknown"
)

// KeywordMetrics is the ad-network keyword-ideas response for one keyword.
type KeywordMetrics struct {
	Keyword             string
	MonthlySearchVolume int64
	Competition         CompetitionLabel
	CompetitionIndex    int
	LowTopOfPageBid     int64
	HighTopOfPageBid    int64
}

// TrendDirection is the direction of a trends-service interest series.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendStable  TrendDirection = "stable"
	TrendUnknown TrendDirection = "unknown"
)

// TrendData is the trends-service response for one keyword/region pair.
type TrendData struct {
	Keyword       string
	InterestScore int
	Direction     TrendDirection
	TopQueries    []string
	RisingQueries []string
}

// ResearchResult is the raw fanned-out signal bundle produced by the
// research orchestrator actor for one keyword.
type ResearchResult struct {
	Keyword             string
	ProducedAt          time.Time
	EnrichedVideos      []EnrichedVideo
	YouTubeAutocomplete []string
	GoogleAutocomplete  []string
	KeywordMetrics      *KeywordMetrics
	TotalSearchResults  int64
}

// ExtractedKeyword is one TF-IDF scored n-gram extracted from a research
// result's videos.
type ExtractedKeyword struct {
	Term  string
	Score float64
}

// TrendType is the search-demand classifier's output category.
type TrendType string

const (
	TrendTypeSeasonal   TrendType = "Seasonal"
	TrendTypeTrending   TrendType = "Trending"
	TrendTypeConsistent TrendType = "Consistent"
	TrendTypeDeclining  TrendType = "Declining"
)

// SearchDemand is the output of the search-demand classifier.
type SearchDemand struct {
	Keyword      string
	Volume       int64
	TrendType    TrendType
	Momentum     int
	SeasonalPeak string // month name, empty if not seasonal
}

// ActivityLabel classifies how actively a topic is being published to.
type ActivityLabel string

const (
	ActivityHot      ActivityLabel = "Hot"
	ActivityActive   ActivityLabel = "Active"
	ActivityModerate ActivityLabel = "Moderate"
	ActivitySlow     ActivityLabel = "Slow"
	ActivityDormant  ActivityLabel = "Dormant"
)

// ContentGap is the output of the content-gap scorer.
type ContentGap struct {
	AvgViews         float64
	AvgSubscribers   float64
	UploadedToday    int
	UploadedLast3d   int
	UploadedLast7d   int
	UploadedLast30d  int
	UploadedLast365d int
	Gap              float64
	Activity         ActivityLabel
	Competition      CompetitionLabel
	IsDormantNiche   bool
	// TotalVideos is the platform's reported total competing-video count
	// for the keyword (the "videoCount" term in both the gap formula's
	// denominator and the difficulty saturation bucket).
	TotalVideos int64
}

// RankingSignals is the per-video boolean/count vector produced by the
// ranking-factor analyser's per-video extraction.
type RankingSignals struct {
	KeywordInTitle           bool
	KeywordInFirst3Words     bool
	KeywordInDescription     bool
	TagMatchCount            int
	TranscriptMentions       int
	EngagementRate           float64
	ChannelAuthorityTier     int
	KeywordInChannelName     bool
	KeywordInChannelDesc     bool
	ChannelKeywordMatchCount int
	IsNicheChannel           bool
	CommentKeywordMentions   int
	ChannelVideosAnalysed    int
	ChannelVideosWithKeyword int
	ChannelKeywordRatio      float64
	IsKeywordAuthority       bool
	Reasons                  []string
}

// RankingFactor is one named correlation factor with its position-bias
// style score.
type RankingFactor struct {
	Name        string
	Correlation float64
}

// ChannelAuthoritySummary summarises the ten top videos' channels.
type ChannelAuthoritySummary struct {
	AverageSubscribers     float64
	NeedsEstablished       bool
	EstimatedMinSubsToRank int64
}

// OptimalPlacement describes where the keyword should ideally appear.
type OptimalPlacement struct {
	InFirst3TitleWords       bool
	InFirst100DescChars      bool
	MeanTagCount             float64
	TranscriptMentionsPerMin float64
}

// LongTailVariation is a single suggested variation surfaced by the
// ranking-factor analyser, before it is recursively analysed.
type LongTailVariation struct {
	Keyword    string
	Difficulty int
}

// RankingInsights is the full output of the ranking-factor analyser.
type RankingInsights struct {
	TopFactors         []RankingFactor
	ChannelAuthority   ChannelAuthoritySummary
	OptimalPlacement   OptimalPlacement
	LongTailVariations []LongTailVariation
}

// TagOverlap is a tag shared across several of a keyword's top videos.
type TagOverlap struct {
	Tag        string
	Count      int
	TotalViews int64
}

// TopicCluster is a recurring transcript bigram cluster.
type TopicCluster struct {
	Term         string
	RelatedTerms []string
}

// TargetVideo is a candidate for tag-overlap co-appearance.
type TargetVideo struct {
	VideoID    string
	Title      string
	Similarity float64
}

// RecommendationOptimization is the output of the recommendation optimiser.
type RecommendationOptimization struct {
	TagOverlaps             []TagOverlap
	MustUseTags             []string
	TopicClusters           []TopicCluster
	TargetVideos            []TargetVideo
	TopicMatchScore         float64
	TranscriptKeywordsToUse []string
}

// Grade is the totally ordered letter grade A > B > C > D > F.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// IsGood reports whether the grade is one of {A, B, C}.
func (g Grade) IsGood() bool {
	return g == GradeA || g == GradeB || g == GradeC
}

// Scores bundles the opportunity/difficulty/grade triple.
type Scores struct {
	Opportunity int
	Difficulty  int
	Grade       Grade
}

// AnalysisResult is the score-and-grade product of the keyword-analysis
// actor for one keyword.
type AnalysisResult struct {
	Keyword              string
	AnalysedAt           time.Time
	SearchDemand         SearchDemand
	ContentSupply        ContentGap
	RankingInsights      RankingInsights
	Scores               Scores
	Recommendations      RecommendationOptimization
	TopExtractedKeywords []ExtractedKeyword
	TopVideos            []EnrichedVideo
}

// LongTailResult is one recursively analysed long-tail candidate.
type LongTailResult struct {
	Keyword                string
	Source                 string // "YouTube Trends" or "Google Ads"
	Opportunity            int
	Difficulty             int
	Grade                  Grade
	SearchVolume           int64
	Competition            CompetitionLabel
	VideoCount             int
	AverageCompetitorViews float64
	AnalysedAt             time.Time
}

// TrendingKeywordSummary is one entry of a region's trending digest.
type TrendingKeywordSummary struct {
	Keyword            string
	Grade              Grade
	Opportunity        int
	Difficulty         int
	Volume             int64
	TrendingVideoCount int
	TopVideoTitle      string
	TopVideoThumbnail  string
}

// TrendingVideoProjection is a compact trending-video record kept in the
// per-region durable cache.
type TrendingVideoProjection struct {
	ID           string
	Title        string
	ChannelTitle string
	ViewCount    int64
	Thumbnail    string
}

// TrendingCacheState is the per-region durable slot record.
type TrendingCacheState struct {
	Keywords     []TrendingKeywordSummary
	Videos       []TrendingVideoProjection
	LastWarmupAt time.Time
	RegionCode   string
}

// KeywordCacheState is the per-keyword durable slot record. The
// analysis and the long-tail list age independently.
type KeywordCacheState struct {
	Result            *AnalysisResult
	CachedAt          time.Time
	LongTails         []LongTailResult
	LongTailsCachedAt time.Time
}

// FreshnessHorizon is the 24h validity window shared by both durable
// cache kinds.
const FreshnessHorizon = 24 * time.Hour

// Fresh reports whether a cached-at timestamp is still inside the
// freshness horizon relative to now.
func Fresh(cachedAt, now time.Time) bool {
	if cachedAt.IsZero() {
		return false
	}
	return now.Sub(cachedAt) < FreshnessHorizon
}
