package boundary

import (
	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/keyword"
	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/actors/trending"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// defaultMaxLongTails is the analyse-keyword entry's maxLongTails
// default.
const defaultMaxLongTails = 10

// defaultRegion is the region every region-scoped entry point falls back
// to when the caller doesn't specify one.
const defaultRegion = "US"

// Dependencies bundles every actor registry and pass-through source
// registry the boundary layer's entry points call into. Every
// pass-through entry (search-videos, get-video, ...) except
// get-keyword-ideas (see KeywordPlanner below) goes through its
// per-source actor rather than straight to an adapter, so it shares the
// same cache and serialisation guarantees as the orchestrated paths.
type Dependencies struct {
	Keyword  *keyword.Registry
	Research *research.Registry
	Trending *trending.Registry

	Search              *source.Registry[source.SearchResult]
	YouTubeAutocomplete *source.Registry[[]string]
	GoogleAutocomplete  *source.Registry[[]string]
	KeywordPlannerReg   *source.Registry[*domain.KeywordMetrics]
	Trends              *source.Registry[*domain.TrendData]
	Transcript          *source.Registry[*domain.Transcript]
	Comments            *source.Registry[[]domain.Comment]
	Reddit              *source.Registry[[]adapters.RedditPost]
	GoogleVideo         *source.Registry[[]domain.Video]
	Channel             *source.ChannelRegistry
	Enrichment          *enrichment.Registry

	// KeywordPlanner is called directly for get-keyword-ideas: the
	// per-keyword cache actor covers only the single-keyword Metrics
	// call; Ideas fans out to many distinct candidate keywords per seed
	// (as the long-tail gathering does) so it has no natural single-key
	// cache of its own.
	KeywordPlanner adapters.KeywordPlannerAdapter

	// Bus fans out on-long-tail-analysed updates; AnalyseKeyword
	// publishes to it as a fire-and-forget side effect.
	Bus *Bus
}
