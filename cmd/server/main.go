// Command server is the process entrypoint: it loads configuration,
// constructs the durable store, the source adapters, every actor
// registry in the keyword-analysis fabric, the scheduled warm-up job,
// and the boundary HTTP server, then runs them until a shutdown signal
// arrives.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/McZenith/liza.ai.server/internal/actors/enrichment"
	"github.com/McZenith/liza.ai.server/internal/actors/keyword"
	"github.com/McZenith/liza.ai.server/internal/actors/research"
	"github.com/McZenith/liza.ai.server/internal/actors/source"
	"github.com/McZenith/liza.ai.server/internal/actors/trending"
	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/boundary"
	"github.com/McZenith/liza.ai.server/internal/broker"
	"github.com/McZenith/liza.ai.server/internal/config"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/logging"
	"github.com/McZenith/liza.ai.server/internal/scheduler"
	"github.com/McZenith/liza.ai.server/internal/store"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	durableStore, closeStore, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Nonblocking so a saturated pool overflows into flowx's inline
	// fallback instead of deadlocking nested fan-outs.
	pool, err := ants.NewPool(cfg.FanoutPoolSize, ants.WithNonblocking(true))
	if err != nil {
		return err
	}
	defer pool.Release()
	xsync.SetDefault(xsync.OfAnts(pool))

	sources := buildSources(cfg)
	registries := buildRegistries(cfg, durableStore, sources)

	warmupBroker, closeBroker := buildBroker(cfg)
	defer closeBroker()
	warmupJob := scheduler.New(scheduler.Dependencies{
		Trending:   registries.trending,
		Broker:     warmupBroker,
		Regions:    cfg.Regions,
		MaxWorkers: cfg.WarmupMaxWorkers,
	})

	log := logging.NewWithService("liza-server")
	router := boundary.NewRouter(boundary.Dependencies{
		Keyword:             registries.keyword,
		Research:            registries.research,
		Trending:            registries.trending,
		Search:              registries.search,
		YouTubeAutocomplete: registries.youtubeAutocomplete,
		GoogleAutocomplete:  registries.googleAutocomplete,
		KeywordPlannerReg:   registries.keywordPlanner,
		Trends:              registries.trends,
		Transcript:          registries.transcript,
		Comments:            registries.comments,
		Reddit:              registries.reddit,
		GoogleVideo:         registries.googleVideo,
		Channel:             registries.channel,
		Enrichment:          registries.enrichment,
		KeywordPlanner:      sources.KeywordPlanner,
		Bus:                 boundary.NewBus(),
	}, log)

	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	ctx := context.Background()
	if err := warmupJob.Start(ctx); err != nil {
		return err
	}

	serveErrs := make(chan error, 1)
	go func() {
		slog.Info("boundary HTTP server starting", slog.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrs <- err
			return
		}
		serveErrs <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	select {
	case <-stop:
	case err := <-serveErrs:
		if err != nil {
			slog.Error("boundary HTTP server failed", slog.String("err", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var errs []error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := warmupJob.Stop(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// buildStore mounts the durable slot store the keyword-analysis and
// trending-analysis actors commit to, selecting Badger or
// Memory per config.
func buildStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "badger":
		db, err := store.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

// buildBroker selects the warm-up region queue's Broker: Kafka when
// KAFKA_BROKERS is configured, the in-process Memory default otherwise.
func buildBroker(cfg *config.Config) (broker.Broker, func()) {
	if len(cfg.KafkaBrokers) > 0 {
		k := broker.NewKafka(&broker.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			GroupID: "liza-warmup",
		})
		return k, func() { _ = k.Close() }
	}
	m := broker.NewMemory()
	return m, func() { _ = m.Close() }
}

// buildSources constructs the concrete adapter bundle: the resty-backed
// HTTPClient when a YouTube API key is configured, otherwise the
// in-memory Fake so the process still boots and serves a coherent
// (synthetic) pipeline with no external credentials (local dev, tests).
func buildSources(cfg *config.Config) *adapters.Sources {
	if cfg.YouTubeAPIKey == "" {
		return adapters.NewFake().Sources()
	}

	var keys *adapters.KeyRotator
	if len(cfg.GoogleAdsAPIKeys) > 0 {
		keys = adapters.NewKeyRotator(cfg.GoogleAdsAPIKeys)
	}
	client := adapters.NewHTTPClient(adapters.HTTPConfig{
		VideoPlatformBaseURL:   "https://www.googleapis.com/youtube/v3",
		YouTubeAutocompleteURL: "https://suggestqueries.google.com/complete/search",
		GoogleAutocompleteURL:  "https://www.google.com/complete/search",
		TrendsBaseURL:          cfg.GoogleTrendsBaseURL,
		AdNetworkBaseURL:       "https://googleads.googleapis.com/v17",
		RedditBaseURL:          "https://www.reddit.com",
		GoogleSearchBaseURL:    "https://www.googleapis.com/customsearch/v1",
		TranscriptBaseURL:      "https://www.youtube.com",
		Timeout:                cfg.RequestTimeout,
		YouTubeAPIKey:          cfg.YouTubeAPIKey,
	}, keys)

	return &adapters.Sources{
		Search:              client,
		YouTubeAutocomplete: client.YouTubeAutocomplete(),
		GoogleAutocomplete:  client.GoogleAutocomplete(),
		KeywordPlanner:      client,
		Trends:              client,
		VideoDetails:        client,
		Channel:             client,
		Transcript:          client,
		Comments:            client,
		Reddit:              client.Reddit(),
		GoogleVideo:         client.GoogleVideo(),
		Trending:            client,
	}
}

// registries bundles every actor registry constructed at bootstrap, the
// set boundary.Dependencies and scheduler.Dependencies are assembled
// from.
type registries struct {
	search              *source.Registry[source.SearchResult]
	youtubeAutocomplete *source.Registry[[]string]
	googleAutocomplete  *source.Registry[[]string]
	keywordPlanner      *source.Registry[*domain.KeywordMetrics]
	trends              *source.Registry[*domain.TrendData]
	transcript          *source.Registry[*domain.Transcript]
	comments            *source.Registry[[]domain.Comment]
	reddit              *source.Registry[[]adapters.RedditPost]
	googleVideo         *source.Registry[[]domain.Video]
	channel             *source.ChannelRegistry
	enrichment          *enrichment.Registry
	research            *research.Registry
	keyword             *keyword.Registry
	trending            *trending.Registry
}

func buildRegistries(cfg *config.Config, st store.Store, src *adapters.Sources) *registries {
	reg := &registries{
		search:              source.NewSearchRegistry(src.Search),
		youtubeAutocomplete: source.NewAutocompleteRegistry("youtube", src.YouTubeAutocomplete),
		googleAutocomplete:  source.NewAutocompleteRegistry("google", src.GoogleAutocomplete),
		keywordPlanner:      source.NewKeywordPlannerRegistry(src.KeywordPlanner),
		trends:              source.NewTrendsRegistry(src.Trends),
		transcript:          source.NewTranscriptRegistry(src.Transcript),
		comments:            source.NewCommentsRegistry(src.Comments),
		reddit:              source.NewRedditRegistry(src.Reddit),
		googleVideo:         source.NewGoogleVideoRegistry(src.GoogleVideo),
		channel:             source.NewChannelRegistry(src.Channel),
	}

	reg.enrichment = enrichment.NewRegistry(enrichment.Dependencies{
		Details:    src.VideoDetails,
		Transcript: reg.transcript,
		Comments:   reg.comments,
		Channel:    reg.channel,
	})

	reg.research = research.NewRegistry(research.Dependencies{
		Search:              reg.search,
		YouTubeAutocomplete: reg.youtubeAutocomplete,
		GoogleAutocomplete:  reg.googleAutocomplete,
		KeywordPlanner:      reg.keywordPlanner,
		Enrichment:          reg.enrichment,
	})

	firstRegion := "US"
	if len(cfg.Regions) > 0 {
		firstRegion = cfg.Regions[0]
	}
	reg.keyword = keyword.NewRegistry(keyword.Dependencies{
		Store:          st,
		Research:       reg.research,
		Trends:         reg.trends,
		Channel:        reg.channel,
		KeywordPlanner: src.KeywordPlanner,
		Region:         firstRegion,
	})

	reg.trending = trending.NewRegistry(trending.Dependencies{
		Store:    st,
		Trending: src.Trending,
		Keyword:  reg.keyword,
	})

	return reg
}
