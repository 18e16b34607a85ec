// Package config loads the service's typed configuration from a .env
// file plus the process environment: one flat struct, populated once
// at startup, handed to the actor and job constructors.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config is every knob the wiring code in cmd/server needs: regions to
// warm up, the store backend to mount, and the external adapters'
// credentials.
type Config struct {
	// HTTPAddr is the boundary HTTP server's listen address.
	HTTPAddr string

	// Regions lists the region codes the scheduled warm-up covers.
	Regions []string

	// StoreBackend selects the durable slot store: "memory" or "badger".
	StoreBackend string
	// BadgerPath is the on-disk directory for the Badger store, used
	// when StoreBackend is "badger".
	BadgerPath string

	// KafkaBrokers, if non-empty, switches the warm-up queue from the
	// in-process Memory broker to Kafka.
	KafkaBrokers []string
	KafkaTopic   string

	// WarmupMaxWorkers bounds the StreamJob's concurrent warm-up drain.
	WarmupMaxWorkers int

	// FanoutPoolSize bounds the shared goroutine pool the phase-1/phase-2
	// and channel-lookup fan-outs run on.
	FanoutPoolSize int

	// Adapter credentials, passed through to the concrete resty-backed
	// adapter implementations (internal/adapters), not interpreted here.
	YouTubeAPIKey string
	// GoogleAdsAPIKeys is the ad-network key pool the KeyRotator rotates
	// across on quota-exceeded. A single key is still a valid
	// (degenerate) pool.
	GoogleAdsAPIKeys    []string
	GoogleTrendsBaseURL string
	RedditClientID      string
	RedditClientSecret  string

	// RequestTimeout bounds every outbound adapter HTTP call.
	RequestTimeout time.Duration
}

const (
	defaultHTTPAddr         = ":8080"
	defaultStoreBackend     = "memory"
	defaultBadgerPath       = "./data/badger"
	defaultWarmupMaxWorkers = 2
	defaultFanoutPoolSize   = 64
	defaultRequestTimeout   = 10 * time.Second
)

// Load reads a .env file (if present; a missing file is not an error)
// then builds a Config from the process environment, falling back to
// sane defaults for anything unset.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		HTTPAddr:            getString("HTTP_ADDR", defaultHTTPAddr),
		Regions:             getStringList("WARMUP_REGIONS", []string{"US"}),
		StoreBackend:        getString("STORE_BACKEND", defaultStoreBackend),
		BadgerPath:          getString("BADGER_PATH", defaultBadgerPath),
		KafkaBrokers:        getStringList("KAFKA_BROKERS", nil),
		KafkaTopic:          getString("KAFKA_WARMUP_TOPIC", "warmup-regions"),
		WarmupMaxWorkers:    getInt("WARMUP_MAX_WORKERS", defaultWarmupMaxWorkers),
		FanoutPoolSize:      getInt("FANOUT_POOL_SIZE", defaultFanoutPoolSize),
		YouTubeAPIKey:       getString("YOUTUBE_API_KEY", ""),
		GoogleAdsAPIKeys:    getStringList("GOOGLE_ADS_API_KEYS", nil),
		GoogleTrendsBaseURL: getString("GOOGLE_TRENDS_BASE_URL", ""),
		RedditClientID:      getString("REDDIT_CLIENT_ID", ""),
		RedditClientSecret:  getString("REDDIT_CLIENT_SECRET", ""),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout),
	}
	return cfg, nil
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return cast.ToInt(v)
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return time.Duration(cast.ToInt(v)) * time.Second
}

func getStringList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
