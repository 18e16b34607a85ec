package source

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// cacheLookups counts per-source cache outcomes, labelled by actor kind.
// A "neutral" outcome is a miss whose adapter call failed and was
// substituted with the neutral value.
var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "source_cache_lookups_total",
	Help: "Per-source actor cache lookups by outcome.",
}, []string{"actor", "outcome"})

const (
	outcomeHit     = "hit"
	outcomeMiss    = "miss"
	outcomeNeutral = "neutral"
)
