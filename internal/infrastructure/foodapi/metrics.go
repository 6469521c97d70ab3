package foodapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	corpusCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "corpus",
		Name:      "cache_hits_total",
		Help:      "Corpus snapshot reads served from the in-memory cache.",
	})

	corpusCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "corpus",
		Name:      "cache_misses_total",
		Help:      "Corpus snapshot reads that found the cache stale or empty.",
	})

	corpusFetches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "corpus",
		Name:      "fetches_total",
		Help:      "Full corpus fetches issued against the public dataset.",
	})
)
