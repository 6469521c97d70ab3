package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the outbound AI path. Registered on the
// default registry and exposed via /metrics.
var (
	aiRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "ai",
		Name:      "requests_total",
		Help:      "Total chat completion attempts, including retries.",
	})

	aiRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "ai",
		Name:      "retries_total",
		Help:      "Retries performed after rate-limit responses.",
	})

	aiRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "ai",
		Name:      "rate_limited_total",
		Help:      "Rate-limit responses received from the AI provider.",
	})

	aiTransportErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fridgewise",
		Subsystem: "ai",
		Name:      "transport_errors_total",
		Help:      "Network or non-200 failures from the AI provider.",
	})
)
