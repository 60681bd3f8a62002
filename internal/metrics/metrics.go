package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Comparison outcomes per source vendor. outcome is "matched" or one of
// the no-match reason codes.
var (
	Comparisons = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firewall_comparisons_total",
		Help: "Comparison requests by source vendor and outcome.",
	}, []string{"vendor", "outcome"})

	CompareDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "firewall_compare_duration_seconds",
		Help:    "Time spent matching and building the report.",
		Buckets: prometheus.DefBuckets,
	})
)
