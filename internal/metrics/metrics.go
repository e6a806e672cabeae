package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the chain collectors. Build one per registry.
type Metrics struct {
	QueriesTotal    *prometheus.CounterVec
	UrgentTotal     prometheus.Counter
	CacheHitsTotal  prometheus.Counter
	InvalidRequests prometheus.Counter
	Duration        prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_queries_total",
				Help: "Total number of queries processed, by chosen category",
			},
			[]string{"category"},
		),
		UrgentTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chain_urgent_total",
			Help: "Total number of queries flagged as urgent",
		}),
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chain_cache_hits_total",
			Help: "Total number of queries answered from the result cache",
		}),
		InvalidRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "chain_invalid_requests_total",
			Help: "Total number of requests rejected at the input boundary",
		}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "chain_duration_seconds",
			Help:    "Duration of query processing in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}
