package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// UpstreamRequestsTotal counts calls to the upstream exchange API per operation and outcome.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exchange_desk",
			Name:      "upstream_requests_total",
			Help:      "Calls to the upstream exchange API",
		},
		[]string{"operation", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "exchange_desk",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the upstream exchange API",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.2, 0.4, 0.8, 1.5, 3, 5, 10},
		},
		[]string{"operation"},
	)

	// SnapshotLookupsTotal counts snapshot cache reads by key name and result (hit or miss).
	SnapshotLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exchange_desk",
			Name:      "snapshot_lookups_total",
			Help:      "Snapshot cache reads",
		},
		[]string{"name", "result"},
	)
)

func init() {
	prometheus.MustRegister(UpstreamRequestsTotal, UpstreamRequestDuration, SnapshotLookupsTotal)
}

// ObserveUpstream records one upstream call.
func ObserveUpstream(operation, status string, seconds float64) {
	UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(seconds)
}

// ObserveSnapshot records one snapshot cache read.
func ObserveSnapshot(name string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	SnapshotLookupsTotal.WithLabelValues(name, result).Inc()
}
