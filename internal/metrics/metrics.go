package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks API request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// OwnershipScans counts ownership discovery passes by outcome
	OwnershipScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_ownership_scans_total",
			Help: "Total number of ownership discovery passes",
		},
		[]string{"status"},
	)

	// OwnershipScanDuration tracks how long a full multicall scan takes
	OwnershipScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "staking_ownership_scan_duration_seconds",
			Help:    "Ownership discovery duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// OwnedTokens tracks the number of tokens found by the last scan
	OwnedTokens = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "staking_owned_tokens",
			Help:    "Number of tokens found per ownership scan",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// IndexerQueries counts indexer queries by operation and outcome
	IndexerQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_indexer_queries_total",
			Help: "Total number of indexer queries",
		},
		[]string{"operation", "status"},
	)

	// CacheLookups counts read cache lookups by query kind and result
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_cache_lookups_total",
			Help: "Total number of read cache lookups",
		},
		[]string{"query", "result"},
	)

	// TransactionsSent counts contract writes by method and outcome
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_transactions_sent_total",
			Help: "Total number of contract transactions sent",
		},
		[]string{"method", "status"},
	)

	// GasUsed tracks gas used by mined contract writes
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_gas_used",
			Help:    "Gas used by contract transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000, 1000000},
		},
		[]string{"method"},
	)
)

// Status labels shared by the counters above
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusReverted = "reverted"
)

// Status maps an error to the success/error label
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
