package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks responses served from cache.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blockfrost_cache_hits_total",
			Help: "Total number of Blockfrost cache hits",
		},
	)

	// CacheMisses tracks cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blockfrost_cache_misses_total",
			Help: "Total number of Blockfrost cache misses",
		},
	)

	// CacheSize tracks the cumulative size of stored entries in bytes.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blockfrost_cache_size_bytes",
			Help: "Cumulative size of stored Blockfrost cache entries in bytes",
		},
	)

	// CacheErrors tracks cache operation errors.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blockfrost_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
