// Package metrics documents the Prometheus metrics exposed by the
// Blockfrost client. Metrics are defined in the packages that own them
// (client, cache, ratelimit, retry) to avoid circular dependencies; this
// package is the reference for what exists.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request metrics (pkg/client):
//   - blockfrost_requests_total{endpoint, status} (Counter): requests by endpoint and HTTP status
//   - blockfrost_request_duration_seconds{endpoint} (Histogram): request duration by endpoint
//   - blockfrost_errors_total{kind} (Counter): errors by kind (transport, decode, api)
//   - blockfrost_unexpected_status_total{status} (Counter): responses outside the documented error set
//
// Cache metrics (pkg/cache):
//   - blockfrost_cache_hits_total (Counter): responses served from cache
//   - blockfrost_cache_misses_total (Counter): cache misses
//   - blockfrost_cache_size_bytes (Gauge): cumulative size of stored entries
//   - blockfrost_cache_errors_total{operation} (Counter): cache operation errors
//
// Rate limit metrics (pkg/ratelimit):
//   - blockfrost_ratelimit_wait_seconds (Histogram): time spent waiting for the limiter
//   - blockfrost_ratelimit_waits_total (Counter): requests delayed by the limiter
//
// Retry metrics (pkg/retry):
//   - blockfrost_retries_total (Counter): retry attempts
//   - blockfrost_retry_backoff_seconds (Histogram): backoff durations
//   - blockfrost_retry_exhausted_total (Counter): calls that exhausted the policy
//
// Example Prometheus queries:
//
//   # Cache hit rate
//   sum(rate(blockfrost_cache_hits_total[5m])) /
//   (sum(rate(blockfrost_cache_hits_total[5m])) + sum(rate(blockfrost_cache_misses_total[5m])))
//
//   # Request error rate
//   rate(blockfrost_errors_total[5m])
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(blockfrost_request_duration_seconds_bucket[5m]))
