// Package ratelimit implements client-side request pacing against the
// published Blockfrost limits. Blockfrost refills 10 requests per second
// per project with a burst allowance of 500; exceeding them earns 429
// responses and eventually a temporary ban.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Published Blockfrost limits.
const (
	DefaultRequestsPerSecond = 10
	DefaultBurst             = 500
)

// Prometheus metrics for rate limiting.
var (
	rateLimitWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "blockfrost_ratelimit_wait_seconds",
		Help:    "Time spent waiting for the client-side rate limiter",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})

	rateLimitWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blockfrost_ratelimit_waits_total",
		Help: "Total number of requests delayed by the client-side rate limiter",
	})
)

// Limiter paces requests with a token bucket. It is safe for concurrent
// use; all requests of one client share the bucket.
type Limiter struct {
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// New creates a limiter refilling requestsPerSecond tokens with the given
// burst size.
func New(requestsPerSecond float64, burst int, logger zerolog.Logger) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		logger:  logger,
	}
}

// Wait blocks until a request may proceed or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	start := time.Now()
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	waited := time.Since(start)
	if waited > time.Millisecond {
		rateLimitWaitsTotal.Inc()
		rateLimitWaitSeconds.Observe(waited.Seconds())
		l.logger.Debug().Dur("waited", waited).Msg("Request delayed by rate limiter")
	}
	return nil
}

// Allow reports whether a request may proceed right now, consuming a token
// when it may.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
