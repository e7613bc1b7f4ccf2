// Package retry provides an opt-in backoff policy for wrapping Blockfrost
// calls. The dispatcher and the Lister never retry on their own; callers
// that want retries wrap individual calls with Do.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/SupernaviX/blockfrost-go/pkg/client"
)

// Prometheus metrics for retry operations.
var (
	retriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blockfrost_retries_total",
		Help: "Total number of retry attempts",
	})

	retryBackoffSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "blockfrost_retry_backoff_seconds",
		Help:    "Backoff duration between retry attempts",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
	})

	retryExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blockfrost_retry_exhausted_total",
		Help: "Total number of times retry attempts were exhausted",
	})
)

// Common errors returned by Do.
var (
	// ErrExhausted is returned when all attempts are used up.
	ErrExhausted = errors.New("retry attempts exhausted")

	// ErrCancelled is returned when the context is cancelled during backoff.
	ErrCancelled = errors.New("context cancelled")
)

// Policy holds the retry configuration.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialBackoff is the backoff after the first failed attempt.
	InitialBackoff time.Duration

	// MaxBackoff caps the exponential backoff.
	MaxBackoff time.Duration

	// Multiplier is the exponential backoff factor.
	Multiplier float64
}

// DefaultPolicy returns a conservative retry policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2.0,
	}
}

// Retryable reports whether an error is worth retrying: transport failures
// and 429/5xx API errors are; decode errors and other 4xx responses are
// not, since repeating them wastes the request budget.
func Retryable(err error) bool {
	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}

	return false
}

// Do executes fn with exponential backoff and jitter until it succeeds,
// returns a non-retryable error, exhausts the policy, or the context is
// cancelled.
func Do(ctx context.Context, policy Policy, fn func() error) error {
	// A zero-value policy still executes fn once.
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	var lastErr error
	backoff := policy.InitialBackoff

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 1 {
				log.Info().Int("attempt", attempt).Msg("Request succeeded after retry")
			}
			return nil
		}

		lastErr = err

		if !Retryable(err) {
			return lastErr
		}

		if attempt >= policy.MaxAttempts {
			break
		}

		retriesTotal.Inc()

		// ±20% jitter.
		jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
		retryBackoffSeconds.Observe(jitter.Seconds())

		log.Debug().
			Int("attempt", attempt).
			Dur("backoff", jitter).
			Msg("Retrying request after backoff")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		case <-time.After(jitter):
		}

		backoff = time.Duration(float64(backoff) * policy.Multiplier)
		if backoff > policy.MaxBackoff {
			backoff = policy.MaxBackoff
		}
	}

	retryExhaustedTotal.Inc()
	log.Warn().Int("max_attempts", policy.MaxAttempts).Msg("Retry attempts exhausted")

	return fmt.Errorf("%w after %d attempts: %v", ErrExhausted, policy.MaxAttempts, lastErr)
}
