package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SupernaviX/blockfrost-go/pkg/client"
)

// fastPolicy keeps test backoffs in the millisecond range.
func fastPolicy(attempts int) Policy {
	return Policy{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	if policy.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", policy.MaxAttempts)
	}
	if policy.InitialBackoff != 1*time.Second {
		t.Errorf("InitialBackoff = %v, want 1s", policy.InitialBackoff)
	}
	if policy.MaxBackoff != 30*time.Second {
		t.Errorf("MaxBackoff = %v, want 30s", policy.MaxBackoff)
	}
	if policy.Multiplier != 2.0 {
		t.Errorf("Multiplier = %v, want 2.0", policy.Multiplier)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "transport error",
			err:  &client.TransportError{URL: "https://example.com", Err: errors.New("connection refused")},
			want: true,
		},
		{
			name: "rate limited api error",
			err:  &client.APIError{StatusCode: 429, ErrorName: "Too Many Requests"},
			want: true,
		},
		{
			name: "server api error",
			err:  &client.APIError{StatusCode: 500, ErrorName: "Internal Server Error"},
			want: true,
		},
		{
			name: "not found api error",
			err:  &client.APIError{StatusCode: 404, ErrorName: "Not Found"},
			want: false,
		},
		{
			name: "decode error",
			err:  &client.DecodeError{URL: "https://example.com", Body: "<html>", Err: errors.New("invalid character")},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDoSucceedsImmediately(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Do returned %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

// A zero-value policy still runs fn once instead of reporting exhaustion
// without ever calling it.
func TestDoZeroValuePolicyRunsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Policy{}, func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Do returned %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	failure := &client.APIError{StatusCode: 500, ErrorName: "Internal Server Error"}
	calls = 0
	err = Do(context.Background(), Policy{}, func() error {
		calls++
		return failure
	})

	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Do returned %v, want ErrExhausted wrapping the failure", err)
	}
}

func TestDoRetriesThenSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		if calls < 3 {
			return &client.APIError{StatusCode: 500, ErrorName: "Internal Server Error"}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do returned %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	notFound := &client.APIError{StatusCode: 404, ErrorName: "Not Found"}

	calls := 0
	err := Do(context.Background(), fastPolicy(5), func() error {
		calls++
		return notFound
	})

	if !errors.Is(err, notFound) {
		t.Errorf("Do returned %v, want the original 404", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1 (no retry on 4xx)", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		return &client.TransportError{URL: "https://example.com", Err: errors.New("timeout")}
	})

	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Do returned %v, want ErrExhausted", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestDoRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := Policy{
		MaxAttempts:    3,
		InitialBackoff: time.Minute, // long enough that cancellation wins
		MaxBackoff:     time.Minute,
		Multiplier:     2.0,
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Do(ctx, policy, func() error {
		return &client.APIError{StatusCode: 500, ErrorName: "Internal Server Error"}
	})

	if !errors.Is(err, ErrCancelled) {
		t.Errorf("Do returned %v, want ErrCancelled", err)
	}
}
