package client

import (
	"context"

	"github.com/SupernaviX/blockfrost-go/pkg/types"
)

// Root returns the API root, pointing to the documentation.
func (c *Client) Root(ctx context.Context) (types.Root, error) {
	return Call[types.Root](ctx, c, "/")
}

// Health returns the backend health status.
func (c *Client) Health(ctx context.Context) (types.Health, error) {
	return Call[types.Health](ctx, c, "/health")
}

// HealthClock returns the current backend time.
func (c *Client) HealthClock(ctx context.Context) (types.HealthClock, error) {
	return Call[types.HealthClock](ctx, c, "/health/clock")
}
