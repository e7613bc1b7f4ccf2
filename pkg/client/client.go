// Package client provides the core Blockfrost HTTP client: request
// dispatch, response classification, and typed error handling.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SupernaviX/blockfrost-go/pkg/cache"
	"github.com/SupernaviX/blockfrost-go/pkg/logging"
	"github.com/SupernaviX/blockfrost-go/pkg/ratelimit"
)

// Version of this library, sent on every request as part of the user agent.
const Version = "0.1.0"

const userAgent = "blockfrost-go/" + Version

// Base URLs of the public Blockfrost networks.
const (
	CardanoMainnet = "https://cardano-mainnet.blockfrost.io/api/v0"
	CardanoPreprod = "https://cardano-preprod.blockfrost.io/api/v0"
	CardanoPreview = "https://cardano-preview.blockfrost.io/api/v0"
	CardanoTestnet = "https://cardano-testnet.blockfrost.io/api/v0"
)

// Prometheus metrics for client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blockfrost_requests_total",
		Help: "Total Blockfrost requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blockfrost_request_duration_seconds",
		Help:    "Blockfrost request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blockfrost_errors_total",
		Help: "Total Blockfrost errors by kind",
	}, []string{"kind"})
)

// Client is the Blockfrost API client. The base URL and project ID are
// fixed at construction; a Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	network     string
	projectID   string
	cache       *cache.Manager
	rateLimiter *ratelimit.Limiter
	classifier  *classifier
	logger      zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// ProjectID is the Blockfrost project key, sent as the project_id
	// header on every request (REQUIRED).
	ProjectID string

	// BaseURL selects the network (default: CardanoMainnet).
	BaseURL string

	// HTTPClient overrides the underlying HTTP client. Its timeout is
	// inherited per call; this library imposes none of its own.
	HTTPClient *http.Client

	// Redis enables the optional read-through response cache when set.
	Redis *redis.Client

	// CacheTTL is the lifetime of cached responses (default: 5m).
	CacheTTL time.Duration

	// RequestsPerSecond enables client-side rate limiting when > 0.
	// Blockfrost permits 10 requests per second with bursts of 500.
	RequestsPerSecond float64

	// Burst is the rate limiter burst size (default: 500 when limiting).
	Burst int

	// ExpectedErrorCodes is the documented set of error status codes.
	// Responses outside it are still classified, but logged as unexpected.
	// Defaults to 400, 403, 404, 418, 429 and 500.
	ExpectedErrorCodes []int
}

// DefaultConfig returns a mainnet configuration for the given project ID.
func DefaultConfig(projectID string) Config {
	return Config{
		ProjectID: projectID,
		BaseURL:   CardanoMainnet,
		CacheTTL:  5 * time.Minute,
	}
}

// New creates a new Blockfrost client.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("project id is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = CardanoMainnet
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := logging.NewLogger("blockfrost-client")

	var cacheManager *cache.Manager
	if cfg.Redis != nil {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		cacheManager = cache.NewManager(cfg.Redis, ttl)
	}

	var limiter *ratelimit.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = ratelimit.DefaultBurst
		}
		limiter = ratelimit.New(cfg.RequestsPerSecond, burst, logger)
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		network:     networkTag(baseURL),
		projectID:   cfg.ProjectID,
		cache:       cacheManager,
		rateLimiter: limiter,
		classifier:  newClassifier(cfg.ExpectedErrorCodes, logger),
		logger:      logger,
	}, nil
}

// networkTag derives the cache namespace from the base URL. Clients of
// different networks sharing one Redis instance must never read each
// other's entries.
func networkTag(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}

// rawResponse is the outcome of one transport call, consumed immediately
// by decoding or classification.
type rawResponse struct {
	StatusCode int
	Body       []byte
	URL        string
}

func (r *rawResponse) success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// get issues exactly one HTTP GET for the given endpoint. It returns the
// raw status and body, or a TransportError when the call itself failed.
// No retry happens at this layer.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (*rawResponse, error) {
	fullURL := c.baseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	cacheKey := cache.Key{Network: c.network, Endpoint: endpoint, Query: query}
	if c.cache != nil {
		entry, err := c.cache.Get(ctx, cacheKey)
		if err != nil && err != cache.ErrCacheMiss {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
		}
		if entry != nil {
			c.logger.Debug().Str("endpoint", endpoint).Bool("cache_hit", true).Msg("Serving cached response")
			return &rawResponse{StatusCode: entry.StatusCode, Body: entry.Body, URL: fullURL}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: err}
	}
	req.Header.Set("project_id", c.projectID)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Str("url", fullURL).Msg("Executing request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues("transport").Inc()
		requestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		c.logger.Error().Err(err).Str("url", fullURL).Msg("HTTP request failed")
		return nil, &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues("transport").Inc()
		requestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, &TransportError{URL: fullURL, Err: err}
	}

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	raw := &rawResponse{StatusCode: resp.StatusCode, Body: body, URL: fullURL}

	if c.cache != nil && raw.success() {
		entry := &cache.Entry{StatusCode: raw.StatusCode, Body: raw.Body, CachedAt: time.Now()}
		if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Failed to cache response")
		}
	}

	return raw, nil
}
