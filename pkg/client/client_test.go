package client

import (
	"strings"
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			config:      Config{ProjectID: "mainnet1234567890"},
			expectError: false,
		},
		{
			name:        "missing project id",
			config:      Config{BaseURL: CardanoPreview},
			expectError: true,
			errorMsg:    "project id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Error message = %q, want %q", err.Error(), tt.errorMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c == nil {
				t.Fatal("Client is nil")
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Config{ProjectID: "mainnet1234567890"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.baseURL != CardanoMainnet {
		t.Errorf("baseURL = %q, want mainnet default", c.baseURL)
	}
	if c.httpClient == nil || c.httpClient.Timeout != 30*time.Second {
		t.Error("default HTTP client with 30s timeout expected")
	}
	if c.cache != nil {
		t.Error("cache should be disabled without a Redis client")
	}
	if c.rateLimiter != nil {
		t.Error("rate limiter should be disabled by default")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("preview1234567890")

	if cfg.ProjectID != "preview1234567890" {
		t.Errorf("ProjectID = %q", cfg.ProjectID)
	}
	if cfg.BaseURL != CardanoMainnet {
		t.Errorf("BaseURL = %q, want mainnet", cfg.BaseURL)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
}

func TestNetworkTag(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{
			name:    "mainnet host",
			baseURL: CardanoMainnet,
			want:    "cardano-mainnet.blockfrost.io",
		},
		{
			name:    "preview host",
			baseURL: CardanoPreview,
			want:    "cardano-preview.blockfrost.io",
		},
		{
			name:    "hostless URL falls back to the raw value",
			baseURL: "not a url",
			want:    "not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := networkTag(tt.baseURL); got != tt.want {
				t.Errorf("networkTag(%q) = %q, want %q", tt.baseURL, got, tt.want)
			}
		})
	}

	// Different networks must never share a cache namespace.
	if networkTag(CardanoMainnet) == networkTag(CardanoPreview) {
		t.Error("mainnet and preview derive the same network tag")
	}
}

func TestNetworkConstants(t *testing.T) {
	networks := []string{CardanoMainnet, CardanoPreprod, CardanoPreview, CardanoTestnet}
	for _, network := range networks {
		if !strings.HasPrefix(network, "https://") || !strings.HasSuffix(network, "/api/v0") {
			t.Errorf("network URL %q malformed", network)
		}
	}
}
