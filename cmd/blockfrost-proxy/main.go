// Command blockfrost-proxy is a small read-only gateway in front of the
// Blockfrost API. It injects the project key server-side so that browser
// and dashboard consumers never see it, and exposes Prometheus metrics for
// the underlying client.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/SupernaviX/blockfrost-go/pkg/client"
	"github.com/SupernaviX/blockfrost-go/pkg/logging"
	"github.com/SupernaviX/blockfrost-go/pkg/ratelimit"
)

func main() {
	logger := logging.Setup(logging.Config{
		Level:  logging.Level(getEnv("LOG_LEVEL", "info")),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
		Output: os.Stderr,
	})

	projectID, err := client.LoadProjectID()
	if err != nil {
		logger.Fatal().Err(err).Msg("Missing Blockfrost project ID")
	}

	cfg := client.DefaultConfig(projectID)
	cfg.BaseURL = getEnv("BLOCKFROST_BASE_URL", client.CardanoMainnet)
	cfg.RequestsPerSecond = ratelimit.DefaultRequestsPerSecond
	cfg.Burst = ratelimit.DefaultBurst

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Str("redis_url", redisURL).Msg("Failed to connect to Redis")
		}
		cfg.Redis = redisClient
		logger.Info().Str("redis_url", redisURL).Msg("Response cache enabled")
	}

	bf, err := client.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Blockfrost client")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthzHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /blocks/latest", latestBlockHandler(bf))
	mux.HandleFunc("GET /blocks/{id}", blockByIDHandler(bf))

	addr := ":" + getEnv("PORT", "8080")
	logger.Info().Str("addr", addr).Str("base_url", cfg.BaseURL).Msg("Starting blockfrost-proxy")

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func latestBlockHandler(bf *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		block, err := bf.BlocksLatest(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, block)
	}
}

func blockByIDHandler(bf *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		block, err := bf.BlocksByID(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, block)
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(value)
}

// writeError relays API errors with their original status and maps
// everything else to 502.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(apiErr.StatusCode)
		json.NewEncoder(w).Encode(apiErr)
		return
	}
	http.Error(w, "upstream request failed: "+err.Error(), http.StatusBadGateway)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
