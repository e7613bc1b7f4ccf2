package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SupernaviX/blockfrost-go/internal/testutil"
	"github.com/SupernaviX/blockfrost-go/pkg/client"
	"github.com/SupernaviX/blockfrost-go/pkg/types"
)

func newProxyClient(t *testing.T, mock *testutil.MockBlockfrost) *client.Client {
	t.Helper()

	bf, err := client.New(client.Config{
		ProjectID: "proxy-test-key",
		BaseURL:   mock.URL(),
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return bf
}

func TestHealthzEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	healthzHandler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != "OK" {
		t.Errorf("Expected body 'OK', got %s", string(body))
	}
}

func TestLatestBlockHandler(t *testing.T) {
	mock := testutil.NewMockBlockfrost()
	defer mock.Close()

	mock.SetResponse("/blocks/latest", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body: `{
			"time": 1641338934,
			"hash": "4ea1ba291e8eef538635a53e59fddba7810d1679631cc3aed7c8e6c4091a516a",
			"slot_leader": "pool1pu5jlj4q9w9jlxeu370a3c9myx47md5j5m2str0naunn2qnikdy",
			"size": 3,
			"tx_count": 1,
			"confirmations": 4698
		}`,
	})

	handler := latestBlockHandler(newProxyClient(t, mock))

	req := httptest.NewRequest("GET", "/blocks/latest", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var block types.Block
	if err := json.NewDecoder(resp.Body).Decode(&block); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if block.Hash != "4ea1ba291e8eef538635a53e59fddba7810d1679631cc3aed7c8e6c4091a516a" {
		t.Errorf("Hash = %q", block.Hash)
	}
}

func TestBlockByIDHandlerRelaysAPIError(t *testing.T) {
	mock := testutil.NewMockBlockfrost()
	defer mock.Close()

	handler := blockByIDHandler(newProxyClient(t, mock))

	req := httptest.NewRequest("GET", "/blocks/unknown", nil)
	req.SetPathValue("id", "unknown")
	w := httptest.NewRecorder()
	handler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected the upstream 404 to be relayed, got %d", resp.StatusCode)
	}

	var apiErr client.APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mock := testutil.NewMockBlockfrost()
	defer mock.Close()

	// Creating a client registers the metric families.
	newProxyClient(t, mock)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "# HELP") || !strings.Contains(string(body), "# TYPE") {
		t.Error("Expected Prometheus format metrics output")
	}
}
