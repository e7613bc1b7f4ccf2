// Package testutil provides testing utilities for the Blockfrost client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockResponse defines the behavior of a mock Blockfrost endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockBlockfrost is a configurable mock Blockfrost server for testing.
type MockBlockfrost struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	requestCount int
	lastRequest  *http.Request
}

// NewMockBlockfrost creates a new mock Blockfrost server.
func NewMockBlockfrost() *MockBlockfrost {
	mock := &MockBlockfrost{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.lastRequest = r.Clone(r.Context())
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Unconfigured paths behave like the real API.
		WriteAPIError(w, http.StatusNotFound, "Not Found", "The requested component has not been found.")
	}))

	return mock
}

// URL returns the mock server base URL.
func (m *MockBlockfrost) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockBlockfrost) Close() {
	m.server.Close()
}

// Reset clears configured handlers and tracking counters.
func (m *MockBlockfrost) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = make(map[string]http.HandlerFunc)
	m.requestCount = 0
	m.lastRequest = nil
}

// SetHandler sets a custom handler for a path.
func (m *MockBlockfrost) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockBlockfrost) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPagedResponse serves the given pages in order of the "page" query
// parameter, and an empty JSON array for pages past the end.
func (m *MockBlockfrost) SetPagedResponse(path string, pages []string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &page)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if page < 1 || page > len(pages) {
			w.Write([]byte("[]"))
			return
		}
		w.Write([]byte(pages[page-1]))
	})
}

// RequestCount returns the number of requests the server has received.
func (m *MockBlockfrost) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// LastRequest returns the most recent request, or nil.
func (m *MockBlockfrost) LastRequest() *http.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastRequest
}

// WriteAPIError writes the Blockfrost structured error envelope.
func WriteAPIError(w http.ResponseWriter, statusCode int, errorName, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"status_code": statusCode,
		"error":       errorName,
		"message":     message,
	})
}
