package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var unexpectedStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "blockfrost_unexpected_status_total",
	Help: "Responses with a status code outside the documented error set",
}, []string{"status"})

// errorBodySentinel is used as the error label when the response body does
// not match the documented error envelope.
const errorBodySentinel = "could not parse error body to interpret the reason of the error"

// defaultExpectedErrorCodes is the documented set of Blockfrost error
// status codes. Overridable via Config.ExpectedErrorCodes.
var defaultExpectedErrorCodes = []int{400, 403, 404, 418, 429, 500}

// APIError is the structured error envelope returned by the Blockfrost API,
// or a best-effort synthesis of one when the body does not match it.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorName  string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("blockfrost api error (status %d): %s: %s",
		e.StatusCode, e.ErrorName, e.Message)
}

// TransportError indicates the network call itself failed before any
// response was received.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the HTTP call succeeded but the body did not parse
// into the expected shape. Body always holds the raw response text.
type DecodeError struct {
	URL  string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error for %s: %v: body %q", e.URL, e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// classifier turns a non-2xx response into an APIError. It never fails:
// bodies that do not match the error envelope are repackaged with the
// sentinel label and the original body preserved in the message.
type classifier struct {
	expectedCodes map[int]struct{}
	logger        zerolog.Logger
}

func newClassifier(expectedCodes []int, logger zerolog.Logger) *classifier {
	if len(expectedCodes) == 0 {
		expectedCodes = defaultExpectedErrorCodes
	}
	codes := make(map[int]struct{}, len(expectedCodes))
	for _, code := range expectedCodes {
		codes[code] = struct{}{}
	}
	return &classifier{
		expectedCodes: codes,
		logger:        logger,
	}
}

// classify maps a raw error response to an APIError.
func (c *classifier) classify(statusCode int, body []byte, url string) *APIError {
	if _, ok := c.expectedCodes[statusCode]; !ok {
		c.logger.Warn().
			Int("status_code", statusCode).
			Str("url", url).
			Msg("Unexpected response status code")
		unexpectedStatusTotal.WithLabelValues(fmt.Sprintf("%d", statusCode)).Inc()
	}

	// The envelope only counts as matched when all three fields are present;
	// arbitrary JSON objects decode into zero values otherwise.
	var envelope struct {
		StatusCode *int    `json:"status_code"`
		ErrorName  *string `json:"error"`
		Message    *string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil &&
		envelope.StatusCode != nil && envelope.ErrorName != nil && envelope.Message != nil {
		return &APIError{
			StatusCode: *envelope.StatusCode,
			ErrorName:  *envelope.ErrorName,
			Message:    *envelope.Message,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		ErrorName:  errorBodySentinel,
		Message:    formatUnknownBody(body),
	}
}

// formatUnknownBody pretty-prints the body when it is valid JSON of any
// shape, and returns it verbatim otherwise.
func formatUnknownBody(body []byte) string {
	if !json.Valid(body) {
		return string(body)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
