package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Order is the listing order of paged endpoints.
type Order string

const (
	// OrderAsc lists items oldest first (server default).
	OrderAsc Order = "asc"

	// OrderDesc lists items newest first.
	OrderDesc Order = "desc"
)

// Pagination selects one page of a paged endpoint. Zero-valued fields are
// omitted from the query so the server applies its own defaults; count
// bounds are delegated to the server.
type Pagination struct {
	Page  int
	Count int
	Order Order
}

// query returns the pagination query parameters, or nil when none are set.
// A nil result keeps the URL identical to the server's default request.
func (p *Pagination) query() url.Values {
	if p == nil {
		return nil
	}
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Count > 0 {
		values.Set("count", strconv.Itoa(p.Count))
	}
	if p.Order != "" {
		values.Set("order", string(p.Order))
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// Call fetches a single JSON value from an endpoint. The endpoint is a
// server-relative path and must not itself encode pagination.
func Call[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	return dispatch[T](ctx, c, endpoint, nil)
}

// CallPaged fetches one page of a paged endpoint. A nil pagination requests
// the server's default page.
func CallPaged[T any](ctx context.Context, c *Client, endpoint string, pagination *Pagination) ([]T, error) {
	return dispatch[[]T](ctx, c, endpoint, pagination.query())
}

// dispatch performs one call: build URL, fetch, classify, decode. On a
// non-2xx status the body is handed to the classifier instead of being
// decoded as T.
func dispatch[T any](ctx context.Context, c *Client, endpoint string, query url.Values) (T, error) {
	var value T

	raw, err := c.get(ctx, endpoint, query)
	if err != nil {
		return value, err
	}

	if !raw.success() {
		errorsTotal.WithLabelValues("api").Inc()
		return value, c.classifier.classify(raw.StatusCode, raw.Body, raw.URL)
	}

	if err := json.Unmarshal(raw.Body, &value); err != nil {
		errorsTotal.WithLabelValues("decode").Inc()
		c.logger.Error().
			Str("url", raw.URL).
			Str("error_kind", "decode").
			Err(err).
			Msg("Failed to decode response body")
		return value, &DecodeError{URL: raw.URL, Body: string(raw.Body), Err: err}
	}

	return value, nil
}
