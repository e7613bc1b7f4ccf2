package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached response by network, endpoint and query
// parameters. Network keeps clients of different chains apart when they
// share one Redis instance.
type Key struct {
	// Network identifies the upstream network (e.g. the base URL host).
	Network string

	// Endpoint is the server-relative request path (e.g. "/blocks/latest/txs").
	Endpoint string

	// Query holds the request's query parameters, if any.
	Query url.Values
}

// String generates a deterministic cache key string.
// Format: blockfrost:network:endpoint:param1=val1:param2=val2
//
// Example:
//
//	blockfrost:cardano-mainnet.blockfrost.io:blocks/latest/txs:count=10:page=2
func (k Key) String() string {
	parts := []string{"blockfrost"}

	if k.Network != "" {
		parts = append(parts, k.Network)
	}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	// Sorted for determinism.
	if len(k.Query) > 0 {
		queryKeys := make([]string, 0, len(k.Query))
		for key := range k.Query {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Query.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
