// Package cache provides an optional Redis-backed read-through cache for
// Blockfrost responses.
//
// Confirmed chain data is immutable, so successful responses can be reused
// for a fixed TTL without a validation protocol. Only 2xx responses are
// stored; cache failures are reported to the caller, which degrades to a
// direct request instead of failing the call.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	manager := cache.NewManager(redisClient, 5*time.Minute)
//
//	key := cache.Key{Network: "cardano-mainnet.blockfrost.io", Endpoint: "/blocks/latest"}
//	entry, err := manager.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		// fetch from the API, then manager.Set(ctx, key, entry)
//	}
package cache
