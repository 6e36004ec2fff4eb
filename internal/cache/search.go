// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// search.go provides a Valkey-backed cache for stock image search
// results. Both providers rate-limit free API keys aggressively, so
// repeated lookups for the same query within the TTL are served from
// Valkey instead of hitting the provider again.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// searchKeyPrefix is the Valkey key prefix for cached searches.
	searchKeyPrefix = "imgsearch:"

	// DefaultSearchTTL is how long a search result set stays cached.
	DefaultSearchTTL = time.Hour
)

// SearchCache stores serialized image search results in Valkey.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a search cache backed by the given Valkey client.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl == 0 {
		ttl = DefaultSearchTTL
	}
	return &SearchCache{client: client, ttl: ttl}
}

// Get retrieves the cached result payload for a query. Returns false on miss.
func (sc *SearchCache) Get(ctx context.Context, query string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, searchKeyPrefix+normalizeQuery(query)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("search cache get error", "query", query, "error", err)
		return nil, false
	}
	slog.Debug("search cache hit", "query", query)
	return val, true
}

// Set stores a serialized result payload for a query with the configured TTL.
func (sc *SearchCache) Set(ctx context.Context, query string, payload []byte) {
	if err := sc.client.Set(ctx, searchKeyPrefix+normalizeQuery(query), payload, sc.ttl).Err(); err != nil {
		slog.Warn("search cache set error", "query", query, "error", err)
	}
}

// normalizeQuery folds case and whitespace so equivalent queries share
// a cache entry.
func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
