// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, searchKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	// Verify connection.
	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestSearchCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSearchCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := sc.Get(ctx, "mountain sunrise")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	// Set.
	payload := []byte(`[{"title":"a photo"}]`)
	sc.Set(ctx, "mountain sunrise", payload)

	// Hit.
	data, ok = sc.Get(ctx, "mountain sunrise")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(payload) {
		t.Errorf("data mismatch: got %q, want %q", data, payload)
	}
}

func TestSearchCacheNormalizesQuery(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSearchCache(client, 1*time.Minute)

	ctx := context.Background()
	sc.Set(ctx, "Coffee  Shop", []byte("x"))

	if _, ok := sc.Get(ctx, "coffee shop"); !ok {
		t.Error("case and whitespace variants should share an entry")
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Coffee Shop", "coffee shop"},
		{"  spaced   out  ", "spaced out"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := normalizeQuery(tt.in); got != tt.want {
			t.Errorf("normalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewSearchCacheDefaultTTL(t *testing.T) {
	client := testValkeyClient(t)

	// TTL = 0 should use default.
	sc := NewSearchCache(client, 0)
	if sc.ttl != DefaultSearchTTL {
		t.Errorf("expected DefaultSearchTTL (%v), got %v", DefaultSearchTTL, sc.ttl)
	}
}
