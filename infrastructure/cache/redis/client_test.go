package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pakgov-intel/core/interfaces"
	"pakgov-intel/pkg/config"
)

// These are integration tests that require a Redis instance.
// Set REDIS_TEST_ADDRESS (for example localhost:6379) to run them.

func testConfig(t *testing.T) config.RedisConfig {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDRESS to run")
	}
	return config.RedisConfig{Address: addr}
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	if err == nil {
		t.Error("NewRedisCache should fail when the server is unreachable")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache when ping fails")
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	key := "view:redis-roundtrip"
	value := []byte(`{"topic":"CPEC"}`)

	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after delete error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Expiry(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if err := cache.Set(ctx, "view:redis-expiry", []byte("v"), 50*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	if _, err := cache.Get(ctx, "view:redis-expiry"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after expiry error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Delete_NonExistentKey(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	if err := cache.Delete(context.Background(), "view:never-set"); err != nil {
		t.Errorf("Delete should return nil for non-existent key, got: %v", err)
	}
}
