// Package cache defines the key/value cache abstraction used for token
// revocation. Two implementations exist: an in-memory cache for single-node
// deployments and a Redis-backed one for anything shared.
package cache

import (
	"context"
	"time"
)

// Cache is a TTL'd key/value store.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if the key
	// doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with an optional TTL. A zero ttl means the
	// value doesn't expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists.
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the cache.
	Close() error
}

// Error represents a cache error type.
type Error string

const (
	// ErrCacheMiss indicates the key was not found in cache.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheUnavailable indicates the cache backend is unavailable.
	ErrCacheUnavailable Error = "cache unavailable"
)

func (e Error) Error() string {
	return string(e)
}

// RevokedTokenKey builds the cache key under which a revoked session token
// is denylisted until its natural expiry.
func RevokedTokenKey(tokenID string) string {
	return "revoked:token:" + tokenID
}
