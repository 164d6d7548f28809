package db

import (
	"context"
	"time"
)

// Store is the snapshot store facade.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// GetCached reads through the client-side cache; ttl bounds staleness.
	GetCached(ctx context.Context, key string, ttl time.Duration) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	// Exists counts how many of keys are present.
	Exists(ctx context.Context, keys ...string) (int64, error)
}
