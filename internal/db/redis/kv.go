package redis

import (
	"context"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/dirsearch/internal/db"
)

// Get retrieves a value by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.b().Get().Key(key).Build()
	return asValue(s.client.Do(ctx, cmd))
}

// GetCached retrieves a value through the rueidis client-side cache.
// Server-assisted invalidation keeps the entry fresh; ttl caps its lifetime.
func (s *Store) GetCached(ctx context.Context, key string, ttl time.Duration) ([]byte, error) {
	cmd := s.b().Get().Key(key).Cache()
	return asValue(s.client.DoCache(ctx, cmd, ttl))
}

// Set stores a value at the given key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	cmd := s.b().Set().Key(key).Value(rueidis.BinaryString(value)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// Del removes a key. Deleting a missing key is not an error.
func (s *Store) Del(ctx context.Context, key string) error {
	cmd := s.b().Del().Key(key).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// Exists returns the number of keys present.
func (s *Store) Exists(ctx context.Context, keys ...string) (int64, error) {
	cmd := s.b().Exists().Key(keys...).Build()
	n, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpExists, Err: err}
	}
	return n, nil
}

func asValue(res rueidis.RedisResult) ([]byte, error) {
	data, err := res.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return data, nil
}
