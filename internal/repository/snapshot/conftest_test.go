package snapshot

import (
	"context"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/db"
)

// mockStore implements the consumer interface for tests as an in-memory map.
type mockStore struct {
	data        map[string][]byte
	getErr      error
	setErr      error
	delErr      error
	existsCalls int
	cachedCalls int
	lastTTL     time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) GetCached(ctx context.Context, key string, ttl time.Duration) ([]byte, error) {
	m.cachedCalls++
	m.lastTTL = ttl
	return m.Get(ctx, key)
}

func (m *mockStore) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) Del(_ context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *mockStore) Exists(_ context.Context, keys ...string) (int64, error) {
	m.existsCalls++
	if m.getErr != nil {
		return 0, m.getErr
	}
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			n++
		}
	}
	return n, nil
}
