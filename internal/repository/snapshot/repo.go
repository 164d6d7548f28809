// Package snapshot stores the catalog and profile snapshots as JSON values.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/db"
	"github.com/kailas-cloud/dirsearch/internal/domain"
	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/metrics"
)

// Snapshot kinds, also used as key suffixes and metric labels.
const (
	KindCatalog  = "catalog"
	KindProfiles = "profiles"
)

// store is the consumer interface for snapshots (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetCached(ctx context.Context, key string, ttl time.Duration) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, keys ...string) (int64, error)
}

// Repo implements usecase/search.SnapshotReader and usecase/resolve.ProfileReader.
type Repo struct {
	store    store
	prefix   string
	cacheTTL time.Duration
}

// New creates a snapshot repository. cacheTTL <= 0 bypasses the client-side cache.
func New(s store, prefix string, cacheTTL time.Duration) *Repo {
	return &Repo{store: s, prefix: prefix, cacheTTL: cacheTTL}
}

// Key returns the store key of a snapshot kind.
func (r *Repo) Key(kind string) string {
	return r.prefix + kind
}

// Catalog loads the catalog snapshot.
func (r *Repo) Catalog(ctx context.Context) ([]catalog.Entity, error) {
	data, err := r.load(ctx, KindCatalog)
	if err != nil {
		return nil, err
	}
	entities, err := decodeCatalog(data)
	if err != nil {
		metrics.SnapshotLoadsTotal.WithLabelValues(KindCatalog, "error").Inc()
		return nil, err
	}
	metrics.SnapshotLoadsTotal.WithLabelValues(KindCatalog, "ok").Inc()
	return entities, nil
}

// Profiles loads the profile snapshot.
func (r *Repo) Profiles(ctx context.Context) ([]profile.Profile, error) {
	data, err := r.load(ctx, KindProfiles)
	if err != nil {
		return nil, err
	}
	profiles, err := decodeProfiles(data)
	if err != nil {
		metrics.SnapshotLoadsTotal.WithLabelValues(KindProfiles, "error").Inc()
		return nil, err
	}
	metrics.SnapshotLoadsTotal.WithLabelValues(KindProfiles, "ok").Inc()
	return profiles, nil
}

// SaveCatalog replaces the catalog snapshot.
func (r *Repo) SaveCatalog(ctx context.Context, entities []catalog.Entity) error {
	data, err := encodeCatalog(entities)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.Key(KindCatalog), data); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// SaveProfiles replaces the profile snapshot.
func (r *Repo) SaveProfiles(ctx context.Context, profiles []profile.Profile) error {
	data, err := encodeProfiles(profiles)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.Key(KindProfiles), data); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

// Exists reports whether both snapshots are present without reading them.
func (r *Repo) Exists(ctx context.Context) error {
	for _, kind := range []string{KindCatalog, KindProfiles} {
		n, err := r.store.Exists(ctx, r.Key(kind))
		if err != nil {
			return fmt.Errorf("exists %s: %w", kind, err)
		}
		if n == 0 {
			return fmt.Errorf("%s: %w", kind, domain.ErrSnapshotNotFound)
		}
	}
	return nil
}

// Clear deletes both snapshots. Readers see ErrSnapshotNotFound until the next save.
func (r *Repo) Clear(ctx context.Context) error {
	for _, kind := range []string{KindCatalog, KindProfiles} {
		if err := r.store.Del(ctx, r.Key(kind)); err != nil {
			return fmt.Errorf("clear %s: %w", kind, err)
		}
	}
	return nil
}

func (r *Repo) load(ctx context.Context, kind string) ([]byte, error) {
	key := r.Key(kind)

	var (
		data []byte
		err  error
	)
	if r.cacheTTL > 0 {
		data, err = r.store.GetCached(ctx, key, r.cacheTTL)
	} else {
		data, err = r.store.Get(ctx, key)
	}
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			metrics.SnapshotLoadsTotal.WithLabelValues(kind, "missing").Inc()
			return nil, fmt.Errorf("%s: %w", kind, domain.ErrSnapshotNotFound)
		}
		metrics.SnapshotLoadsTotal.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	return data, nil
}
