package search

import (
	"context"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
)

// SnapshotReader loads the catalog and profile snapshots a search runs over.
type SnapshotReader interface {
	Catalog(ctx context.Context) ([]catalog.Entity, error)
	Profiles(ctx context.Context) ([]profile.Profile, error)
}
