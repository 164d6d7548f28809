package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SnapshotChecker reports whether the catalog and profile snapshots are loaded.
type SnapshotChecker interface {
	Exists(ctx context.Context) error
}
