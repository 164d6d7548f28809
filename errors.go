package dirsearch

import "github.com/kailas-cloud/dirsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrSnapshotNotFound = domain.ErrSnapshotNotFound
	ErrInvalidSnapshot  = domain.ErrInvalidSnapshot
	ErrUnknownStage     = domain.ErrUnknownStage
)
