package domain

import "errors"

var (
	// ErrInvalidQuery signals a search query that failed validation.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSnapshotNotFound signals that a catalog or profile snapshot has not been loaded yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrProfileNotFound signals that a path segment resolved to no active profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidSnapshot signals a snapshot payload that cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrUnknownStage signals a resolver stage name outside the default chain.
	ErrUnknownStage = errors.New("unknown resolver stage")
)
