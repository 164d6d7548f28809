// Package health aggregates store and snapshot checks for the /health endpoint.
package health

import (
	"context"
	"errors"

	"github.com/kailas-cloud/dirsearch/internal/domain"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded means the store answers but serves no snapshot yet.
	Degraded Status = "degraded"
	// Unhealthy means the store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckMissing indicates snapshots that were never loaded.
	CheckMissing CheckResult = "missing"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckSkipped indicates a check that did not run.
	CheckSkipped CheckResult = "skipped"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	snapshots SnapshotChecker
}

// New creates a Service. snapshots can be nil.
func New(db DBPinger, snapshots SnapshotChecker) *Service {
	return &Service{db: db, snapshots: snapshots}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 2)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		if s.snapshots != nil {
			checks["snapshots"] = CheckSkipped
		}
		return Report{Status: Unhealthy, Checks: checks}
	}
	checks["database"] = CheckOK

	status := Healthy
	if s.snapshots != nil {
		err := s.snapshots.Exists(ctx)
		switch {
		case err == nil:
			checks["snapshots"] = CheckOK
		case errors.Is(err, domain.ErrSnapshotNotFound):
			checks["snapshots"] = CheckMissing
			status = Degraded
		default:
			checks["snapshots"] = CheckError
			status = Degraded
		}
	}

	return Report{Status: status, Checks: checks}
}
