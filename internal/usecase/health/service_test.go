package health

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/dirsearch/internal/domain"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockSnapshots struct {
	err    error
	called bool
}

func (m *mockSnapshots) Exists(_ context.Context) error {
	m.called = true
	return m.err
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockSnapshots{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["snapshots"] != CheckOK {
		t.Errorf("expected snapshots %q, got %q", CheckOK, r.Checks["snapshots"])
	}
}

func TestCheck_DBDown(t *testing.T) {
	snaps := &mockSnapshots{}
	svc := New(&mockDBPinger{err: errors.New("connection refused")}, snaps)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if r.Checks["snapshots"] != CheckSkipped {
		t.Errorf("expected snapshots %q, got %q", CheckSkipped, r.Checks["snapshots"])
	}
	if snaps.called {
		t.Error("snapshot check must not run when the store is down")
	}
}

func TestCheck_SnapshotsMissing(t *testing.T) {
	missing := fmt.Errorf("profiles: %w", domain.ErrSnapshotNotFound)
	svc := New(&mockDBPinger{}, &mockSnapshots{err: missing})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["snapshots"] != CheckMissing {
		t.Errorf("expected snapshots %q, got %q", CheckMissing, r.Checks["snapshots"])
	}
}

func TestCheck_SnapshotsError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockSnapshots{err: errors.New("WRONGTYPE")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["snapshots"] != CheckError {
		t.Errorf("expected snapshots %q, got %q", CheckError, r.Checks["snapshots"])
	}
}

func TestCheck_NoSnapshotChecker(t *testing.T) {
	svc := New(&mockDBPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["snapshots"]; ok {
		t.Error("snapshots check should be absent")
	}
}
