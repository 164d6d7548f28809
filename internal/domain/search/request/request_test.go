package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/dirsearch/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("shoes", 0, Bounds{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "shoes" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
}

func TestNew_EmptyQueryAllowed(t *testing.T) {
	r, err := New("", 5, Bounds{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "" || r.Limit() != 5 {
		t.Errorf("got query=%q limit=%d", r.Query(), r.Limit())
	}
}

func TestNew_LimitClamped(t *testing.T) {
	r, err := New("q", 1000, Bounds{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), MaxLimit)
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("x", MaxQueryLength+1), 0, Bounds{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestNew_QueryAtMaxLength(t *testing.T) {
	if _, err := New(strings.Repeat("x", MaxQueryLength), 0, Bounds{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_CustomBounds(t *testing.T) {
	b := Bounds{MaxQueryLength: 8, DefaultLimit: 3, MaxLimit: 5}

	r, err := New("short", 0, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 3 {
		t.Errorf("Limit() = %d, want 3", r.Limit())
	}

	r, err = New("short", 50, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 5 {
		t.Errorf("Limit() = %d, want 5", r.Limit())
	}

	if _, err := New("too long query", 0, b); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestBounds_DefaultAboveMax(t *testing.T) {
	r, err := New("q", 0, Bounds{DefaultLimit: 50, MaxLimit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 10 {
		t.Errorf("Limit() = %d, want 10", r.Limit())
	}
}
