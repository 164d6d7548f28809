package resolve

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func cafe() []profile.Profile {
	return []profile.Profile{
		{ID: "p-cafe", DisplayName: "Jan's Café", IsActive: true, CreatedAt: t0},
		{ID: "p-ann", DisplayName: "Ann-Marie Shop", IsActive: true, CreatedAt: t0.Add(time.Minute)},
		{ID: "p-gone", DisplayName: "Closed Store", IsActive: false, CreatedAt: t0},
	}
}

func mustFound(t *testing.T, out Outcome) Found {
	t.Helper()
	f, ok := out.(Found)
	if !ok {
		t.Fatalf("expected Found, got %T", out)
	}
	return f
}

func TestResolve_Stages(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name    string
		segment string
		wantID  string
		stage   Stage
	}{
		{"exact", "Jan's Café", "p-cafe", StageExact},
		{"at prefix and spaces", "  @Jan's Café ", "p-cafe", StageExact},
		{"case insensitive", "JAN'S CAFÉ", "p-cafe", StageCaseInsensitive},
		{"percent encoded", "Jan%27s%20Caf%C3%A9", "p-cafe", StageDecoded},
		{"hyphen as space", "jan's-café", "p-cafe", StageDecoded},
		{"underscore as space", "jan's_café", "p-cafe", StageDecoded},
		{"derived slug keeps hyphen", "ann-marie%20shop", "p-ann", StageDerivedSlug},
		{"canonical slug", "jan-s-cafe", "p-cafe", StageCanonicalSlug},
		{"canonical slug with at", "@ann-marie-shop", "p-ann", StageCanonicalSlug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFound(t, r.Resolve(tt.segment, cafe()))
			if f.Profile.ID != tt.wantID {
				t.Errorf("expected %s, got %s", tt.wantID, f.Profile.ID)
			}
			if f.Stage != tt.stage {
				t.Errorf("expected stage %s, got %s", tt.stage, f.Stage)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver()
	for _, seg := range []string{"", "   ", "@", "nobody", "%zz", "Closed Store", "closed-store"} {
		if out := r.Resolve(seg, cafe()); out != (NotFound{}) {
			t.Errorf("segment %q: expected NotFound, got %#v", seg, out)
		}
	}
}

func TestResolve_EmptyProfiles(t *testing.T) {
	if _, ok := Lookup(NewResolver().Resolve("anything", nil)); ok {
		t.Error("expected no profile")
	}
}

func TestResolve_TieBreakOldestFirst(t *testing.T) {
	profiles := []profile.Profile{
		{ID: "newer", DisplayName: "Acme", IsActive: true, CreatedAt: t0.Add(time.Hour)},
		{ID: "b", DisplayName: "Acme", IsActive: true, CreatedAt: t0},
		{ID: "a", DisplayName: "Acme", IsActive: true, CreatedAt: t0},
	}
	f := mustFound(t, NewResolver().Resolve("Acme", profiles))
	if f.Profile.ID != "a" {
		t.Errorf("expected oldest with lowest id, got %s", f.Profile.ID)
	}
}

func TestResolve_EarlierStageBeatsOlderProfile(t *testing.T) {
	profiles := []profile.Profile{
		{ID: "old", DisplayName: "acme", IsActive: true, CreatedAt: t0},
		{ID: "new", DisplayName: "Acme", IsActive: true, CreatedAt: t0.Add(time.Hour)},
	}
	f := mustFound(t, NewResolver().Resolve("Acme", profiles))
	if f.Profile.ID != "new" || f.Stage != StageExact {
		t.Errorf("expected exact match on new, got %s via %s", f.Profile.ID, f.Stage)
	}
}

func TestResolve_CustomStrategies(t *testing.T) {
	r := NewResolver(Strategy{Stage: StageExact, Build: exactMatch})

	if got := r.Stages(); len(got) != 1 || got[0] != StageExact {
		t.Fatalf("unexpected stages: %v", got)
	}
	if _, ok := Lookup(r.Resolve("jan's café", cafe())); ok {
		t.Error("case-insensitive match must not run when not configured")
	}
}

func TestDefaultStrategies_Order(t *testing.T) {
	want := []Stage{StageExact, StageCaseInsensitive, StageDecoded, StageDerivedSlug, StageCanonicalSlug}
	got := NewResolver().Stages()
	if len(got) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestStrategiesFor(t *testing.T) {
	strategies, err := StrategiesFor(StageDerivedSlug, StageExact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := NewResolver(strategies...).Stages()
	if len(got) != 2 || got[0] != StageDerivedSlug || got[1] != StageExact {
		t.Errorf("unexpected stages: %v", got)
	}

	_, err = StrategiesFor(StageExact, Stage("phonetic"))
	if !errors.Is(err, domain.ErrUnknownStage) {
		t.Errorf("expected ErrUnknownStage, got %v", err)
	}
}

func TestCleanSegment(t *testing.T) {
	tests := map[string]string{
		"@acme":    "acme",
		" @ acme ": "acme",
		"@@acme":   "@acme",
		"acme@":    "acme@",
		"":         "",
	}
	for in, want := range tests {
		if got := CleanSegment(in); got != want {
			t.Errorf("CleanSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
