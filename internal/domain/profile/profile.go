// Package profile holds directory profile records (sellers, businesses).
package profile

import (
	"sort"
	"time"
)

// Profile is a public directory record.
type Profile struct {
	ID          string    `json:"id" yaml:"id"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Bio         string    `json:"bio,omitempty" yaml:"bio,omitempty"`
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// SearchFields returns the fields matched by the plain profile filter.
func (p *Profile) SearchFields() [4]string {
	return [4]string{p.DisplayName, p.Bio, p.Category, p.Location}
}

// Active returns the active profiles ordered by creation time, then id.
// The input slice is left untouched.
func Active(profiles []Profile) []Profile {
	out := make([]Profile, 0, len(profiles))
	for i := range profiles {
		if profiles[i].IsActive {
			out = append(out, profiles[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Less(&out[i], &out[j])
	})
	return out
}

// Less orders profiles by (CreatedAt, ID). It is the tie-break wherever
// more than one profile qualifies.
func Less(a, b *Profile) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
