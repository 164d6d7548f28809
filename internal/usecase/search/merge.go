package search

import (
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/query"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
)

// Merge combines the catalog match with the profile-field hits into the visible profiles.
//
//   - no catalog match: the field hits alone, whatever the mode;
//   - multi mode: exactly the matched owners, field hits are ignored;
//   - single mode: matched owners plus field hits.
//
// active must be the active profiles in display order; the result keeps that order.
func Merge(q query.Query, m result.Match, fieldHits, active []profile.Profile) []profile.Profile {
	if m.IsEmpty() {
		return fieldHits
	}

	visible := m.Has
	if !q.IsMulti() {
		hits := make(map[string]struct{}, len(fieldHits))
		for i := range fieldHits {
			hits[fieldHits[i].ID] = struct{}{}
		}
		visible = func(id string) bool {
			if m.Has(id) {
				return true
			}
			_, ok := hits[id]
			return ok
		}
	}

	var out []profile.Profile
	for i := range active {
		if visible(active[i].ID) {
			out = append(out, active[i])
		}
	}
	return out
}
