package result

import (
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/query"
)

// Match is the catalog side of a search: owners whose catalog satisfied the query.
type Match struct {
	ownerIDs []string
	owners   map[string]struct{}
}

// NewMatch creates a Match from owner ids; duplicates are dropped, first occurrence wins.
func NewMatch(ownerIDs []string) Match {
	m := Match{owners: make(map[string]struct{}, len(ownerIDs))}
	for _, id := range ownerIDs {
		if _, ok := m.owners[id]; ok {
			continue
		}
		m.owners[id] = struct{}{}
		m.ownerIDs = append(m.ownerIDs, id)
	}
	return m
}

// OwnerIDs returns the matched owner ids in first-seen catalog order.
func (m Match) OwnerIDs() []string { return m.ownerIDs }

// TagMatchCount returns the number of distinct matched owners.
func (m Match) TagMatchCount() int { return len(m.ownerIDs) }

// IsEmpty reports whether no owner matched.
func (m Match) IsEmpty() bool { return len(m.ownerIDs) == 0 }

// Has reports whether ownerID matched.
func (m Match) Has(ownerID string) bool {
	_, ok := m.owners[ownerID]
	return ok
}

// Result is a merged directory search.
type Result struct {
	query    query.Query
	match    Match
	profiles []profile.Profile
	total    int
}

// New creates a search result. total is the number of visible profiles before limiting.
func New(q query.Query, m Match, profiles []profile.Profile, total int) Result {
	return Result{query: q, match: m, profiles: profiles, total: total}
}

// Query returns the parsed query.
func (r *Result) Query() query.Query { return r.query }

// Match returns the catalog match.
func (r *Result) Match() Match { return r.match }

// Profiles returns the visible profiles, limited.
func (r *Result) Profiles() []profile.Profile { return r.profiles }

// Total returns the number of visible profiles before the limit was applied.
func (r *Result) Total() int { return r.total }
