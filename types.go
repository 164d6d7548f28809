package dirsearch

import (
	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	"github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
)

// Entity is a searchable catalog entry owned by a profile.
type Entity = catalog.Entity

// Tag is a free-form label attached to an Entity.
type Tag = catalog.Tag

// Profile is a public directory record.
type Profile = profile.Profile

// Mode is the keyword combination strategy derived from a query.
type Mode = mode.Mode

// Query modes.
const (
	ModeSingle = mode.Single
	ModeMulti  = mode.Multi
)

// Stage names the resolver strategy that produced a match.
type Stage = resolve.Stage

// Resolver stages in evaluation order.
const (
	StageExact           = resolve.StageExact
	StageCaseInsensitive = resolve.StageCaseInsensitive
	StageDecoded         = resolve.StageDecoded
	StageDerivedSlug     = resolve.StageDerivedSlug
	StageCanonicalSlug   = resolve.StageCanonicalSlug
)

// Outcome is the result of resolving a path segment: Found or NotFound.
type Outcome = resolve.Outcome

// Found carries the resolved profile and the stage that matched.
type Found = resolve.Found

// NotFound reports that no active profile matched.
type NotFound = resolve.NotFound

// MatchResult is the catalog side of a search.
type MatchResult struct {
	Mode            Mode
	Keywords        []string
	MatchedOwnerIDs []string
	TagMatchCount   int
}

// SearchResult is a merged directory search.
type SearchResult struct {
	MatchResult
	// Profiles holds the visible profiles after the limit.
	Profiles []Profile
	// Total counts visible profiles before the limit.
	Total int
}

func matchFromResult(r *result.Result) MatchResult {
	q := r.Query()
	m := r.Match()
	return MatchResult{
		Mode:            q.Mode(),
		Keywords:        q.Keywords(),
		MatchedOwnerIDs: m.OwnerIDs(),
		TagMatchCount:   m.TagMatchCount(),
	}
}

func searchFromResult(r *result.Result) SearchResult {
	return SearchResult{
		MatchResult: matchFromResult(r),
		Profiles:    r.Profiles(),
		Total:       r.Total(),
	}
}
