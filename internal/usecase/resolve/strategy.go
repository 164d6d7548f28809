package resolve

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kailas-cloud/dirsearch/internal/domain"

	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
)

// Stage names a resolution strategy.
type Stage string

// Resolution stages in default evaluation order.
const (
	StageExact           Stage = "exact"
	StageCaseInsensitive Stage = "case_insensitive"
	StageDecoded         Stage = "decoded"
	StageDerivedSlug     Stage = "derived_slug"
	StageCanonicalSlug   Stage = "canonical_slug"
)

// Predicate reports whether a profile matches.
type Predicate func(p *profile.Profile) bool

// Strategy is one step of the fallback chain. Build derives a predicate from the
// cleaned path segment; a nil predicate skips the stage.
type Strategy struct {
	Stage Stage
	Build func(segment string) Predicate
}

// DefaultStrategies returns the resolution chain: exact, case-insensitive,
// decoded, derived slug, canonical slug.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Stage: StageExact, Build: exactMatch},
		{Stage: StageCaseInsensitive, Build: caseInsensitiveMatch},
		{Stage: StageDecoded, Build: decodedMatch},
		{Stage: StageDerivedSlug, Build: derivedSlugMatch},
		{Stage: StageCanonicalSlug, Build: canonicalSlugMatch},
	}
}

// StrategiesFor picks the named stages out of the default chain, in the order given.
func StrategiesFor(stages ...Stage) ([]Strategy, error) {
	defaults := DefaultStrategies()
	out := make([]Strategy, 0, len(stages))
	for _, st := range stages {
		found := false
		for _, s := range defaults {
			if s.Stage == st {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStage, st)
		}
	}
	return out, nil
}

// CleanSegment trims whitespace and one leading '@'.
func CleanSegment(segment string) string {
	s := strings.TrimSpace(segment)
	s = strings.TrimPrefix(s, "@")
	return strings.TrimSpace(s)
}

func exactMatch(segment string) Predicate {
	return func(p *profile.Profile) bool {
		return p.DisplayName == segment
	}
}

func caseInsensitiveMatch(segment string) Predicate {
	want := text.Lower(segment)
	return func(p *profile.Profile) bool {
		return text.Lower(p.DisplayName) == want
	}
}

var separatorsToSpace = strings.NewReplacer("-", " ", "_", " ")

func decodedMatch(segment string) Predicate {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return nil
	}
	want := text.Lower(separatorsToSpace.Replace(decoded))
	return func(p *profile.Profile) bool {
		return text.Lower(p.DisplayName) == want
	}
}

func derivedSlugMatch(segment string) Predicate {
	want := text.Lower(strings.ToLower(segment))
	return func(p *profile.Profile) bool {
		return text.Lower(DerivedSlug(p.DisplayName)) == want
	}
}

func canonicalSlugMatch(segment string) Predicate {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		decoded = segment
	}
	want := CanonicalSlug(decoded)
	if want == "" {
		return nil
	}
	return func(p *profile.Profile) bool {
		return CanonicalSlug(p.DisplayName) == want
	}
}
