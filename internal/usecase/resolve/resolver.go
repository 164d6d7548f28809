// Package resolve maps a public profile URL segment to one canonical profile.
package resolve

import "github.com/kailas-cloud/dirsearch/internal/domain/profile"

// Resolver evaluates strategies in order; the first stage with a match wins.
// Within a stage, candidates are tried oldest first (CreatedAt, then ID).
type Resolver struct {
	strategies []Strategy
}

// NewResolver creates a Resolver. With no strategies, DefaultStrategies is used.
func NewResolver(strategies ...Strategy) *Resolver {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Resolver{strategies: strategies}
}

// Resolve returns Found with the first matching active profile, or NotFound.
func (r *Resolver) Resolve(segment string, profiles []profile.Profile) Outcome {
	cleaned := CleanSegment(segment)
	if cleaned == "" {
		return NotFound{}
	}

	active := profile.Active(profiles)
	for _, s := range r.strategies {
		match := s.Build(cleaned)
		if match == nil {
			continue
		}
		for i := range active {
			if match(&active[i]) {
				return Found{Profile: active[i], Stage: s.Stage}
			}
		}
	}
	return NotFound{}
}

// Stages returns the configured stage order.
func (r *Resolver) Stages() []Stage {
	out := make([]Stage, len(r.strategies))
	for i, s := range r.strategies {
		out[i] = s.Stage
	}
	return out
}
