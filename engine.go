package dirsearch

import (
	"github.com/kailas-cloud/dirsearch/internal/domain/search/query"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
	"github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

// Engine runs searches and resolutions over caller-supplied snapshots.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	normalizer *text.Normalizer
	search     *searchuc.Service
	resolver   *resolve.Resolver
}

// New creates an Engine. Store options (WithValkey, WithRedis, ...) are ignored.
func New(opts ...Option) (*Engine, error) {
	return newEngine(newEngineConfig(opts))
}

func newEngine(cfg *engineConfig) (*Engine, error) {
	table := text.DefaultTable()
	if cfg.monospace {
		table = text.MonospaceTable()
	}
	normalizer := text.NewNormalizer(table)

	var strategies []resolve.Strategy
	if len(cfg.stages) > 0 {
		var err error
		strategies, err = resolve.StrategiesFor(cfg.stages...)
		if err != nil {
			return nil, err
		}
	}

	return &Engine{
		normalizer: normalizer,
		search:     searchuc.New(nil, normalizer),
		resolver:   resolve.NewResolver(strategies...),
	}, nil
}

// Normalize folds decorative letters to plain ASCII and lowercases everything else.
func (e *Engine) Normalize(s string) string {
	return e.normalizer.Normalize(s)
}

// NormalizeUTF16 is Normalize over UTF-16 code units, pairing surrogates manually.
func (e *Engine) NormalizeUTF16(units []uint16) string {
	return e.normalizer.NormalizeUTF16(units)
}

// Match runs the keyword matcher alone and reports which owners' catalogs satisfied q.
func (e *Engine) Match(q string, entities []Entity) MatchResult {
	parsed := query.Parse(q)
	res := result.New(parsed, searchuc.Match(parsed, entities), nil, 0)
	return matchFromResult(&res)
}

// Search merges catalog matches with profile field hits.
// limit <= 0 returns every visible profile.
func (e *Engine) Search(q string, entities []Entity, profiles []Profile, limit int) SearchResult {
	res := e.search.Evaluate(q, entities, profiles, limit)
	return searchFromResult(&res)
}

// Resolve maps a URL path segment to the active profile it names.
func (e *Engine) Resolve(segment string, profiles []Profile) Outcome {
	return e.resolver.Resolve(segment, profiles)
}

// Stages returns the resolver stages in evaluation order.
func (e *Engine) Stages() []Stage {
	return e.resolver.Stages()
}

// CanonicalSlug builds the URL slug for a display name: marks stripped,
// decorative letters folded, runs of other characters collapsed to '-'.
func CanonicalSlug(displayName string) string {
	return resolve.CanonicalSlug(displayName)
}

// Lookup returns the profile of a Found outcome.
func Lookup(o Outcome) (Profile, bool) {
	return resolve.Lookup(o)
}
