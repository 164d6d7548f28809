// Package query turns raw search box input into keywords and a combination mode.
package query

import (
	"strings"

	"github.com/kailas-cloud/dirsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
)

// Separator splits a query into AND-joined keywords.
const Separator = ","

// Query is a parsed search query. The zero value is the empty query.
type Query struct {
	raw      string
	keywords []string
	mode     mode.Mode
}

// Parse splits raw on commas. With fewer than two non-empty pieces the whole
// trimmed query is the single keyword; otherwise every piece must match.
// Pieces equal ignoring case count once as keywords but still select AND mode.
func Parse(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Query{mode: mode.Single}
	}

	var pieces []string
	seen := make(map[string]struct{})
	nonEmpty := 0
	for _, p := range strings.Split(trimmed, Separator) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		nonEmpty++
		key := text.Lower(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pieces = append(pieces, p)
	}

	if nonEmpty <= 1 {
		return Query{raw: trimmed, keywords: []string{trimmed}, mode: mode.Single}
	}
	return Query{raw: trimmed, keywords: pieces, mode: mode.Multi}
}

// Raw returns the trimmed input.
func (q Query) Raw() string { return q.raw }

// Keywords returns the distinct keywords in input order.
func (q Query) Keywords() []string { return q.keywords }

// Mode returns how keywords combine.
func (q Query) Mode() mode.Mode { return q.mode }

// Len returns the number of distinct keywords.
func (q Query) Len() int { return len(q.keywords) }

// IsEmpty reports whether the query has no keywords and therefore matches nothing.
func (q Query) IsEmpty() bool { return len(q.keywords) == 0 }

// IsMulti reports whether AND semantics apply.
func (q Query) IsMulti() bool { return q.mode == mode.Multi }
