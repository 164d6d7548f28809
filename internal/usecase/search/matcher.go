package search

import (
	"strings"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/query"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
)

// keywordSet records which keyword indices an entity satisfied.
type keywordSet struct {
	bits []uint64
	n    int
}

func newKeywordSet(keywords int) keywordSet {
	return keywordSet{bits: make([]uint64, (keywords+63)/64)}
}

func (s *keywordSet) add(i int) {
	word, mask := i/64, uint64(1)<<(uint(i)%64)
	if s.bits[word]&mask != 0 {
		return
	}
	s.bits[word] |= mask
	s.n++
}

// Len returns the number of distinct keywords matched.
func (s *keywordSet) Len() int { return s.n }

// candidate is one deduplicated catalog identity and the keywords it matched.
type candidate struct {
	identity catalog.Identity
	matched  keywordSet
}

// Match returns the owners whose catalog satisfies q.
//
// An entity is a hit for a keyword when its name, description, details or any
// tag name contains the keyword case-insensitively. Entities sharing an identity
// pool their matched keywords. In multi mode an identity passes only when it
// matched every keyword; in single mode any hit passes. The catalog is not modified.
func Match(q query.Query, entities []catalog.Entity) result.Match {
	if q.IsEmpty() {
		return result.NewMatch(nil)
	}

	keywords := make([]string, q.Len())
	for i, kw := range q.Keywords() {
		keywords[i] = text.Lower(kw)
	}

	byIdentity := make(map[catalog.Identity]*candidate)
	var pool []*candidate

	for i := range entities {
		haystack := lowerEntity(&entities[i])

		var c *candidate
		for k, kw := range keywords {
			if !containsAny(haystack, kw) {
				continue
			}
			if c == nil {
				id := entities[i].Identity()
				c = byIdentity[id]
				if c == nil {
					c = &candidate{identity: id, matched: newKeywordSet(len(keywords))}
					byIdentity[id] = c
					pool = append(pool, c)
				}
			}
			c.matched.add(k)
		}
	}

	owners := make([]string, 0, len(pool))
	for _, c := range pool {
		if q.IsMulti() && c.matched.Len() != len(keywords) {
			continue
		}
		owners = append(owners, c.identity.OwnerID)
	}
	return result.NewMatch(owners)
}

// lowerEntity returns the lowercased searchable text of an entity: fields, then tags.
func lowerEntity(e *catalog.Entity) []string {
	fields := e.Fields()
	out := make([]string, 0, len(fields)+len(e.Tags))
	for _, f := range fields {
		if f != "" {
			out = append(out, text.Lower(f))
		}
	}
	for _, t := range e.Tags {
		if t.Name != "" {
			out = append(out, text.Lower(t.Name))
		}
	}
	return out
}

func containsAny(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
