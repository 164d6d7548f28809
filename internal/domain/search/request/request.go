package request

import (
	"fmt"

	"github.com/kailas-cloud/dirsearch/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in bytes.
	MaxQueryLength = 4096
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Bounds overrides the package limits. Zero fields fall back to the defaults.
type Bounds struct {
	MaxQueryLength int
	DefaultLimit   int
	MaxLimit       int
}

func (b Bounds) withDefaults() Bounds {
	if b.MaxQueryLength <= 0 {
		b.MaxQueryLength = MaxQueryLength
	}
	if b.DefaultLimit <= 0 {
		b.DefaultLimit = DefaultLimit
	}
	if b.MaxLimit <= 0 {
		b.MaxLimit = MaxLimit
	}
	if b.DefaultLimit > b.MaxLimit {
		b.DefaultLimit = b.MaxLimit
	}
	return b
}

// Request is a validated directory search.
type Request struct {
	query string
	limit int
}

// New validates search parameters. An empty query is allowed: it matches nothing.
// limit <= 0 selects the default; larger values are clamped to the maximum.
func New(query string, limit int, bounds Bounds) (Request, error) {
	b := bounds.withDefaults()
	if len(query) > b.MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d bytes)", domain.ErrInvalidQuery, b.MaxQueryLength)
	}
	if limit <= 0 {
		limit = b.DefaultLimit
	}
	if limit > b.MaxLimit {
		limit = b.MaxLimit
	}
	return Request{query: query, limit: limit}, nil
}

// Query returns the raw query text.
func (r *Request) Query() string { return r.query }

// Limit returns the maximum number of profiles to return.
func (r *Request) Limit() int { return r.limit }
