// Package text folds decorative Unicode letterforms and case so that plain
// queries match stylised text and the other way round.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Surrogate bounds of UTF-16.
const (
	surrHighStart = 0xD800
	surrLowStart  = 0xDC00
	surrEnd       = 0xE000
	surrSelf      = 0x10000
)

// Normalizer maps decorative letters to lowercase ASCII and lowercases the rest.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	table []Range
}

// NewNormalizer creates a Normalizer over the given table. A nil table uses DefaultTable.
func NewNormalizer(table []Range) *Normalizer {
	if table == nil {
		table = DefaultTable()
	}
	t := make([]Range, len(table))
	copy(t, table)
	return &Normalizer{table: t}
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize folds s with the default table.
func Normalize(s string) string {
	return defaultNormalizer.Normalize(s)
}

// Normalize returns s with every decorative letter replaced by its lowercase ASCII
// base and every other code point lowercased. Invalid UTF-8 bytes are copied as-is.
// The result is a fixed point: Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteRune(n.fold(r))
		i += size
	}
	return b.String()
}

// NormalizeUTF16 normalizes text held as UTF-16 code units, pairing surrogates by hand.
// A lone surrogate is emitted as U+FFFD.
func (n *Normalizer) NormalizeUTF16(units []uint16) string {
	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if u >= surrHighStart && u < surrLowStart && i+1 < len(units) {
			lo := rune(units[i+1])
			if lo >= surrLowStart && lo < surrEnd {
				cp := surrSelf + (u-surrHighStart)<<10 + (lo - surrLowStart)
				b.WriteRune(n.fold(cp))
				i++
				continue
			}
		}
		if u >= surrHighStart && u < surrEnd {
			b.WriteRune(utf8.RuneError)
			continue
		}
		b.WriteRune(unicode.ToLower(u))
	}
	return b.String()
}

// Table returns a copy of the ranges this Normalizer folds.
func (n *Normalizer) Table() []Range {
	t := make([]Range, len(n.table))
	copy(t, n.table)
	return t
}

func (n *Normalizer) fold(r rune) rune {
	if r >= surrSelf {
		for _, rg := range n.table {
			if rg.Contains(r) {
				return rg.Letter(r)
			}
		}
	}
	return unicode.ToLower(r)
}
