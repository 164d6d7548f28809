package text

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers carry transform state; each goroutine takes its own from the pool.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Lower returns the language-neutral lowercase form of s. Unlike full case
// folding it never expands letters, so "ß" stays "ß".
func Lower(s string) string {
	if isASCIILower(s) {
		return s
	}
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	return c.String(s)
}

// EqualIgnoreCase reports whether a and b are equal after lowercasing.
func EqualIgnoreCase(a, b string) bool {
	return Lower(a) == Lower(b)
}

// ContainsIgnoreCase reports whether needle is a case-insensitive substring of haystack.
func ContainsIgnoreCase(haystack, needle string) bool {
	return strings.Contains(Lower(haystack), Lower(needle))
}

func isASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
