package resolve

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/dirsearch/internal/domain/text"
)

const upperHex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// ASCII letters, digits and - _ . ! ~ * ' ( ) stay, every other byte becomes %XX.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// DerivedSlug is the percent-encoded, lowercased, trimmed display name.
func DerivedSlug(displayName string) string {
	return EncodeComponent(strings.ToLower(strings.TrimSpace(displayName)))
}

// transform chains are not safe for concurrent use.
var markStripPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// CanonicalSlug builds the hyphenated slug used in canonical profile URLs:
// accents and decorative letterforms are folded, letters and digits are kept
// lowercase, and every other run of characters becomes one hyphen.
//
//	"Jan's Café" -> "jan-s-cafe"
func CanonicalSlug(s string) string {
	t := markStripPool.Get().(transform.Transformer)
	stripped, _, err := transform.String(t, s)
	t.Reset()
	markStripPool.Put(t)
	if err != nil {
		stripped = s
	}

	folded := text.Normalize(stripped)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
