package text

// Range maps one decorative Unicode sub-range onto a run of ASCII letters.
// Start maps to Base, Start+1 to Base+1, and so on up to End inclusive.
type Range struct {
	Start rune
	End   rune
	Base  byte
	Upper bool
}

// Contains reports whether cp falls inside the range.
func (r Range) Contains(cp rune) bool {
	return cp >= r.Start && cp <= r.End
}

// Letter returns the lowercase ASCII letter cp stands for. cp must be inside the range.
func (r Range) Letter(cp rune) rune {
	l := rune(r.Base) + (cp - r.Start)
	if r.Upper {
		l += 'a' - 'A'
	}
	return l
}

// First code points of each Mathematical Alphanumeric Symbols family (U+1D400 block).
const (
	mathBold                rune = 0x1D400
	mathItalic              rune = 0x1D434
	mathBoldItalic          rune = 0x1D468
	mathFraktur             rune = 0x1D504
	mathDoubleStruck        rune = 0x1D538
	mathBoldFraktur         rune = 0x1D56C
	mathSansSerif           rune = 0x1D5A0
	mathSansSerifBold       rune = 0x1D5D4
	mathSansSerifItalic     rune = 0x1D608
	mathSansSerifBoldItalic rune = 0x1D63C
	mathMonospace           rune = 0x1D670
)

const lettersPerAlphabetCase = 26

// family expands a family start into its A-Z and a-z sub-ranges.
func family(start rune) []Range {
	lower := start + lettersPerAlphabetCase
	return []Range{
		{Start: start, End: start + lettersPerAlphabetCase - 1, Base: 'A', Upper: true},
		{Start: lower, End: lower + lettersPerAlphabetCase - 1, Base: 'a'},
	}
}

var defaultFamilies = []rune{
	mathBold,
	mathItalic,
	mathBoldItalic,
	mathFraktur,
	mathBoldFraktur,
	mathDoubleStruck,
	mathSansSerif,
	mathSansSerifBold,
	mathSansSerifItalic,
	mathSansSerifBoldItalic,
}

// DefaultTable returns the decorative ranges folded by default.
// Mathematical Monospace is not part of it; see MonospaceTable.
func DefaultTable() []Range {
	table := make([]Range, 0, 2*len(defaultFamilies))
	for _, f := range defaultFamilies {
		table = append(table, family(f)...)
	}
	return table
}

// MonospaceTable returns DefaultTable plus the Mathematical Monospace block.
func MonospaceTable() []Range {
	return append(DefaultTable(), family(mathMonospace)...)
}
