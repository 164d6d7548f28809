package text

import (
	"testing"
	"unicode/utf16"
)

func TestNormalize_KnownRanges(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold upper", "\U0001D400\U0001D401\U0001D402", "abc"},
		{"bold lower", "\U0001D41A\U0001D41B\U0001D41C", "abc"},
		{"italic", "\U0001D434\U0001D44E", "aa"},
		{"bold italic Z", "\U0001D481", "z"},
		{"fraktur", "\U0001D504\U0001D51E", "aa"},
		{"bold fraktur", "\U0001D56C\U0001D586", "aa"},
		{"double struck", "\U0001D538\U0001D552", "aa"},
		{"sans serif", "\U0001D5A0\U0001D5BA", "aa"},
		{"sans serif bold", "\U0001D5D4\U0001D5EE", "aa"},
		{"sans serif italic", "\U0001D608\U0001D622", "aa"},
		{"sans serif bold italic last", "\U0001D655\U0001D66F", "zz"},
		{"plain", "plain TEXT", "plain text"},
		{"mixed", "Shop \U0001D5D5\U0001D5EE\U0001D5FF", "shop baz"},
		{"empty", "", ""},
		{"non latin lowercased", "ÀÉÎ Straße", "àéî straße"},
		{"emoji untouched", "hi 😀", "hi 😀"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_MonospaceOmittedByDefault(t *testing.T) {
	mono := "\U0001D670\U0001D68A" // monospace A, a
	if got := Normalize(mono); got != mono {
		t.Errorf("default table folded monospace: %q", got)
	}

	n := NewNormalizer(MonospaceTable())
	if got := n.Normalize(mono); got != "aa" {
		t.Errorf("monospace table: got %q, want %q", got, "aa")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"\U0001D400\U0001D401\U0001D402 SHOP",
		"İstanbul Ǆ ǅ ǆ",
		"ΣΑΣ σας",
		"\xff\xfe broken",
		"\U0001D670 mono",
		"Jan's Café",
	}
	normalizers := []*Normalizer{NewNormalizer(nil), NewNormalizer(MonospaceTable())}
	for _, n := range normalizers {
		for _, s := range inputs {
			once := n.Normalize(s)
			twice := n.Normalize(once)
			if once != twice {
				t.Errorf("not idempotent for %q: %q then %q", s, once, twice)
			}
		}
	}
}

func TestNormalize_InvalidBytesPassThrough(t *testing.T) {
	in := "A\xffB"
	want := "a\xffb"
	if got := Normalize(in); got != want {
		t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
	}
}

func TestNormalizeUTF16_SurrogatePairs(t *testing.T) {
	n := NewNormalizer(nil)
	units := utf16.Encode([]rune("\U0001D400\U0001D401\U0001D402 Go"))
	if got := n.NormalizeUTF16(units); got != "abc go" {
		t.Errorf("NormalizeUTF16 = %q, want %q", got, "abc go")
	}
}

func TestNormalizeUTF16_UnmappedPairKept(t *testing.T) {
	n := NewNormalizer(nil)
	units := utf16.Encode([]rune("😀"))
	if got := n.NormalizeUTF16(units); got != "😀" {
		t.Errorf("NormalizeUTF16 = %q, want emoji", got)
	}
}

func TestNormalizeUTF16_LoneSurrogates(t *testing.T) {
	n := NewNormalizer(nil)
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"lone high at end", []uint16{'A', 0xD835}, "a�"},
		{"lone low", []uint16{0xDC00, 'b'}, "�b"},
		{"high then letter", []uint16{0xD835, 'C'}, "�c"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.NormalizeUTF16(tc.units); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeUTF16_MatchesNormalize(t *testing.T) {
	n := NewNormalizer(nil)
	for _, s := range []string{"𝐁old 𝔉raktur", "plain", "Ünïcödé"} {
		if a, b := n.Normalize(s), n.NormalizeUTF16(utf16.Encode([]rune(s))); a != b {
			t.Errorf("%q: Normalize=%q NormalizeUTF16=%q", s, a, b)
		}
	}
}

func TestTable(t *testing.T) {
	if got := len(DefaultTable()); got != 20 {
		t.Errorf("DefaultTable() has %d ranges, want 20", got)
	}
	if got := len(MonospaceTable()); got != 22 {
		t.Errorf("MonospaceTable() has %d ranges, want 22", got)
	}
	for _, r := range DefaultTable() {
		if r.End-r.Start != 25 {
			t.Errorf("range %X-%X spans %d letters", r.Start, r.End, r.End-r.Start+1)
		}
	}

	n := NewNormalizer(nil)
	tbl := n.Table()
	tbl[0].Base = 'Q'
	if n.Table()[0].Base != 'A' {
		t.Error("Table() must return a copy")
	}
}
