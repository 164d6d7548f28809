package resolve

import "testing"

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc XYZ 019", "abc%20XYZ%20019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"/?#&=+", "%2F%3F%23%26%3D%2B"},
		{"café", "caf%C3%A9"},
		{"%", "%25"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EncodeComponent(tt.in); got != tt.want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDerivedSlug(t *testing.T) {
	if got := DerivedSlug("  Jan's Café "); got != "jan's%20caf%C3%A9" {
		t.Errorf("unexpected slug %q", got)
	}
}

func TestCanonicalSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Jan's Café", "jan-s-cafe"},
		{"  Hello,  World!! ", "hello-world"},
		{"Ann-Marie Shop", "ann-marie-shop"},
		{"\U0001D400\U0001D401\U0001D402 Shop", "abc-shop"},
		{"Crème brûlée 24/7", "creme-brulee-24-7"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalSlug(tt.in); got != tt.want {
			t.Errorf("CanonicalSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalSlug_Idempotent(t *testing.T) {
	for _, in := range []string{"Jan's Café", "Ann-Marie Shop", "x"} {
		once := CanonicalSlug(in)
		if twice := CanonicalSlug(once); twice != once {
			t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
