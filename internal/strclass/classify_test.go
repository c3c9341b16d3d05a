package strclass

import "testing"

func TestIsBareSafe(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"action", true},
		{"user_123", true},
		{"project/helios", true},
		{"a.b-c@d:e", true},
		{"", false},
		{"1abc", false},
		{"-neg", false},
		{`"quoted`, false},
		{"'single", false},
		{"t", false},
		{"f", false},
		{"true", false},
		{"false", false},
		{"null", false},
		{"_", false},
		{"hello world", false},
		{"café", true}, // non-ASCII byte > 0x7F is bare-safe
	}
	for _, c := range cases {
		if got := IsBareSafe(c.in); got != c.want {
			t.Errorf("IsBareSafe(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsIdBareSafe(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user123", true},
		{"a-b.c_d", true},
		{"has/slash", false},
		{"has@at", false},
		{"has:colon", false},
		{"", false},
		{"t", true}, // no reserved-word carve-out for Id values
	}
	for _, c := range cases {
		if got := IsIdBareSafe(c.in); got != c.want {
			t.Errorf("IsIdBareSafe(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestQuoteEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"simple", `"simple"`},
		{"a\\b", `"a\\b"`},
		{`a"b`, `"a\"b"`},
		{"a\nb", `"a\nb"`},
		{"a\rb", `"a\rb"`},
		{"a\tb", `"a\tb"`},
		{"a\x01b", `"a\u0001b"`},
	}
	for _, c := range cases {
		if got := Quote(c.in); got != c.want {
			t.Errorf("Quote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonBareReversibility(t *testing.T) {
	// If a string passes the bareword test, its canonical form equals its
	// byte sequence.
	for _, s := range []string{"action", "user_123", "project/widget", "a.b-c@d:e"} {
		if Canon(s) != s {
			t.Errorf("Canon(%q) = %q, want identity", s, Canon(s))
		}
	}
}

func TestCanonFallsBackToQuoted(t *testing.T) {
	if Canon("hello world") != `"hello world"` {
		t.Errorf("Canon(%q) = %q", "hello world", Canon("hello world"))
	}
	if Canon("t") != `"t"` {
		t.Errorf("Canon(t) should quote the reserved word, got %q", Canon("t"))
	}
}
