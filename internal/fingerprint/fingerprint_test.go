package fingerprint

import (
	"testing"

	"github.com/neumenon/glyph/internal/value"
)

func buildMap() *value.Value {
	m := value.Map()
	value.MapSet(m, "action", value.Str("search"))
	return m
}

func TestHashIsFixedWidthHex(t *testing.T) {
	h := Hash(buildMap())
	if len(h) != 16 {
		t.Fatalf("expected 16 hex chars, got %d (%q)", len(h), h)
	}
	for _, c := range h {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
		if !isHex {
			t.Fatalf("hash %q contains non-lowercase-hex char %q", h, c)
		}
	}
}

func TestHashStability(t *testing.T) {
	v := buildMap()
	if Hash(v) != Hash(v) {
		t.Error("hash should be stable across repeated calls")
	}
}

func TestEqualMatchesFingerprint(t *testing.T) {
	a := buildMap()
	b := buildMap()
	if !Equal(a, b) {
		t.Error("structurally identical values should be equal")
	}
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprints should match for equal values")
	}
}

func TestEqualDiffersOnValueChange(t *testing.T) {
	a := buildMap()
	b := value.Map()
	value.MapSet(b, "action", value.Str("different"))
	if Equal(a, b) {
		t.Error("different values should not be equal")
	}
	if Hash(a) == Hash(b) {
		t.Error("different values should (almost certainly) hash differently")
	}
}

func TestKeyOrderDoesNotAffectFingerprint(t *testing.T) {
	m1 := value.Map()
	value.MapSet(m1, "a", value.Int(1))
	value.MapSet(m1, "b", value.Int(2))

	m2 := value.Map()
	value.MapSet(m2, "b", value.Int(2))
	value.MapSet(m2, "a", value.Int(1))

	if !Equal(m1, m2) {
		t.Error("map key order should not affect fingerprint")
	}
}

func TestWholeNumberCollapseAffectsEquality(t *testing.T) {
	if !Equal(value.Int(42), value.Float(42.0)) {
		t.Error("Int(42) and Float(42.0) should be equal (whole-number collapse)")
	}
}

// TestFrozenHashValue pins a known input to its expected hash so an
// accidental change to any formatter or the writer shows up immediately.
func TestFrozenHashValue(t *testing.T) {
	m := value.Map()
	value.MapSet(m, "action", value.Str("search"))
	value.MapSet(m, "limit", value.Int(10))

	const frozenFingerprint = `{action=search limit=10}`
	if got := Fingerprint(m); got != frozenFingerprint {
		t.Fatalf("fingerprint drifted: got %q, want %q", got, frozenFingerprint)
	}

	const frozenHash = "c134be632b2e23c7"
	got := Hash(m)
	if got != frozenHash {
		t.Fatalf("hash drifted: got %q, want %q", got, frozenHash)
	}
}
