package glyph

import "testing"

func TestPublicConstructorsAndCanonicalize(t *testing.T) {
	s := Struct("SearchRequest")
	StructSet(s, "query", Str("hello world"))
	StructSet(s, "limit", Int(10))
	StructSet(s, "score", Float(0.5))

	got := Canonicalize(s)
	want := `SearchRequest{limit=10 query="hello world" score=0.5}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPublicListAppend(t *testing.T) {
	l := List()
	ListAppend(l, Int(1))
	ListAppend(l, Int(2))
	ListAppend(l, Int(3))
	if l.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", l.Len())
	}
	if l.Index(1).AsInt() != 2 {
		t.Error("unexpected item at index 1")
	}
}

func TestPublicMapSetDedupe(t *testing.T) {
	m := Map()
	MapSet(m, "k", Int(1))
	MapSet(m, "k", Int(2))
	if m.Len() != 1 {
		t.Fatalf("expected dedupe to leave one entry, got %d", m.Len())
	}
	if m.Get("k").AsInt() != 2 {
		t.Error("expected last write to win")
	}
}

func TestPublicOptionsPresetsProduceDistinctOutput(t *testing.T) {
	v := Null()
	def := CanonicalizeWithOptions(v, DefaultOptions())
	pretty := CanonicalizeWithOptions(v, PrettyOptions())
	if def == pretty {
		t.Errorf("default and pretty presets both render null as %q", def)
	}
}

func TestPublicJSONRoundTrip(t *testing.T) {
	m := Map()
	MapSet(m, "a", Int(1))
	MapSet(m, "b", Str("hi"))

	js := ToJSON(m)
	back, ok := FromJSON([]byte(js))
	if !ok {
		t.Fatal("FromJSON failed on generated JSON")
	}
	if back.Get("a").AsInt() != 1 {
		t.Error("int field did not round-trip")
	}
	s, _ := back.Get("b").AsStr()
	if s != "hi" {
		t.Error("str field did not round-trip")
	}
}

func TestPublicFingerprintHashEqual(t *testing.T) {
	a := Map()
	MapSet(a, "x", Int(1))
	b := Map()
	MapSet(b, "x", Int(1))

	if !Equal(a, b) {
		t.Error("structurally identical maps should be equal")
	}
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprints should match")
	}
	if len(Hash(a)) != 16 {
		t.Errorf("expected 16-char hash, got %d", len(Hash(a)))
	}

	c := Map()
	MapSet(c, "x", Int(2))
	if Equal(a, c) {
		t.Error("different maps should not be equal")
	}
}

func TestPublicIdAndSum(t *testing.T) {
	id := NewId("user", "123")
	got := Canonicalize(id)
	if got != "^user:123" {
		t.Errorf("got %q", got)
	}

	sum := NewSum("ok", Int(5))
	if Canonicalize(sum) != "ok(5)" {
		t.Errorf("got %q", Canonicalize(sum))
	}
	empty := NewSum("pending", nil)
	if Canonicalize(empty) != "pending()" {
		t.Errorf("got %q", Canonicalize(empty))
	}
}
