package value

import "testing"

func TestConstructorsAndAccessors(t *testing.T) {
	if Null().Kind() != KindNull {
		t.Errorf("Null() should have KindNull")
	}
	if !Bool(true).AsBool() {
		t.Errorf("Bool(true).AsBool() should be true")
	}
	if Int(42).AsInt() != 42 {
		t.Errorf("Int(42).AsInt() should be 42")
	}
	if Float(3.5).AsFloat() != 3.5 {
		t.Errorf("Float(3.5).AsFloat() should be 3.5")
	}
	if s, ok := Str("hello").AsStr(); !ok || s != "hello" {
		t.Errorf("Str(hello).AsStr() should be (hello, true), got (%q, %v)", s, ok)
	}
}

func TestSentinelOnTypeMismatch(t *testing.T) {
	v := Int(1)
	if v.AsBool() {
		t.Error("AsBool on Int should return false sentinel")
	}
	if v.AsFloat() != 0 {
		t.Error("AsFloat on Int should return 0 sentinel")
	}
	if _, ok := v.AsStr(); ok {
		t.Error("AsStr on Int should return ok=false")
	}
	if v.Len() != 0 {
		t.Error("Len on non-List should return 0")
	}
	if v.Get("x") != nil {
		t.Error("Get on non-Map/Struct should return nil")
	}
}

func TestNilValueIsNull(t *testing.T) {
	var v *Value
	if v.Kind() != KindNull {
		t.Error("nil Value should report KindNull")
	}
}

func TestListAppend(t *testing.T) {
	l := List()
	ListAppend(l, Int(1))
	ListAppend(l, Int(2))
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
	if l.Index(0).AsInt() != 1 || l.Index(1).AsInt() != 2 {
		t.Error("list items out of order")
	}
	if l.Index(5) != nil {
		t.Error("out-of-range Index should return nil")
	}
}

func TestMapSetDedupesLastWins(t *testing.T) {
	m := Map()
	MapSet(m, "a", Int(1))
	MapSet(m, "b", Int(2))
	MapSet(m, "a", Int(99))

	if len(m.Entries()) != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", len(m.Entries()))
	}
	if got := m.Get("a"); got == nil || got.AsInt() != 99 {
		t.Errorf("expected a=99 (last write wins), got %v", got)
	}
}

func TestStructSetDedupe(t *testing.T) {
	s := Struct("Point")
	StructSet(s, "x", Int(1))
	StructSet(s, "x", Int(2))
	if len(s.Entries()) != 1 {
		t.Fatalf("expected 1 field, got %d", len(s.Entries()))
	}
	if s.TypeName() != "Point" {
		t.Errorf("expected type name Point, got %q", s.TypeName())
	}
}

func TestSumInnerOptional(t *testing.T) {
	s := NewSum("ok", nil)
	sum, ok := s.AsSum()
	if !ok {
		t.Fatal("expected AsSum ok=true")
	}
	if sum.Tag != "ok" || sum.Inner != nil {
		t.Errorf("unexpected sum payload: %+v", sum)
	}
}

func TestIdPayload(t *testing.T) {
	id := NewId("user", "123")
	got, ok := id.AsId()
	if !ok || got.Prefix != "user" || got.Value != "123" {
		t.Errorf("unexpected id payload: %+v", got)
	}
}

func TestStrNFCNormalization(t *testing.T) {
	nfd := "cafe\u0301" // NFD: e + combining acute accent
	v := Str(nfd)
	got, _ := v.AsStr()
	nfc := "caf\u00e9" // NFC: e with acute accent as a single code point
	if got != nfc {
		t.Errorf("expected NFC normalization to %q, got %q", nfc, got)
	}
}
