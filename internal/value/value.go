// Package value implements the GLYPH value model: a closed, twelve-variant
// tagged union covering the same domain as JSON plus bytes, time, and
// reference-id extensions.
package value

import "golang.org/x/text/unicode/norm"

// Kind identifies which of the twelve variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindBytes
	KindTime
	KindId
	KindList
	KindMap
	KindStruct
	KindSum
)

// Id is a reference identifier: an optional namespace prefix plus a
// non-empty value.
type Id struct {
	Prefix string
	Value  string
}

// MapEntry is a single key/value pair inside a Map or Struct.
type MapEntry struct {
	Key   string
	Value *Value
}

// Sum is a tagged union payload: a tag string plus an optional inner value.
type Sum struct {
	Tag   string
	Inner *Value
}

// Value is the tagged union at the heart of GLYPH. Exactly one payload
// field is meaningful, selected by Kind. A Value is either under
// exclusive construction by its builder or, once handed off, immutable
// and safe for concurrent reads.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	bytesVal []byte
	timeVal  int64
	idVal    Id

	listVal  []*Value
	mapVal   []MapEntry
	typeName string // Struct only
	sumVal   Sum
}

// Null returns the null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

// Int returns a 64-bit signed integer value.
func Int(n int64) *Value { return &Value{kind: KindInt, intVal: n} }

// Float returns a 64-bit IEEE-754 float value.
func Float(f float64) *Value { return &Value{kind: KindFloat, floatVal: f} }

// Str returns a UTF-8 string value. The string is NFC-normalized on
// construction so that Unicode-equivalent inputs (e.g. "é" as a single
// code point vs. "e" + combining acute accent) canonicalize identically.
// Map/Struct keys and Id values are never passed through this path: key
// comparison is raw-byte, not Unicode aware.
func Str(s string) *Value { return &Value{kind: KindStr, strVal: norm.NFC.String(s)} }

// Bytes returns an opaque byte-sequence value. The caller transfers
// ownership of buf to the Value and must not mutate it afterward.
func Bytes(buf []byte) *Value { return &Value{kind: KindBytes, bytesVal: buf} }

// Time returns a value holding milliseconds since the Unix epoch (UTC).
func Time(ms int64) *Value { return &Value{kind: KindTime, timeVal: ms} }

// NewId returns a reference-id value. value must be non-empty; prefix
// may be empty.
func NewId(prefix, val string) *Value {
	return &Value{kind: KindId, idVal: Id{Prefix: prefix, Value: val}}
}

// List returns a new, empty ordered list.
func List() *Value { return &Value{kind: KindList} }

// Map returns a new, empty map.
func Map() *Value { return &Value{kind: KindMap} }

// Struct returns a new, empty struct with the given type name.
func Struct(typeName string) *Value { return &Value{kind: KindStruct, typeName: typeName} }

// NewSum returns a sum-type value. inner may be nil.
func NewSum(tag string, inner *Value) *Value {
	return &Value{kind: KindSum, sumVal: Sum{Tag: tag, Inner: inner}}
}

// ListAppend appends item to list, transferring ownership of item to
// list. No-op if list is not a List or item is nil.
func ListAppend(list *Value, item *Value) {
	if list == nil || list.kind != KindList || item == nil {
		return
	}
	list.listVal = append(list.listVal, item)
}

// MapSet sets key to val in m, transferring ownership of val to m.
// Setting an existing key overwrites its value in place: each key
// appears at most once in the resulting canonical output, deduped at
// construction time rather than at encode time. No-op if m is nil or
// not a Map, or val is nil; an empty key is stored like any other.
func MapSet(m *Value, key string, val *Value) {
	if m == nil || m.kind != KindMap || val == nil {
		return
	}
	for i := range m.mapVal {
		if m.mapVal[i].Key == key {
			m.mapVal[i].Value = val
			return
		}
	}
	m.mapVal = append(m.mapVal, MapEntry{Key: key, Value: val})
}

// StructSet sets field key to val on s. Same dedupe discipline as MapSet.
func StructSet(s *Value, key string, val *Value) {
	if s == nil || s.kind != KindStruct || val == nil {
		return
	}
	for i := range s.mapVal {
		if s.mapVal[i].Key == key {
			s.mapVal[i].Value = val
			return
		}
	}
	s.mapVal = append(s.mapVal, MapEntry{Key: key, Value: val})
}

// Kind reports v's variant. A nil Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// AsBool returns v's boolean payload, or false if v is not a Bool.
func (v *Value) AsBool() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.boolVal
}

// AsInt returns v's integer payload, or 0 if v is not an Int.
func (v *Value) AsInt() int64 {
	if v == nil || v.kind != KindInt {
		return 0
	}
	return v.intVal
}

// AsFloat returns v's float payload, or 0.0 if v is not a Float.
func (v *Value) AsFloat() float64 {
	if v == nil || v.kind != KindFloat {
		return 0
	}
	return v.floatVal
}

// AsStr returns v's string payload and whether v is a Str.
func (v *Value) AsStr() (string, bool) {
	if v == nil || v.kind != KindStr {
		return "", false
	}
	return v.strVal, true
}

// AsBytes returns v's byte payload, or nil if v is not Bytes.
func (v *Value) AsBytes() []byte {
	if v == nil || v.kind != KindBytes {
		return nil
	}
	return v.bytesVal
}

// AsTime returns v's millisecond-epoch payload, or 0 if v is not a Time.
func (v *Value) AsTime() int64 {
	if v == nil || v.kind != KindTime {
		return 0
	}
	return v.timeVal
}

// AsId returns v's Id payload and whether v is an Id.
func (v *Value) AsId() (Id, bool) {
	if v == nil || v.kind != KindId {
		return Id{}, false
	}
	return v.idVal, true
}

// TypeName returns a Struct's type name, or "" if v is not a Struct.
func (v *Value) TypeName() string {
	if v == nil || v.kind != KindStruct {
		return ""
	}
	return v.typeName
}

// AsSum returns v's Sum payload and whether v is a Sum.
func (v *Value) AsSum() (Sum, bool) {
	if v == nil || v.kind != KindSum {
		return Sum{}, false
	}
	return v.sumVal, true
}

// Len returns a List's element count or a Map/Struct's entry count, or 0
// for any other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindMap, KindStruct:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Index returns the item at i in a List, or nil if out of range or v
// is not a List.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindList || i < 0 || i >= len(v.listVal) {
		return nil
	}
	return v.listVal[i]
}

// Items returns the underlying slice of a List's elements, or nil.
// Callers must not mutate the returned slice.
func (v *Value) Items() []*Value {
	if v == nil || v.kind != KindList {
		return nil
	}
	return v.listVal
}

// Entries returns the underlying entries of a Map or Struct, or nil.
// Callers must not mutate the returned slice.
func (v *Value) Entries() []MapEntry {
	if v == nil || (v.kind != KindMap && v.kind != KindStruct) {
		return nil
	}
	return v.mapVal
}

// Get looks up key on a Map or Struct, first match wins (there can be
// at most one after MapSet/StructSet dedupe). Returns nil if absent or
// v is neither kind.
func (v *Value) Get(key string) *Value {
	if v == nil || (v.kind != KindMap && v.kind != KindStruct) {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}
