// Package glyph implements GLYPH, a textual serialization format that
// encodes the same value domain as JSON into a shorter, deterministic
// canonical form. See SPEC_FULL.md for the full design.
//
// The public surface is a thin wrapper over internal/value,
// internal/canon, internal/jsonbridge and internal/fingerprint.
package glyph

import (
	"github.com/neumenon/glyph/internal/canon"
	"github.com/neumenon/glyph/internal/fingerprint"
	"github.com/neumenon/glyph/internal/jsonbridge"
	"github.com/neumenon/glyph/internal/value"
)

// Value is a GLYPH value: a tagged union of the twelve representable
// kinds.
type Value = value.Value

// Kind identifies which variant a Value holds.
type Kind = value.Kind

const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindInt    = value.KindInt
	KindFloat  = value.KindFloat
	KindStr    = value.KindStr
	KindBytes  = value.KindBytes
	KindTime   = value.KindTime
	KindId     = value.KindId
	KindList   = value.KindList
	KindMap    = value.KindMap
	KindStruct = value.KindStruct
	KindSum    = value.KindSum
)

// Id is a reference-identifier payload: an optional prefix plus a
// non-empty value.
type Id = value.Id

// MapEntry is a single key/value pair inside a Map or Struct.
type MapEntry = value.MapEntry

// Sum is a tagged-union payload: a tag string plus an optional inner
// value.
type Sum = value.Sum

// Constructors.

func Null() *Value                           { return value.Null() }
func Bool(b bool) *Value                     { return value.Bool(b) }
func Int(n int64) *Value                     { return value.Int(n) }
func Float(f float64) *Value                 { return value.Float(f) }
func Str(s string) *Value                    { return value.Str(s) }
func Bytes(buf []byte) *Value                { return value.Bytes(buf) }
func Time(ms int64) *Value                   { return value.Time(ms) }
func NewId(prefix, val string) *Value        { return value.NewId(prefix, val) }
func List() *Value                           { return value.List() }
func Map() *Value                            { return value.Map() }
func Struct(typeName string) *Value          { return value.Struct(typeName) }
func NewSum(tag string, inner *Value) *Value { return value.NewSum(tag, inner) }

// ListAppend appends item to list, transferring ownership to list.
func ListAppend(list, item *Value) { value.ListAppend(list, item) }

// MapSet sets key to val on m (last write wins on duplicate keys).
func MapSet(m *Value, key string, val *Value) { value.MapSet(m, key, val) }

// StructSet sets field key to val on s (last write wins on duplicate keys).
func StructSet(s *Value, key string, val *Value) { value.StructSet(s, key, val) }

// Options controls canonical-writer behavior.
type Options = canon.Options

// NullStyle selects the glyph used to render Null.
type NullStyle = canon.NullStyle

const (
	NullUnderscore = canon.NullUnderscore
	NullSymbol     = canon.NullSymbol
)

// DefaultOptions, LLMOptions, PrettyOptions, and NoTabularOptions are the
// four named presets.
func DefaultOptions() Options   { return canon.Default() }
func LLMOptions() Options       { return canon.LLM() }
func PrettyOptions() Options    { return canon.Pretty() }
func NoTabularOptions() Options { return canon.NoTabular() }

// Canonicalize renders v under the default option set.
func Canonicalize(v *Value) string { return canon.Encode(v, canon.Default()) }

// CanonicalizeNoTabular renders v with tabular mode disabled.
func CanonicalizeNoTabular(v *Value) string { return canon.Encode(v, canon.NoTabular()) }

// CanonicalizeWithOptions renders v under a caller-supplied option set.
func CanonicalizeWithOptions(v *Value, opts Options) string { return canon.Encode(v, opts) }

// FromJSON parses a JSON document into a Value. It returns (nil, false)
// on any structural error.
func FromJSON(data []byte) (*Value, bool) { return jsonbridge.Parse(data) }

// ToJSON renders v as a JSON document.
func ToJSON(v *Value) string { return jsonbridge.ToJSON(v) }

// Fingerprint returns v's canonical form under default options.
func Fingerprint(v *Value) string { return fingerprint.Fingerprint(v) }

// Hash returns a fixed-width, lowercase hex digest of v's fingerprint.
func Hash(v *Value) string { return fingerprint.Hash(v) }

// Equal reports whether a and b have byte-equal fingerprints.
func Equal(a, b *Value) bool { return fingerprint.Equal(a, b) }
