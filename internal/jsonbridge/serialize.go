package jsonbridge

import (
	"strings"

	"github.com/neumenon/glyph/internal/numfmt"
	"github.com/neumenon/glyph/internal/scalarfmt"
	"github.com/neumenon/glyph/internal/value"
)

// ToJSON renders v as a JSON document. The mapping is a straightforward
// mirror of the value model with a few non-bijective extensions:
// Bytes → base64 string body (no "b64" prefix), Time → ISO-8601 UTC
// string, Id → "^prefix:value" string, Struct → object with an injected
// "_type" field, Sum → {"_tag", "_value"} object. Round-tripping through
// ToJSON/Parse is only guaranteed for Null/Bool/Int/Float/Str/List/Map.
func ToJSON(v *value.Value) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v *value.Value) {
	switch v.Kind() {
	case value.KindNull:
		b.WriteString("null")
	case value.KindBool:
		if v.AsBool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindInt:
		b.WriteString(numfmt.Int(v.AsInt()))
	case value.KindFloat:
		b.WriteString(numfmt.Float(v.AsFloat()))
	case value.KindStr:
		s, _ := v.AsStr()
		writeJSONString(b, s)
	case value.KindBytes:
		writeJSONString(b, base64Body(v.AsBytes()))
	case value.KindTime:
		writeJSONString(b, scalarfmt.Time(v.AsTime()))
	case value.KindId:
		id, _ := v.AsId()
		if id.Prefix != "" {
			writeJSONString(b, "^"+id.Prefix+":"+id.Value)
		} else {
			writeJSONString(b, "^"+id.Value)
		}
	case value.KindList:
		b.WriteString("[")
		for i, item := range v.Items() {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSON(b, item)
		}
		b.WriteString("]")
	case value.KindMap:
		b.WriteString("{")
		for i, e := range v.Entries() {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSONString(b, e.Key)
			b.WriteString(":")
			writeJSON(b, e.Value)
		}
		b.WriteString("}")
	case value.KindStruct:
		b.WriteString(`{"_type":`)
		writeJSONString(b, v.TypeName())
		// The injected _type field wins on collision: it is written
		// first, and a user-supplied field also named "_type" is
		// dropped rather than emitted as a second, later-wins duplicate
		// key. The reference C implementation has no collision check at
		// all; "injected field wins" is the closest Go equivalent.
		for _, e := range v.Entries() {
			if e.Key == "_type" {
				continue
			}
			b.WriteString(",")
			writeJSONString(b, e.Key)
			b.WriteString(":")
			writeJSON(b, e.Value)
		}
		b.WriteString("}")
	case value.KindSum:
		sum, _ := v.AsSum()
		b.WriteString(`{"_tag":`)
		writeJSONString(b, sum.Tag)
		if sum.Inner != nil {
			b.WriteString(`,"_value":`)
			writeJSON(b, sum.Inner)
		}
		b.WriteString("}")
	default:
		b.WriteString("null")
	}
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				const hex = "0123456789abcdef"
				b.WriteByte(hex[c>>4])
				b.WriteByte(hex[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}

func base64Body(buf []byte) string {
	full := scalarfmt.Bytes(buf)
	// scalarfmt.Bytes returns `b64"<body>"`; strip the b64 wrapper since
	// the JSON bridge emits the bare base64 string.
	return full[len(`b64"`) : len(full)-1]
}
