// Package jsonbridge implements the GLYPH JSON bridge: a recursive-descent
// JSON parser producing Values, and a Value → JSON serializer.
//
// The parser walks a direct byte cursor rather than using
// encoding/json.Decoder, because this bridge must distinguish Int from
// Float by literal form (absence of '.', 'e', 'E') — a distinction
// encoding/json's default decoding erases.
package jsonbridge

import (
	"strconv"
	"unicode/utf8"

	"github.com/neumenon/glyph/internal/value"
)

type parser struct {
	data []byte
	pos  int
}

// Parse parses a JSON document into a Value. It returns (nil, false) on
// any structural error — no partial tree is returned. Whitespace between
// tokens is ignored; trailing input after a complete value is ignored
// (permissive).
func Parse(data []byte) (*value.Value, bool) {
	p := &parser{data: data}
	v, ok := p.parseValue()
	if !ok {
		return nil, false
	}
	return v, true
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return 0, false
	}
	return p.data[p.pos], true
}

func (p *parser) consumeLiteral(lit string) bool {
	p.skipWhitespace()
	if p.pos+len(lit) > len(p.data) {
		return false
	}
	if string(p.data[p.pos:p.pos+len(lit)]) != lit {
		return false
	}
	p.pos += len(lit)
	return true
}

func (p *parser) parseValue() (*value.Value, bool) {
	c, ok := p.peek()
	if !ok {
		return nil, false
	}
	switch {
	case c == 'n':
		if p.consumeLiteral("null") {
			return value.Null(), true
		}
		return nil, false
	case c == 't':
		if p.consumeLiteral("true") {
			return value.Bool(true), true
		}
		return nil, false
	case c == 'f':
		if p.consumeLiteral("false") {
			return value.Bool(false), true
		}
		return nil, false
	case c == '"':
		s, ok := p.parseString()
		if !ok {
			return nil, false
		}
		return value.Str(s), true
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, false
	}
}

func (p *parser) parseArray() (*value.Value, bool) {
	p.pos++ // consume '['
	list := value.List()

	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return list, true
	}

	for {
		item, ok := p.parseValue()
		if !ok {
			return nil, false
		}
		value.ListAppend(list, item)

		c, ok := p.peek()
		if !ok {
			return nil, false
		}
		if c == ']' {
			p.pos++
			return list, true
		}
		if c != ',' {
			return nil, false
		}
		p.pos++
	}
}

func (p *parser) parseObject() (*value.Value, bool) {
	p.pos++ // consume '{'
	m := value.Map()

	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return m, true
	}

	for {
		c, ok := p.peek()
		if !ok || c != '"' {
			return nil, false
		}
		key, ok := p.parseString()
		if !ok {
			return nil, false
		}

		c, ok = p.peek()
		if !ok || c != ':' {
			return nil, false
		}
		p.pos++

		val, ok := p.parseValue()
		if !ok {
			return nil, false
		}
		value.MapSet(m, key, val)

		c, ok = p.peek()
		if !ok {
			return nil, false
		}
		if c == '}' {
			p.pos++
			return m, true
		}
		if c != ',' {
			return nil, false
		}
		p.pos++
	}
}

func (p *parser) parseNumber() (*value.Value, bool) {
	p.skipWhitespace()
	start := p.pos
	isFloat := false

	if p.pos < len(p.data) && p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		isFloat = true
		p.pos++
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		isFloat = true
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}

	if p.pos == start {
		return nil, false
	}
	lit := string(p.data[start:p.pos])

	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, false
		}
		return value.Float(f), true
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, false
	}
	return value.Int(n), true
}

// parseString parses a JSON string literal (the cursor must be at the
// opening quote) and returns its decoded contents. \uXXXX surrogate
// pairs are combined into their astral code point when both halves are
// present and well-formed; a lone high surrogate encodes as U+FFFD —
// see SPEC_FULL.md §9 for why this differs slightly (for the better)
// from the reference C implementation, which never combines pairs.
func (p *parser) parseString() (string, bool) {
	if p.pos >= len(p.data) || p.data[p.pos] != '"' {
		return "", false
	}
	p.pos++

	var buf []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '"' {
			p.pos++
			return string(buf), true
		}
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.data) {
				return "", false
			}
			esc := p.data[p.pos]
			switch esc {
			case '"':
				buf = append(buf, '"')
				p.pos++
			case '\\':
				buf = append(buf, '\\')
				p.pos++
			case '/':
				buf = append(buf, '/')
				p.pos++
			case 'n':
				buf = append(buf, '\n')
				p.pos++
			case 'r':
				buf = append(buf, '\r')
				p.pos++
			case 't':
				buf = append(buf, '\t')
				p.pos++
			case 'b':
				buf = append(buf, '\b')
				p.pos++
			case 'f':
				buf = append(buf, '\f')
				p.pos++
			case 'u':
				p.pos++
				r, ok := p.parseHex4()
				if !ok {
					return "", false
				}
				if isHighSurrogate(r) && p.peekUnicodeEscape() {
					save := p.pos
					p.pos += 2 // consume "\u" before the low-surrogate hex digits
					lo, ok := p.parseHex4()
					if ok && isLowSurrogate(lo) {
						combined := utf16Decode(r, lo)
						buf = utf8.AppendRune(buf, combined)
						continue
					}
					p.pos = save
				}
				if isHighSurrogate(r) || isLowSurrogate(r) {
					buf = utf8.AppendRune(buf, utf8.RuneError)
				} else {
					buf = utf8.AppendRune(buf, rune(r))
				}
			default:
				return "", false
			}
			continue
		}
		buf = append(buf, c)
		p.pos++
	}
	return "", false
}

func (p *parser) parseHex4() (rune, bool) {
	if p.pos+4 > len(p.data) {
		return 0, false
	}
	n, err := strconv.ParseUint(string(p.data[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	p.pos += 4
	return rune(n), true
}

func (p *parser) peekUnicodeEscape() bool {
	return p.pos+1 < len(p.data) && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u'
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func utf16Decode(hi, lo rune) rune {
	return ((hi - 0xD800) << 10) + (lo - 0xDC00) + 0x10000
}
