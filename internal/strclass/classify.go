// Package strclass implements the GLYPH string classifier: the
// bareword-vs-quoted decision and the corresponding escape rules.
package strclass

import (
	"fmt"
	"strings"
)

var reserved = map[string]bool{
	"t": true, "f": true, "true": true, "false": true, "null": true, "_": true,
}

// IsBareSafe reports whether s can be emitted unquoted under the
// general (non-Id) bareword rule.
func IsBareSafe(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if (first >= '0' && first <= '9') || first == '"' || first == '\'' || first == '-' {
		return false
	}
	if reserved[s] {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !bareByte(s[i]) {
			return false
		}
	}
	return true
}

func bareByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.' || c == '/' || c == '@' || c == ':':
		return true
	case c > 0x7F:
		return true
	default:
		return false
	}
}

// IsIdBareSafe reports whether s can be emitted unquoted as the value
// portion of a reference Id. Unlike IsBareSafe, '/', '@', ':' are not
// permitted and there is no reserved-word carve-out.
func IsIdBareSafe(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.':
		case c > 0x7F:
		default:
			return false
		}
	}
	return true
}

// Quote returns s wrapped in double quotes with JSON-style escapes for
// '\\', '"', and control characters (\n, \r, \t get two-char escapes;
// other bytes < 0x20 get \uXXXX). All other bytes, including UTF-8
// continuation bytes, pass through unchanged.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Canon returns the canonical form of s: bare if IsBareSafe, quoted
// otherwise.
func Canon(s string) string {
	if IsBareSafe(s) {
		return s
	}
	return Quote(s)
}

// CanonId returns the canonical form of s for use as an Id value: bare
// (under the stricter Id rule) if IsIdBareSafe, quoted otherwise.
func CanonId(s string) string {
	if IsIdBareSafe(s) {
		return s
	}
	return Quote(s)
}
