// Package scalarfmt implements the GLYPH Bytes and Time canonical
// formatters.
package scalarfmt

import "encoding/base64"

// Bytes renders buf as b64"<standard-base64-body>", with '=' padding to
// a multiple of four output characters. Empty input produces b64"".
func Bytes(buf []byte) string {
	return `b64"` + base64.StdEncoding.EncodeToString(buf) + `"`
}
