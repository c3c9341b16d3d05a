// Package fingerprint implements GLYPH's equality and hashing contract,
// built atop canonicalization: "canonicalize, then SHA-256, then hex".
// The hash width is 16 lowercase hex characters — the C reference's own
// header comment promises a SHA-256-based digest while its .c file ships
// only a disclaimed placeholder hash, so this follows the documented
// intent rather than the placeholder.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/neumenon/glyph/internal/canon"
	"github.com/neumenon/glyph/internal/value"
)

const hashHexLen = 16

// Fingerprint returns v's canonical form under default options. This is
// the same string Equal and Hash operate on.
func Fingerprint(v *value.Value) string {
	return canon.Encode(v, canon.Default())
}

// Hash returns a fixed-width, lowercase hex digest of v's fingerprint:
// SHA-256 truncated to 16 hex characters. Same value ⇒ same hash, and
// collisions are exactly as likely as the first 64 bits of SHA-256 of
// the canonical bytes.
func Hash(v *value.Value) string {
	sum := sha256.Sum256([]byte(Fingerprint(v)))
	return hex.EncodeToString(sum[:])[:hashHexLen]
}

// Equal reports whether a and b have byte-equal fingerprints.
func Equal(a, b *value.Value) bool {
	return Fingerprint(a) == Fingerprint(b)
}
