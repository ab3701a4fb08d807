package crypto

import (
	"crypto/sha256"
	"crypto/subtle"

	"keysigner/internal/domain"
)

// Sign returns SHA-256(msg || priv). The same inputs always give the same tag.
func Sign(priv domain.PrivateKey, msg []byte) domain.Tag {
	h := sha256.New()
	h.Write(msg)
	h.Write(priv[:])
	var tag domain.Tag
	h.Sum(tag[:0])
	return tag
}

// Verify reports whether tag equals Sign(priv, msg). A tag of the wrong
// length is simply unequal.
func Verify(priv domain.PrivateKey, msg, tag []byte) bool {
	want := Sign(priv, msg)
	return subtle.ConstantTimeCompare(want[:], tag) == 1
}
