package types

// KeySize is the length in bytes of every private key, public key and tag.
const KeySize = 32

// PrivateKey is the 32-byte secret that keys the tag function.
type PrivateKey [KeySize]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// PublicKey is SHA-256 of the private key. It identifies a keypair but is not
// used to verify tags.
type PublicKey [KeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Tag is the keyed hash SHA-256(message || private key).
type Tag [KeySize]byte

// Slice returns the tag as a []byte.
func (t Tag) Slice() []byte { return t[:] }
