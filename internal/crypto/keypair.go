package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"keysigner/internal/domain"
)

// Generate returns a keypair drawn from the operating system's CSPRNG.
func Generate() domain.Keypair {
	var priv domain.PrivateKey
	// crypto/rand.Read never returns an error; it aborts the process if the
	// kernel source fails.
	_, _ = rand.Read(priv[:])
	return FromPrivate(priv)
}

// GenerateFrom returns a keypair whose private key is read from r.
// It fails only if r cannot supply 32 bytes.
func GenerateFrom(r io.Reader) (domain.Keypair, error) {
	var priv domain.PrivateKey
	if _, err := io.ReadFull(r, priv[:]); err != nil {
		return domain.Keypair{}, err
	}
	return FromPrivate(priv), nil
}

// FromPrivate builds a keypair from priv, deriving the public key.
func FromPrivate(priv domain.PrivateKey) domain.Keypair {
	return domain.Keypair{PrivateKey: priv, PublicKey: DerivePublic(priv)}
}

// DerivePublic returns SHA-256(priv).
func DerivePublic(priv domain.PrivateKey) domain.PublicKey {
	return sha256.Sum256(priv[:])
}
