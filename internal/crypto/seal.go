package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// SaltBytes is the scrypt salt length used when sealing.
	SaltBytes = 16
)

// ErrOpen is returned when sealed data fails authentication.
var ErrOpen = errors.New("message authentication failed")

// ScryptParams are the cost parameters stored next to a sealed secret.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams are the tunables for new seals.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// Upper bounds for parameters read back from disk. scrypt needs 128*N*r bytes.
const (
	maxScryptN      = 1 << 20
	maxScryptR      = 32
	maxScryptP      = 16
	maxScryptMemory = 1 << 28
)

// ErrScryptParams is returned for cost parameters outside the accepted range.
var ErrScryptParams = errors.New("scrypt parameters out of range")

// Validate rejects parameters that scrypt would refuse, or that would cost
// more than 256 MiB of memory.
func (p ScryptParams) Validate() error {
	switch {
	case p.N < 2 || p.N > maxScryptN || p.N&(p.N-1) != 0:
		return fmt.Errorf("%w: N=%d", ErrScryptParams, p.N)
	case p.R < 1 || p.R > maxScryptR:
		return fmt.Errorf("%w: r=%d", ErrScryptParams, p.R)
	case p.P < 1 || p.P > maxScryptP:
		return fmt.Errorf("%w: p=%d", ErrScryptParams, p.P)
	case 128*p.N*p.R > maxScryptMemory:
		return fmt.Errorf("%w: N=%d r=%d needs too much memory", ErrScryptParams, p.N, p.R)
	}
	return nil
}

// SealSecret derives a key from passphrase and a fresh salt, then encrypts
// plaintext with ChaCha20-Poly1305 using the salt as associated data.
// The nonce is zero: every seal uses a fresh salt and therefore a fresh key.
func SealSecret(passphrase string, plaintext []byte, params ScryptParams) (salt, ciphertext []byte, err error) {
	salt = make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	aead, err := newAEAD(passphrase, salt, params)
	if err != nil {
		return nil, nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	return salt, aead.Seal(nil, nonce[:], plaintext, salt), nil
}

// OpenSecret reverses SealSecret. It returns ErrOpen when the passphrase is
// wrong or the ciphertext was modified.
func OpenSecret(passphrase string, salt, ciphertext []byte, params ScryptParams) ([]byte, error) {
	aead, err := newAEAD(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], ciphertext, salt)
	if err != nil {
		return nil, ErrOpen
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, params ScryptParams) (cipher.AEAD, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)
	return chacha20poly1305.New(key)
}
