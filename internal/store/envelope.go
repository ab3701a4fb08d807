package store

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"keysigner/internal/crypto"
	kserrors "keysigner/internal/errors"
)

const (
	// The current supported version of the sealed keypair format stored on disk.
	envelopeFormatVersion = 1
)

// envelope is the on-disk JSON structure holding a sealed keypair record and
// its KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// isEnvelope reports whether b is a JSON object shaped like an envelope:
// it carries "v", "salt" and "cipher" and no "private_key". A plain record
// with stray extra members is not an envelope.
func isEnvelope(b []byte) bool {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return false
	}
	if _, plain := members["private_key"]; plain {
		return false
	}
	for _, key := range []string{"v", "salt", "cipher"} {
		if _, ok := members[key]; !ok {
			return false
		}
	}
	return true
}

// seal encrypts a plaintext record into an envelope.
func seal(passphrase string, raw []byte, params crypto.ScryptParams) ([]byte, error) {
	salt, ct, err := crypto.SealSecret(passphrase, raw, params)
	if err != nil {
		return nil, kserrors.Mark(kserrors.ErrSerialization, err)
	}
	b, err := json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
	if err != nil {
		return nil, kserrors.Mark(kserrors.ErrSerialization, err)
	}
	return b, nil
}

// unseal opens an envelope and returns the plaintext record.
func unseal(passphrase string, b []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, kserrors.ErrPassphraseRequired
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, kserrors.Mark(kserrors.ErrDeserialization, err)
	}
	if env.V < 1 || env.V > envelopeFormatVersion {
		return nil, kserrors.Mark(kserrors.ErrDeserialization, fmt.Errorf("unsupported envelope version %d", env.V))
	}
	if len(env.Salt) != crypto.SaltBytes {
		return nil, kserrors.Mark(kserrors.ErrDeserialization, fmt.Errorf("salt: want %d bytes, got %d", crypto.SaltBytes, len(env.Salt)))
	}
	params := crypto.ScryptParams{N: env.N, R: env.R, P: env.P}
	if err := params.Validate(); err != nil {
		return nil, kserrors.Mark(kserrors.ErrDeserialization, err)
	}
	pt, err := crypto.OpenSecret(passphrase, env.Salt, env.Cipher, params)
	if stderrors.Is(err, crypto.ErrOpen) {
		return nil, kserrors.ErrWrongPassphrase
	}
	if err != nil {
		return nil, kserrors.Mark(kserrors.ErrDeserialization, err)
	}
	return pt, nil
}
