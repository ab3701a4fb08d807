package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"keysigner/internal/domain"
	kserrors "keysigner/internal/errors"
)

// record is the decode-side view of a keypair file. Byte arrays are read as
// plain ints so length and range can be checked before they are trusted.
type record struct {
	PrivateKey []int           `json:"private_key"`
	PublicKey  json.RawMessage `json:"public_key,omitempty"`
}

// encodeKeypair renders kp as the compact JSON record.
func encodeKeypair(kp domain.Keypair) ([]byte, error) {
	b, err := json.Marshal(kp)
	if err != nil {
		return nil, kserrors.Mark(kserrors.ErrSerialization, err)
	}
	return b, nil
}

// decodeRecord parses a JSON record into a private key and the raw stored
// public key (nil when absent).
func decodeRecord(b []byte) (domain.PrivateKey, json.RawMessage, error) {
	var priv domain.PrivateKey
	var rec record
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&rec); err != nil {
		return priv, nil, kserrors.Mark(kserrors.ErrDeserialization, err)
	}
	if dec.More() {
		return priv, nil, kserrors.Mark(kserrors.ErrDeserialization, kserrors.New("trailing data after record"))
	}
	if len(rec.PrivateKey) != domain.KeySize {
		return priv, nil, kserrors.Mark(kserrors.ErrDeserialization,
			fmt.Errorf("private_key: want %d bytes, got %d", domain.KeySize, len(rec.PrivateKey)))
	}
	for i, v := range rec.PrivateKey {
		if v < 0 || v > 0xff {
			return priv, nil, kserrors.Mark(kserrors.ErrDeserialization,
				fmt.Errorf("private_key[%d]: %d is not a byte", i, v))
		}
		priv[i] = byte(v)
	}
	clear(rec.PrivateKey)
	return priv, rec.PublicKey, nil
}

// storedPublicMatches reports whether raw decodes to want. Any shape problem
// counts as a mismatch.
func storedPublicMatches(raw json.RawMessage, want domain.PublicKey) bool {
	var got []int
	if err := json.Unmarshal(raw, &got); err != nil || len(got) != domain.KeySize {
		return false
	}
	for i, v := range got {
		if v != int(want[i]) {
			return false
		}
	}
	return true
}
