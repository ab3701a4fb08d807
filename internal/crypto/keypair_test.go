package crypto_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keysigner/internal/crypto"
	"keysigner/internal/domain"
)

// seqKey is the private key 0x00, 0x01, ..., 0x1f.
func seqKey() domain.PrivateKey {
	var k domain.PrivateKey
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func seeded(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func TestGenerate_PublicIsHashOfPrivate(t *testing.T) {
	for range 8 {
		kp := crypto.Generate()
		assert.Equal(t, domain.PublicKey(sha256.Sum256(kp.PrivateKey[:])), kp.PublicKey)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	a, b := crypto.Generate(), crypto.Generate()
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
}

func TestGenerateFrom_SeededIsDeterministic(t *testing.T) {
	a, err := crypto.GenerateFrom(seeded(7))
	require.NoError(t, err)
	b, err := crypto.GenerateFrom(seeded(7))
	require.NoError(t, err)
	c, err := crypto.GenerateFrom(seeded(8))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.PrivateKey, c.PrivateKey)
	assert.Equal(t, crypto.DerivePublic(a.PrivateKey), a.PublicKey)
}

func TestGenerateFrom_ShortReader(t *testing.T) {
	_, err := crypto.GenerateFrom(bytes.NewReader(make([]byte, 31)))
	require.Error(t, err)
}

func TestDerivePublic_KnownAnswer(t *testing.T) {
	pub := crypto.DerivePublic(seqKey())
	assert.Equal(t, "630dcd2966c4336691125448bbb25b4ff412a49c732db2c8abc1b8581bd710dd", hex.EncodeToString(pub[:]))
}

func TestFingerprint(t *testing.T) {
	kp := crypto.FromPrivate(seqKey())
	fp := crypto.Fingerprint(kp.PublicKey)
	assert.Equal(t, domain.Fingerprint("2f287b4d3d4910f6cada"), fp)
	assert.Len(t, fp.String(), 20)
}
