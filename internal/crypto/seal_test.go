package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keysigner/internal/crypto"
)

// cheap parameters keep the tests fast.
var testParams = crypto.ScryptParams{N: 1 << 10, R: 8, P: 1}

func TestSealOpen_RoundTrip(t *testing.T) {
	salt, ct, err := crypto.SealSecret("correct horse", []byte("payload"), testParams)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltBytes)

	pt, err := crypto.OpenSecret("correct horse", salt, ct, testParams)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), pt)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	salt, ct, err := crypto.SealSecret("correct horse", []byte("payload"), testParams)
	require.NoError(t, err)

	_, err = crypto.OpenSecret("battery staple", salt, ct, testParams)
	require.ErrorIs(t, err, crypto.ErrOpen)
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	salt, ct, err := crypto.SealSecret("pw", []byte("payload"), testParams)
	require.NoError(t, err)
	ct[0] ^= 0xff

	_, err = crypto.OpenSecret("pw", salt, ct, testParams)
	require.ErrorIs(t, err, crypto.ErrOpen)
}

func TestScryptParams_Validate(t *testing.T) {
	require.NoError(t, crypto.DefaultScryptParams().Validate())
	require.NoError(t, testParams.Validate())

	bad := []crypto.ScryptParams{
		{N: 1 << 40, R: 8, P: 1},
		{N: 3, R: 8, P: 1},
		{N: 1, R: 8, P: 1},
		{N: 1 << 10, R: 0, P: 1},
		{N: 1 << 10, R: 33, P: 1},
		{N: 1 << 10, R: 8, P: 0},
		{N: 1 << 10, R: 8, P: 17},
		{N: 1 << 20, R: 8, P: 1},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), crypto.ErrScryptParams, "%+v", p)
	}
}

func TestOpen_RejectsParamsBeforeDerivingKey(t *testing.T) {
	salt, ct, err := crypto.SealSecret("pw", []byte("payload"), testParams)
	require.NoError(t, err)

	_, err = crypto.OpenSecret("pw", salt, ct, crypto.ScryptParams{N: 1 << 40, R: 8, P: 1})
	require.ErrorIs(t, err, crypto.ErrScryptParams)
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	k := seqKey()
	crypto.WipePrivate(&k)
	assert.Equal(t, [32]byte{}, [32]byte(k))
}
