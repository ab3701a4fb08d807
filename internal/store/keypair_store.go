package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"keysigner/internal/crypto"
	"keysigner/internal/domain"
	kserrors "keysigner/internal/errors"
)

const keypairFileMode os.FileMode = 0o600

// KeypairFileStore persists keypairs as JSON files at caller-chosen paths.
type KeypairFileStore struct {
	log    zerolog.Logger
	params crypto.ScryptParams

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures a KeypairFileStore.
type Option func(*KeypairFileStore)

// WithLogger sets the logger used for save/load events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *KeypairFileStore) { s.log = l }
}

// WithScryptParams overrides the KDF cost used when sealing new files.
func WithScryptParams(p crypto.ScryptParams) Option {
	return func(s *KeypairFileStore) { s.params = p }
}

// NewKeypairFileStore returns a store with a no-op logger and default scrypt
// parameters unless overridden.
func NewKeypairFileStore(opts ...Option) *KeypairFileStore {
	s := &KeypairFileStore{
		log:    zerolog.Nop(),
		params: crypto.DefaultScryptParams(),
		locks:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveKeypair writes kp to path, sealing it when passphrase is non-empty.
// Any existing file at path is replaced.
func (s *KeypairFileStore) SaveKeypair(path string, kp domain.Keypair, passphrase string) error {
	unlock := s.lockPath(path)
	defer unlock()

	raw, err := encodeKeypair(kp)
	if err != nil {
		return kserrors.Wrapf(err, "encoding keypair for %s", path)
	}
	defer crypto.Wipe(raw)

	out := raw
	if passphrase != "" {
		if out, err = seal(passphrase, raw, s.params); err != nil {
			return kserrors.Wrapf(err, "sealing keypair for %s", path)
		}
	}

	if err := writeFile(path, out, keypairFileMode); err != nil {
		return kserrors.Wrapf(kserrors.Mark(kserrors.ErrIO, err), "saving keypair to %s", path)
	}
	s.log.Debug().
		Str("path", path).
		Str("fingerprint", crypto.Fingerprint(kp.PublicKey).String()).
		Bool("sealed", passphrase != "").
		Msg("keypair saved")
	return nil
}

// LoadKeypair reads the keypair at path. The returned public key is always
// derived from the stored private key; a stored public key is ignored.
func (s *KeypairFileStore) LoadKeypair(path, passphrase string) (domain.Keypair, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Keypair{}, kserrors.Wrapf(kserrors.Mark(kserrors.ErrIO, err), "reading keypair from %s", path)
	}
	defer crypto.Wipe(b)

	sealed := isEnvelope(b)
	raw := b
	if sealed {
		if raw, err = unseal(passphrase, b); err != nil {
			return domain.Keypair{}, kserrors.Wrapf(err, "opening keypair %s", path)
		}
		defer crypto.Wipe(raw)
	}

	priv, storedPub, err := decodeRecord(raw)
	if err != nil {
		return domain.Keypair{}, kserrors.Wrapf(err, "decoding keypair %s", path)
	}
	kp := crypto.FromPrivate(priv)
	crypto.WipePrivate(&priv)

	fp := crypto.Fingerprint(kp.PublicKey).String()
	if storedPub != nil && !storedPublicMatches(storedPub, kp.PublicKey) {
		s.log.Warn().
			Str("path", path).
			Str("fingerprint", fp).
			Msg("stored public key does not match private key; using derived value")
	}
	s.log.Debug().
		Str("path", path).
		Str("fingerprint", fp).
		Bool("sealed", sealed).
		Msg("keypair restored")
	return kp, nil
}

// lockPath serialises writers to one location within this process.
func (s *KeypairFileStore) lockPath(path string) func() {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Compile-time assertion that KeypairFileStore implements domain.KeypairStore.
var _ domain.KeypairStore = (*KeypairFileStore)(nil)
