package keypair

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"

	"keysigner/internal/crypto"
	"keysigner/internal/domain"
	kserrors "keysigner/internal/errors"
)

// Service manages keypair creation, persistence and tagging.
type Service struct {
	store      domain.KeypairStore
	random     io.Reader
	passphrase string
	log        zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRandom sets the entropy source used by Generate. Tests pass a seeded
// reader to get reproducible keys.
func WithRandom(r io.Reader) Option {
	return func(s *Service) { s.random = r }
}

// WithPassphrase seals saved keypairs and opens sealed ones.
func WithPassphrase(p string) Option {
	return func(s *Service) { s.passphrase = p }
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a keypair service backed by the given store.
func New(st domain.KeypairStore, opts ...Option) *Service {
	s := &Service{store: st, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns a fresh keypair. With no injected source it draws from
// crypto/rand and cannot fail.
func (s *Service) Generate() domain.Keypair {
	if s.random == nil || s.random == rand.Reader {
		kp := crypto.Generate()
		s.logGenerated(kp)
		return kp
	}
	kp, err := crypto.GenerateFrom(s.random)
	if err != nil {
		// An injected source that runs dry is a programming error in the caller.
		panic(kserrors.Wrap(err, "reading injected random source"))
	}
	s.logGenerated(kp)
	return kp
}

// Restore reads the keypair stored at path and re-derives its public key.
func (s *Service) Restore(path string) (domain.Keypair, error) {
	if path == "" {
		return domain.Keypair{}, kserrors.Wrap(kserrors.Mark(kserrors.ErrIO, kserrors.ErrEmptyValue), "keypair path")
	}
	return s.store.LoadKeypair(path, s.passphrase)
}

// Save writes keypair to path, replacing any existing file.
func (s *Service) Save(keypair domain.Keypair, path string) error {
	if path == "" {
		return kserrors.Wrap(kserrors.Mark(kserrors.ErrIO, kserrors.ErrEmptyValue), "keypair path")
	}
	return s.store.SaveKeypair(path, keypair, s.passphrase)
}

// Sign returns the tag of message under keypair's private key.
func (s *Service) Sign(keypair domain.Keypair, message []byte) domain.Tag {
	return crypto.Sign(keypair.PrivateKey, message)
}

// Verify reports whether tag is the tag of message under keypair.
// It never fails; malformed tags are simply false.
func (s *Service) Verify(keypair domain.Keypair, message, tag []byte) bool {
	ok := crypto.Verify(keypair.PrivateKey, message, tag)
	s.log.Debug().
		Str("fingerprint", s.Fingerprint(keypair).String()).
		Int("message_len", len(message)).
		Bool("valid", ok).
		Msg("tag verified")
	return ok
}

// Fingerprint returns a short display identifier for keypair.
func (s *Service) Fingerprint(keypair domain.Keypair) domain.Fingerprint {
	return crypto.Fingerprint(keypair.PublicKey)
}

func (s *Service) logGenerated(kp domain.Keypair) {
	s.log.Debug().Str("fingerprint", s.Fingerprint(kp).String()).Msg("keypair generated")
}

// Compile-time assertions that Service implements both roles.
var (
	_ domain.KeypairGenerator = (*Service)(nil)
	_ domain.Authenticator    = (*Service)(nil)
)
