package interfaces

import domaintypes "keysigner/internal/domain/types"

// KeypairGenerator creates, persists and restores keypairs.
type KeypairGenerator interface {
	Generate() domaintypes.Keypair
	Restore(path string) (domaintypes.Keypair, error)
	Save(keypair domaintypes.Keypair, path string) error
}

// Authenticator computes and checks tags over messages.
//
// Tags are keyed by the private key only. Anyone holding the private key can
// produce or check them, and the public key cannot verify anything.
type Authenticator interface {
	Sign(keypair domaintypes.Keypair, message []byte) domaintypes.Tag
	Verify(keypair domaintypes.Keypair, message, tag []byte) bool
}
