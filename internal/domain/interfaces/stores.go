package interfaces

import domaintypes "keysigner/internal/domain/types"

// KeypairStore persists keypairs at caller-chosen paths.
//
// An empty passphrase stores the plain JSON record; a non-empty one seals it.
type KeypairStore interface {
	SaveKeypair(path string, keypair domaintypes.Keypair, passphrase string) error
	LoadKeypair(path, passphrase string) (domaintypes.Keypair, error)
}
