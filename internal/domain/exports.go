package domain

import (
	interfaces "keysigner/internal/domain/interfaces"
	types "keysigner/internal/domain/types"
)

// KeySize is the length in bytes of keys and tags.
const KeySize = types.KeySize

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PrivateKey  = types.PrivateKey
	PublicKey   = types.PublicKey
	Tag         = types.Tag
	Keypair     = types.Keypair
	Fingerprint = types.Fingerprint
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeypairGenerator = interfaces.KeypairGenerator
	Authenticator    = interfaces.Authenticator
	KeypairStore     = interfaces.KeypairStore
)
