package types

// Keypair holds a private key and the public key derived from it.
//
// A Keypair is only built by generation or restoration, both of which derive
// PublicKey from PrivateKey. Values are never mutated after construction.
type Keypair struct {
	PrivateKey PrivateKey `json:"private_key"`
	PublicKey  PublicKey  `json:"public_key"`
}
