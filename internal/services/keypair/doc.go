// Package keypair is the core facade called by the CLI.
//
// Service generates, saves and restores keypairs through a
// domain.KeypairStore, and computes and checks tags. It implements both
// domain.KeypairGenerator and domain.Authenticator.
//
// The tag is a keyed hash of the message and the private key. It is not a
// public-key signature: verification needs the private key, and the public key
// only identifies the keypair.
package keypair
