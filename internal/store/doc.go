// Package store provides file-based persistence for keypairs.
//
// KeypairFileStore implements domain.KeypairStore. A keypair file is a JSON
// record
//
//	{"private_key":[32 numbers],"public_key":[32 numbers]}
//
// or, when a passphrase is given, that record sealed inside a versioned
// scrypt + ChaCha20-Poly1305 envelope. On load the public key is always
// recomputed from the private key; the stored value is never trusted.
//
// Writes go through a temp file in the target directory and a rename, so a
// failed save leaves the previous file intact. Writes to the same path are
// serialised within a process; there is no cross-process locking.
package store
