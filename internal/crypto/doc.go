// Package crypto exposes the primitives behind keysigner.
//
// Contents
//
//   - Keypair generation and public-key derivation (Generate, GenerateFrom,
//     FromPrivate, DerivePublic)
//   - Tag computation and checking (Sign, Verify)
//   - Passphrase sealing for keypair files (SealSecret, OpenSecret)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Sign is not a digital signature. The tag is SHA-256(message || private key),
// a keyed hash that only a holder of the private key can produce or check. The
// public key is SHA-256(private key) and takes no part in verification.
// It follows that the tag of the empty message equals the public key.
package crypto
