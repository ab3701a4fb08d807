// Package commands defines the keysigner CLI and wires dependencies for subcommands.
//
// # Root command
//
// Without a subcommand keysigner runs in one-shot mode: it
// restores a keypair from --load-keypair or generates one, saves it when
// --save is given, and signs --message, or verifies it against
// --verify-signature.
//
// Commands
//
//   - keygen       Generate a keypair and save it
//   - fingerprint  Print the fingerprint and public key of a keypair
//   - sign         Print the tag of a message
//   - verify       Check a hex tag against a message
//
// # Signatures
//
// A "signature" here is SHA-256(message || private key). Only holders of the
// keypair file can create or check one; the public key cannot.
package commands
