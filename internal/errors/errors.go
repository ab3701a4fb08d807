// Package errors provides the error taxonomy for keysigner.
//
// Every failure the core returns wraps exactly one of the sentinels below so
// callers can branch with errors.Is while still printing a readable message.
//
// This package must not import other internal packages.
package errors

import "errors"

var (
	// ErrIO indicates a read or write against a keypair location failed:
	// the file is missing, permission was denied or the path is invalid.
	ErrIO = errors.New("keypair io error")

	// ErrDeserialization indicates the bytes at a keypair location do not
	// decode into a record with a 32-byte private key.
	ErrDeserialization = errors.New("keypair deserialization error")

	// ErrSerialization indicates an in-memory keypair could not be encoded.
	ErrSerialization = errors.New("keypair serialization error")

	// ErrWrongPassphrase indicates a sealed keypair file could not be opened
	// with the supplied passphrase, or its ciphertext was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keypair")

	// ErrPassphraseRequired indicates a sealed keypair file was read without
	// a passphrase.
	ErrPassphraseRequired = errors.New("keypair file is encrypted; passphrase required")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an unknown output format was configured.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidSignature indicates a signature argument is not valid hex.
	ErrInvalidSignature = errors.New("invalid signature encoding")

	// ErrVerificationFailed indicates a tag did not match the message.
	ErrVerificationFailed = errors.New("signature verification failed")
)

// New returns an error that formats as the given text.
func New(text string) error { return errors.New(text) }
