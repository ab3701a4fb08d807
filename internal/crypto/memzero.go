package crypto

import (
	"runtime"

	"keysigner/internal/domain"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}

// WipePrivate zeroes a private key held outside a Keypair, such as a
// decode scratch value.
func WipePrivate(k *domain.PrivateKey) {
	Wipe(k[:])
}
