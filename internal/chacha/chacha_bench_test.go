// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chacha

import (
	"testing"
)

// BenchmarkChaCha8 benchmarks how long it takes to produce four ChaCha8
// keystream blocks with the selected implementation.
func BenchmarkChaCha8(b *testing.B) {
	var out [BufferSize]byte
	var key [KeySize]byte
	var nonce [NonceSize]byte

	b.SetBytes(BufferSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ChaCha8(&out, &key, &nonce, uint64(i)*BlocksPerBuffer)
	}
}

// BenchmarkChaCha8Generic benchmarks how long it takes to produce four ChaCha8
// keystream blocks with the pure Go implementation.
func BenchmarkChaCha8Generic(b *testing.B) {
	var out [BufferSize]byte
	var key [KeySize]byte
	var nonce [NonceSize]byte

	b.SetBytes(BufferSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blocksGeneric(&out, &key, &nonce, uint64(i)*BlocksPerBuffer, 8)
	}
}

// BenchmarkChaCha20 benchmarks how long it takes to produce four IETF ChaCha20
// keystream blocks.
func BenchmarkChaCha20(b *testing.B) {
	var out [BufferSize]byte
	var key [KeySize]byte
	var nonce [IETFNonceSize]byte

	b.SetBytes(BufferSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ChaCha20(&out, &key, &nonce, uint32(i)*BlocksPerBuffer)
	}
}
