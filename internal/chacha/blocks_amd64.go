// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build amd64 && !purego

package chacha

import (
	"math"

	aead "github.com/aead/chacha20/chacha"
	"golang.org/x/sys/cpu"
)

// These flags are set at package init and determine whether the vectorized
// block function is used.  The aead package selects its own kernel for the
// host.  useVector is a variable so the tests can force the pure Go
// implementation.
var (
	hasSSSE3 = cpu.X86.HasSSSE3
	hasAVX2  = cpu.X86.HasAVX2

	useVector = hasSSSE3 || hasAVX2
)

// vectorName describes the vectorized implementation.
const vectorName = "aead vector"

// blocksVector produces the same output as blocksGeneric by way of the
// assembly implementations provided by the aead ChaCha package.
//
// The aead cipher refuses to produce the final buffer before the counter
// wraps, so that buffer comes from the pure Go implementation.
func blocksVector(out *[BufferSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64, rounds int) {
	if counter > math.MaxUint64-BlocksPerBuffer {
		blocksGeneric(out, key, nonce, counter, rounds)
		return
	}

	// Never errors with correct key and nonce sizes and a supported number
	// of rounds.
	c, err := aead.NewCipher(nonce[:], key[:], rounds)
	if err != nil {
		panic(err)
	}
	c.SetCounter(counter)
	*out = [BufferSize]byte{}
	c.XORKeyStream(out[:], out[:])
}
