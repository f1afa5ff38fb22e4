// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !amd64 || purego

package chacha

// useVector is always false when there is no vectorized implementation.
const useVector = false

const vectorName = ""

// blocksVector is never used without a vectorized implementation.
func blocksVector(out *[BufferSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64, rounds int) {
	blocksGeneric(out, key, nonce, counter, rounds)
}
