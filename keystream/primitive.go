// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystream

import (
	"math"

	"github.com/decred/dualrand/internal/chacha"
)

const (
	// KeySize is the size of a generator key in bytes.
	KeySize = chacha.KeySize

	// MaxNonceSize is the largest nonce size of any supported primitive.
	MaxNonceSize = chacha.IETFNonceSize

	// BlockSize is the size of a single keystream block in bytes.
	BlockSize = chacha.BlockSize

	// BlocksPerBuffer is the number of blocks produced by each refill.
	BlocksPerBuffer = chacha.BlocksPerBuffer

	// BufferSize is the number of keystream bytes produced by each refill.
	BufferSize = chacha.BufferSize
)

// Primitive is a keyed block function that produces BlocksPerBuffer
// consecutive keystream blocks for a block counter.
type Primitive interface {
	// String returns the name of the primitive.
	String() string

	// NonceSize returns the nonce size in bytes.
	NonceSize() int

	// MaxCounter returns the largest usable block counter.
	MaxCounter() uint64

	// Blocks fills out with the keystream blocks starting at counter.  The
	// nonce is exactly NonceSize bytes and counter+BlocksPerBuffer-1 never
	// exceeds MaxCounter.
	Blocks(out *[BufferSize]byte, key *[KeySize]byte, nonce []byte, counter uint64)
}

// chaCha8 is ChaCha with 8 rounds in the original layout with a 64-bit block
// counter and a 64-bit nonce.
type chaCha8 struct{}

func (chaCha8) String() string     { return "ChaCha8" }
func (chaCha8) NonceSize() int     { return chacha.NonceSize }
func (chaCha8) MaxCounter() uint64 { return math.MaxUint64 }

func (chaCha8) Blocks(out *[BufferSize]byte, key *[KeySize]byte, nonce []byte, counter uint64) {
	chacha.ChaCha8(out, key, (*[chacha.NonceSize]byte)(nonce), counter)
}

// chaCha20 is ChaCha with 20 rounds in the IETF layout with a 32-bit block
// counter and a 96-bit nonce.
type chaCha20 struct{}

func (chaCha20) String() string     { return "ChaCha20" }
func (chaCha20) NonceSize() int     { return chacha.IETFNonceSize }
func (chaCha20) MaxCounter() uint64 { return math.MaxUint32 }

func (chaCha20) Blocks(out *[BufferSize]byte, key *[KeySize]byte, nonce []byte, counter uint64) {
	chacha.ChaCha20(out, key, (*[chacha.IETFNonceSize]byte)(nonce), uint32(counter))
}

var (
	// ChaCha8 is the default primitive.  It is the fastest of the supported
	// primitives and may practically never exhaust its counter.
	ChaCha8 Primitive = chaCha8{}

	// ChaCha20 is the IETF ChaCha20 primitive from RFC 8439.  Its 32-bit
	// block counter limits a single key and nonce to 256 GiB of keystream.
	ChaCha20 Primitive = chaCha20{}
)

// Implementation returns a short description of the ChaCha8 block function
// implementation in use.
func Implementation() string {
	return chacha.Implementation()
}
