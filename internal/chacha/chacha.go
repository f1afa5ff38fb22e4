// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chacha provides the ChaCha keystream block functions used by the
// secure generator.
//
// Each call produces four consecutive 64-byte blocks.  The ChaCha8 function
// uses the original layout with a 64-bit block counter and a 64-bit nonce and
// has a portable pure Go implementation along with a vectorized
// implementation that is selected when the build and the executing hardware
// support it.  All implementations produce identical output.
//
// The ChaCha20 function uses the IETF layout (RFC 8439) with a 32-bit block
// counter and a 96-bit nonce.
package chacha

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

const (
	// KeySize is the size of a ChaCha key in bytes.
	KeySize = 32

	// NonceSize is the size of the nonce for the original ChaCha layout.
	NonceSize = 8

	// IETFNonceSize is the size of the nonce for the IETF ChaCha layout.
	IETFNonceSize = chacha20.NonceSize

	// BlockSize is the size of a single keystream block in bytes.
	BlockSize = 64

	// BlocksPerBuffer is the number of blocks produced per call.
	BlocksPerBuffer = 4

	// BufferSize is the number of keystream bytes produced per call.
	BufferSize = BlockSize * BlocksPerBuffer
)

// "expand 32-byte k"
const (
	sigma0 = 0x61707865
	sigma1 = 0x3320646e
	sigma2 = 0x79622d32
	sigma3 = 0x6b206574
)

// ChaCha8 fills out with the four ChaCha8 keystream blocks that start at the
// provided block counter.  The caller must ensure the counter does not wrap
// within the four blocks.
func ChaCha8(out *[BufferSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64) {
	if useVector {
		blocksVector(out, key, nonce, counter, 8)
		return
	}
	blocksGeneric(out, key, nonce, counter, 8)
}

// ChaCha20 fills out with the four IETF ChaCha20 keystream blocks that start
// at the provided block counter.  The caller must ensure the counter does not
// exceed 2^32 - 4.
func ChaCha20(out *[BufferSize]byte, key *[KeySize]byte, nonce *[IETFNonceSize]byte, counter uint32) {
	// Never errors with correct key and nonce sizes.
	c, _ := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	c.SetCounter(counter)
	*out = [BufferSize]byte{}
	c.XORKeyStream(out[:], out[:])
}

// Implementation returns a short description of the ChaCha8 implementation in
// use.
func Implementation() string {
	if useVector {
		return vectorName
	}
	return "pure Go"
}

// quarterRound performs the ChaCha quarter round on the four words.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)

	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// block writes the keystream block for the 16 word input state to out, which
// must be at least BlockSize bytes.
func block(out []byte, in *[16]uint32, rounds int) {
	x0, x1, x2, x3 := in[0], in[1], in[2], in[3]
	x4, x5, x6, x7 := in[4], in[5], in[6], in[7]
	x8, x9, x10, x11 := in[8], in[9], in[10], in[11]
	x12, x13, x14, x15 := in[12], in[13], in[14], in[15]

	for i := 0; i < rounds; i += 2 {
		// Column round.
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round.
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	_ = out[BlockSize-1]
	binary.LittleEndian.PutUint32(out[0:], x0+in[0])
	binary.LittleEndian.PutUint32(out[4:], x1+in[1])
	binary.LittleEndian.PutUint32(out[8:], x2+in[2])
	binary.LittleEndian.PutUint32(out[12:], x3+in[3])
	binary.LittleEndian.PutUint32(out[16:], x4+in[4])
	binary.LittleEndian.PutUint32(out[20:], x5+in[5])
	binary.LittleEndian.PutUint32(out[24:], x6+in[6])
	binary.LittleEndian.PutUint32(out[28:], x7+in[7])
	binary.LittleEndian.PutUint32(out[32:], x8+in[8])
	binary.LittleEndian.PutUint32(out[36:], x9+in[9])
	binary.LittleEndian.PutUint32(out[40:], x10+in[10])
	binary.LittleEndian.PutUint32(out[44:], x11+in[11])
	binary.LittleEndian.PutUint32(out[48:], x12+in[12])
	binary.LittleEndian.PutUint32(out[52:], x13+in[13])
	binary.LittleEndian.PutUint32(out[56:], x14+in[14])
	binary.LittleEndian.PutUint32(out[60:], x15+in[15])
}

// blocksGeneric is the pure Go implementation of the original layout block
// function for the given number of rounds.
func blocksGeneric(out *[BufferSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64, rounds int) {
	state := [16]uint32{
		sigma0, sigma1, sigma2, sigma3,
		binary.LittleEndian.Uint32(key[0:]),
		binary.LittleEndian.Uint32(key[4:]),
		binary.LittleEndian.Uint32(key[8:]),
		binary.LittleEndian.Uint32(key[12:]),
		binary.LittleEndian.Uint32(key[16:]),
		binary.LittleEndian.Uint32(key[20:]),
		binary.LittleEndian.Uint32(key[24:]),
		binary.LittleEndian.Uint32(key[28:]),
		0, 0,
		binary.LittleEndian.Uint32(nonce[0:]),
		binary.LittleEndian.Uint32(nonce[4:]),
	}
	for i := 0; i < BlocksPerBuffer; i++ {
		ctr := counter + uint64(i)
		state[12] = uint32(ctr)
		state[13] = uint32(ctr >> 32)
		block(out[i*BlockSize:], &state, rounds)
	}
}
