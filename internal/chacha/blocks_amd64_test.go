// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build amd64 && !purego

package chacha

import (
	"testing"
)

// TestBlocksAMD64 ensures the aead vector ChaCha8 implementation returns the
// same results as the pure Go implementation, including the final buffer
// before the 64-bit counter wraps.
//
// Note that the tests are skipped when the system executing them does not
// support the required instruction sets.
func TestBlocksAMD64(t *testing.T) {
	// NOTE: This is intentionally not made parallel because it modifies the
	// global feature flag to test both the pure Go and the aead vector
	// implementation.  The aead package picks its own kernel for the host.

	if !hasSSSE3 && !hasAVX2 {
		t.Skip("Skipping vector tests (no instruction set support)")
	}

	// Restore the feature flag after the tests complete.
	origUseVector := useVector
	defer func() { useVector = origUseVector }()

	for _, enabled := range []bool{false, true} {
		useVector = enabled
		t.Run(Implementation(), func(t *testing.T) {
			for i := range chacha8Vecs {
				test := &chacha8Vecs[i]
				var got [BufferSize]byte
				ChaCha8(&got, &test.key, &test.nonce, test.counter)
				if got != test.want {
					t.Fatalf("%q: unexpected keystream -- got %x, want %x",
						test.name, got, test.want)
				}
			}
		})
	}

	// Ensure both implementations agree across ranges of counters that
	// include the 32-bit boundary and the end of the 64-bit counter.
	var key [KeySize]byte
	var nonce [NonceSize]byte
	for i := range key {
		key[i] = byte(i * 7)
	}
	for i := range nonce {
		nonce[i] = byte(0xf0 | i)
	}
	var counters []uint64
	for counter := uint64(1<<32 - 8); counter < 1<<32+8; counter++ {
		counters = append(counters, counter)
	}
	for counter := uint64(1<<64 - 12); counter <= 1<<64-4; counter++ {
		counters = append(counters, counter)
	}
	for _, counter := range counters {
		var generic, vector [BufferSize]byte
		blocksGeneric(&generic, &key, &nonce, counter, 8)
		blocksVector(&vector, &key, &nonce, counter, 8)
		if generic != vector {
			t.Fatalf("counter %d: mismatched keystream -- generic %x, "+
				"vector %x", counter, generic, vector)
		}
	}
}
