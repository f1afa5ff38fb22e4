// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystream implements a cryptographically secure random number
// generator that serves the keystream of a ChaCha stream cipher.
//
// The generator buffers four keystream blocks at a time and serves 64-bit
// words and arbitrary byte reads from the buffer.  The buffer is only refilled
// when a read finds it drained.  Each refill advances the block counter by
// four and fails with ErrCounterExhausted once the counter can no longer
// admit four more blocks, so keystream is never repeated for a key and nonce.
//
// A Generator is not safe for concurrent use.  Use one generator per
// goroutine, each seeded independently.
package keystream

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/decred/dualrand/entropy"
	"lukechampine.com/blake3"
)

// logImplOnce ensures the block function implementation is only logged once.
var logImplOnce sync.Once

func logImplementation() {
	logImplOnce.Do(func() {
		log.Debugf("Using %s ChaCha8 block implementation", Implementation())
	})
}

// Generator is a buffered keystream generator.  It must be created with one
// of the constructors.
type Generator struct {
	prim      Primitive
	key       [KeySize]byte
	nonce     [MaxNonceSize]byte
	counter   uint64
	exhausted bool
	cursor    int
	buf       [BufferSize]byte
}

// newGenerator returns a generator with a stale buffer so the first read
// triggers a refill.
func newGenerator(prim Primitive) *Generator {
	logImplementation()
	return &Generator{prim: prim, cursor: BufferSize}
}

// New returns a ChaCha8 generator keyed from the operating system entropy
// source.
func New() (*Generator, error) {
	return NewWithPrimitive(entropy.OS, ChaCha8)
}

// NewWithPrimitive returns a generator for the given primitive with the key
// and nonce taken from a single read of the provided entropy source.  The
// block counter starts at zero.  A nil primitive selects ChaCha8.
func NewWithPrimitive(src entropy.Source, prim Primitive) (*Generator, error) {
	if prim == nil {
		prim = ChaCha8
	}
	nonceSize := prim.NonceSize()
	var seed [KeySize + MaxNonceSize]byte
	if err := entropy.Fill(src, seed[:KeySize+nonceSize]); err != nil {
		return nil, err
	}

	g := newGenerator(prim)
	copy(g.key[:], seed[:KeySize])
	copy(g.nonce[:], seed[KeySize:KeySize+nonceSize])
	clear(seed[:])
	return g, nil
}

// NewSeeded returns a generator for the given primitive with an explicit key,
// nonce, and starting block counter.  The same inputs always produce the same
// keystream.  A nil primitive selects ChaCha8.
//
// An error that identifies as ErrInvalidSeed is returned when the key is not
// KeySize bytes, the nonce is not the size the primitive requires, or the
// counter exceeds the maximum counter of the primitive.
func NewSeeded(prim Primitive, key, nonce []byte, counter uint64) (*Generator, error) {
	if prim == nil {
		prim = ChaCha8
	}
	if len(key) != KeySize {
		str := fmt.Sprintf("invalid key length %d (want %d)", len(key),
			KeySize)
		return nil, makeError(ErrInvalidSeed, str)
	}
	if len(nonce) != prim.NonceSize() {
		str := fmt.Sprintf("invalid %s nonce length %d (want %d)", prim,
			len(nonce), prim.NonceSize())
		return nil, makeError(ErrInvalidSeed, str)
	}
	if counter > prim.MaxCounter() {
		str := fmt.Sprintf("block counter %d exceeds the %s maximum of %d",
			counter, prim, prim.MaxCounter())
		return nil, makeError(ErrInvalidSeed, str)
	}

	g := newGenerator(prim)
	copy(g.key[:], key)
	copy(g.nonce[:], nonce)
	g.counter = counter
	return g, nil
}

// NewDerived returns a generator for the given primitive with the key and
// nonce derived from arbitrary length seed material with the BLAKE3 key
// derivation function under the provided context string.  The block counter
// starts at zero.  A nil primitive selects ChaCha8.
//
// The context should be a hard-coded, globally unique, application-specific
// string so that the same seed material produces unrelated keystreams for
// different purposes.
func NewDerived(prim Primitive, seed []byte, context string) *Generator {
	if prim == nil {
		prim = ChaCha8
	}
	nonceSize := prim.NonceSize()
	var derived [KeySize + MaxNonceSize]byte
	blake3.DeriveKey(derived[:KeySize+nonceSize], context, seed)

	g := newGenerator(prim)
	copy(g.key[:], derived[:KeySize])
	copy(g.nonce[:], derived[KeySize:KeySize+nonceSize])
	clear(derived[:])
	return g
}

// Primitive returns the block primitive of the generator.
func (g *Generator) Primitive() Primitive {
	return g.prim
}

// Counter returns the block counter the next refill will start from.
func (g *Generator) Counter() uint64 {
	return g.counter
}

// refill replaces the buffer with the next four keystream blocks.
func (g *Generator) refill() error {
	if g.exhausted || g.counter > g.prim.MaxCounter()-(BlocksPerBuffer-1) {
		if !g.exhausted {
			log.Warnf("%s keystream exhausted at block counter %d", g.prim,
				g.counter)
			g.exhausted = true
		}
		str := fmt.Sprintf("%s block counter exhausted", g.prim)
		return makeError(ErrCounterExhausted, str)
	}

	g.prim.Blocks(&g.buf, &g.key, g.nonce[:g.prim.NonceSize()], g.counter)
	g.cursor = 0

	// The final buffer of a 64-bit counter wraps it to zero.
	next := g.counter + BlocksPerBuffer
	if next < g.counter {
		g.exhausted = true
	}
	g.counter = next
	return nil
}

// TryUint64 returns the next eight keystream bytes as a little-endian 64-bit
// word.  An error that identifies as ErrCounterExhausted is returned when the
// keystream is exhausted.
func (g *Generator) TryUint64() (uint64, error) {
	if g.cursor <= BufferSize-8 {
		v := binary.LittleEndian.Uint64(g.buf[g.cursor:])
		g.cursor += 8
		return v, nil
	}
	if g.cursor == BufferSize {
		if err := g.refill(); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint64(g.buf[:])
		g.cursor = 8
		return v, nil
	}

	// Byte reads left fewer than eight bytes in the buffer.
	var b [8]byte
	if err := g.Fill(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Uint64 returns the next eight keystream bytes as a little-endian 64-bit
// word.
//
// This satisfies the math/rand/v2.Source interface.  It panics with an Error
// that identifies as ErrCounterExhausted when the keystream is exhausted.
// Callers that seed with a counter near the maximum of the primitive should
// use TryUint64 instead.
func (g *Generator) Uint64() uint64 {
	v, err := g.TryUint64()
	if err != nil {
		panic(err)
	}
	return v
}

// Fill fills all of p with keystream.  An error that identifies as
// ErrCounterExhausted is returned when the keystream is exhausted before p is
// filled.
func (g *Generator) Fill(p []byte) error {
	_, err := g.Read(p)
	return err
}

// Read fills p with keystream and returns the number of bytes written.  It
// only returns fewer than len(p) bytes along with an error that identifies as
// ErrCounterExhausted.
//
// This satisfies the io.Reader interface.
func (g *Generator) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		if g.cursor == BufferSize {
			if err := g.refill(); err != nil {
				return n, err
			}
		}
		copied := copy(p[n:], g.buf[g.cursor:])
		g.cursor += copied
		n += copied
	}
	return n, nil
}

// Reseed rekeys the generator with fresh entropy from the operating system.
// See ReseedFrom.
func (g *Generator) Reseed() error {
	return g.ReseedFrom(entropy.OS)
}

// ReseedFrom rekeys the generator.  The new key is fresh entropy from the
// provided source mixed with the next KeySize bytes of the current keystream,
// when any remains.  The nonce is incremented as a little-endian integer, the
// block counter restarts at zero, and any buffered keystream is discarded.
//
// Reseeding an exhausted generator makes it usable again.  The generator is
// left unchanged when the source fails.
func (g *Generator) ReseedFrom(src entropy.Source) error {
	var fresh [KeySize]byte
	if err := entropy.Fill(src, fresh[:]); err != nil {
		return err
	}

	// An exhausted keystream is expected here and only skips the mix.
	var mix [KeySize]byte
	if err := g.Fill(mix[:]); err != nil {
		clear(mix[:])
	}
	for i := range g.key {
		g.key[i] = fresh[i] ^ mix[i]
	}
	clear(fresh[:])
	clear(mix[:])

	incNonce(g.nonce[:g.prim.NonceSize()])
	g.counter = 0
	g.exhausted = false
	g.cursor = BufferSize
	clear(g.buf[:])
	log.Debugf("Reseeded %s keystream", g.prim)
	return nil
}

// incNonce increments the nonce as a little-endian integer.
func incNonce(nonce []byte) {
	for i := range nonce {
		nonce[i]++
		if nonce[i] != 0 {
			return
		}
	}
}
