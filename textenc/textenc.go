// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package textenc produces random text over a fixed alphabet from a stream of
// random bytes.
//
// Alphabets with a power of two number of characters consume exactly
// log2(size) bits of the stream per character.  Bits are packed most
// significant first and leftover bits carry over to the next character, so no
// entropy is discarded.  Other alphabets consume one byte per candidate
// character and reject the bytes that would bias the result.
//
// Every alphabet carries a security level in bits along with the derived
// minimum text length that meets it.  Requests for shorter text are rejected
// with ErrLengthTooShort.
package textenc

import (
	"fmt"
	"io"
	"math"
	"math/bits"
)

// DefaultSecurityBits is the security level of the predefined alphabets.
const DefaultSecurityBits = 128

// Alphabet is an ordered set of distinct characters along with the security
// level text produced over it must meet.
type Alphabet struct {
	name         string
	chars        string
	bitsPerChar  uint
	rejectAbove  int
	securityBits uint
	minLen       int
}

// NewAlphabet returns an alphabet over the provided characters, each of
// which is a single byte, with the given security level in bits.  An error
// that identifies as ErrInvalidAlphabet is returned when there are fewer than
// 2 or more than 256 characters, a character repeats, or the security level
// is zero.
func NewAlphabet(name, chars string, securityBits uint) (*Alphabet, error) {
	size := len(chars)
	if size < 2 || size > 256 {
		str := fmt.Sprintf("alphabet %q has %d characters (must be between "+
			"2 and 256)", name, size)
		return nil, makeError(ErrInvalidAlphabet, str)
	}
	var seen [256]bool
	for i := 0; i < size; i++ {
		if seen[chars[i]] {
			str := fmt.Sprintf("alphabet %q repeats character %q", name,
				chars[i])
			return nil, makeError(ErrInvalidAlphabet, str)
		}
		seen[chars[i]] = true
	}
	if securityBits == 0 {
		str := fmt.Sprintf("alphabet %q has no security level", name)
		return nil, makeError(ErrInvalidAlphabet, str)
	}

	a := &Alphabet{
		name:         name,
		chars:        chars,
		securityBits: securityBits,
	}
	if size&(size-1) == 0 {
		a.bitsPerChar = uint(bits.TrailingZeros(uint(size)))
		a.minLen = int((securityBits + a.bitsPerChar - 1) / a.bitsPerChar)
	} else {
		// Bytes at or above the largest multiple of the size are rejected.
		a.rejectAbove = 256 - 256%size
		a.minLen = int(math.Ceil(float64(securityBits) /
			math.Log2(float64(size))))
	}
	return a, nil
}

// mustAlphabet returns the alphabet for the hard-coded predefined alphabets
// and panics if it is invalid.
func mustAlphabet(name, chars string) *Alphabet {
	a, err := NewAlphabet(name, chars, DefaultSecurityBits)
	if err != nil {
		panic(err)
	}
	return a
}

// Predefined alphabets from RFC 4648 along with the alphanumeric Base62
// alphabet.  All of them target DefaultSecurityBits.
var (
	Base16    = mustAlphabet("base16", "0123456789ABCDEF")
	Base32    = mustAlphabet("base32", "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")
	Base32Hex = mustAlphabet("base32hex", "0123456789ABCDEFGHIJKLMNOPQRSTUV")
	Base62    = mustAlphabet("base62", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"+
		"abcdefghijklmnopqrstuvwxyz0123456789")
	Base64 = mustAlphabet("base64", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"+
		"abcdefghijklmnopqrstuvwxyz0123456789+/")
	Base64URL = mustAlphabet("base64url", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"+
		"abcdefghijklmnopqrstuvwxyz0123456789-_")
)

// String returns the name of the alphabet.
func (a *Alphabet) String() string {
	return a.name
}

// Chars returns the characters of the alphabet in order.
func (a *Alphabet) Chars() string {
	return a.chars
}

// Size returns the number of characters in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.chars)
}

// SecurityBits returns the security level of the alphabet in bits.
func (a *Alphabet) SecurityBits() uint {
	return a.securityBits
}

// MinLen returns the shortest text length that meets the security level of
// the alphabet.
func (a *Alphabet) MinLen() int {
	return a.minLen
}

// Text returns n random characters of the alphabet made from bytes read from
// r.  An error that identifies as ErrLengthTooShort is returned when n is
// less than the minimum length of the alphabet.  Read errors are returned
// unchanged.
func Text(r io.Reader, a *Alphabet, n int) (string, error) {
	if n < a.minLen {
		return "", lengthError(a, n)
	}
	b := make([]byte, n)
	if err := encode(b, r, a); err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendText appends n random characters of the alphabet to dst and returns
// the extended slice.  See Text for the errors.
func AppendText(dst []byte, r io.Reader, a *Alphabet, n int) ([]byte, error) {
	if n < a.minLen {
		return dst, lengthError(a, n)
	}
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	if err := encode(dst[start:], r, a); err != nil {
		return dst[:start], err
	}
	return dst, nil
}

// Encode fills all of dst with random characters of the alphabet without
// allocating.  See Text for the errors.
func Encode(dst []byte, r io.Reader, a *Alphabet) error {
	if len(dst) < a.minLen {
		return lengthError(a, len(dst))
	}
	return encode(dst, r, a)
}

func lengthError(a *Alphabet, n int) error {
	str := fmt.Sprintf("%d %s characters do not meet the %d-bit security "+
		"level (minimum %d)", n, a.name, a.securityBits, a.minLen)
	return makeError(ErrLengthTooShort, str)
}

func encode(dst []byte, r io.Reader, a *Alphabet) error {
	if a.bitsPerChar != 0 {
		return encodePacked(dst, r, a)
	}
	return encodeRejection(dst, r, a)
}

// encodePacked fills dst by consuming exactly bitsPerChar bits per character.
//
// The stream bytes are read into the tail of dst and consumed front to back.
// Characters never outpace the consumed bytes, so each character only
// overwrites stream bytes that were already consumed.
func encodePacked(dst []byte, r io.Reader, a *Alphabet) error {
	charBits := a.bitsPerChar
	need := (len(dst)*int(charBits) + 7) / 8
	src := dst[len(dst)-need:]
	if _, err := io.ReadFull(r, src); err != nil {
		return err
	}

	mask := uint64(1)<<charBits - 1
	var acc uint64
	var accBits uint
	var i int
	for j := range src {
		acc = acc<<8 | uint64(src[j])
		accBits += 8
		for accBits >= charBits && i < len(dst) {
			accBits -= charBits
			dst[i] = a.chars[(acc>>accBits)&mask]
			i++
		}
	}
	return nil
}

// encodeRejection fills dst by mapping one byte to one character and
// rejecting bytes at or above the largest multiple of the alphabet size.  The
// stream bytes are read into the unfilled part of dst.
func encodeRejection(dst []byte, r io.Reader, a *Alphabet) error {
	size := len(a.chars)
	var i int
	for i < len(dst) {
		src := dst[i:]
		if _, err := io.ReadFull(r, src); err != nil {
			return err
		}
		n := i
		for _, b := range src {
			if int(b) >= a.rejectAbove {
				continue
			}
			dst[n] = a.chars[int(b)%size]
			n++
		}
		i = n
	}
	return nil
}
