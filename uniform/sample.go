// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniform

const (
	asciiUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	asciiLower = "abcdefghijklmnopqrstuvwxyz"
	asciiDigit = "0123456789"

	asciiAlphanumeric = asciiUpper + asciiLower + asciiDigit
)

// ASCIIDigit returns a uniform random character in '0' through '9'.
func (r *Rand) ASCIIDigit() byte {
	return asciiDigit[r.uint64n(uint64(len(asciiDigit)))]
}

// ASCIIUppercase returns a uniform random character in 'A' through 'Z'.
func (r *Rand) ASCIIUppercase() byte {
	return asciiUpper[r.uint64n(uint64(len(asciiUpper)))]
}

// ASCIILowercase returns a uniform random character in 'a' through 'z'.
func (r *Rand) ASCIILowercase() byte {
	return asciiLower[r.uint64n(uint64(len(asciiLower)))]
}

// ASCIIAlphabetic returns a uniform random upper or lowercase letter.
func (r *Rand) ASCIIAlphabetic() byte {
	const alphabetic = asciiUpper + asciiLower
	return alphabetic[r.uint64n(uint64(len(alphabetic)))]
}

// ASCIIAlphanumeric returns a uniform random letter or digit.
func (r *Rand) ASCIIAlphanumeric() byte {
	return asciiAlphanumeric[r.uint64n(uint64(len(asciiAlphanumeric)))]
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("uniform: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(r.uint64n(uint64(i + 1)))
		swap(i, j)
	}
}

// ShuffleSlice randomizes the order of the elements of s in place.
func ShuffleSlice[T any](r *Rand, s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Choose returns a uniform random element of s.  The second return value is
// false, and nothing is drawn from the source, when s is empty.
func Choose[T any](r *Rand, s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[r.uint64n(uint64(len(s)))], true
}
