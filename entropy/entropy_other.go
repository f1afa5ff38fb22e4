// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package entropy

import (
	cryptorand "crypto/rand"
	"io"
)

// fillOS fills b from crypto/rand.
func fillOS(b []byte) error {
	_, err := io.ReadFull(cryptorand.Reader, b)
	return err
}
