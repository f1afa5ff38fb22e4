// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package entropy

import (
	cryptorand "crypto/rand"
	"errors"
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

var logFallbackOnce sync.Once

// fillOS fills b using the getrandom system call, which blocks only until the
// kernel entropy pool has been initialized.  Kernels that predate the system
// call fall back to crypto/rand.
func fillOS(b []byte) error {
	for len(b) > 0 {
		n, err := unix.Getrandom(b, 0)
		switch {
		case errors.Is(err, unix.EINTR):
			continue

		case errors.Is(err, unix.ENOSYS):
			logFallbackOnce.Do(func() {
				log.Debugf("getrandom(2) is not supported by the kernel; " +
					"falling back to crypto/rand")
			})
			_, err := io.ReadFull(cryptorand.Reader, b)
			return err

		case err != nil:
			return err
		}
		b = b[n:]
	}
	return nil
}
