// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"io"

	dcrrand "github.com/decred/dcrd/crypto/rand"
)

// readerSource adapts an io.Reader to a Source.
type readerSource struct {
	r io.Reader
}

// Fill fills b with bytes read from the underlying reader.
func (s readerSource) Fill(b []byte) error {
	_, err := io.ReadFull(s.r, b)
	return err
}

// FromReader returns a Source that fills requests by reading from r.  The
// reader must be safe for concurrent use for the returned source to be.
func FromReader(r io.Reader) Source {
	return readerSource{r: r}
}

// Userspace is an entropy source backed by the process-wide userspace CSPRNG
// of the decred crypto/rand package, which is itself seeded and periodically
// reseeded from the operating system.  It avoids a system call for every
// generator seeded, which matters when seeding a large number of generators.
var Userspace Source = readerSource{r: dcrrand.Reader()}
