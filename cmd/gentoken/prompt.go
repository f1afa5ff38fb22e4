// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// zero clears the passed secret.
func zero(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0x00
	}
}

// passphraseReader reads passphrases either from a terminal with echo
// disabled or, when the input is not a terminal, one line at a time.
type passphraseReader struct {
	in     *os.File
	prompt io.Writer
	lines  *bufio.Reader

	// readPassword is term.ReadPassword outside of the tests.
	readPassword func(fd int) ([]byte, error)
}

// newPassphraseReader returns a passphrase reader over the provided input that
// writes its prompts to the provided writer.
func newPassphraseReader(in *os.File, prompt io.Writer) *passphraseReader {
	return &passphraseReader{
		in:           in,
		prompt:       prompt,
		readPassword: term.ReadPassword,
	}
}

// read prompts for and returns one passphrase.
func (r *passphraseReader) read(prompt string) ([]byte, error) {
	fmt.Fprint(r.prompt, prompt)
	if term.IsTerminal(int(r.in.Fd())) {
		secret, err := r.readPassword(int(r.in.Fd()))
		fmt.Fprint(r.prompt, "\n")
		return secret, err
	}

	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}
	line, err := r.lines.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		zero(line)
		return nil, err
	}
	secret := bytes.TrimRight(line, "\r\n")
	return secret, nil
}

// readConfirmed prompts for a passphrase twice and returns it when both
// entries match.  Empty passphrases are rejected.
func (r *passphraseReader) readConfirmed() ([]byte, error) {
	secret, err := r.read("Passphrase: ")
	if err != nil {
		return nil, fmt.Errorf("unable to read passphrase: %w", err)
	}
	if len(secret) == 0 {
		return nil, errors.New("empty passphrase")
	}
	confirm, err := r.read("Confirm passphrase: ")
	if err != nil {
		zero(secret)
		return nil, fmt.Errorf("unable to read passphrase: %w", err)
	}
	defer zero(confirm)
	if !bytes.Equal(secret, confirm) {
		zero(secret)
		return nil, errors.New("passphrases do not match")
	}
	return secret, nil
}
