// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/dualrand"
	"github.com/decred/dualrand/internal/version"
	"github.com/decred/dualrand/textenc"
	flags "github.com/jessevdk/go-flags"
)

// writeTokens writes count tokens of the given length, one per line, drawn
// from the alphabet with the provided generator.
func writeTokens(w io.Writer, rng *dualrand.SecureRNG, a *textenc.Alphabet, length, count int) error {
	bw := bufio.NewWriter(w)
	token := make([]byte, length, length+1)
	for i := 0; i < count; i++ {
		if err := rng.EncodeText(token, a); err != nil {
			return err
		}
		if _, err := bw.Write(append(token, '\n')); err != nil {
			return err
		}
	}
	zero(token)
	return bw.Flush()
}

// newGenerator returns the generator the tokens are drawn from.  It is seeded
// from the operating system unless passphrase derivation was requested.
func newGenerator(cfg *config, prompts *passphraseReader) (*dualrand.SecureRNG, error) {
	if !cfg.Passphrase {
		return dualrand.NewSecure()
	}

	secret, err := prompts.readConfirmed()
	if err != nil {
		return nil, err
	}
	defer zero(secret)
	return dualrand.NewSecureDerived(secret, cfg.Context), nil
}

// tokenMain is the real main function for gentoken.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func tokenMain() error {
	cfg, alphabet, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, errShowVersion) {
			appName := filepath.Base(os.Args[0])
			appName = strings.TrimSuffix(appName, filepath.Ext(appName))
			fmt.Println(version.Full(appName))
			return nil
		}

		// go-flags already printed the usage or the parse error.
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				return nil
			}
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	rng, err := newGenerator(cfg, newPassphraseReader(os.Stdin, os.Stderr))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if err := writeTokens(os.Stdout, rng, alphabet, cfg.Length, cfg.Count); err != nil {
		fmt.Fprintf(os.Stderr, "unable to write tokens: %v\n", err)
		return err
	}
	return nil
}

func main() {
	if err := tokenMain(); err != nil {
		os.Exit(1)
	}
}
