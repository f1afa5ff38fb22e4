// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dualrand"
	"github.com/decred/dualrand/textenc"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultEncoding = "base32"
	defaultContext  = "dualrand gentoken 2026-10-01 passphrase tokens"
)

// encodings maps the names accepted by --encoding to the predefined alphabets.
var encodings = map[string]*textenc.Alphabet{
	dualrand.Base16.String():    dualrand.Base16,
	dualrand.Base32.String():    dualrand.Base32,
	dualrand.Base32Hex.String(): dualrand.Base32Hex,
	dualrand.Base62.String():    dualrand.Base62,
	dualrand.Base64.String():    dualrand.Base64,
	dualrand.Base64URL.String(): dualrand.Base64URL,
}

// encodingNames returns the supported encoding names in a stable order.
func encodingNames() []string {
	return []string{"base16", "base32", "base32hex", "base62", "base64",
		"base64url"}
}

// config defines the configuration options for gentoken.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Encoding    string `short:"e" long:"encoding" env:"GENTOKEN_ENCODING" description:"Token alphabet {base16, base32, base32hex, base62, base64, base64url}"`
	Charset     string `long:"charset" description:"Custom token alphabet; overrides --encoding"`
	Security    uint   `long:"security" description:"Security level in bits of --charset tokens" default:"128"`
	Length      int    `short:"l" long:"length" env:"GENTOKEN_LENGTH" description:"Token length in characters (default: the shortest length meeting the security level)"`
	Count       int    `short:"n" long:"count" description:"Number of tokens to generate" default:"1"`
	Passphrase  bool   `short:"p" long:"passphrase" description:"Derive the tokens deterministically from a passphrase read from the terminal"`
	Context     string `long:"context" env:"GENTOKEN_CONTEXT" description:"Domain separation context for --passphrase derivation"`
}

// errShowVersion is returned by loadConfig when the caller asked for the
// version.
var errShowVersion = errors.New("show version")

// loadConfig parses the command line options and environment variables into
// a config and resolves the alphabet the tokens are drawn from.
func loadConfig(args []string) (*config, *textenc.Alphabet, error) {
	cfg := config{
		Encoding: defaultEncoding,
		Context:  defaultContext,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if cfg.ShowVersion {
		return &cfg, nil, errShowVersion
	}
	if len(remaining) != 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %s",
			strings.Join(remaining, " "))
	}

	var alphabet *textenc.Alphabet
	if cfg.Charset != "" {
		alphabet, err = textenc.NewAlphabet("custom", cfg.Charset, cfg.Security)
		if err != nil {
			return nil, nil, err
		}
	} else {
		var ok bool
		alphabet, ok = encodings[strings.ToLower(cfg.Encoding)]
		if !ok {
			return nil, nil, fmt.Errorf("unknown encoding %q -- supported "+
				"encodings %v", cfg.Encoding, encodingNames())
		}
	}

	if cfg.Length == 0 {
		cfg.Length = alphabet.MinLen()
	}
	if cfg.Length < alphabet.MinLen() {
		return nil, nil, fmt.Errorf("a %s token must be at least %d "+
			"characters to provide %d bits of security", alphabet,
			alphabet.MinLen(), alphabet.SecurityBits())
	}
	if cfg.Count < 1 {
		return nil, nil, fmt.Errorf("the count must be at least 1 -- "+
			"parsed [%d]", cfg.Count)
	}
	if cfg.Passphrase && cfg.Context == "" {
		return nil, nil, errors.New("--passphrase requires a nonempty " +
			"--context")
	}

	return &cfg, alphabet, nil
}
