// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Gentoken prints random tokens drawn from the dualrand secure generator.

By default one token is printed using the base32 alphabet at the shortest length
that provides 128 bits of security.  Any of the predefined alphabets or a custom
character set may be selected.

With --passphrase the tokens are instead derived deterministically from a
passphrase that is read twice from the terminal with echo disabled, or one line
at a time when standard input is not a terminal.  The same passphrase, context,
alphabet, length, and count always print the same tokens.  Such tokens are only
as unpredictable as the passphrase.

Usage:

	gentoken [OPTIONS]

Application Options:

	-V, --version      Display version information and exit
	-e, --encoding=    Token alphabet {base16, base32, base32hex, base62,
	                   base64, base64url} (default: base32)
	                   [$GENTOKEN_ENCODING]
	    --charset=     Custom token alphabet; overrides --encoding
	    --security=    Security level in bits of --charset tokens
	                   (default: 128)
	-l, --length=      Token length in characters (default: the shortest
	                   length meeting the security level) [$GENTOKEN_LENGTH]
	-n, --count=       Number of tokens to generate (default: 1)
	-p, --passphrase   Derive the tokens deterministically from a passphrase
	                   read from the terminal
	    --context=     Domain separation context for --passphrase derivation
	                   [$GENTOKEN_CONTEXT]

Help Options:

	-h, --help         Show this help message
*/
package main
