// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chacha

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// hexToBuffer converts the passed hex string into a keystream buffer and will
// panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only (and
// must only) be called with hard-coded values.
func hexToBuffer(s string) [BufferSize]byte {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != BufferSize {
		panic("invalid hex in source file: " + s)
	}
	return *(*[BufferSize]byte)(b)
}

// seqBytes returns n bytes counting up from zero.
func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// chacha8VecTest describes an input to the ChaCha8 block function along with
// the expected four blocks of keystream.
type chacha8VecTest struct {
	name    string
	key     [KeySize]byte
	nonce   [NonceSize]byte
	counter uint64
	want    [BufferSize]byte
}

// chacha8Vecs houses expected results from the ChaCha8 block function.  The
// first block of the all zero case is the well known ChaCha8 test vector for
// a 256-bit zero key and zero nonce.
var chacha8Vecs = []chacha8VecTest{{
	name: "zero key, zero nonce, counter 0",
	want: hexToBuffer("" +
		"3e00ef2f895f40d67f5bb8e81f09a5a12c840ec3ce9a7f3b181be188ef711a1e" +
		"984ce172b9216f419f445367456d5619314a42a3da86b001387bfdb80e0cfe42" +
		"d2aefa0deaa5c151bf0adb6c01f2a5adc0fd581259f9a2aadcf20f8fd566a26b" +
		"5032ec38bbc5da98ee0c6f568b872a65a08abf251deb21bb4b56e5d8821e68aa" +
		"7fe7b1ff12cffd9d7e21f517501ecaff43cea3e8e3eb28cbd8d1001f68b5c687" +
		"55b970d3b7dafc64d3e59bdeaadc8f82a975a481df31b52870aa5fa2ba340af9" +
		"2ba037cdb63cb5a7277dc5d6dc549e4e28a15c70670f0e97787c170485829264" +
		"ecbf14bddeb68410f423e8849e0ce35c10d20a802bbc3d9a6ca01c386279bf01"),
}, {
	name:    "sequential key, nonce 0x4a, counter 1",
	key:     *(*[KeySize]byte)(seqBytes(KeySize)),
	nonce:   [NonceSize]byte{0, 0, 0, 0x4a},
	counter: 1,
	want: hexToBuffer("" +
		"bc08fed3f82c571c5e7a70866588aee281ee18680869a9c2af9f4e244a4a5637" +
		"61b2dfe8a747dafd532f8496553311589abd3ec1eb4576054477a7295b82cbb7" +
		"2872607d86b93d80e3e7fea72806341fa1118239138e2e78d2a997d40f51647f" +
		"cb7729a690cf215ad44474ab0d6c09bb8adc497ebd6d34010937d25eead815da" +
		"978830bfc04995b707b3d01c335d03111085b5dfc6875a7dc44449553b0e2d7a" +
		"8ece15f981ffeea57367aee431664120a770ae3f45afe304fdb04678661321cb" +
		"750e8b3568eb777d2132255b4f76342ecfd1cf3c44231f59c0a927dd05e73117" +
		"66c5893ee8c8224c008fbfcad0bdee1a1a90acc919016aaac008f13f817df5d6"),
}, {
	name:    "counter carries into the high word",
	counter: 1<<32 - 2,
	want: hexToBuffer("" +
		"ac22dd35e273d76e47d60d19ad753f578c38d4a8e28ba9f6055e8e0a1d7a6e53" +
		"cdc46edd57430e0eb14cf19cc107ee6dff4836500383cd683ca2e8f11ba754dd" +
		"34a2b737751d19ece0256b2bb87237f68188c02b10a6dc31939d4e5d319bd3bb" +
		"ee280b968ad567c1f103089f4f7346d1fea5dec60daf906c3c4e889bc49e0049" +
		"1ccc59a06308e05be9d29e7288f166c58f2ee06003047710cbfdb7359da916e8" +
		"43980f2c3bf39df2a3e1f451ba18c37f986ff783075484265819602305557dcd" +
		"b7bd167bdfd87e6e4df89b2f110c9022f16325e2ec113e806a50774673cdb6af" +
		"b5bd48d1e66c7631edb52d0941452ddbd67bc790a20cfe24213194ae75b2ee47"),
}, {
	name: "all ones key and nonce, last four blocks",
	key: [KeySize]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	},
	nonce:   [NonceSize]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	counter: 1<<64 - 4,
	want: hexToBuffer("" +
		"763b8e37c012e28db18671d5269032dbcca24feab6a5b63e387d51ab06d0f4f7" +
		"94e3a670bc8b25866fe67cf77755b8e0533a5d3f172ddce298bb632ea3e8fe6f" +
		"f787ed88dd0b4d91c84689549b7cd64592c371096d9ae2e0dfe6f085cb2d1c38" +
		"bd787c825c1d0997175ad2a84e732febc97c214e3cee4b98f171a03f418c37ad" +
		"f20206063f7d0edb54325a80df67323f28abdfab5d18f9b9ddf17ba6554996a3" +
		"db3ddef1ae48178361fd821e7a7cca97d5596471a4453b417b04ed9d179b5eb3" +
		"b7d35bf0a5708ccc8043254a1f2856d22a6cd291e7bf8ece4273dad61adc7e3f" +
		"43be6f962d006d2597dd67b688afb5066227a70fe1f384c3e00480afce7a7d90"),
}}

// TestChaCha8Generic ensures the pure Go ChaCha8 implementation produces the
// expected keystream.
func TestChaCha8Generic(t *testing.T) {
	t.Parallel()

	for i := range chacha8Vecs {
		test := &chacha8Vecs[i]
		var got [BufferSize]byte
		blocksGeneric(&got, &test.key, &test.nonce, test.counter, 8)
		if got != test.want {
			t.Errorf("%q: unexpected keystream -- got %x, want %x", test.name,
				got, test.want)
		}
	}
}

// TestChaCha8 ensures the selected ChaCha8 implementation produces the
// expected keystream.
func TestChaCha8(t *testing.T) {
	t.Logf("Using %s implementation", Implementation())
	for i := range chacha8Vecs {
		test := &chacha8Vecs[i]
		var got [BufferSize]byte
		ChaCha8(&got, &test.key, &test.nonce, test.counter)
		if got != test.want {
			t.Errorf("%q: unexpected keystream -- got %x, want %x", test.name,
				got, test.want)
		}
	}
}

// TestGenericChaCha20Rounds ensures the pure Go block function with 20 rounds
// matches the IETF ChaCha20 keystream when the nonce is zero and the counter
// fits in 32 bits, since both layouts agree in that case.
func TestGenericChaCha20Rounds(t *testing.T) {
	t.Parallel()

	var key [KeySize]byte
	var nonce [NonceSize]byte
	var ietfNonce [IETFNonceSize]byte
	for _, counter := range []uint64{0, 1, 1000} {
		var generic, ietf [BufferSize]byte
		blocksGeneric(&generic, &key, &nonce, counter, 20)
		ChaCha20(&ietf, &key, &ietfNonce, uint32(counter))
		if generic != ietf {
			t.Fatalf("counter %d: mismatched keystream -- generic %x, ietf %x",
				counter, generic, ietf)
		}
	}
}

// TestChaCha20 ensures the IETF ChaCha20 block function produces the
// keystreams from RFC 8439.
func TestChaCha20(t *testing.T) {
	t.Parallel()

	rfcNonce := [IETFNonceSize]byte{0, 0, 0, 0x09, 0, 0, 0, 0x4a}
	tests := []struct {
		name    string
		key     [KeySize]byte
		nonce   [IETFNonceSize]byte
		counter uint32
		want    [BufferSize]byte
	}{{
		name: "RFC 8439 A.1 test vectors 1 and 2",
		want: hexToBuffer("" +
			"76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7" +
			"da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee6586" +
			"9f07e7be5551387a98ba977c732d080dcb0f29a048e3656912c6533e32ee7aed" +
			"29b721769ce64e43d57133b074d839d531ed1f28510afb45ace10a1f4b794d6f" +
			"2d09a0e663266ce1ae7ed1081968a0758e718e997bd362c6b0c34634a9a0b35d" +
			"012737681f7b5d0f281e3afde458bc1e73d2d313c9cf94c05ff3716240a248f2" +
			"1320a058d7b3566bd520daaa3ed2bf0ac5b8b120fb852773c3639734b45c91a4" +
			"2dd4cb83f8840d2eedb158131062ac3f1f2cf8ff6dcd1856e86a1e6c3167167e"),
	}, {
		name:    "RFC 8439 2.3.2 block function",
		key:     *(*[KeySize]byte)(seqBytes(KeySize)),
		nonce:   rfcNonce,
		counter: 1,
		want: hexToBuffer("" +
			"10f1e7e4d13b5915500fdd1fa32071c4c7d1f4c733c068030422aa9ac3d46c4e" +
			"d2826446079faa0914c2d705d98b02a2b5129cd1de164eb9cbd083e8a2503c4e" +
			"0a88837739d7bf4ef8ccacb0ea2bb9d69d56c394aa351dfda5bf459f0a2e9fe8" +
			"e721f89255f9c486bf21679c683d4f9c5cf2fa27865526005b06ca374c86af3b" +
			"dcbfbdcb83be65862ed5c20eae5a43241d6a92da6dca9a156be25297f51c2718" +
			"8a861e93cc3aeb129a76598baccd27453ac6941b4b4e1e5153a9fee95d1ba00e" +
			"69d09f0d336478ca9068335ae2b3090905fb0fe5d45115371d126e5ba85e9924" +
			"32729aa7d77ddc5e3cc689d8445c1ab754a7409ee8befc2bdd3868d27f6e1ad8"),
	}}

	for _, test := range tests {
		var got [BufferSize]byte
		ChaCha20(&got, &test.key, &test.nonce, test.counter)
		if got != test.want {
			t.Errorf("%q: unexpected keystream -- got %x, want %x", test.name,
				got, test.want)
		}
	}
}

// TestChaCha8Overwrites ensures the block functions overwrite the output
// rather than mixing it with existing contents.
func TestChaCha8Overwrites(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	var ietfNonce [IETFNonceSize]byte

	var clean, dirty [BufferSize]byte
	ChaCha8(&clean, &key, &nonce, 0)
	for i := range dirty {
		dirty[i] = 0xa5
	}
	ChaCha8(&dirty, &key, &nonce, 0)
	if !bytes.Equal(clean[:], dirty[:]) {
		t.Fatal("ChaCha8 output depends on prior buffer contents")
	}

	ChaCha20(&clean, &key, &ietfNonce, 0)
	for i := range dirty {
		dirty[i] = 0x5a
	}
	ChaCha20(&dirty, &key, &ietfNonce, 0)
	if !bytes.Equal(clean[:], dirty[:]) {
		t.Fatal("ChaCha20 output depends on prior buffer contents")
	}
}
