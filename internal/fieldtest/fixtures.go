// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fieldtest holds literal test fixtures shared across the parent
// package's *_test.go files: RFC 8032 test vectors and the Ristretto255
// hash-to-group vector from spec.md §8's concrete scenarios, kept in one
// place so the vectors aren't retyped (and potentially mistyped) per file.
package fieldtest

// RFC8032Vector1 is spec.md §8 scenario 5: RFC 8032 §7.1 Ed25519 test
// vector 1 (empty message).
type RFC8032Vector1 struct {
	PrivateKeyHex string
	Message       []byte
	SignatureHex  string
}

// Vector1 is the empty-message RFC 8032 test vector.
var Vector1 = RFC8032Vector1{
	PrivateKeyHex: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
	Message:       []byte{},
	SignatureHex: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
}

// BaseCompressedHex is spec.md §8 scenario 1: BASE.toRawBytes().
const BaseCompressedHex = "5866666666666666666666666666666666666666666666666666666666666666"

// TorsionPointHex is spec.md §8 scenario 2: a non-identity point of order
// dividing 8.
const TorsionPointHex = "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"

// OutOfRangeHex is spec.md §8 scenario 3: a 32-byte encoding whose decoded
// integer exceeds p, expected to fail with OutOfRange.
const OutOfRangeHex = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

// WrongLengthHex is spec.md §8 scenario 4: a malformed, non-32-byte
// encoding, expected to fail with InvalidEncoding.
const WrongLengthHex = "aaaaaaaaaaaaaaaabbbbbbbbbbbbbbbbbc"

// RistrettoHashMessage is spec.md §8 scenario 6's fromRistrettoHash input
// message (to be SHA-512'd by the caller before hashing to the group).
const RistrettoHashMessage = "Ristretto is traditionally a short shot of espresso coffee made with the normal amount of ground coffee but extracted with about half the amount of water in the same time by using a finer grind."
