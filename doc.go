// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ristretto255 implements Ed25519 signatures and the Ristretto255
prime-order group on top of Curve25519, in pure Go.

This package provides the cryptographic core needed to build an Ed25519
signature scheme as specified by RFC 8032 section 5.1, plus the Ristretto255
encoding, decoding, and Elligator hash-to-group construction that exposes a
prime-order group over the same curve.

An overview of the features provided by this package are as follows:

  - FieldVal type for working modulo the Curve25519 field prime p = 2^255-19
  - ModNScalar type for working modulo the Ed25519 group order ℓ
  - AffinePoint and ExtendedPoint types for twisted-Edwards group arithmetic
  - Constant-time windowed non-adjacent-form (wNAF) scalar multiplication
    with precomputation, and a variable-time ladder for public inputs
  - Ristretto255 encode, decode, and hash-to-group (two-Elligator-map)
  - Private key generation, clamping, and normalization per RFC 8032
  - EdDSA signing and verification, including permissive cofactor-8
    verification to reject small-subgroup components

This package deliberately does not implement SHA-512 or a random byte
source; both are consumed as pluggable collaborators (see Hasher and
RandReader) with defaults backed by crypto/sha512 and crypto/rand. It also
does not implement batch signature verification, X25519 Diffie-Hellman
(beyond the single ed25519-to-x25519 coordinate conversion on AffinePoint),
or blinded/threshold signature variants.

A comprehensive suite of tests is provided to ensure proper functionality,
including RFC 8032 and Ristretto255 test vectors.
*/
package ristretto255
