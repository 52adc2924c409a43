// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"encoding/hex"
	"math/big"
)

// mustBigFromDecimal parses a base-10 literal into a *big.Int, panicking on
// malformed input. Used only to build package-level curve constants.
func mustBigFromDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ristretto255: invalid decimal literal " + s)
	}
	return n
}

// mustBigFromHex parses a big-endian hex literal into a *big.Int, panicking
// on malformed input. Used only to build package-level curve constants.
func mustBigFromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ristretto255: invalid hex literal " + s)
	}
	return n
}

// reverseBytes returns a newly allocated copy of b with byte order reversed.
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// BytesToNumberLE decodes b as a little-endian unsigned integer, per
// spec.md's bytesToNumberLE.
func BytesToNumberLE(b []byte) *big.Int {
	return new(big.Int).SetBytes(reverseBytes(b))
}

// NumberToBytesPadded encodes n as length little-endian bytes, per
// spec.md's numberToBytesPadded: it first renders n as big-endian hex
// padded to 2*length characters, then byte-reverses it. It returns
// ErrOutOfRange if n's big-endian encoding would not fit in length bytes.
func NumberToBytesPadded(n *big.Int, length int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, newError(ErrOutOfRange, "numberToBytesPadded: negative integer")
	}
	be := n.Bytes()
	if len(be) > length {
		return nil, newError(ErrOutOfRange, "numberToBytesPadded: integer too large for requested length")
	}
	padded := make([]byte, length)
	copy(padded[length-len(be):], be)
	return reverseBytes(padded), nil
}

// Bytes255ToNumberLE decodes b (expected 32 bytes) as a little-endian
// integer with the top bit of the last byte cleared, then reduces modulo p.
// This is the ingestion routine spec.md specifies for 32-byte
// Ristretto/hash-derived inputs.
func Bytes255ToNumberLE(b []byte) FieldVal {
	n := BytesToNumberLE(b)
	mask := new(big.Int).Lsh(big.NewInt(1), 255)
	mask.Sub(mask, big.NewInt(1))
	n.And(n, mask)
	return NewFieldVal(n)
}

// HexToBytes decodes a hex string into bytes, rejecting odd-length input
// with ErrInvalidEncoding (encoding/hex.DecodeString already rejects it;
// this wrapper normalizes the error kind at the package boundary).
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, newError(ErrInvalidEncoding, "hexToBytes: "+err.Error())
	}
	return b, nil
}

// BytesToHex encodes b as a lowercase hex string.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// IsValidScalar reports whether n is a positive integer, matching spec.md's
// isValidScalar (accepts a positive safe-integer or positive big integer;
// realized here simply as "n > 0" since Go has no separate safe-integer
// range to distinguish).
func IsValidScalar(n *big.Int) bool {
	return n != nil && n.Sign() > 0
}
