// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "math/big"

// NormalizePrivateKey accepts a private key in any of the forms spec.md §4.5
// allows -- a 32-byte array, a 64-character hex string, or a positive
// integer in [0, 2^256] -- and returns its canonical 32-byte little-endian
// form. Any other shape is rejected with ErrInvalidEncoding.
func NormalizePrivateKey(key interface{}) ([]byte, error) {
	switch k := key.(type) {
	case []byte:
		if len(k) != 32 {
			return nil, newError(ErrInvalidEncoding, "normalizePrivateKey: expected 32 bytes")
		}
		out := make([]byte, 32)
		copy(out, k)
		return out, nil
	case string:
		b, err := HexToBytes(k)
		if err != nil {
			return nil, err
		}
		if len(b) != 32 {
			return nil, newError(ErrInvalidEncoding, "normalizePrivateKey: expected 64 hex chars")
		}
		return b, nil
	case *big.Int:
		if k.Sign() < 0 {
			return nil, newError(ErrOutOfRange, "normalizePrivateKey: negative integer")
		}
		max := new(big.Int).Lsh(big.NewInt(1), 256)
		if k.Cmp(max) > 0 {
			return nil, newError(ErrOutOfRange, "normalizePrivateKey: integer exceeds 2^256")
		}
		b, err := NumberToBytesPadded(k, 32)
		if err != nil {
			return nil, newError(ErrOutOfRange, "normalizePrivateKey: integer too large for 32 bytes")
		}
		return b, nil
	default:
		return nil, newError(ErrInvalidEncoding, "normalizePrivateKey: unsupported key type")
	}
}

// EncodePrivate applies RFC 8032 §5.1.5 clamping to the first 32 bytes of a
// 64-byte SHA-512 expansion and reduces the little-endian result modulo ℓ,
// per spec.md §4.5's encodePrivate.
func EncodePrivate(expanded64 []byte) (ModNScalar, error) {
	if len(expanded64) != 64 {
		return ModNScalar{}, newError(ErrInvalidEncoding, "encodePrivate: expected 64-byte expansion")
	}
	h := make([]byte, 32)
	copy(h, expanded64[:32])
	h[0] &= 248
	h[31] &= 127
	h[31] |= 64
	return ModNScalarFromBytesLE(h), nil
}

// KeyPrefix returns bytes [32:64] of a 64-byte SHA-512 expansion, the
// prefix EdDSA deterministic nonce derivation mixes with the message.
func KeyPrefix(expanded64 []byte) ([]byte, error) {
	if len(expanded64) != 64 {
		return nil, newError(ErrInvalidEncoding, "keyPrefix: expected 64-byte expansion")
	}
	out := make([]byte, 32)
	copy(out, expanded64[32:])
	return out, nil
}
