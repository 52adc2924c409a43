// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"math/big"
)

// Hasher is the external SHA-512 collaborator spec.md §1 calls out as
// consumed, not reimplemented: a pure function from an arbitrary-length
// message to its 64-byte digest.
type Hasher func(msg []byte) [64]byte

// RandReader is the external cryptographic random-bytes collaborator
// spec.md §1 calls out as consumed, not reimplemented.
type RandReader func(n int) ([]byte, error)

func sha512Digest(msg []byte) [64]byte {
	return sha512.Sum512(msg)
}

func cryptoRandReader(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, newError(ErrEnvMissing, "rand: "+err.Error())
	}
	return b, nil
}

// DefaultHasher wraps crypto/sha512.Sum512.
var DefaultHasher Hasher = sha512Digest

// DefaultRand wraps crypto/rand.Reader.
var DefaultRand RandReader = cryptoRandReader

// signConfig holds the injectable collaborators Sign/Verify/GetPublicKey/
// GeneratePrivateKey consult, defaulted to DefaultHasher/DefaultRand and
// overridable via SignOption, grounded on the teacher's SignOptions/
// crypto.SignerOpts functional-option pattern in sign.go, generalized from
// a single hash-algorithm choice to an injectable hasher/rand pair.
type signConfig struct {
	hasher Hasher
	rand   RandReader
}

func defaultSignConfig() signConfig {
	return signConfig{hasher: DefaultHasher, rand: DefaultRand}
}

// SignOption overrides a collaborator consulted by this package's signing,
// verification, and key-derivation entry points.
type SignOption func(*signConfig)

// WithHasher overrides the SHA-512 collaborator.
func WithHasher(h Hasher) SignOption {
	return func(c *signConfig) { c.hasher = h }
}

// WithRandReader overrides the random-bytes collaborator.
func WithRandReader(r RandReader) SignOption {
	return func(c *signConfig) { c.rand = r }
}

func applyOptions(opts []SignOption) signConfig {
	cfg := defaultSignConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Signature is an EdDSA signature (R, S), per spec.md §3.
type Signature struct {
	R AffinePoint
	S ModNScalar
}

// MarshalBinary encodes sig as 64 bytes: R compressed (32) ‖ S
// little-endian (32).
func (sig Signature) MarshalBinary() ([]byte, error) {
	rBytes, err := sig.R.Bytes()
	if err != nil {
		return nil, err
	}
	sBytes := sig.S.Bytes()
	out := make([]byte, 64)
	copy(out[:32], rBytes[:])
	copy(out[32:], sBytes[:])
	return out, nil
}

// UnmarshalBinary decodes a 64-byte signature, requiring S ∈ [0, ℓ).
func (sig *Signature) UnmarshalBinary(b []byte) error {
	if len(b) != 64 {
		return newError(ErrInvalidEncoding, "signature: expected 64 bytes")
	}
	r, err := DecodePoint(b[:32])
	if err != nil {
		return err
	}
	sInt := BytesToNumberLE(b[32:])
	if sInt.Cmp(L) >= 0 {
		return newError(ErrOutOfRange, "signature: s >= group order")
	}
	sig.R = r
	sig.S = NewModNScalar(sInt)
	return nil
}

// MarshalText encodes p as lowercase hex of its compressed form.
func (p AffinePoint) MarshalText() ([]byte, error) {
	b, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return []byte(hex.EncodeToString(b[:])), nil
}

// UnmarshalText decodes p from lowercase hex of a compressed form.
func (p *AffinePoint) UnmarshalText(text []byte) error {
	b, err := HexToBytes(string(text))
	if err != nil {
		return err
	}
	decoded, err := DecodePoint(b)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// ConstantTimeEqual reports whether f and g represent the same residue
// using crypto/subtle.ConstantTimeCompare over their canonical 32-byte
// encodings, distinct from Equals' (potentially early-exiting) big.Int
// comparison -- for callers comparing field elements derived from
// attacker-observable data.
func (f FieldVal) ConstantTimeEqual(g FieldVal) bool {
	a, err1 := NumberToBytesPadded(f.BigInt(), 32)
	b, err2 := NumberToBytesPadded(g.BigInt(), 32)
	if err1 != nil || err2 != nil {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeEqual reports whether s and t represent the same residue
// using crypto/subtle.ConstantTimeCompare over their canonical 32-byte
// encodings.
func (s ModNScalar) ConstantTimeEqual(t ModNScalar) bool {
	a := s.Bytes()
	b := t.Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// GeneratePrivateKey produces a random private-key seed via rejection
// sampling over the injected random-bytes collaborator, per spec.md
// §4.7's randomPrivateKey.
func GeneratePrivateKey(opts ...SignOption) ([]byte, error) {
	cfg := applyOptions(opts)
	return RandomPrivateKey(cfg.rand)
}

// GetPublicKey derives the public point for a private key (any
// NormalizePrivateKey-accepted form), returning its 32-byte compressed
// encoding, per spec.md §4.6's getPublicKey.
func GetPublicKey(pk interface{}, opts ...SignOption) ([32]byte, error) {
	cfg := applyOptions(opts)
	p, err := FromPrivateKey(pk, cfg.hasher)
	if err != nil {
		return [32]byte{}, err
	}
	return p.Bytes()
}

// Sign computes the EdDSA signature over message under private key pk, per
// spec.md §4.6's sign.
func Sign(message []byte, pk interface{}, opts ...SignOption) ([64]byte, error) {
	cfg := applyOptions(opts)

	norm, err := NormalizePrivateKey(pk)
	if err != nil {
		return [64]byte{}, err
	}
	expanded := cfg.hasher(norm)
	p, err := EncodePrivate(expanded[:])
	if err != nil {
		return [64]byte{}, err
	}
	base := BaseAffine()
	pubPoint, err := base.Multiply(p.BigInt())
	if err != nil {
		return [64]byte{}, err
	}
	pubRaw, err := pubPoint.Bytes()
	if err != nil {
		return [64]byte{}, err
	}

	prefix, err := KeyPrefix(expanded[:])
	if err != nil {
		return [64]byte{}, err
	}
	nonceInput := make([]byte, 0, len(prefix)+len(message))
	nonceInput = append(nonceInput, prefix...)
	nonceInput = append(nonceInput, message...)
	nonceBytes := cfg.hasher(nonceInput)
	r := ModNScalarFromBytesLE(nonceBytes[:])

	rPoint, err := base.Multiply(r.BigInt())
	if err != nil {
		return [64]byte{}, err
	}
	rRaw, err := rPoint.Bytes()
	if err != nil {
		return [64]byte{}, err
	}

	hsInput := make([]byte, 0, 32+32+len(message))
	hsInput = append(hsInput, rRaw[:]...)
	hsInput = append(hsInput, pubRaw[:]...)
	hsInput = append(hsInput, message...)
	hsBytes := cfg.hasher(hsInput)
	hs := ModNScalarFromBytesLE(hsBytes[:])

	s := r.Add(hs.Mul(p))
	sig := Signature{R: rPoint, S: s}
	out, err := sig.MarshalBinary()
	if err != nil {
		return [64]byte{}, err
	}
	var result [64]byte
	copy(result[:], out)
	return result, nil
}

// mulUnsafeOrIdentity multiplies e by scalar via MultiplyUnsafe, treating a
// zero scalar as yielding Identity rather than the ErrInvalidArgument
// MultiplyUnsafe itself raises for non-positive input -- Verify must stay
// total over every structurally valid (if degenerate) decoded signature.
func mulUnsafeOrIdentity(e ExtendedPoint, scalar *big.Int) ExtendedPoint {
	if scalar.Sign() == 0 {
		return Identity
	}
	r, _ := e.MultiplyUnsafe(scalar)
	return r
}

// Verify reports whether sigBytes is a valid EdDSA signature over message
// under the public key pubBytes, per spec.md §4.6's verify. Structural
// decode failures (malformed signature or public-key bytes) are returned
// as an error; any other mismatch returns (false, nil), never an error --
// per spec.md §7, a merely-invalid signature must never be reported as a
// failure distinct from rejection.
func Verify(sigBytes, message, pubBytes []byte, opts ...SignOption) (bool, error) {
	cfg := applyOptions(opts)

	var sig Signature
	if err := sig.UnmarshalBinary(sigBytes); err != nil {
		return false, err
	}
	pub, err := DecodePoint(pubBytes)
	if err != nil {
		return false, err
	}

	rRaw, err := sig.R.Bytes()
	if err != nil {
		return false, err
	}
	pubRaw, err := pub.Bytes()
	if err != nil {
		return false, err
	}
	hsInput := make([]byte, 0, 32+32+len(message))
	hsInput = append(hsInput, rRaw[:]...)
	hsInput = append(hsInput, pubRaw[:]...)
	hsInput = append(hsInput, message...)
	hsBytes := cfg.hasher(hsInput)
	hs := ModNScalarFromBytesLE(hsBytes[:])

	rExt := FromAffine(sig.R)
	pExt := FromAffine(pub)

	hsP := mulUnsafeOrIdentity(pExt, hs.BigInt())
	sBase := mulUnsafeOrIdentity(BaseExtended(), sig.S.BigInt())

	lhs := rExt.Add(hsP).Subtract(sBase)
	lhs8 := mulUnsafeOrIdentity(lhs, big.NewInt(8))

	return lhs8.Equals(Identity), nil
}
