// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "math/big"

// groupOrder is ℓ = 2^252 + 27742317777372353535851937790883648493, the
// order of the Ed25519 base point (and of the Ristretto255 group).
var groupOrder = mustBigFromDecimal(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989")

// ModNScalar represents an element of Z/ℓZ, reduced into the canonical
// range [0, ℓ) after every producing operation.
type ModNScalar struct {
	n big.Int
}

// NewModNScalar returns a ModNScalar reduced from the given big integer.
func NewModNScalar(v *big.Int) ModNScalar {
	var s ModNScalar
	s.n.Mod(v, groupOrder)
	return s
}

// ModNScalarFromUint64 returns the ModNScalar representing the given small
// unsigned integer.
func ModNScalarFromUint64(v uint64) ModNScalar {
	var s ModNScalar
	s.n.SetUint64(v)
	return s
}

// ModNScalarFromBytesLE decodes b as a little-endian integer and reduces it
// modulo ℓ.
func ModNScalarFromBytesLE(b []byte) ModNScalar {
	return NewModNScalar(BytesToNumberLE(b))
}

// BigInt returns the canonical representative of s as a big.Int in [0, ℓ).
func (s ModNScalar) BigInt() *big.Int {
	return new(big.Int).Set(&s.n)
}

// IsZero reports whether s is the additive identity.
func (s ModNScalar) IsZero() bool {
	return s.n.Sign() == 0
}

// Equals reports whether s and t represent the same residue modulo ℓ.
func (s ModNScalar) Equals(t ModNScalar) bool {
	return s.n.Cmp(&t.n) == 0
}

// Add returns s+t mod ℓ.
func (s ModNScalar) Add(t ModNScalar) ModNScalar {
	var out ModNScalar
	out.n.Add(&s.n, &t.n)
	out.n.Mod(&out.n, groupOrder)
	return out
}

// Sub returns s-t mod ℓ.
func (s ModNScalar) Sub(t ModNScalar) ModNScalar {
	var out ModNScalar
	out.n.Sub(&s.n, &t.n)
	out.n.Mod(&out.n, groupOrder)
	return out
}

// Mul returns s*t mod ℓ.
func (s ModNScalar) Mul(t ModNScalar) ModNScalar {
	var out ModNScalar
	out.n.Mul(&s.n, &t.n)
	out.n.Mod(&out.n, groupOrder)
	return out
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s ModNScalar) Bytes() [32]byte {
	b, err := NumberToBytesPadded(&s.n, 32)
	if err != nil {
		// s is always already reduced below ℓ < 2^253, so this cannot fail.
		panic(err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// InRange reports whether s's canonical representative lies in [0, ℓ), i.e.
// whether the value it was built from did not need reduction. Used when
// decoding untrusted signature bytes, where spec.md requires S < ℓ.
func (s ModNScalar) InRange(raw *big.Int) bool {
	return raw.Sign() >= 0 && raw.Cmp(groupOrder) < 0
}
