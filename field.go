// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "math/big"

// fieldPrime is p = 2^255 - 19, the prime modulus of the Curve25519 base
// field.
var fieldPrime = mustBigFromDecimal(
	"57896044618658097711785492504343953926634992332820282019728792003956564819949")

// FieldVal represents an element of GF(p) for p = 2^255-19. The zero value
// is the field element 0. Every producing operation reduces its result into
// the canonical range [0, p) before returning, so two FieldVal values
// compare equal with Equals if and only if they represent the same residue.
type FieldVal struct {
	n big.Int
}

// NewFieldVal returns a FieldVal reduced from the given big integer.
func NewFieldVal(v *big.Int) FieldVal {
	var f FieldVal
	f.n.Mod(v, fieldPrime)
	return f
}

// FieldValFromUint64 returns the FieldVal representing the given small
// unsigned integer.
func FieldValFromUint64(v uint64) FieldVal {
	var f FieldVal
	f.n.SetUint64(v)
	return f
}

// FieldValFromHex parses a big-endian hex string into a FieldVal, reducing
// it modulo p. Panics on malformed hex; intended for literal constants.
func FieldValFromHex(hex string) FieldVal {
	return NewFieldVal(mustBigFromHex(hex))
}

// BigInt returns the canonical representative of f as a big.Int in [0, p).
// The returned value is a copy; mutating it does not affect f.
func (f FieldVal) BigInt() *big.Int {
	return new(big.Int).Set(&f.n)
}

// IsZero reports whether f is the additive identity.
func (f FieldVal) IsZero() bool {
	return f.n.Sign() == 0
}

// IsNegative reports whether the least-significant bit of f's canonical
// representative is 1, per spec edIsNegative.
func (f FieldVal) IsNegative() bool {
	return f.n.Bit(0) == 1
}

// Equals reports whether f and g represent the same residue modulo p.
func (f FieldVal) Equals(g FieldVal) bool {
	return f.n.Cmp(&g.n) == 0
}

// Negate returns -f mod p.
func (f FieldVal) Negate() FieldVal {
	var out FieldVal
	out.n.Sub(fieldPrime, &f.n)
	out.n.Mod(&out.n, fieldPrime)
	return out
}

// Add returns f+g mod p.
func (f FieldVal) Add(g FieldVal) FieldVal {
	var out FieldVal
	out.n.Add(&f.n, &g.n)
	out.n.Mod(&out.n, fieldPrime)
	return out
}

// Sub returns f-g mod p.
func (f FieldVal) Sub(g FieldVal) FieldVal {
	return f.Add(g.Negate())
}

// Mul returns f*g mod p.
func (f FieldVal) Mul(g FieldVal) FieldVal {
	var out FieldVal
	out.n.Mul(&f.n, &g.n)
	out.n.Mod(&out.n, fieldPrime)
	return out
}

// MulSmall returns f*k mod p for a small signed multiplier k.
func (f FieldVal) MulSmall(k int64) FieldVal {
	var out FieldVal
	out.n.Mul(&f.n, big.NewInt(k))
	out.n.Mod(&out.n, fieldPrime)
	return out
}

// Square returns f*f mod p.
func (f FieldVal) Square() FieldVal {
	return f.Mul(f)
}

// Pow2 returns f raised to 2^k mod p via k iterated squarings, per
// spec.md's pow2 primitive.
func (f FieldVal) Pow2(k uint) FieldVal {
	out := f
	for i := uint(0); i < k; i++ {
		out = out.Square()
	}
	return out
}

// Invert returns the multiplicative inverse of f modulo p via the extended
// Euclidean algorithm. It panics if f is zero, matching spec.md's "no
// Fermat's-little-theorem fallback, fails when a ≡ 0" contract — callers at
// the package boundary must never pass a zero field element to Invert.
func (f FieldVal) Invert() FieldVal {
	if f.IsZero() {
		panic(newError(ErrInvalidArgument, "cannot invert zero field element"))
	}
	var out FieldVal
	if out.n.ModInverse(&f.n, fieldPrime) == nil {
		panic(newError(ErrInvalidArgument, "field element has no inverse"))
	}
	return out
}

// InvertBatch computes the multiplicative inverse of every non-zero entry
// of v using Montgomery's trick: a single modular inversion plus 3(n-1)
// multiplications instead of n inversions. Entries equal to zero are left
// as zero in the result, matching spec.md's invertBatch contract.
func InvertBatch(v []FieldVal) []FieldVal {
	out := make([]FieldVal, len(v))
	if len(v) == 0 {
		return out
	}

	// Running product of non-zero entries seen so far; zero entries are
	// skipped and their slot in prefix mirrors the previous product so the
	// final backward pass leaves them untouched.
	prefix := make([]FieldVal, len(v))
	acc := FieldValFromUint64(1)
	for i, x := range v {
		if !x.IsZero() {
			acc = acc.Mul(x)
		}
		prefix[i] = acc
	}

	inv := acc.Invert()
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].IsZero() {
			continue
		}
		if i == 0 {
			out[i] = inv
		} else {
			out[i] = inv.Mul(prefix[i-1])
		}
		inv = inv.Mul(v[i])
	}
	return out
}

// Pow2_252_3 returns f^((p-5)/8) mod p via the unrolled addition chain that
// spec.md §4.1 mandates: build up successive 2^k-1 exponent patterns (9, 11,
// 31, 1023, 2^20-1, 2^40-1, 2^50-1, 2^100-1, 2^200-1, 2^250-1) by repeated
// squaring and multiplying back in the base, the same chain shape the
// Curve25519 reference implementations use, so uvRatio-derived test vectors
// pass bit-for-bit.
func (f FieldVal) Pow2_252_3() FieldVal {
	z2 := f.Square()                 // f^2
	z9 := z2.Pow2(2).Mul(f)          // f^9
	z11 := z9.Mul(z2)                // f^11
	z2_5_0 := z11.Square().Mul(z9)   // f^(2^5-1) = f^31
	z2_10_0 := z2_5_0.Pow2(5).Mul(z2_5_0)   // f^(2^10-1)
	z2_20_0 := z2_10_0.Pow2(10).Mul(z2_10_0) // f^(2^20-1)
	z2_40_0 := z2_20_0.Pow2(20).Mul(z2_20_0) // f^(2^40-1)
	z2_50_0 := z2_40_0.Pow2(10).Mul(z2_10_0) // f^(2^50-1)
	z2_100_0 := z2_50_0.Pow2(50).Mul(z2_50_0) // f^(2^100-1)
	z2_200_0 := z2_100_0.Pow2(100).Mul(z2_100_0) // f^(2^200-1)
	z2_250_0 := z2_200_0.Pow2(50).Mul(z2_50_0)   // f^(2^250-1)
	return z2_250_0.Pow2(2).Mul(f) // f^(2^252-3) = f^((p-5)/8)
}

// sqrtM1 is √-1 mod p, used by uvRatio when the straightforward candidate
// root is off by a factor of √-1.
var sqrtM1 = FieldValFromHex(
	"2b8324804fc1df0b2b4d00993dfbd7a72f431806ad2fe478c4ee1b274a0ea0b0")

// UVRatio returns (true, x) such that x^2 * v ≡ u (mod p) when such an x
// exists, and reports invalidity otherwise. It implements spec.md's uvRatio:
// the single primitive shared by point decompression and Ristretto255.
func UVRatio(u, v FieldVal) (bool, FieldVal) {
	v3 := v.Square().Mul(v)
	v7 := v3.Square().Mul(v)
	x := u.Mul(v3).Mul(u.Mul(v7).Pow2_252_3())

	vx2 := v.Mul(x.Square())
	uNeg := u.Negate()

	switch {
	case vx2.Equals(u):
		return true, canonicalNegate(x)
	case vx2.Equals(uNeg):
		return true, canonicalNegate(x.Mul(sqrtM1))
	case vx2.Equals(uNeg.Mul(sqrtM1)):
		return false, canonicalNegate(x.Mul(sqrtM1))
	default:
		return false, canonicalNegate(x)
	}
}

// canonicalNegate negates x when its canonical representative is "negative"
// per edIsNegative, leaving it unchanged otherwise -- the final
// canonicalization step every uvRatio branch performs.
func canonicalNegate(x FieldVal) FieldVal {
	if x.IsNegative() {
		return x.Negate()
	}
	return x
}

// InvertSqrt returns UVRatio(1, v).
func InvertSqrt(v FieldVal) (bool, FieldVal) {
	return UVRatio(FieldValFromUint64(1), v)
}
