// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "math/big"

// AffinePoint represents a point (x, y) on the twisted-Edwards curve, per
// spec.md §3. Construction performs no on-curve check -- validation happens
// implicitly through DecodePoint's uvRatio success, matching the reference
// behavior spec.md §4.3 calls out explicitly.
//
// windowSize is the optional wNAF precomputation advisory spec.md's
// `_setWindowSize`/`precompute` describe; it is consulted only when this
// point's address is passed as a Multiply hint.
type AffinePoint struct {
	X, Y       FieldVal
	windowSize int
}

// baseAffineSingleton is the one stable *AffinePoint identity the base
// point's precompute table is always cached under, regardless of how many
// separate AffinePoint values a caller constructs representing BASE. See
// wnaf.go's baseRegistryKey and DESIGN.md Open Question 1.
var baseAffineSingleton = AffinePoint{X: baseX, Y: baseY, windowSize: 8}

// NewAffinePoint constructs the point (x, y) without verifying it lies on
// the curve, matching spec.md §4.3's "no on-curve verification at
// construction".
func NewAffinePoint(x, y FieldVal) AffinePoint {
	return AffinePoint{X: x, Y: y}
}

// DecodePoint decodes a 32-byte RFC 8032 §5.1.3 compressed point encoding.
// It reads y from bytes[0:31] ‖ (bytes[31]&0x7F), requiring y < p, solves
// x² = (y²-1)/(d·y²+1) via UVRatio, and selects the root whose parity
// matches the sign bit in bytes[31]&0x80.
func DecodePoint(b []byte) (AffinePoint, error) {
	if len(b) != 32 {
		return AffinePoint{}, newError(ErrInvalidEncoding, "decodePoint: expected 32 bytes")
	}

	signBit := b[31]&0x80 != 0
	yBytes := make([]byte, 32)
	copy(yBytes, b)
	yBytes[31] &= 0x7F

	yInt := BytesToNumberLE(yBytes)
	if yInt.Cmp(P) >= 0 {
		return AffinePoint{}, newError(ErrOutOfRange, "decodePoint: y >= p")
	}
	y := NewFieldVal(yInt)

	y2 := y.Square()
	u := y2.Sub(fvOne)
	v := D.Mul(y2).Add(fvOne)
	ok, x := UVRatio(u, v)
	if !ok {
		return AffinePoint{}, newError(ErrNotOnCurve, "decodePoint: x^2 is not a quadratic residue")
	}

	isXOdd := x.IsNegative()
	if isXOdd != signBit {
		x = x.Negate()
	}
	return AffinePoint{X: x, Y: y}, nil
}

// Bytes returns the 32-byte compressed encoding of p: the little-endian
// encoding of Y with bit 255 set to X's parity, per spec.md's toRawBytes.
func (p AffinePoint) Bytes() ([32]byte, error) {
	raw, err := NumberToBytesPadded(p.Y.BigInt(), 32)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], raw)
	if p.X.IsNegative() {
		out[31] |= 0x80
	}
	return out, nil
}

// FromPrivateKey derives the public point BASE·encodePrivate(hash(pk)) from
// a private key in any NormalizePrivateKey-accepted form, per spec.md
// §4.3's fromPrivateKey.
func FromPrivateKey(pk interface{}, hasher Hasher) (AffinePoint, error) {
	norm, err := NormalizePrivateKey(pk)
	if err != nil {
		return AffinePoint{}, err
	}
	expanded := hasher(norm)
	scalar, err := EncodePrivate(expanded[:])
	if err != nil {
		return AffinePoint{}, err
	}
	base := BaseAffine()
	return base.Multiply(scalar.BigInt())
}

// ToX25519 converts p's y-coordinate to the corresponding Montgomery-curve
// u-coordinate: (1+y)/(1-y) mod p.
func (p AffinePoint) ToX25519() FieldVal {
	num := fvOne.Add(p.Y)
	den := fvOne.Sub(p.Y)
	return num.Mul(den.Invert())
}

// Equals reports whether p and q are the same affine point.
func (p AffinePoint) Equals(q AffinePoint) bool {
	return p.X.Equals(q.X) && p.Y.Equals(q.Y)
}

// Negate returns -p.
func (p AffinePoint) Negate() AffinePoint {
	return FromAffine(p).Negate().ToAffine(nil)
}

// Add returns p+q.
func (p AffinePoint) Add(q AffinePoint) AffinePoint {
	return FromAffine(p).Add(FromAffine(q)).ToAffine(nil)
}

// Subtract returns p-q.
func (p AffinePoint) Subtract(q AffinePoint) AffinePoint {
	return FromAffine(p).Subtract(FromAffine(q)).ToAffine(nil)
}

// Multiply returns scalar*p using the constant-time wNAF ladder, keyed on
// p's own address so repeated calls on the same *AffinePoint reuse any
// precompute table built via Precompute/SetWindowSize. A pointer receiver
// is used deliberately: it is the address identity the precompute registry
// keys on, per spec.md §3's "key identity is by object identity".
func (p *AffinePoint) Multiply(scalar *big.Int) (AffinePoint, error) {
	e, err := FromAffine(*p).Multiply(scalar, p)
	if err != nil {
		return AffinePoint{}, err
	}
	return e.ToAffine(nil), nil
}

// SetWindowSize records w as p's wNAF precomputation advisory and evicts
// any precompute table cached under p's address, forcing recomputation on
// the next Multiply call, per spec.md §4.3's `_setWindowSize`.
func (p *AffinePoint) SetWindowSize(w int) {
	p.windowSize = w
	registry.evict(p)
}

// Precompute builds and caches the wNAF precompute table for point at
// window size w (building it via a dummy Multiply(1) call), returning the
// point the table is keyed under: point itself if it already represents
// BASE, otherwise a shallow clone, matching spec.md §4.3's precompute.
func Precompute(w int, point *AffinePoint) (*AffinePoint, error) {
	if point == nil {
		base := baseAffineSingleton
		point = &base
	}
	var target *AffinePoint
	if point.Equals(BaseAffine()) {
		target = &baseAffineSingleton
	} else {
		clone := *point
		target = &clone
	}
	target.SetWindowSize(w)
	if _, err := target.Multiply(big.NewInt(1)); err != nil {
		return nil, err
	}
	return target, nil
}
