// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

// FromRistrettoBytes decodes a 32-byte Ristretto255 encoding into an
// extended point, per spec.md §4.4's fromRistrettoBytes. It rejects
// non-canonical encodings, non-positive s, a non-square v·u₂², a negative
// t, and y = 0.
func FromRistrettoBytes(b []byte) (ExtendedPoint, error) {
	if len(b) != 32 {
		return Identity, newError(ErrInvalidEncoding, "fromRistrettoBytes: expected 32 bytes")
	}
	s := Bytes255ToNumberLE(b)

	canonical, err := NumberToBytesPadded(s.BigInt(), 32)
	if err != nil || !bytesEqual(canonical, b) {
		return Identity, newError(ErrInvalidEncoding, "fromRistrettoBytes: non-canonical encoding")
	}
	if s.IsNegative() {
		return Identity, newError(ErrInvalidEncoding, "fromRistrettoBytes: s is negative")
	}

	// spec.md §4.4: u₁ = 1 + a·s², u₂ = 1 - a·s² (a = -1 collapses these to
	// 1-s² and 1+s², but the computation follows `a` literally so Ristretto
	// test vectors hold regardless of which curve this package is built
	// for).
	s2 := s.Square()
	u1 := fvOne.Add(A.Mul(s2))
	u2 := fvOne.Sub(A.Mul(s2))
	v := A.Mul(D).Mul(u1.Square()).Sub(u2.Square())

	ok, inv := InvertSqrt(v.Mul(u2.Square()))
	if !ok {
		return Identity, newError(ErrNotOnCurve, "fromRistrettoBytes: v*u2^2 is not a square")
	}

	dx := inv.Mul(u2)
	dy := inv.Mul(dx).Mul(v)
	x := s.MulSmall(2).Mul(dx)
	if x.IsNegative() {
		x = x.Negate()
	}
	y := u1.Mul(dy)
	t := x.Mul(y)

	if t.IsNegative() || y.IsZero() {
		return Identity, newError(ErrNotOnCurve, "fromRistrettoBytes: invalid t or y")
	}
	return ExtendedPoint{X: x, Y: y, Z: fvOne, T: t}, nil
}

// ToRistrettoBytes encodes e as the canonical 32-byte Ristretto255
// encoding, per spec.md §4.4's toRistrettoBytes.
func (e ExtendedPoint) ToRistrettoBytes() ([32]byte, error) {
	u1 := e.Z.Add(e.Y).Mul(e.Z.Sub(e.Y))
	u2 := e.X.Mul(e.Y)

	_, invsqrt := InvertSqrt(u1.Mul(u2.Square()))

	d1 := invsqrt.Mul(u1)
	d2 := invsqrt.Mul(u2)
	zInv := d1.Mul(d2).Mul(e.T)

	x, y := e.X, e.Y
	var d FieldVal
	if e.T.Mul(zInv).IsNegative() {
		x, y = y.Mul(sqrtM1), x.Mul(sqrtM1)
		d = d1.Mul(invSqrtAMinusD)
	} else {
		d = d2
	}

	if x.Mul(zInv).IsNegative() {
		y = y.Negate()
	}
	s := e.Z.Sub(y).Mul(d)
	if s.IsNegative() {
		s = s.Negate()
	}

	raw, err := NumberToBytesPadded(s.BigInt(), 32)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], raw)
	return out, nil
}

// FromRistrettoHash maps a 64-byte hash output to a Ristretto255 point via
// the two-Elligator construction of spec.md §4.4's fromRistrettoHash.
func FromRistrettoHash(h []byte) (ExtendedPoint, error) {
	if len(h) != 64 {
		return Identity, newError(ErrInvalidEncoding, "fromRistrettoHash: expected 64 bytes")
	}
	r0 := Bytes255ToNumberLE(h[:32])
	r1 := Bytes255ToNumberLE(h[32:])
	p0 := calcElligatorRistrettoMap(r0)
	p1 := calcElligatorRistrettoMap(r1)
	return p0.Add(p1), nil
}

// calcElligatorRistrettoMap implements Ristretto255's Elligator-2 map, per
// spec.md §4.4.
func calcElligatorRistrettoMap(r0 FieldVal) ExtendedPoint {
	r := sqrtM1.Mul(r0.Square())
	ns := r.Add(fvOne).Mul(oneMinusDSq)
	c := fvOne.Negate()
	dVal := c.Sub(D.Mul(r)).Mul(r.Add(D))

	isSq, s := UVRatio(ns, dVal)
	sp := s.Mul(r0)
	if !sp.IsNegative() {
		sp = sp.Negate()
	}
	if !isSq {
		s = sp
		c = r
	}

	nt := c.Mul(r.Sub(fvOne)).Mul(dMinusOneSq).Sub(dVal)
	s2 := s.Square()
	w0 := s.MulSmall(2).Mul(dVal)
	w1 := nt.Mul(sqrtAdMinusOne)
	w2 := fvOne.Sub(s2)
	w3 := fvOne.Add(s2)

	return ExtendedPoint{
		X: w0.Mul(w3),
		Y: w2.Mul(w1),
		Z: w1.Mul(w3),
		T: w0.Mul(w2),
	}
}

// RistrettoEquals reports whether e and g represent the same Ristretto255
// element: either the same extended point outright, or related by
// X₁·Y₂ = X₂·Y₁ (the a=-1 specialization of spec.md's ristrettoEquals).
func (e ExtendedPoint) RistrettoEquals(g ExtendedPoint) bool {
	if e.Equals(g) {
		return true
	}
	return e.X.Mul(g.Y).Equals(g.X.Mul(e.Y))
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
