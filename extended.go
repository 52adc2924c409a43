// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "math/big"

// ExtendedPoint represents a point on the twisted-Edwards curve in extended
// projective coordinates (X, Y, Z, T) with Z != 0 and T*Z = X*Y, per
// spec.md §3. The represented affine point is (X/Z, Y/Z).
//
// The group law below follows the Hisil-Wong-Carter-Dawson 2008 formulae
// ("dbl-2008-hwcd" for doubling, "add-2008-hwcd-4" for addition), written
// out with named intermediates in the same cost-accounting style the
// teacher's curve.go uses for its Jacobian-coordinate formulae.
type ExtendedPoint struct {
	X, Y, Z, T FieldVal
}

var (
	fvZero = FieldValFromUint64(0)
	fvOne  = FieldValFromUint64(1)

	// Identity is the neutral element of the curve group, (0, 1, 1, 0).
	Identity = ExtendedPoint{X: fvZero, Y: fvOne, Z: fvOne, T: fvZero}

	baseExtendedSingleton = ExtendedPoint{X: baseX, Y: baseY, Z: fvOne, T: baseX.Mul(baseY)}
)

// BaseExtended returns the canonical base point in extended coordinates.
func BaseExtended() ExtendedPoint {
	return baseExtendedSingleton
}

// FromAffine lifts an affine point into extended coordinates, mapping the
// affine identity (0,1) to Identity. The teacher's runtime guard against
// being handed an already-extended point ("no Z, T attributes") has no
// counterpart here: AffinePoint simply has no Z or T fields, so the type
// system rules the case out at compile time, per spec.md §9's design note.
func FromAffine(p AffinePoint) ExtendedPoint {
	if p.X.IsZero() && p.Y.Equals(fvOne) {
		return Identity
	}
	return ExtendedPoint{X: p.X, Y: p.Y, Z: fvOne, T: p.X.Mul(p.Y)}
}

// ToAffine converts e to affine coordinates. When invZ is non-nil it is
// used as the precomputed inverse of e.Z (supporting batch conversion via
// ToAffineBatch); otherwise Z is inverted directly.
func (e ExtendedPoint) ToAffine(invZ *FieldVal) AffinePoint {
	iz := e.Z.Invert()
	if invZ != nil {
		iz = *invZ
	}
	return AffinePoint{X: e.X.Mul(iz), Y: e.Y.Mul(iz)}
}

// ToAffineBatch converts points to affine coordinates using a single
// modular inversion (via InvertBatch) shared across every point's Z value,
// per spec.md's toAffineBatch.
func ToAffineBatch(points []ExtendedPoint) []AffinePoint {
	zs := make([]FieldVal, len(points))
	for i, p := range points {
		zs[i] = p.Z
	}
	invs := InvertBatch(zs)
	out := make([]AffinePoint, len(points))
	for i, p := range points {
		out[i] = p.ToAffine(&invs[i])
	}
	return out
}

// NormalizeZ batch-converts points to affine and back, so that every
// returned point has Z = 1. Precompute tables are normalized this way so
// later wNAF lookups skip per-lookup Z-normalization, per spec.md §3.
func NormalizeZ(points []ExtendedPoint) []ExtendedPoint {
	affine := ToAffineBatch(points)
	out := make([]ExtendedPoint, len(points))
	for i, a := range affine {
		out[i] = FromAffine(a)
	}
	return out
}

// Equals reports whether e and g represent the same projective point, via
// the cross-product test X1*Z2 = X2*Z1 ∧ Y1*Z2 = Y2*Z1.
func (e ExtendedPoint) Equals(g ExtendedPoint) bool {
	return e.X.Mul(g.Z).Equals(g.X.Mul(e.Z)) && e.Y.Mul(g.Z).Equals(g.Y.Mul(e.Z))
}

// Negate returns -e = (-X, Y, Z, -T).
func (e ExtendedPoint) Negate() ExtendedPoint {
	return ExtendedPoint{X: e.X.Negate(), Y: e.Y, Z: e.Z, T: e.T.Negate()}
}

// Double returns e+e, per the dbl-2008-hwcd formula (cost 3M+4S).
func (e ExtendedPoint) Double() ExtendedPoint {
	a := e.X.Square()                       // A = X1^2
	b := e.Y.Square()                       // B = Y1^2
	c := e.Z.Square().MulSmall(2)           // C = 2*Z1^2
	d := a.Negate()                          // D = a*A, a = -1
	xy := e.X.Add(e.Y)
	ee := xy.Square().Sub(a).Sub(b) // E = (X1+Y1)^2 - A - B
	g := d.Add(b)                            // G = D+B
	f := g.Sub(c)                            // F = G-C
	h := d.Sub(b)                            // H = D-B
	return ExtendedPoint{
		X: ee.Mul(f),
		Y: g.Mul(h),
		Z: f.Mul(g),
		T: ee.Mul(h),
	}
}

// Add returns e+g, per the add-2008-hwcd-4 formula (cost 8M). It detects
// the coincident-point case F = B-A = 0 and forwards to Double, matching
// spec.md §4.4.
func (e ExtendedPoint) Add(g ExtendedPoint) ExtendedPoint {
	a := e.Y.Sub(e.X).Mul(g.Y.Add(g.X)) // A = (Y1-X1)*(Y2+X2)
	b := e.Y.Add(e.X).Mul(g.Y.Sub(g.X)) // B = (Y1+X1)*(Y2-X2)
	f := b.Sub(a)                       // F = B-A
	if f.IsZero() {
		return e.Double()
	}
	c := e.Z.MulSmall(2).Mul(g.T) // C = 2*Z1*T2
	d := e.T.MulSmall(2).Mul(g.Z) // D = 2*T1*Z2
	eSum := d.Add(c)
	hSum := b.Add(a)
	hDiff := d.Sub(c)
	return ExtendedPoint{
		X: eSum.Mul(f),
		Y: hSum.Mul(hDiff),
		Z: f.Mul(hSum),
		T: eSum.Mul(hDiff),
	}
}

// Subtract returns e-g.
func (e ExtendedPoint) Subtract(g ExtendedPoint) ExtendedPoint {
	return e.Add(g.Negate())
}

// MultiplyUnsafe computes scalar*e using variable-time right-to-left
// double-and-add on scalar mod ℓ. Intended only for public inputs such as
// signature verification, never for secret scalars, per spec.md §4.4.
// It rejects a non-positive scalar with ErrInvalidArgument, matching the
// "multiplyUnsafe(0) is rejected" design note in spec.md §9.
func (e ExtendedPoint) MultiplyUnsafe(scalar *big.Int) (ExtendedPoint, error) {
	if !IsValidScalar(scalar) {
		return Identity, newError(ErrInvalidArgument, "multiplyUnsafe: scalar must be a positive integer")
	}
	n := new(big.Int).Mod(scalar, L)
	result := Identity
	addend := e
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Double()
		n.Rsh(n, 1)
	}
	return result, nil
}

// IsTorsion reports whether e has order dividing the cofactor 8, i.e.
// whether 8*e is the identity. It is used both by tests exercising
// spec.md §8's "for every point T in TORSION_SUBGROUP: 8*T == ZERO" and by
// Verify's cofactor-clearing step.
func (e ExtendedPoint) IsTorsion() bool {
	eight, _ := e.MultiplyUnsafe(big.NewInt(8))
	return eight.Equals(Identity)
}
