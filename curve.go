// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "math/big"

// Curve parameters for Curve25519 in twisted-Edwards form, per spec.md §3.
// These mirror the teacher's CurveParams/Params() lazily-built,
// process-wide constant pattern in ellipticadaptor.go, specialized to
// Curve25519's a=-1 twisted-Edwards curve instead of secp256k1's
// short-Weierstrass curve.
var (
	// P is the field prime 2^255-19.
	P = fieldPrime

	// L is the group order ℓ = 2^252+27742317777372353535851937790883648493.
	L = groupOrder

	// A is the curve coefficient a = -1 mod p.
	A = FieldValFromUint64(1).Negate()

	// D is the curve coefficient d = -121665/121666 mod p.
	D = FieldValFromHex("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3")

	// Cofactor is h = 8, the ratio between the curve's full order and ℓ.
	Cofactor = 8

	// baseX, baseY are the coordinates of the canonical Ed25519 base point.
	baseX = FieldValFromHex("216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a")
	baseY = FieldValFromHex("6666666666666666666666666666666666666666666666666666666666666658")
)

// Ristretto255 constants, per spec.md §3.
var (
	// sqrtAdMinusOne = sqrt(a*d - 1) mod p.
	sqrtAdMinusOne = FieldValFromHex("376931bf2b8348ac0f3cfcc931f5d1fdaf9d8e0c1b7854bd7e97f6a0497b2e1b")

	// invSqrtAMinusD = 1/sqrt(a-d) mod p.
	invSqrtAMinusD = FieldValFromHex("786c8905cfaffca216c27b91fe01d8409d2f16175a4172be99c8fdaa805d40ea")

	// oneMinusDSq = (1-d^2) mod p.
	oneMinusDSq = FieldValFromHex("29072a8b2b3e0d79994abddbe70dfe42c81a138cd5e350fe27c09c1945fc176")

	// dMinusOneSq = (d-1)^2 mod p.
	dMinusOneSq = FieldValFromHex("5968b37af66c22414cdcd32f529b4eebd29e4a2cb01e199931ad5aaa44ed4d20")
)

func init() {
	// These five Ristretto constants are restated in decimal below and
	// cross-checked against the hex literals above at package init so a
	// transcription error in either form is caught immediately rather than
	// surfacing as a silent interop failure.
	checkConst("SQRT_M1", sqrtM1, "19681161376707505956807079304988542015446066515923890162744021073123829784752")
	checkConst("A", A, "57896044618658097711785492504343953926634992332820282019728792003956564819948")
	checkConst("D", D, "37095705934669439343138083508754565189542113879843219016388785533085940283555")
	checkConst("baseX", baseX, "15112221349535400772501151409588531511454012693041857206046113283949847762202")
	checkConst("baseY", baseY, "46316835694926478169428394003475163141307993866256225615783033603165251855960")
	checkConst("sqrtAdMinusOne", sqrtAdMinusOne, "25063068953384623474111414158702152701244531502492656460079210482610430750235")
	checkConst("invSqrtAMinusD", invSqrtAMinusD, "54469307008909316920995813868745141605393597292927456921205312896311721017578")
	checkConst("oneMinusDSq", oneMinusDSq, "1159843021668779879193775521855586647937357759715417654439879720876111806838")
	checkConst("dMinusOneSq", dMinusOneSq, "40440834346308536858101042469323190826248399146238708352240133220865137265952")
}

func checkConst(name string, got FieldVal, wantDecimal string) {
	want := NewFieldVal(mustBigFromDecimal(wantDecimal))
	if !got.Equals(want) {
		panic("ristretto255: curve constant " + name + " is miswired")
	}
}

// BaseAffine returns the canonical Ed25519/Ristretto255 base point in
// affine coordinates, carrying whatever window size the package-level BASE
// precompute has most recently been set to (see baseAffineSingleton in
// point.go). Callers that only need the extended form should use
// BaseExtended, which is cached and reused by the precompute registry.
func BaseAffine() AffinePoint {
	return baseAffineSingleton
}

// IsOnCurve reports whether (x, y) satisfies the twisted-Edwards curve
// equation -x^2+y^2 = 1+d*x^2*y^2 (mod p).
func IsOnCurve(x, y FieldVal) bool {
	x2 := x.Square()
	y2 := y.Square()
	lhs := y2.Sub(x2)
	rhs := FieldValFromUint64(1).Add(D.Mul(x2).Mul(y2))
	return lhs.Equals(rhs)
}

// TorsionSubgroup holds the eight compressed encodings of the points whose
// order divides the cofactor 8, verbatim from spec.md §8 scenario 2 (the
// non-identity torsion point "ecffff...7f" among them) and used by tests
// asserting "for every point T in TORSION_SUBGROUP: 8*T == ZERO".
var TorsionSubgroup = []string{
	"0100000000000000000000000000000000000000000000000000000000000000",
	"c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a",
	"0000000000000000000000000000000000000000000000000000000000000080",
	"26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc05",
	"ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
	"26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc85",
	"0000000000000000000000000000000000000000000000000000000000000000",
	"c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac03fa",
}

// RandomPrivateKey generates a private scalar suitable for use as an
// Ed25519 private-key seed via rejection sampling, per spec.md §4.7: read
// 32 random bytes from rnd, accept the decoded integer iff it lies in
// (1, ℓ), else retry, failing with ErrPRNGExhausted after 1024 attempts.
func RandomPrivateKey(rnd RandReader) ([]byte, error) {
	const maxAttempts = 1024
	one := big.NewInt(1)
	for i := 0; i < maxAttempts; i++ {
		b, err := rnd(32)
		if err != nil {
			return nil, err
		}
		n := BytesToNumberLE(b)
		if n.Cmp(one) > 0 && n.Cmp(L) < 0 {
			return b, nil
		}
	}
	return nil, newError(ErrPRNGExhausted, "randomPrivateKey: PRNG broken")
}
