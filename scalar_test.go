// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"math/big"
	"testing"
)

func TestModNScalarArith(t *testing.T) {
	a := ModNScalarFromUint64(17)
	b := ModNScalarFromUint64(29)

	if !a.Add(b).Sub(b).Equals(a) {
		t.Fatal("(a+b)-b != a")
	}
	if !a.Mul(b).Equals(b.Mul(a)) {
		t.Fatal("a*b != b*a")
	}

	ell := NewModNScalar(groupOrder)
	if !ell.IsZero() {
		t.Fatal("ℓ mod ℓ != 0")
	}
}

func TestModNScalarBytesRoundTrip(t *testing.T) {
	s := ModNScalarFromUint64(0xdeadbeef)
	b := s.Bytes()
	got := ModNScalarFromBytesLE(b[:])
	if !got.Equals(s) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.BigInt(), s.BigInt())
	}
}

func TestModNScalarInRange(t *testing.T) {
	s := ModNScalarFromUint64(5)
	if !s.InRange(big.NewInt(5)) {
		t.Fatal("5 should be in range [0, ℓ)")
	}
	if s.InRange(groupOrder) {
		t.Fatal("ℓ itself should not be in range [0, ℓ)")
	}
	if s.InRange(big.NewInt(-1)) {
		t.Fatal("negative value should not be in range")
	}
}

func TestModNScalarConstantTimeEqual(t *testing.T) {
	a := ModNScalarFromUint64(42)
	b := ModNScalarFromUint64(42)
	c := ModNScalarFromUint64(43)
	if !a.ConstantTimeEqual(b) {
		t.Fatal("equal scalars reported unequal")
	}
	if a.ConstantTimeEqual(c) {
		t.Fatal("unequal scalars reported equal")
	}
}
