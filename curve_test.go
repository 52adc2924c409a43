// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import "testing"

func TestBaseIsOnCurve(t *testing.T) {
	base := BaseAffine()
	if !IsOnCurve(base.X, base.Y) {
		t.Fatal("BASE does not satisfy the curve equation")
	}
}

func TestTorsionSubgroupHasEightEntries(t *testing.T) {
	if len(TorsionSubgroup) != int(Cofactor) {
		t.Fatalf("TorsionSubgroup has %d entries, want %d", len(TorsionSubgroup), Cofactor)
	}
}

func TestRandomPrivateKeyRejectionSampling(t *testing.T) {
	attempts := 0
	// First attempt returns 0, which must be rejected; second attempt
	// returns a valid seed.
	rnd := func(n int) ([]byte, error) {
		attempts++
		b := make([]byte, n)
		if attempts == 1 {
			return b, nil // all-zero -> decodes to 0, must be rejected
		}
		b[n-1] = 0x10
		b[0] = 0x07
		return b, nil
	}
	key, err := RandomPrivateKey(rnd)
	if err != nil {
		t.Fatalf("RandomPrivateKey: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(key))
	}
	if attempts < 2 {
		t.Fatalf("expected rejection sampling to retry at least once, got %d attempts", attempts)
	}
}

func TestRandomPrivateKeyExhaustion(t *testing.T) {
	rnd := func(n int) ([]byte, error) {
		return make([]byte, n), nil // always decodes to 0, always rejected
	}
	_, err := RandomPrivateKey(rnd)
	if err == nil {
		t.Fatal("expected ErrPRNGExhausted")
	}
	var kerr Error
	if !asError(err, &kerr) || kerr.Err != ErrPRNGExhausted {
		t.Fatalf("expected ErrPRNGExhausted, got %v", err)
	}
}
