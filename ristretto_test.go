// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shimmerring/ristretto255/internal/fieldtest"
)

// TestRistrettoHashRoundTrip is spec.md §8 scenario 6: hashing a fixed
// message to the Ristretto255 group and re-encoding/re-decoding it must be
// self-consistent.
func TestRistrettoHashRoundTrip(t *testing.T) {
	digest := sha512Digest([]byte(fieldtest.RistrettoHashMessage))
	p, err := FromRistrettoHash(digest[:])
	if err != nil {
		t.Fatalf("FromRistrettoHash: %v", err)
	}

	encoded, err := p.ToRistrettoBytes()
	if err != nil {
		t.Fatalf("ToRistrettoBytes: %v", err)
	}
	if len(encoded) != 32 {
		t.Fatalf("expected 32-byte encoding, got %d", len(encoded))
	}

	decoded, err := FromRistrettoBytes(encoded[:])
	if err != nil {
		t.Fatalf("FromRistrettoBytes: %v", err)
	}
	if !decoded.RistrettoEquals(p) {
		t.Fatalf("round trip mismatch:\noriginal: %s\ndecoded:  %s", spew.Sdump(p), spew.Sdump(decoded))
	}

	reencoded, err := decoded.ToRistrettoBytes()
	if err != nil {
		t.Fatalf("ToRistrettoBytes (second encode): %v", err)
	}
	if reencoded != encoded {
		t.Fatalf("canonical re-encoding mismatch: got %x, want %x", reencoded, encoded)
	}
}

func TestRistrettoIdentityRoundTrip(t *testing.T) {
	encoded, err := Identity.ToRistrettoBytes()
	if err != nil {
		t.Fatalf("ToRistrettoBytes(Identity): %v", err)
	}
	decoded, err := FromRistrettoBytes(encoded[:])
	if err != nil {
		t.Fatalf("FromRistrettoBytes: %v", err)
	}
	if !decoded.RistrettoEquals(Identity) {
		t.Fatal("Identity did not round trip through Ristretto encoding")
	}
}

func TestFromRistrettoBytesRejectsWrongLength(t *testing.T) {
	if _, err := FromRistrettoBytes(make([]byte, 31)); err == nil {
		t.Fatal("expected error for 31-byte input")
	}
}
