// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shimmerring/ristretto255/internal/fieldtest"
)

// TestRFC8032Vector1 is spec.md §8 scenario 5.
func TestRFC8032Vector1(t *testing.T) {
	pk, err := HexToBytes(fieldtest.Vector1.PrivateKeyHex)
	if err != nil {
		t.Fatalf("decoding fixture private key: %v", err)
	}
	want, err := HexToBytes(fieldtest.Vector1.SignatureHex)
	if err != nil {
		t.Fatalf("decoding fixture signature: %v", err)
	}

	sig, err := Sign(fieldtest.Vector1.Message, pk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if BytesToHex(sig[:]) != BytesToHex(want) {
		t.Fatalf("signature mismatch:\ngot:  %s\nwant: %s", spew.Sdump(sig), spew.Sdump(want))
	}
}

// TestSignVerifyRoundTrip is spec.md §8's "for all (pk, m),
// verify(sign(m, pk), m, getPublicKey(pk)) == true".
func TestSignVerifyRoundTrip(t *testing.T) {
	pk := make([]byte, 32)
	for i := range pk {
		pk[i] = byte(i * 7)
	}
	message := []byte("the quick brown fox jumps over the lazy dog")

	pub, err := GetPublicKey(pk)
	if err != nil {
		t.Fatalf("GetPublicKey: %v", err)
	}
	sig, err := Sign(message, pk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := Verify(sig[:], message, pub[:])
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a genuine signature")
	}
}

// TestTamperDetection is spec.md §8's tamper-detection property: flipping
// any bit of signature, message, or public key yields verify == false.
func TestTamperDetection(t *testing.T) {
	pk := make([]byte, 32)
	for i := range pk {
		pk[i] = byte(i * 11)
	}
	message := []byte("tamper me")

	pub, err := GetPublicKey(pk)
	if err != nil {
		t.Fatalf("GetPublicKey: %v", err)
	}
	sig, err := Sign(message, pk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tamperedSig := sig
	tamperedSig[0] ^= 0x01
	if ok, _ := Verify(tamperedSig[:], message, pub[:]); ok {
		t.Fatal("Verify accepted a tampered signature")
	}

	tamperedMsg := append([]byte{}, message...)
	tamperedMsg[0] ^= 0x01
	if ok, _ := Verify(sig[:], tamperedMsg, pub[:]); ok {
		t.Fatal("Verify accepted a tampered message")
	}

	tamperedPub := pub
	tamperedPub[0] ^= 0x01
	if ok, err := Verify(sig[:], message, tamperedPub[:]); ok && err == nil {
		t.Fatal("Verify accepted a tampered public key")
	}
}

func TestGeneratePrivateKeyUsesInjectedRand(t *testing.T) {
	calls := 0
	fakeRand := func(n int) ([]byte, error) {
		calls++
		b := make([]byte, n)
		b[n-1] = 0x10 // keeps the decoded integer well inside (1, ℓ)
		b[0] = byte(calls)
		return b, nil
	}
	pk, err := GeneratePrivateKey(WithRandReader(fakeRand))
	if err != nil {
		t.Fatalf("GeneratePrivateKey: %v", err)
	}
	if len(pk) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(pk))
	}
	if calls == 0 {
		t.Fatal("GeneratePrivateKey never consulted the injected RandReader")
	}
}

func TestVerifyRejectsMalformedSignature(t *testing.T) {
	if _, err := Verify(make([]byte, 10), []byte("m"), make([]byte, 32)); err == nil {
		t.Fatal("expected a structural decode error for a too-short signature")
	}
}
