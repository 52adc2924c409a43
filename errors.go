// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reaction to an error returned from this package without
// having to perform any type assertions or unwrapping whatsoever.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidEncoding is returned when a byte or hex encoding has the
	// wrong length, uses malformed hex, or fails Ristretto255's canonical
	// encoding check.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrOutOfRange is returned when a decoded integer lies outside the
	// range required of it, such as a field element >= p, a scalar >= ℓ, or
	// a private-key integer too large to fit in 32 bytes.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrNotOnCurve is returned when decompressing a point fails because
	// the implied x^2 is not a quadratic residue modulo p.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrNotInGroup is returned when a Ristretto255 decode fails its
	// square-root, sign, or non-zero checks.
	ErrNotInGroup = ErrorKind("ErrNotInGroup")

	// ErrInvalidArgument is returned for a non-positive scalar passed to
	// MultiplyUnsafe, an invalid precompute window size, or a point already
	// in extended form passed where an affine point is required.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrPRNGExhausted is returned when rejection sampling a random scalar
	// fails to find a value in range within the allotted attempts.
	ErrPRNGExhausted = ErrorKind("ErrPRNGExhausted")

	// ErrEnvMissing is returned when a required external collaborator (a
	// SHA-512 digest function or a random-bytes source) was not supplied
	// and no default is available in the build.
	ErrEnvMissing = ErrorKind("ErrEnvMissing")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve, field, or signature operations
// within this package. It has full support for errors.Is and errors.As, so
// the caller can ascertain the specific reason for the error by checking the
// underlying error via errors.Is, or obtain the specific ErrorKind via
// errors.As.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// Is implements the interface to work with the standard library's errors.Is.
// It returns true in the following cases:
//
//   - The target is an Error and the specified error kinds match
//   - The target is an ErrorKind and the specified error kinds match
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e.Err == target.Err
	case ErrorKind:
		return e.Err == target
	}
	return false
}

// newError creates an Error given a set of arguments.
func newError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
