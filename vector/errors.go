// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Operations return these sentinels wrapped with the failing operation's
// name; callers and tests MUST match them via errors.Is.
// No operation panics on user-triggered error conditions.

package vector

import "errors"

// Every message is prefixed with "vector: ..." so it can be grepped in logs.
//
// ERROR PRIORITY (enforced in tests):
// dimension mismatch -> degenerate operand -> non-finite value -> index range.

var (
	// ErrDimensionMismatch indicates operands of differing dimensionality,
	// e.g. Add, Sub, Dot or Angle on vectors with different Dim().
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDegenerateAngle indicates that an angle was requested against a
	// vector with zero norm, for which the angle is undefined.
	ErrDegenerateAngle = errors.New("vector: angle undefined for zero vector")

	// ErrNonFinite indicates that a NaN or ±Inf component made a geometric
	// result (Cosine, Angle) undefined.
	ErrNonFinite = errors.New("vector: NaN or Inf encountered")

	// ErrOutOfRange indicates that a component index is outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")
)
