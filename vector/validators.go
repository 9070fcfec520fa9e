// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Single source of truth for operand checks shared by arithmetic and angle code.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package vector

import "fmt"

// validatorErrorf wraps an underlying error with the given tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameDim ensures a and b have equal dimensionality.
//
// Returns nil or a wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameDim(a, b Vector) error {
	if a.Dim() != b.Dim() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameDim(%d,%d)", a.Dim(), b.Dim()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < v.Dim().
// Returns nil or a wrapped ErrOutOfRange.
func ValidateIndex(v Vector, i int) error {
	if i < 0 || i >= v.Dim() {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateNonDegenerate ensures v has a non-zero norm.
// Returns nil or a wrapped ErrDegenerateAngle.
func ValidateNonDegenerate(v Vector) error {
	if v.IsZero() {
		return validatorErrorf("ValidateNonDegenerate", ErrDegenerateAngle)
	}

	return nil
}
