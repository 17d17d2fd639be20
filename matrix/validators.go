// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/released/shape checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive – Ensures the matrix is non-nil and still owns its storage.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Released() {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateMulCompatible – Ensures both operands are live and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Consumers call Shape().Eligible first when they only need the predicate.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if !a.Shape().Eligible(b.Shape()) {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
