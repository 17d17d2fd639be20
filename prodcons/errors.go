// SPDX-License-Identifier: MIT
// Package: pcmatrix/prodcons
//
// errors.go: sentinel errors for the producer/consumer engine.
//
// Error policy:
//   • Callers branch with errors.Is; sentinels are wrapped with %w for context.
//   • Configuration errors (ErrBadParams) surface from New, before any goroutine starts.
//   • Worker failures (ErrFactory, buffer.ErrAborted) surface from Run after every
//     goroutine has been joined.
//   • ErrInvariant is never returned: it is the panic value of an unreachable
//     pairing branch.

package prodcons

import (
	"errors"
	"fmt"
)

var (
	// ErrBadParams indicates an unusable run configuration (workers < 1,
	// buffer size < 1, negative matrix count or mode).
	ErrBadParams = errors.New("prodcons: invalid parameters")

	// ErrFactory indicates the MatrixFactory failed to produce a matrix.
	// It is fatal to the producer that observed it.
	ErrFactory = errors.New("prodcons: matrix factory failed")

	// ErrInvariant is the panic value used when the pairing state machine
	// reaches a branch that cannot exist.
	ErrInvariant = errors.New("prodcons: pairing invariant violated")
)

// joinErr wraps cause under sentinel so both match errors.Is.
func joinErr(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// workerErrorf attaches "<role> <id>: " context to err.
func workerErrorf(role string, id int, err error) error {
	return fmt.Errorf("%s %d: %w", role, id, err)
}
