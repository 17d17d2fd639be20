// SPDX-License-Identifier: MIT

package prodcons

import (
	"io"

	"github.com/katalvlaran/pcmatrix/matrix"
)

// MatrixFactory manufactures matrices for one producer.
// matrix.Generator is the production implementation.
// A factory is used by exactly one producer goroutine and need not be goroutine-safe.
type MatrixFactory interface {
	// Generate returns a new matrix: mode 0 draws random dimensions, mode N>=1
	// yields an N×N matrix. The caller owns the result.
	Generate(mode int) (*matrix.Dense, error)

	// Sum returns the element sum of m.
	Sum(m *matrix.Dense) int
}

// MatrixOps is the consumer-side capability set.
// matrix.Ops is the production implementation. It is shared by all consumers
// and must be safe for concurrent use.
type MatrixOps interface {
	// Multiply returns (a×b, true) when a.Cols == b.Rows, else (nil, false).
	Multiply(a, b *matrix.Dense) (*matrix.Dense, bool)

	// Sum returns the element sum of m.
	Sum(m *matrix.Dense) int

	// Display formats m to w.
	Display(w io.Writer, m *matrix.Dense) error

	// Free releases m. The engine calls it at most once per matrix.
	Free(m *matrix.Dense)
}

// FactoryFunc returns the factory owned by producer worker.
// The orchestrator calls it sequentially, before any producer starts.
type FactoryFunc func(worker int) MatrixFactory
