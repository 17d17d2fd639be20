// SPDX-License-Identifier: MIT

// Package prodcons runs the matrix producer/consumer engine.
//
// An Orchestrator starts Workers producers and Workers consumers that share
// one buffer.Bounded of *matrix.Dense handles. Producers generate matrices
// through a MatrixFactory; consumers pair them up and multiply through
// MatrixOps:
//
//	empty ──take m──▶ holdingFirst{m1}
//	holdingFirst{m1} ──take m, m1.Cols == m.Rows──▶ display, free m1 m m×, empty
//	holdingFirst{m1} ──take m, mismatch──▶ free m, holdingFirst{m1}
//
// Each worker keeps its own Stats; after every goroutine is joined the
// orchestrator sums them into Totals, whose Balanced method checks that the
// produced and consumed element sums and matrix counts agree.
//
// Matrices / Workers is floored: the remainder is never produced (see
// Totals.Residual). A consumer that ends its loop still holding a first
// operand leaves it unfreed (see Consumer.Pending and Totals.Pending).
package prodcons
