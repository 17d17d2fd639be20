// Package matrix offers the integer matrices moved through the bounded buffer.
//
// The matrix package provides:
//
//   - Dense, a row-major integer matrix whose storage is dropped by Free;
//     every access after Free reports ErrReleased, so ownership slips surface
//     as errors instead of silent reads.
//   - Mul and Sum kernels with strict shape validation.
//   - Display, the fixed-width row renderer used by consumers.
//   - Generator, a seeded producer of random-shape (mode 0) or fixed N×N
//     (mode N) matrices, with Derive for per-goroutine RNG streams.
//   - Ops, the stateless multiply/sum/display/free capability set.
//
// See the prodcons package for how producers and consumers use these types.
package matrix
