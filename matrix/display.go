// SPDX-License-Identifier: MIT

package matrix

import (
	"bytes"
	"fmt"
	"io"
)

// cellWidth is the fixed column width used by Display.
const cellWidth = 5

// Display writes m to w, one line per row, as "|  v0  v1 ... |".
// A released matrix is rendered by String and reported as ErrReleased.
//
// Implementation:
//   - Stage 1: format the whole matrix into a local buffer.
//   - Stage 2: issue a single Write so concurrent callers sharing w do not
//     interleave partial rows.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, or the writer's error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Display(w io.Writer, m *Dense) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf("Display", err)
	}
	var buf bytes.Buffer
	writeRows(&buf, m)
	_, err := w.Write(buf.Bytes())

	return err
}

// writeRows appends the row lines of a live matrix to buf.
func writeRows(buf *bytes.Buffer, m *Dense) {
	var i, j int
	for i = 0; i < m.r; i++ {
		buf.WriteByte('|')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(buf, "%*d", cellWidth, m.data[i*m.c+j])
		}
		buf.WriteString(" |\n")
	}
}
