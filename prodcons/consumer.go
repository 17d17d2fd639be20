// SPDX-License-Identifier: MIT

package prodcons

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pcmatrix/buffer"
	"github.com/katalvlaran/pcmatrix/matrix"
)

const roleConsumer = "consumer"

// Separators printed between the operands and the result of a product.
const (
	productTimes  = "    X\n"
	productEquals = "    =\n"
)

// pairingState is the consumer's local state: either no operand is held, or
// the first operand of the next product is.
type pairingState interface{ pairing() }

type empty struct{}

type holdingFirst struct{ m1 *matrix.Dense }

func (empty) pairing()        {}
func (holdingFirst) pairing() {}

// Consumer takes a fixed number of matrices from the shared buffer and
// multiplies them pairwise.
//
// The first matrix taken while empty becomes the left operand. Each further
// matrix is tried as the right operand: on a dimension mismatch it is freed
// and the left operand is kept; on success the triple is displayed and all
// three matrices are freed. Every consumed matrix counts toward Stats,
// whether or not it ended up in a product.
type Consumer struct {
	id         int
	iterations int
	buf        *buffer.Bounded[*matrix.Dense]
	ops        MatrixOps
	sink       io.Writer // nil disables display
	log        logrus.FieldLogger
	state      pairingState
	stats      Stats
}

// NewConsumer wires a consumer. sink receives one Write per successful
// product and must tolerate concurrent Writes if shared; nil disables display.
// log may be nil.
func NewConsumer(id, iterations int, buf *buffer.Bounded[*matrix.Dense], ops MatrixOps, sink io.Writer, log logrus.FieldLogger) *Consumer {
	return &Consumer{
		id:         id,
		iterations: iterations,
		buf:        buf,
		ops:        ops,
		sink:       sink,
		log:        workerLogger(log, roleConsumer, id),
		state:      empty{},
	}
}

// Run executes the consumer loop on the calling goroutine.
// It returns buffer.ErrAborted if the run was aborted while it waited.
// A held first operand is not freed when the loop ends; see Pending.
func (c *Consumer) Run() error {
	c.log.WithField("iterations", c.iterations).Debug("consumer started")
	for i := 0; i < c.iterations; i++ {
		m, err := c.buf.Get()
		if err != nil {
			return workerErrorf(roleConsumer, c.id, err)
		}
		c.stats.ElementSum += int64(c.ops.Sum(m))
		c.stats.Matrices++
		c.advance(m)
	}

	fields := logrus.Fields{
		"matrices":    c.stats.Matrices,
		"multiplied":  c.stats.Multiplied,
		"element_sum": c.stats.ElementSum,
	}
	if p := c.Pending(); p != nil {
		fields["pending"] = p.Shape().String()
	}
	c.log.WithFields(fields).Debug("consumer finished")

	return nil
}

// advance feeds one consumed matrix into the pairing state machine.
func (c *Consumer) advance(m *matrix.Dense) {
	switch s := c.state.(type) {
	case empty:
		c.state = holdingFirst{m1: m}

	case holdingFirst:
		m3, ok := c.ops.Multiply(s.m1, m)
		if !ok {
			// Incompatible: drop the candidate, keep waiting with m1.
			c.ops.Free(m)
			return
		}
		c.stats.Multiplied++
		c.display(s.m1, m, m3)
		c.ops.Free(s.m1)
		c.ops.Free(m)
		c.ops.Free(m3)
		c.state = empty{}

	default:
		panic(fmt.Errorf("%w: consumer %d in state %T", ErrInvariant, c.id, c.state))
	}
}

// display renders the product as one block and emits it with a single Write,
// so blocks from concurrent consumers never interleave on a locked sink.
func (c *Consumer) display(m1, m2, m3 *matrix.Dense) {
	if c.sink == nil {
		return
	}
	var out bytes.Buffer
	err := c.ops.Display(&out, m1)
	if err == nil {
		out.WriteString(productTimes)
		err = c.ops.Display(&out, m2)
	}
	if err == nil {
		out.WriteString(productEquals)
		err = c.ops.Display(&out, m3)
	}
	if err == nil {
		out.WriteByte('\n')
		_, err = c.sink.Write(out.Bytes())
	}
	if err != nil {
		// Output is best effort; the product is already counted.
		c.log.WithError(err).Warn("display failed")
	}
}

// Pending returns the unpaired first operand the consumer holds, or nil.
// After Run returns, a non-nil result is a matrix that is never freed.
func (c *Consumer) Pending() *matrix.Dense {
	if s, ok := c.state.(holdingFirst); ok {
		return s.m1
	}

	return nil
}

// Stats returns the consumer's counters. Read it only after Run has returned.
func (c *Consumer) Stats() Stats { return c.stats }

// lockedWriter serializes Writes to a shared sink.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Write(p)
}
