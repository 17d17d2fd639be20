// SPDX-License-Identifier: MIT

package prodcons

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pcmatrix/buffer"
	"github.com/katalvlaran/pcmatrix/matrix"
)

const roleProducer = "producer"

// Producer generates a fixed number of matrices and pushes them into the
// shared buffer, recording their count and element sum in its own Stats.
type Producer struct {
	id         int
	iterations int
	mode       int
	buf        *buffer.Bounded[*matrix.Dense]
	factory    MatrixFactory
	log        logrus.FieldLogger
	stats      Stats
}

// NewProducer wires a producer. log may be nil.
func NewProducer(id, iterations, mode int, buf *buffer.Bounded[*matrix.Dense], factory MatrixFactory, log logrus.FieldLogger) *Producer {
	return &Producer{
		id:         id,
		iterations: iterations,
		mode:       mode,
		buf:        buf,
		factory:    factory,
		log:        workerLogger(log, roleProducer, id),
	}
}

// Run executes the producer loop on the calling goroutine.
// A factory failure ends the loop with ErrFactory; a Put failure (the buffer
// was aborted) ends it with buffer.ErrAborted. There are no retries.
func (p *Producer) Run() error {
	p.log.WithField("iterations", p.iterations).Debug("producer started")
	for i := 0; i < p.iterations; i++ {
		m, err := p.factory.Generate(p.mode)
		if err != nil {
			return workerErrorf(roleProducer, p.id, joinErr(ErrFactory, err))
		}
		// Record before Put: once the matrix is in the buffer a consumer owns it.
		p.stats.ElementSum += int64(p.factory.Sum(m))
		p.stats.Matrices++

		if err = p.buf.Put(m); err != nil {
			return workerErrorf(roleProducer, p.id, err)
		}
	}
	p.log.WithFields(logrus.Fields{
		"matrices":    p.stats.Matrices,
		"element_sum": p.stats.ElementSum,
	}).Debug("producer finished")

	return nil
}

// Stats returns the producer's counters. Read it only after Run has returned.
func (p *Producer) Stats() Stats { return p.stats }
