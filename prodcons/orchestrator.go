// SPDX-License-Identifier: MIT

package prodcons

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pcmatrix/buffer"
	"github.com/katalvlaran/pcmatrix/matrix"
)

// Params are the four run parameters of the engine.
type Params struct {
	Workers    int // producers, and separately consumers, to start (>= 1)
	BufferSize int // slot capacity of the shared buffer (>= 1)
	Matrices   int // total matrices requested (>= 0)
	Mode       int // generation mode handed to every factory (>= 0)
}

// Validate reports the first out-of-range field as ErrBadParams.
func (p Params) Validate() error {
	switch {
	case p.Workers < 1:
		return fmt.Errorf("%w: workers=%d, need >= 1", ErrBadParams, p.Workers)
	case p.BufferSize < 1:
		return fmt.Errorf("%w: buffer size=%d, need >= 1", ErrBadParams, p.BufferSize)
	case p.Matrices < 0:
		return fmt.Errorf("%w: matrices=%d, need >= 0", ErrBadParams, p.Matrices)
	case p.Mode < 0:
		return fmt.Errorf("%w: mode=%d, need >= 0", ErrBadParams, p.Mode)
	}

	return nil
}

// Iterations is the per-worker loop count: Matrices / Workers, floored.
func (p Params) Iterations() int { return p.Matrices / p.Workers }

// Residual is the number of requested matrices the floor division drops.
func (p Params) Residual() int { return p.Matrices % p.Workers }

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the base logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("prodcons: WithLogger(nil)")
	}
	return func(o *Orchestrator) { o.log = l }
}

// WithSink sets where consumers display their products. A nil sink disables
// display. Writes to the sink are serialized by the orchestrator.
func WithSink(w io.Writer) Option {
	return func(o *Orchestrator) { o.sink = w }
}

// WithRunID overrides the generated run identifier attached to every log entry.
func WithRunID(id string) Option {
	return func(o *Orchestrator) { o.runID = id }
}

// Orchestrator owns one run: it builds the buffer, starts the workers, joins
// them and aggregates their Stats.
type Orchestrator struct {
	params    Params
	factories FactoryFunc
	ops       MatrixOps
	log       logrus.FieldLogger
	sink      io.Writer
	runID     string
}

// New validates p and returns a ready Orchestrator. Configuration errors are
// reported here, before any goroutine exists.
func New(p Params, factories FactoryFunc, ops MatrixOps, opts ...Option) (*Orchestrator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if factories == nil || ops == nil {
		return nil, fmt.Errorf("%w: nil collaborator", ErrBadParams)
	}
	o := &Orchestrator{
		params:    p,
		factories: factories,
		ops:       ops,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	o.log = o.log.WithField(fieldRun, o.runID)

	return o, nil
}

// RunID returns the identifier attached to this run's log entries.
func (o *Orchestrator) RunID() string { return o.runID }

// Params returns the validated run parameters.
func (o *Orchestrator) Params() Params { return o.params }

// Run executes one run to completion and returns the aggregated Totals.
//
// Every producer and consumer runs Params.Iterations loop turns. When a worker
// fails, the buffer is aborted so that no peer stays blocked; Run then joins
// all goroutines, returns the first error and marks Totals as unreliable.
// A consumer that violates the pairing invariant panics and is not recovered.
func (o *Orchestrator) Run() (Totals, error) {
	p := o.params
	iterations := p.Iterations()

	buf, err := buffer.New[*matrix.Dense](p.BufferSize)
	if err != nil {
		return Totals{}, fmt.Errorf("%w: %w", ErrBadParams, err)
	}

	var sink io.Writer
	if o.sink != nil {
		sink = &lockedWriter{w: o.sink}
	}

	// Factories are created here, on one goroutine, so derivation is deterministic.
	producers := make([]*Producer, p.Workers)
	consumers := make([]*Consumer, p.Workers)
	for i := 0; i < p.Workers; i++ {
		producers[i] = NewProducer(i, iterations, p.Mode, buf, o.factories(i), o.log)
		consumers[i] = NewConsumer(i, iterations, buf, o.ops, sink, o.log)
	}

	o.log.WithFields(logrus.Fields{
		"workers":     p.Workers,
		"buffer_size": p.BufferSize,
		"matrices":    p.Matrices,
		"mode":        p.Mode,
		"iterations":  iterations,
	}).Info("run started")
	if r := p.Residual(); r > 0 {
		o.log.WithField("residual", r).Warn("matrices not divisible by workers; residual is never produced")
	}

	var g errgroup.Group
	for i := 0; i < p.Workers; i++ {
		pr, co := producers[i], consumers[i]
		g.Go(func() error { return abortOnError(buf, pr.Run()) })
		g.Go(func() error { return abortOnError(buf, co.Run()) })
	}
	runErr := g.Wait()

	prodStats := make([]Stats, p.Workers)
	consStats := make([]Stats, p.Workers)
	for i := 0; i < p.Workers; i++ {
		prodStats[i] = producers[i].Stats()
		consStats[i] = consumers[i].Stats()
	}
	t := Aggregate(prodStats, consStats)
	t.PerWorker = iterations
	t.Residual = p.Residual()
	t.Reliable = runErr == nil
	for _, c := range consumers {
		if c.Pending() != nil {
			t.Pending++
		}
	}

	o.report(t, runErr, buf.Len())

	return t, runErr
}

// abortOnError aborts buf when err is non-nil so blocked peers wake up.
func abortOnError(buf *buffer.Bounded[*matrix.Dense], err error) error {
	if err != nil {
		buf.Abort(err)
	}

	return err
}

func (o *Orchestrator) report(t Totals, runErr error, leftover int) {
	fields := logrus.Fields{
		"produced":     t.Produced,
		"consumed":     t.Consumed,
		"multiplied":   t.Multiplied,
		"produced_sum": t.ProducedSum,
		"consumed_sum": t.ConsumedSum,
	}
	if t.Pending > 0 {
		o.log.WithField("pending", t.Pending).Debug("unpaired operands left unfreed")
	}

	switch {
	case runErr != nil:
		o.log.WithFields(fields).WithField("buffered", leftover).WithError(runErr).Error("run failed")
	case !t.Balanced():
		o.log.WithFields(fields).Warn("run finished with unbalanced totals")
	default:
		o.log.WithFields(fields).Info("run finished")
	}
}
