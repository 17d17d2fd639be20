// SPDX-License-Identifier: MIT

package prodcons

// Stats is the per-worker accumulator. Each worker owns exactly one Stats for
// its whole lifetime; the orchestrator reads it only after the worker's
// goroutine has been joined, so no field needs a lock.
type Stats struct {
	ElementSum int64 // sum of all elements of matrices produced or consumed
	Matrices   int   // matrices produced (producer) or consumed (consumer)
	Multiplied int   // successful multiplications (consumers only)
}

// Totals aggregates the per-worker Stats of one run.
type Totals struct {
	ProducedSum int64 // element sum over all producers
	ConsumedSum int64 // element sum over all consumers
	Produced    int   // matrices produced
	Consumed    int   // matrices consumed
	Multiplied  int   // successful multiplications

	PerWorker int // loop iterations per worker (matrices / workers, floored)
	Residual  int // matrices never generated because of the floor division
	Pending   int // consumers that finished holding an unpaired first operand

	// Reliable is false when any worker failed; the counters then describe a
	// partial run and the conservation law is not expected to hold.
	Reliable bool
}

// Balanced reports the conservation law: produced and consumed element sums
// are equal and so are the produced and consumed matrix counts.
func (t Totals) Balanced() bool {
	return t.ProducedSum == t.ConsumedSum && t.Produced == t.Consumed
}

// Aggregate sums producer and consumer Stats into Totals.
// Only the counters are filled; run metadata (PerWorker, Residual, Pending,
// Reliable) is set by the orchestrator.
// Complexity: O(len(producers) + len(consumers)).
func Aggregate(producers, consumers []Stats) Totals {
	var t Totals
	for _, s := range producers {
		t.ProducedSum += s.ElementSum
		t.Produced += s.Matrices
	}
	for _, s := range consumers {
		t.ConsumedSum += s.ElementSum
		t.Consumed += s.Matrices
		t.Multiplied += s.Multiplied
	}

	return t
}
