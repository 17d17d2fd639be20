// SPDX-License-Identifier: MIT

// Package buffer defines Bounded, a fixed-capacity circular FIFO shared by
// producer and consumer goroutines.
//
// A single sync.Mutex guards the slot array, both indices and the count; two
// sync.Cond values built on that mutex (notFull, notEmpty) carry the wakeups.
// Every wait re-checks its predicate in a loop, so spurious wakeups and
// multi-waiter races cannot let Put run on a full buffer or Get on an empty one.
//
// Errors:
//
//	ErrBadCapacity - capacity < 1 at construction.
//	ErrAborted     - the buffer was aborted; blocked and future Put/Get fail.
package buffer

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for bounded buffer operations.
var (
	// ErrBadCapacity indicates a non-positive capacity passed to New.
	ErrBadCapacity = errors.New("buffer: capacity must be >= 1")

	// ErrAborted indicates the buffer was aborted after a fatal worker failure.
	ErrAborted = errors.New("buffer: aborted")
)

// Bounded is a monitor-protected circular slot array of capacity Cap().
//
// Invariants (observable under mu):
//   - 0 <= count <= len(slots)
//   - fill, use in [0, len(slots)) and advance modulo len(slots)
//   - the count live items occupy use, use+1, ..., fill-1 (mod len(slots))
//   - free slots hold the zero value of T, so the buffer never aliases a handed-out item
type Bounded[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond // signaled after every Get
	notEmpty *sync.Cond // signaled after every Put

	slots []T
	fill  int // where the next Put writes
	use   int // where the next Get reads
	count int // live items

	aborted bool
	cause   error
}

// New returns an empty buffer with the given fixed capacity.
// Returns ErrBadCapacity when capacity < 1.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrBadCapacity)
	}
	b := &Bounded[T]{slots: make([]T, capacity)}
	b.notFull = sync.NewCond(&b.mu)
	b.notEmpty = sync.NewCond(&b.mu)

	return b, nil
}

// Put blocks until a slot is free, stores v at the fill index and wakes one
// waiting Get. It returns ErrAborted (wrapping the abort cause) if the buffer
// is aborted before or while waiting; v is then not stored.
func (b *Bounded[T]) Put(v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.count == len(b.slots) && !b.aborted {
		b.notFull.Wait()
	}
	if b.aborted {
		return b.abortErr()
	}

	b.slots[b.fill] = v
	b.fill = (b.fill + 1) % len(b.slots)
	b.count++
	b.notEmpty.Signal()

	return nil
}

// Get blocks until an item is available, removes it from the use index and
// wakes one waiting Put. It returns ErrAborted (wrapping the abort cause) if
// the buffer is aborted before or while waiting.
func (b *Bounded[T]) Get() (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.count == 0 && !b.aborted {
		b.notEmpty.Wait()
	}
	if b.aborted {
		var zero T
		return zero, b.abortErr()
	}

	v := b.slots[b.use]
	var zero T
	b.slots[b.use] = zero // drop the buffer's reference; the caller owns v now
	b.use = (b.use + 1) % len(b.slots)
	b.count--
	b.notFull.Signal()

	return v, nil
}

// Abort wakes every blocked Put and Get and makes all later calls fail with
// ErrAborted. The first cause wins; later calls are no-ops.
// Items still buffered stay counted by Len.
func (b *Bounded[T]) Abort(cause error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.aborted {
		return
	}
	b.aborted = true
	b.cause = cause
	b.notFull.Broadcast()
	b.notEmpty.Broadcast()
}

// abortErr builds the error returned after Abort. Caller holds mu.
func (b *Bounded[T]) abortErr() error {
	if b.cause == nil {
		return ErrAborted
	}
	return fmt.Errorf("%w: %w", ErrAborted, b.cause)
}

// Len returns the number of buffered items.
func (b *Bounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap returns the fixed capacity.
func (b *Bounded[T]) Cap() int { return len(b.slots) }

// Aborted reports whether Abort has been called.
func (b *Bounded[T]) Aborted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.aborted
}
