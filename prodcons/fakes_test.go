package prodcons_test

import (
	"errors"
	"io"
	"sync"

	"github.com/katalvlaran/pcmatrix/matrix"
	"github.com/katalvlaran/pcmatrix/prodcons"
)

// seededFactories returns one derived Generator per worker, like the CLI does.
func seededFactories(seed int64, opts ...matrix.Option) prodcons.FactoryFunc {
	base := matrix.NewGenerator(append([]matrix.Option{matrix.WithSeed(seed)}, opts...)...)
	return func(worker int) prodcons.MatrixFactory {
		return base.Derive(uint64(worker))
	}
}

// sequenceFactory yields 1×1 matrices holding 1, 2, 3, ... in order.
type sequenceFactory struct{ next int }

func (f *sequenceFactory) Generate(int) (*matrix.Dense, error) {
	f.next++
	return matrix.NewFromRows([][]int{{f.next}})
}

func (f *sequenceFactory) Sum(m *matrix.Dense) int { return matrix.Ops{}.Sum(m) }

var errBoom = errors.New("allocation refused")

// failingFactory delegates to inner and fails on call number failAt (1-based).
type failingFactory struct {
	inner  prodcons.MatrixFactory
	failAt int
	calls  int
}

func (f *failingFactory) Generate(mode int) (*matrix.Dense, error) {
	f.calls++
	if f.calls == f.failAt {
		return nil, errBoom
	}
	return f.inner.Generate(mode)
}

func (f *failingFactory) Sum(m *matrix.Dense) int { return f.inner.Sum(m) }

// recordingOps wraps matrix.Ops and records, under a mutex, every Sum and
// Multiply argument plus how often each matrix was freed.
type recordingOps struct {
	inner matrix.Ops

	mu      sync.Mutex
	summed  []int // first element of every summed matrix, in call order
	pairs   [][2]*matrix.Dense
	freed   map[*matrix.Dense]int
	results map[*matrix.Dense]bool
}

func newRecordingOps() *recordingOps {
	return &recordingOps{
		freed:   make(map[*matrix.Dense]int),
		results: make(map[*matrix.Dense]bool),
	}
}

func (r *recordingOps) Multiply(a, b *matrix.Dense) (*matrix.Dense, bool) {
	m3, ok := r.inner.Multiply(a, b)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs = append(r.pairs, [2]*matrix.Dense{a, b})
	if ok {
		r.results[m3] = true
	}
	return m3, ok
}

func (r *recordingOps) Sum(m *matrix.Dense) int {
	s := r.inner.Sum(m)
	v, _ := m.At(0, 0)
	r.mu.Lock()
	r.summed = append(r.summed, v)
	r.mu.Unlock()
	return s
}

func (r *recordingOps) Display(w io.Writer, m *matrix.Dense) error { return r.inner.Display(w, m) }

func (r *recordingOps) Free(m *matrix.Dense) {
	r.mu.Lock()
	r.freed[m]++
	r.mu.Unlock()
	r.inner.Free(m)
}

// maxFrees returns the highest free count over all matrices.
func (r *recordingOps) maxFrees() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	most := 0
	for _, n := range r.freed {
		if n > most {
			most = n
		}
	}
	return most
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }
