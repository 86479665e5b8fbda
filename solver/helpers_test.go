package solver_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potflow/network"
	"github.com/katalvlaran/potflow/solver"
)

// problem is a compact literal form of a min-cost-flow instance.
type problem struct {
	name    string
	demands []int64
	edges   []network.Edge
	costs   []int64
	lower   []int64
	upper   []int64
}

func (p problem) build(t testing.TB) *network.Instance {
	t.Helper()
	in, err := network.NewInstance(p.demands, p.edges, p.costs, p.lower, p.upper)
	require.NoError(t, err)

	return in
}

// triangle routes 5 units from node 0 to node 2; the two-hop path costs 10,
// the direct edge 15, so the optimum [5 5 0] is unique.
var triangle = problem{
	name:    "triangle",
	demands: []int64{-5, 0, 5},
	edges:   []network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 0, Head: 2}},
	costs:   []int64{1, 1, 3},
	upper:   []int64{5, 5, 10},
}

// recorder is an Observer that keeps every event.
type recorder struct {
	mu       sync.Mutex
	bases    []int
	attempts []solver.Attempt
	solves   []solver.Result
	errs     []error
}

func (r *recorder) BasisBuilt(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bases = append(r.bases, n)
}

func (r *recorder) AttemptFinished(a solver.Attempt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, a)
}

func (r *recorder) SolveFinished(res solver.Result, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solves = append(r.solves, res)
	r.errs = append(r.errs, err)
}
