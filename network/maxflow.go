package network

import "math"

// MaxFlowInstance describes a maximum-flow problem from Source to Sink.
// Lower may be nil (all zero).
type MaxFlowInstance struct {
	Edges  []Edge
	Lower  []int64
	Upper  []int64
	Source int
	Sink   int
}

// Validate checks array lengths and the source/sink pair. Edge endpoints and
// bounds are validated by ToMinCostFlow through NewInstance.
func (mf *MaxFlowInstance) Validate() error {
	if len(mf.Edges) == 0 {
		return ErrNoEdges
	}
	if len(mf.Upper) != len(mf.Edges) || (mf.Lower != nil && len(mf.Lower) != len(mf.Edges)) {
		return ErrLengthMismatch
	}
	n := mf.nodeCount()
	if mf.Source < 0 || mf.Sink < 0 || mf.Source >= n || mf.Sink >= n || mf.Source == mf.Sink {
		return ErrBadSourceSink
	}

	return nil
}

// nodeCount is max endpoint + 1 over the edges, the source and the sink.
func (mf *MaxFlowInstance) nodeCount() int {
	n := max(mf.Source, mf.Sink)
	for _, e := range mf.Edges {
		n = max(n, e.Tail, e.Head)
	}

	return n + 1
}

// ToMinCostFlow reduces the problem to a min-cost circulation: every original
// edge costs 0 and a Sink→Source edge with cost −1 and capacity Σ upper is
// appended as the last edge. All demands are zero, so the minimum cost is the
// negated maximum flow value.
func (mf *MaxFlowInstance) ToMinCostFlow() (*Instance, error) {
	if err := mf.Validate(); err != nil {
		return nil, err
	}

	m := len(mf.Edges)
	edges := make([]Edge, 0, m+1)
	edges = append(edges, mf.Edges...)
	edges = append(edges, Edge{Tail: mf.Sink, Head: mf.Source})

	costs := make([]int64, m+1)
	costs[m] = -1

	var total int64
	upper := make([]int64, 0, m+1)
	for _, u := range mf.Upper {
		if u > 0 && total > math.MaxInt64-u {
			return nil, ErrOverflow
		}
		upper = append(upper, u)
		total += u
	}
	upper = append(upper, total)

	var lower []int64
	if mf.Lower != nil {
		lower = make([]int64, 0, m+1)
		lower = append(lower, mf.Lower...)
		lower = append(lower, 0)
	}

	return NewInstance(make([]int64, mf.nodeCount()), edges, costs, lower, upper)
}
