package solver

import (
	"fmt"

	"github.com/katalvlaran/potflow/network"
)

// Augmented is an instance extended with a synthetic node together with a
// strictly interior feasible flow on it.
type Augmented struct {
	Instance *network.Instance
	Flow     []float64
	// Synthetic is the index of the added node.
	Synthetic int
	// Original is the edge count of the source instance; edges from Original
	// on are synthetic.
	Original int
}

// InitialFeasibleFlow clones in, places every edge at its capacity midpoint
// and routes each node's imbalance through a synthetic node. Synthetic edges
// cost 4·m·U² with m and U taken from in, run between 0 and twice the
// imbalance and carry the imbalance, so every component of Flow is strictly
// interior whenever lower < upper on the original edges.
//
// Imbalances are computed in doubled integers, so half-unit midpoints are
// exact. in is not modified.
func InitialFeasibleFlow(in *network.Instance) (*Augmented, error) {
	if in == nil {
		return nil, ErrNilInstance
	}

	m, n := in.M(), in.N()
	aug := in.Clone()
	syn := aug.AddNode()

	// 1) Midpoints and twice the resulting net inflow per node.
	flow := make([]float64, m, m+n)
	twice := make([]int64, n)
	for e := 0; e < m; e++ {
		sum := in.Lower(e) + in.Upper(e)
		flow[e] = float64(sum) / 2
		ed := in.Edge(e)
		twice[ed.Head] += sum
		twice[ed.Tail] -= sum
	}

	// 2) One synthetic edge per unbalanced node.
	cost := 4 * int64(m) * in.U() * in.U()
	for v := 0; v < n; v++ {
		excess2 := 2*in.Demand(v) - twice[v]
		var err error
		switch {
		case excess2 > 0:
			_, err = aug.AddEdge(syn, v, cost, 0, excess2)
			flow = append(flow, float64(excess2)/2)
		case excess2 < 0:
			_, err = aug.AddEdge(v, syn, cost, 0, -excess2)
			flow = append(flow, float64(-excess2)/2)
		}
		if err != nil {
			return nil, fmt.Errorf("solver: InitialFeasibleFlow: %w", err)
		}
	}

	return &Augmented{Instance: aug, Flow: flow, Synthetic: syn, Original: m}, nil
}
