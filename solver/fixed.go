// SPDX-License-Identifier: MIT
// Package: potflow/solver
//
// fixed.go — folding edges with lower == upper into the node demands.
//
// A fixed edge has an empty interior, so its midpoint already sits on the
// barrier. Its flow is known, so it is removed from the solved instance and
// its endpoints' demands absorb it.

package solver

import (
	"fmt"

	"github.com/katalvlaran/potflow/network"
)

// split is an instance with its fixed edges taken out.
type split struct {
	// in holds the free edges; nil when every edge is fixed.
	in *network.Instance
	// free[i] is the source index of edge i of in.
	free []int
	// cost is the cost carried by the fixed edges.
	cost int64
}

// splitFixed returns in itself when no edge is fixed.
func splitFixed(in *network.Instance) (*split, error) {
	m := in.M()
	free := make([]int, 0, m)
	demands := in.Demands()
	var cost int64
	for e := 0; e < m; e++ {
		lo := in.Lower(e)
		if lo != in.Upper(e) {
			free = append(free, e)
			continue
		}
		cost += in.CostOf(e) * lo
		ed := in.Edge(e)
		if !ed.IsLoop() {
			demands[ed.Head] -= lo
			demands[ed.Tail] += lo
		}
	}

	switch len(free) {
	case m:
		return &split{in: in, free: free}, nil
	case 0:
		return &split{free: free, cost: cost}, nil
	}

	edges := make([]network.Edge, len(free))
	costs := make([]int64, len(free))
	lower := make([]int64, len(free))
	upper := make([]int64, len(free))
	for i, e := range free {
		edges[i] = in.Edge(e)
		costs[i] = in.CostOf(e)
		lower[i] = in.Lower(e)
		upper[i] = in.Upper(e)
	}
	sub, err := network.NewInstance(demands, edges, costs, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("solver: fixed edges: %w", err)
	}

	return &split{in: sub, free: free, cost: cost}, nil
}

// expand maps a flow on the free edges back to every edge of src.
func (s *split) expand(src *network.Instance, flow []int64) []int64 {
	out := make([]int64, src.M())
	for e := range out {
		out[e] = src.Lower(e)
	}
	for i, e := range s.free {
		out[e] = flow[i]
	}

	return out
}
