package network

// CheckFlow verifies an integral flow against the instance: every edge within
// [lower, upper] and every node's net inflow equal to its demand. The first
// violation is returned as *FeasibilityError; edges are checked before nodes.
func (in *Instance) CheckFlow(flow []int64) error {
	if len(flow) != len(in.edges) {
		return ErrFlowLength
	}

	net := make([]int64, len(in.demand))
	for e, f := range flow {
		if f < in.lower[e] || f > in.upper[e] {
			return &FeasibilityError{Edge: e, Node: -1, Got: f, Lo: in.lower[e], Hi: in.upper[e]}
		}
		ed := in.edges[e]
		net[ed.Head] += f
		net[ed.Tail] -= f
	}
	for v, got := range net {
		if got != in.demand[v] {
			return &FeasibilityError{Edge: -1, Node: v, Got: got, Lo: in.demand[v], Hi: in.demand[v]}
		}
	}

	return nil
}

// FlowCost returns Σ cost_e·flow_e for an integral flow.
func (in *Instance) FlowCost(flow []int64) int64 {
	var total int64
	for e, f := range flow {
		total += in.cost[e] * f
	}

	return total
}
