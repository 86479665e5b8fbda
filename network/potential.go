package network

import "math"

// potentialScale is the weight of the log-gap term: Φ = scale·m·log2(gap) + barrier.
const potentialScale = 20

// Cost returns Σ cost_e·flow_e.
// Complexity: O(m).
func (in *Instance) Cost(flow []float64) float64 {
	var total float64
	for e, f := range flow {
		total += float64(in.cost[e]) * f
	}

	return total
}

// NetInflow returns Bᵀf: for every node the inflow minus the outflow.
// Complexity: O(n + m).
func (in *Instance) NetInflow(flow []float64) []float64 {
	net := make([]float64, len(in.demand))
	for e, f := range flow {
		ed := in.edges[e]
		net[ed.Head] += f
		net[ed.Tail] -= f
	}

	return net
}

// Potential evaluates
//
//	Φ(f) = 20·m·log2(cost(f) − target) + Σ_e [(u_e − f_e)^(−α) + (f_e − l_e)^(−α)]
//
// It returns (+Inf, ErrInfeasibleBarrier) if cost(f) ≤ target or any flow
// component is not strictly inside its capacity interval. NaN components are
// treated the same way. A flow of the wrong length yields ErrFlowLength.
// Complexity: O(m).
func (in *Instance) Potential(flow []float64, target float64) (float64, error) {
	if len(flow) != len(in.edges) {
		return math.Inf(1), ErrFlowLength
	}
	gap := in.Cost(flow) - target
	if !(gap > 0) {
		return math.Inf(1), ErrInfeasibleBarrier
	}

	phi := potentialScale * float64(len(in.edges)) * math.Log2(gap)
	for e, f := range flow {
		hi := float64(in.upper[e]) - f
		lo := f - float64(in.lower[e])
		if !(hi > 0 && lo > 0) {
			return math.Inf(1), ErrInfeasibleBarrier
		}
		phi += math.Pow(hi, -in.alpha) + math.Pow(lo, -in.alpha)
	}
	if math.IsInf(phi, 0) || math.IsNaN(phi) {
		return math.Inf(1), ErrInfeasibleBarrier
	}

	return phi, nil
}

// Gradient returns ∂Φ/∂f_e for every edge:
//
//	20·m·cost_e/(cost(f) − target) + α(u_e − f_e)^(−1−α) − α(f_e − l_e)^(−1−α)
//
// The log-gap term is differentiated with the natural logarithm, so it is
// ln 2 times the exact slope of Potential's log2 term. The barrier terms are
// exact. The caller must pass an interior flow with cost(f) > target; outside
// that region the entries are not finite.
func (in *Instance) Gradient(flow []float64, target float64) []float64 {
	m := len(in.edges)
	scale := potentialScale * float64(m) / (in.Cost(flow) - target)
	exp := -1 - in.alpha

	grad := make([]float64, m)
	for e, f := range flow {
		grad[e] = scale*float64(in.cost[e]) +
			in.alpha*math.Pow(float64(in.upper[e])-f, exp) -
			in.alpha*math.Pow(f-float64(in.lower[e]), exp)
	}

	return grad
}

// Lengths returns the per-edge curvature weights
//
//	(u_e − f_e)^(−1−α) + (f_e − l_e)^(−1−α)
//
// used to normalize the step taken along a cycle.
func (in *Instance) Lengths(flow []float64) []float64 {
	exp := -1 - in.alpha
	out := make([]float64, len(flow))
	for e, f := range flow {
		out[e] = math.Pow(float64(in.upper[e])-f, exp) + math.Pow(f-float64(in.lower[e]), exp)
	}

	return out
}
