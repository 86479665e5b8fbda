// Package network holds the flow instance consumed by the potential-reduction
// solver: a directed multigraph with integer costs, lower/upper capacities and
// node demands, plus the numeric constants derived from it.
//
// # Conventions
//
//   - Nodes are dense indices 0..N()-1; edges are dense indices 0..M()-1 in
//     insertion order. Parallel edges (same or opposite orientation) and
//     self-loops are allowed and individually addressable.
//   - Demand(v) is the net inflow required at v (inflow − outflow). Supply
//     nodes carry a negative demand, sinks a positive one.
//   - Incidence(e, v) is −1 at the tail of e and +1 at its head, so that
//     NetInflow(f) = Bᵀf must equal the demand vector for a feasible flow.
//
// # Derived constants
//
//	C     = max |cost_e|
//	U     = max(|lower_e|, |upper_e|)
//	alpha = 1 / log2(1000·m·U)
//
// alpha is the smoothing exponent of the capacity barrier. It shrinks as edges
// are appended and is recomputed by every AddEdge.
//
// # Potential
//
// For a strictly interior flow f and a target cost F* < cost(f):
//
//	Φ(f) = 20·m·log2(cost(f) − F*) + Σ_e [ (u_e − f_e)^(−α) + (f_e − l_e)^(−α) ]
//
// Potential reports +Inf together with ErrInfeasibleBarrier once the flow
// touches or crosses a capacity boundary (or the gap closes). Gradient and
// Lengths evaluate ∂Φ/∂f and the local curvature weights used to normalize
// cycle steps.
//
// # Mutation
//
// An Instance changes only through AddNode and AddEdge. Both bump Version(),
// which downstream caches (see package cycles) use to detect structural
// changes. Use Clone to augment an instance without touching the original.
//
// # Errors
//
//	ErrNoNodes, ErrNoEdges, ErrLengthMismatch, ErrNodeOutOfRange,
//	ErrBadBounds, ErrUnbalancedDemand  - rejected at construction (EdgeError wraps per-edge cases)
//	ErrInfeasibleBarrier               - potential evaluated on a non-interior flow
//	FeasibilityError                   - CheckFlow found a violated bound or balance
//
// MaxFlowInstance reduces a source/sink maximum-flow problem to a min-cost
// circulation by appending a sink→source edge of cost −1.
package network
