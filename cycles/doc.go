// Package cycles builds the cycle basis that the potential-reduction solver
// searches for descent directions.
//
// What:
//
//   - Build enumerates every simple undirected cycle of a network.Instance and
//     resolves each one to concrete edge indices, expanding parallel edges,
//     self-loops and 2-cycles between parallel edges.
//   - Circulation turns an edge-index cycle into a signed unit circulation,
//     a vector c with Bᵀc = 0.
//   - Cache memoizes the basis per instance and version.
//
// Why:
//
//   - Any feasible flow differs from another by a sum of circulations, so a
//     basis that reaches every cycle lets the solver move between interior
//     flows without breaking demand balance.
//
// Ordering:
//
//	Basis entries are sorted by their sorted edge-index set. Two builds of the
//	same instance yield identical bases regardless of insertion order of
//	adjacency lists, which makes ratio ties deterministic downstream.
//
// Complexity:
//
//   - Simple-cycle enumeration is exponential in the worst case (complete
//     graphs). Parallel-edge expansion multiplies every cycle by the product
//     of its alternatives. WithMaxCycles bounds both; crossing the bound
//     returns ErrTooManyCycles.
//
// Errors:
//
//   - ErrNilInstance: Build or Cache.Basis called with nil.
//   - ErrTooManyCycles: the enumeration crossed the configured bound.
package cycles
