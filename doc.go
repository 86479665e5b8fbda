// Package potflow computes minimum-cost flows with a potential-reduction
// interior-point method.
//
// Layout:
//
//	network/      Instance, the potential, its gradient and integral feasibility checks
//	cycles/       cycle basis enumeration with parallel-edge expansion and a versioned cache
//	solver/       initial feasible flow, min-ratio cycle selection, the reduction loop,
//	              the binary search on the optimal cost and the max-flow reduction
//	metrics/      Prometheus collector implementing solver.Observer
//	config/       YAML solver settings
//	loader/       JSON/YAML instance documents and file watching
//	cmd/potflow/  command-line front end
//
// Quick example:
//
//	    (0) ──1──▶ (1) ──1──▶ (2)
//	     └──────────3─────────▲
//
//	Shipping 5 units from 0 to 2 costs 10 over the two-hop path and 15 over
//	the direct edge, so solver.MinCostFlow returns cost 10 and flow [5 5 0].
//
// The method is exponential in the worst case through cycle enumeration and
// is meant for small graphs where an interior-point trajectory is wanted.
package potflow
