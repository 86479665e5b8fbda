// Package solver computes minimum-cost flows with a potential-reduction
// interior-point method driven by an integer binary search on the optimal
// cost.
//
// Overview:
//
//   - InitialFeasibleFlow augments an instance with one synthetic node so that
//     the capacity midpoints form a strictly interior feasible flow.
//   - MinRatioCycle picks, among the cycle basis and both orientations, the
//     circulation with the most negative gradient-to-length ratio.
//   - Reduce walks from the initial flow along such circulations until the
//     cost gap to a target guess closes, the barrier is hit, no descent
//     direction is left or the iteration bound is reached.
//   - Integralize moves a fractional flow around fractional cycles until it
//     is integral without raising its cost.
//   - MinCostFlow binary-searches the target over [−C·U, C·U] and returns the
//     cheapest feasible integral flow among its attempts. MaxFlow reduces a
//     max-flow problem to it.
//
// Numerics:
//
//	The loop stops once cost(f) − target < Tolerance (1e-5 by default). Each
//	step is scaled so the directional derivative of the potential equals
//	StepTarget (−10 by default). Both are tunables rather than the bounds of
//	the underlying analysis. A step that would leave the interior is not
//	taken. Where several optimal flows tie the walk ends between them;
//	Integralize settles such ties toward lower edge indices, so the reported
//	flow is a vertex and always passes network.Instance.CheckFlow. A solve
//	that finds no such flow fails with ErrInfeasibleRounding.
//
//	Edges with lower == upper carry a known flow. They are folded into the
//	demands of their endpoints before the instance is augmented.
//
// Observability:
//
//	Every solve gets a UUID run ID. Debug records go to Options.Logger
//	(discarded by default) and structured events to Options.Observer.
//
// Concurrency:
//
//	A solve is single-threaded and owns its instance copy and cycle cache.
//	Independent solves may run in parallel. The context is checked once per
//	iteration.
package solver
