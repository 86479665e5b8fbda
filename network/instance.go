// SPDX-License-Identifier: MIT
// Package: potflow/network
//
// instance.go — Instance construction, growth (AddNode/AddEdge) and read-only
// accessors.
//
// Invariants (kept by every mutation):
//   - len(edges) == len(cost) == len(lower) == len(upper) == M()
//   - len(demand) == len(incident) == N()
//   - lower[e] ≤ upper[e] for every e
//   - C·U and 4·M()·U² fit in an int64
//   - pairs[{a,b}] and pairs[{b,a}] both list e for every edge between a and b
//   - C, U, alpha reflect the current edge set
//   - version increases on every structural change

package network

import (
	"math"
	"math/bits"
)

// pair is an ordered node pair used as the adjacency index key.
type pair struct{ a, b int }

// Instance is a min-cost-flow instance. The zero value is not usable; build
// one with NewInstance.
type Instance struct {
	demand []int64

	edges []Edge
	cost  []int64
	lower []int64
	upper []int64

	// incident[v] lists the edges touching v, append-only.
	incident [][]int
	// pairs is the undirected adjacency index (both orientations).
	pairs map[pair][]int

	c     int64
	u     int64
	alpha float64

	version uint64
}

// NewInstance validates its inputs and builds an Instance.
//
// demands has one entry per node (net inflow required). edges, costs and
// upper must have equal length; lower may be nil (all zero) or of the same
// length. All slices are copied.
//
// Errors: ErrNoNodes, ErrNoEdges, ErrLengthMismatch, ErrUnbalancedDemand, and
// *EdgeError wrapping ErrNodeOutOfRange, ErrBadBounds or ErrOverflow.
// Complexity: O(n + m).
func NewInstance(demands []int64, edges []Edge, costs, lower, upper []int64) (*Instance, error) {
	if len(demands) == 0 {
		return nil, ErrNoNodes
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	if len(costs) != len(edges) || len(upper) != len(edges) {
		return nil, ErrLengthMismatch
	}
	if lower != nil && len(lower) != len(edges) {
		return nil, ErrLengthMismatch
	}

	var total int64
	for _, d := range demands {
		total += d
	}
	if total != 0 {
		return nil, ErrUnbalancedDemand
	}

	in := &Instance{
		demand:   append([]int64(nil), demands...),
		edges:    make([]Edge, 0, len(edges)),
		cost:     make([]int64, 0, len(edges)),
		lower:    make([]int64, 0, len(edges)),
		upper:    make([]int64, 0, len(edges)),
		incident: make([][]int, len(demands)),
		pairs:    make(map[pair][]int, 2*len(edges)),
	}
	for i, e := range edges {
		var lo int64
		if lower != nil {
			lo = lower[i]
		}
		if err := in.validateEdge(e, costs[i], lo, upper[i]); err != nil {
			return nil, &EdgeError{Index: i, Edge: e, Err: err}
		}
		in.appendEdge(e, costs[i], lo, upper[i])
	}
	in.refreshAlpha()

	return in, nil
}

// AddNode appends an isolated node with zero demand and returns its index.
func (in *Instance) AddNode() int {
	in.demand = append(in.demand, 0)
	in.incident = append(in.incident, nil)
	in.version++

	return len(in.demand) - 1
}

// AddEdge appends the edge tail→head and returns its index. C, U, alpha, the
// adjacency index and the incidence lists are updated in place. A rejected
// edge leaves the instance unchanged.
func (in *Instance) AddEdge(tail, head int, cost, lower, upper int64) (int, error) {
	e := Edge{Tail: tail, Head: head}
	if err := in.validateEdge(e, cost, lower, upper); err != nil {
		return -1, &EdgeError{Index: len(in.edges), Edge: e, Err: err}
	}
	in.appendEdge(e, cost, lower, upper)
	in.refreshAlpha()

	return len(in.edges) - 1, nil
}

func (in *Instance) validateEdge(e Edge, cost, lower, upper int64) error {
	n := len(in.demand)
	if e.Tail < 0 || e.Tail >= n || e.Head < 0 || e.Head >= n {
		return ErrNodeOutOfRange
	}
	if lower > upper {
		return ErrBadBounds
	}
	if !in.fits(cost, lower, upper) {
		return ErrOverflow
	}

	return nil
}

// fits reports whether C·U and 4·m·U² stay representable once an edge with
// the given cost and bounds is appended.
func (in *Instance) fits(cost, lower, upper int64) bool {
	c := max(in.c, abs64(cost))
	u := max(in.u, abs64(lower), abs64(upper))
	m := int64(len(in.edges)) + 1

	if _, ok := mul64(c, u); !ok {
		return false
	}
	uu, ok := mul64(u, u)
	if !ok {
		return false
	}
	_, ok = mul64(4*m, uu)

	return ok
}

// mul64 multiplies two non-negative values; ok is false on overflow or when
// either operand is negative (abs64 of math.MinInt64).
func mul64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

// appendEdge stores an already validated edge. alpha is refreshed by callers.
func (in *Instance) appendEdge(e Edge, cost, lower, upper int64) {
	idx := len(in.edges)
	in.edges = append(in.edges, e)
	in.cost = append(in.cost, cost)
	in.lower = append(in.lower, lower)
	in.upper = append(in.upper, upper)

	in.incident[e.Tail] = append(in.incident[e.Tail], idx)
	in.pairs[pair{e.Tail, e.Head}] = append(in.pairs[pair{e.Tail, e.Head}], idx)
	if !e.IsLoop() {
		in.incident[e.Head] = append(in.incident[e.Head], idx)
		in.pairs[pair{e.Head, e.Tail}] = append(in.pairs[pair{e.Head, e.Tail}], idx)
	}

	in.c = max(in.c, abs64(cost))
	in.u = max(in.u, abs64(lower), abs64(upper))
	in.version++
}

// refreshAlpha recomputes alpha = 1/log2(1000·m·U). U is clamped to 1 so an
// all-zero capacity instance still yields a finite exponent.
func (in *Instance) refreshAlpha() {
	u := float64(max(in.u, 1))
	in.alpha = 1 / math.Log2(1000*float64(len(in.edges))*u)
}

// Clone returns a deep copy that shares no state with in. The copy keeps the
// version so callers can tell it has not diverged yet.
func (in *Instance) Clone() *Instance {
	out := &Instance{
		demand:   append([]int64(nil), in.demand...),
		edges:    append([]Edge(nil), in.edges...),
		cost:     append([]int64(nil), in.cost...),
		lower:    append([]int64(nil), in.lower...),
		upper:    append([]int64(nil), in.upper...),
		incident: make([][]int, len(in.incident)),
		pairs:    make(map[pair][]int, len(in.pairs)),
		c:        in.c,
		u:        in.u,
		alpha:    in.alpha,
		version:  in.version,
	}
	for v, list := range in.incident {
		out.incident[v] = append([]int(nil), list...)
	}
	for k, list := range in.pairs {
		out.pairs[k] = append([]int(nil), list...)
	}

	return out
}

// N returns the node count.
func (in *Instance) N() int { return len(in.demand) }

// M returns the edge count.
func (in *Instance) M() int { return len(in.edges) }

// C returns the maximum absolute edge cost.
func (in *Instance) C() int64 { return in.c }

// U returns the maximum absolute capacity bound.
func (in *Instance) U() int64 { return in.u }

// Alpha returns the barrier smoothing exponent.
func (in *Instance) Alpha() float64 { return in.alpha }

// Version returns the structural version counter.
func (in *Instance) Version() uint64 { return in.version }

// Edge returns the endpoints of edge e.
func (in *Instance) Edge(e int) Edge { return in.edges[e] }

// Edges returns a copy of the edge list.
func (in *Instance) Edges() []Edge { return append([]Edge(nil), in.edges...) }

// CostOf returns the cost of edge e.
func (in *Instance) CostOf(e int) int64 { return in.cost[e] }

// Costs returns a copy of the cost vector.
func (in *Instance) Costs() []int64 { return append([]int64(nil), in.cost...) }

// Lower returns the lower capacity of edge e.
func (in *Instance) Lower(e int) int64 { return in.lower[e] }

// Upper returns the upper capacity of edge e.
func (in *Instance) Upper(e int) int64 { return in.upper[e] }

// Demand returns the demand of node v.
func (in *Instance) Demand(v int) int64 { return in.demand[v] }

// Demands returns a copy of the demand vector.
func (in *Instance) Demands() []int64 { return append([]int64(nil), in.demand...) }

// Incident returns the edges touching v in insertion order. The slice must be
// treated as read-only.
func (in *Instance) Incident(v int) []int { return in.incident[v] }

// Incidence returns the signed incidence of edge e at node v: −1 at the tail,
// +1 at the head, 0 otherwise (including both ends of a self-loop).
func (in *Instance) Incidence(e, v int) int {
	ed := in.edges[e]
	switch {
	case ed.IsLoop():
		return 0
	case ed.Tail == v:
		return -1
	case ed.Head == v:
		return 1
	}

	return 0
}

// EdgesBetween returns the edges joining a and b in either direction, in
// insertion order. The slice must be treated as read-only.
func (in *Instance) EdgesBetween(a, b int) []int { return in.pairs[pair{a, b}] }

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
