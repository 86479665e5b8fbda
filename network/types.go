// SPDX-License-Identifier: MIT
// Package: potflow/network
//
// types.go — sentinel errors, Edge and the typed error wrappers.
//
// Errors are prefixed with "network:" and must be matched with errors.Is.
// Per-edge construction failures are reported as *EdgeError, which unwraps to
// the sentinel that describes the violation.

package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for instance construction and evaluation.
var (
	// ErrNoNodes indicates an instance without any node.
	ErrNoNodes = errors.New("network: instance has no nodes")

	// ErrNoEdges indicates an instance without any edge.
	ErrNoEdges = errors.New("network: instance has no edges")

	// ErrLengthMismatch indicates that the per-edge arrays (costs, lower,
	// upper) do not match the edge list length.
	ErrLengthMismatch = errors.New("network: per-edge array length mismatch")

	// ErrNodeOutOfRange indicates an edge endpoint outside 0..N()-1.
	ErrNodeOutOfRange = errors.New("network: node index out of range")

	// ErrBadBounds indicates lower capacity > upper capacity on some edge.
	ErrBadBounds = errors.New("network: lower capacity exceeds upper capacity")

	// ErrUnbalancedDemand indicates that node demands do not sum to zero, so
	// no flow can satisfy them.
	ErrUnbalancedDemand = errors.New("network: demands do not sum to zero")

	// ErrFlowLength indicates a flow vector whose length differs from M().
	ErrFlowLength = errors.New("network: flow length does not match edge count")

	// ErrInfeasibleBarrier is the barrier signal of the potential: the flow is
	// not strictly inside every capacity interval, or cost(flow) ≤ target.
	ErrInfeasibleBarrier = errors.New("network: flow is not strictly interior")

	// ErrOverflow indicates costs or capacities so large that C·U or the
	// synthetic edge cost 4·m·U² no longer fits in an int64.
	ErrOverflow = errors.New("network: cost or capacity overflows int64")

	// ErrBadSourceSink indicates an invalid source/sink pair on a max-flow instance.
	ErrBadSourceSink = errors.New("network: invalid source or sink")
)

// Edge is a directed edge Tail→Head.
type Edge struct {
	Tail int
	Head int
}

// Reverse returns the edge with swapped endpoints.
func (e Edge) Reverse() Edge { return Edge{Tail: e.Head, Head: e.Tail} }

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool { return e.Tail == e.Head }

// EdgeError reports a construction failure on a specific edge index.
type EdgeError struct {
	Index int
	Edge  Edge
	Err   error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("network: edge %d (%d→%d): %v", e.Index, e.Edge.Tail, e.Edge.Head, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *EdgeError) Unwrap() error { return e.Err }

// FeasibilityError reports the first violated constraint found by CheckFlow.
// Exactly one of Edge or Node is meaningful: Edge ≥ 0 for a capacity
// violation, Node ≥ 0 for a balance violation.
type FeasibilityError struct {
	Edge int
	Node int

	// Got is the offending flow value (capacity) or net inflow (balance).
	Got int64
	// Lo and Hi are the admissible range; Lo == Hi for balance violations.
	Lo, Hi int64
}

func (e *FeasibilityError) Error() string {
	if e.Edge >= 0 {
		return fmt.Sprintf("network: edge %d carries %d outside [%d, %d]", e.Edge, e.Got, e.Lo, e.Hi)
	}

	return fmt.Sprintf("network: node %d has net inflow %d, demand %d", e.Node, e.Got, e.Lo)
}
