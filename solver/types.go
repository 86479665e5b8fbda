// SPDX-License-Identifier: MIT
// Package: potflow/solver
//
// types.go — sentinel errors, termination kinds, results and the Observer hook.

package solver

import (
	"errors"
	"time"
)

var (
	// ErrNilInstance is returned when a nil instance is passed.
	ErrNilInstance = errors.New("solver: nil instance")

	// ErrNoFiniteRatio is returned when no circulation yields a finite ratio,
	// which means the augmented instance has an empty cycle basis.
	ErrNoFiniteRatio = errors.New("solver: no cycle with a finite ratio")

	// ErrInfeasibleRounding is returned when no attempt of a solve produced an
	// integral flow meeting every bound and demand. It wraps the
	// *network.FeasibilityError of the reported flow.
	ErrInfeasibleRounding = errors.New("solver: no attempt produced a feasible integral flow")
)

// Termination tells why an attempt stopped.
type Termination int

const (
	// Converged: cost(f) − target dropped below Tolerance.
	Converged Termination = iota
	// Barrier: the next step would leave the interior; it was not taken.
	Barrier
	// Stationary: no circulation has a negative ratio.
	Stationary
	// IterationLimit: MaxIterations steps were taken.
	IterationLimit
)

func (t Termination) String() string {
	switch t {
	case Converged:
		return "converged"
	case Barrier:
		return "barrier"
	case Stationary:
		return "stationary"
	case IterationLimit:
		return "iteration_limit"
	}

	return "unknown"
}

// Attempt is the outcome of one Reduce call.
type Attempt struct {
	Target      int64
	Cost        int64   // cost of Flow under the original costs
	Flow        []int64 // integral, original edges only
	Feasible    bool    // Flow meets every bound and demand
	Iterations  int
	Termination Termination
	// Potential at the final point; +Inf when the gap to Target is not
	// positive there or every edge is fixed.
	Potential float64
}

// Result is the outcome of MinCostFlow.
type Result struct {
	Cost       int64
	Flow       []int64
	Guesses    int
	Iterations int // summed over attempts
	RunID      string
	Attempts   []Attempt
}

// MaxFlowResult is the outcome of MaxFlow. Flow excludes the return edge.
type MaxFlowResult struct {
	Value int64
	Flow  []int64
	Solve Result
}

// Observer receives solver events. Implementations must be cheap; they run
// on the solving goroutine.
type Observer interface {
	// BasisBuilt reports the size of a freshly built cycle basis. A solve
	// builds one basis; later attempts reuse it.
	BasisBuilt(cycles int)
	// AttemptFinished reports every finished attempt.
	AttemptFinished(a Attempt)
	// SolveFinished reports the end of a MinCostFlow call.
	SolveFinished(r Result, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) BasisBuilt(int)                             {}
func (nopObserver) AttemptFinished(Attempt)                    {}
func (nopObserver) SolveFinished(Result, time.Duration, error) {}
