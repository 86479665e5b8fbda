// SPDX-License-Identifier: MIT
// Package: potflow/solver
//
// search.go — binary search on the optimal cost and the max-flow reduction.

package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/potflow/network"
)

// MinCostFlow binary-searches the optimal cost of in over [−C·U, C·U].
//
// Each guess mid = lo + (hi−lo)/2 runs one attempt. An attempt whose flow is
// feasible and costs at most mid moves hi to mid; otherwise lo moves to
// mid+1. The cheapest feasible flow over all attempts is returned. The number
// of guesses is at most ⌈log2(2·C·U+1)⌉. When C·U = 0 the range is a single
// point and one attempt at target −1 is made so that a flow is still
// produced; when every edge is fixed one attempt checks the fixed flow.
//
// Errors: ErrNilInstance, ErrInfeasibleRounding, errors of Reduce, all wrapped
// with "solver: MinCostFlow", or the context error. On ErrInfeasibleRounding
// the Result still carries the last attempt.
func MinCostFlow(ctx context.Context, in *network.Instance, opts ...Option) (Result, error) {
	if in == nil {
		return Result{}, ErrNilInstance
	}
	o := applyOptions(opts)
	res := Result{RunID: uuid.NewString()}

	start := time.Now()
	err := search(ctx, in, o, &res)
	o.Observer.SolveFinished(res, time.Since(start), err)
	if err != nil {
		return res, fmt.Errorf("solver: MinCostFlow: %w", err)
	}

	return res, nil
}

func search(ctx context.Context, in *network.Instance, o Options, res *Result) error {
	r, err := newRun(in, o, res.RunID)
	if err != nil {
		return err
	}

	bound := in.C() * in.U()
	lo, hi := -bound, bound
	r.log.Debug("search started", "n", in.N(), "m", in.M(), "fixed", in.M()-len(r.split.free), "lo", lo, "hi", hi)

	var best *Attempt
	probe := func(target int64) (Attempt, error) {
		a, err := r.attempt(ctx, target)
		if err != nil {
			return a, err
		}
		res.Guesses++
		res.Iterations += a.Iterations
		res.Attempts = append(res.Attempts, a)
		res.Cost, res.Flow = a.Cost, a.Flow
		if a.Feasible && (best == nil || a.Cost < best.Cost) {
			best = &a
		}

		return a, nil
	}

	switch {
	case r.aug == nil:
		if _, err = probe(r.split.cost); err != nil {
			return err
		}
	case lo == hi:
		if _, err = probe(-1); err != nil {
			return err
		}
	default:
		for lo < hi {
			mid := lo + (hi-lo)/2
			a, err := probe(mid)
			if err != nil {
				return err
			}
			if a.Feasible && a.Cost <= mid {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
	}

	if best != nil {
		res.Cost, res.Flow = best.Cost, best.Flow
	}
	if err = in.CheckFlow(res.Flow); err != nil {
		return fmt.Errorf("%w: %w", ErrInfeasibleRounding, err)
	}
	r.log.Debug("search finished", "cost", res.Cost, "guesses", res.Guesses, "iterations", res.Iterations)

	return nil
}

// MaxFlow solves mf through its min-cost circulation reduction. The value is
// the negated circulation cost; Flow drops the appended return edge.
func MaxFlow(ctx context.Context, mf *network.MaxFlowInstance, opts ...Option) (MaxFlowResult, error) {
	if mf == nil {
		return MaxFlowResult{}, ErrNilInstance
	}
	in, err := mf.ToMinCostFlow()
	if err != nil {
		return MaxFlowResult{}, fmt.Errorf("solver: MaxFlow: %w", err)
	}

	res, err := MinCostFlow(ctx, in, opts...)
	if err != nil {
		return MaxFlowResult{Solve: res}, err
	}

	return MaxFlowResult{
		Value: -res.Cost,
		Flow:  res.Flow[:len(mf.Edges)],
		Solve: res,
	}, nil
}
