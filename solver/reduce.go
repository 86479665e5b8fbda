// SPDX-License-Identifier: MIT
// Package: potflow/solver
//
// reduce.go — the potential-reduction loop for one target guess.

package solver

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/potflow/cycles"
	"github.com/katalvlaran/potflow/network"
)

// run holds what every attempt of one solve shares: the instance without
// its fixed edges, the augmentation with its initial flow and the memoized
// cycle basis.
type run struct {
	orig  *network.Instance
	split *split
	aug   *Augmented // nil when every edge is fixed
	cache *cycles.Cache
	opts  Options
	log   *slog.Logger
}

func newRun(in *network.Instance, o Options, id string) (*run, error) {
	s, err := splitFixed(in)
	if err != nil {
		return nil, err
	}
	r := &run{
		orig:  in,
		split: s,
		cache: cycles.NewCache(cycles.WithMaxCycles(o.MaxCycles)),
		opts:  o,
		log:   o.Logger.With("run", id),
	}
	if s.in != nil {
		if r.aug, err = InitialFeasibleFlow(s.in); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Reduce runs the potential-reduction loop once for target on a fresh
// augmentation of in. See the package documentation for the stopping rules.
//
// Errors: ErrNilInstance, ErrNoFiniteRatio and cycles.ErrTooManyCycles
// (wrapped), or the context error.
func Reduce(ctx context.Context, in *network.Instance, target int64, opts ...Option) (Attempt, error) {
	if in == nil {
		return Attempt{}, ErrNilInstance
	}
	r, err := newRun(in, applyOptions(opts), uuid.NewString())
	if err != nil {
		return Attempt{}, err
	}

	return r.attempt(ctx, target)
}

func (r *run) attempt(ctx context.Context, target int64) (Attempt, error) {
	a := Attempt{Target: target, Potential: math.Inf(1)}
	if r.aug == nil {
		a.Flow = r.split.expand(r.orig, nil)
	} else {
		free, err := r.descend(ctx, target-r.split.cost, &a)
		if err != nil {
			return Attempt{}, err
		}
		a.Flow = r.split.expand(r.orig, free)
	}
	a.Cost = r.orig.FlowCost(a.Flow)
	a.Feasible = r.orig.CheckFlow(a.Flow) == nil

	r.log.Debug("attempt finished",
		"target", target,
		"cost", a.Cost,
		"feasible", a.Feasible,
		"iterations", a.Iterations,
		"termination", a.Termination.String())
	r.opts.Observer.AttemptFinished(a)

	return a, nil
}

// descend walks the augmented instance toward target and returns the
// integral flow on the free edges.
func (r *run) descend(ctx context.Context, target int64, a *Attempt) ([]int64, error) {
	inst := r.aug.Instance
	builds := r.cache.Builds()
	basis, err := r.cache.Basis(inst)
	if err != nil {
		return nil, fmt.Errorf("solver: Reduce: %w", err)
	}
	if r.cache.Builds() > builds {
		r.log.Debug("cycle basis built", "cycles", basis.Len(), "m", inst.M())
		r.opts.Observer.BasisBuilt(basis.Len())
	}

	t := float64(target)
	flow := append([]float64(nil), r.aug.Flow...)
	next := make([]float64, len(flow))
	phi, perr := inst.Potential(flow, t)
	term := Converged
	iters := 0

	for inst.Cost(flow)-t >= r.opts.Tolerance {
		// 1) Stopping rules that do not need a step.
		if perr != nil {
			term = Barrier
			break
		}
		if iters >= r.opts.MaxIterations {
			term = IterationLimit
			break
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		iters++

		// 2) Steepest circulation relative to the barrier curvature.
		grad := inst.Gradient(flow, t)
		dir, err := MinRatioCycle(grad, inst.Lengths(flow), basis.Circulations)
		if err != nil {
			return nil, fmt.Errorf("solver: Reduce (n=%d, m=%d, cycles=%d): %w",
				inst.N(), inst.M(), basis.Len(), err)
		}
		if !(dir.Ratio < 0) {
			term = Stationary
			break
		}

		// 3) Fixed directional derivative along the circulation. A step that
		// leaves the interior is discarded.
		eta := r.opts.StepTarget / dot(grad, dir.Circulation)
		for e, c := range dir.Circulation {
			next[e] = flow[e] + eta*c
		}
		p, err := inst.Potential(next, t)
		if err != nil {
			term = Barrier
			break
		}
		flow, next, phi = next, flow, p
	}

	a.Iterations, a.Termination, a.Potential = iters, term, phi

	return Integralize(inst, flow, basis)[:r.aug.Original], nil
}

func roundFlow(f []float64) []int64 {
	out := make([]int64, len(f))
	for e, x := range f {
		out[e] = int64(math.RoundToEven(x))
	}

	return out
}
