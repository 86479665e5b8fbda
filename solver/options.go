// SPDX-License-Identifier: MIT
// Package: potflow/solver
//
// options.go — functional options.
//
// Option constructors validate and panic on meaningless values. The solver
// itself never panics on valid input.

package solver

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/potflow/cycles"
)

// Defaults.
const (
	DefaultTolerance     = 1e-5
	DefaultStepTarget    = -10.0
	DefaultMaxIterations = 100000
)

// Options configures Reduce, MinCostFlow and MaxFlow.
type Options struct {
	// Tolerance is the cost gap below which an attempt converges.
	Tolerance float64
	// StepTarget is the directional derivative of the potential per step.
	StepTarget float64
	// MaxIterations bounds the steps of one attempt.
	MaxIterations int
	// MaxCycles bounds the cycle basis.
	MaxCycles int

	Logger   *slog.Logger
	Observer Observer
}

// DefaultOptions returns the defaults applied before any Option.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		StepTarget:    DefaultStepTarget,
		MaxIterations: DefaultMaxIterations,
		MaxCycles:     cycles.DefaultMaxCycles,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:      nopObserver{},
	}
}

// Option mutates Options.
type Option func(*Options)

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// WithTolerance sets the convergence gap. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if !finite(tol) || tol <= 0 {
		panic(fmt.Sprintf("solver: WithTolerance(%v): must be finite and positive", tol))
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithStepTarget sets the per-step directional derivative. Panics unless
// target is finite and < 0.
func WithStepTarget(target float64) Option {
	if !finite(target) || target >= 0 {
		panic(fmt.Sprintf("solver: WithStepTarget(%v): must be finite and negative", target))
	}

	return func(o *Options) { o.StepTarget = target }
}

// WithMaxIterations bounds the steps of one attempt. Panics if n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("solver: WithMaxIterations(%d): must be positive", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithMaxCycles bounds the cycle basis. Panics if n ≤ 0.
func WithMaxCycles(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("solver: WithMaxCycles(%d): must be positive", n))
	}

	return func(o *Options) { o.MaxCycles = n }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithObserver attaches an event observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("solver: WithObserver(nil)")
	}

	return func(o *Options) { o.Observer = obs }
}
