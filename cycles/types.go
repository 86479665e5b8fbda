// SPDX-License-Identifier: MIT
// Package: potflow/cycles
//
// types.go — errors, Basis and functional options.
//
// Option constructors validate and panic on meaningless values; Build itself
// never panics on a valid instance.

package cycles

import (
	"errors"
	"fmt"
)

// DefaultMaxCycles bounds the number of cycles Build will enumerate or record.
const DefaultMaxCycles = 200000

var (
	// ErrNilInstance is returned when a nil instance is passed.
	ErrNilInstance = errors.New("cycles: nil instance")

	// ErrTooManyCycles is returned when enumeration crosses Options.MaxCycles.
	ErrTooManyCycles = errors.New("cycles: cycle bound exceeded")
)

// Basis is the cycle set of one instance version.
type Basis struct {
	// Cycles holds edge indices in traversal order.
	Cycles [][]int
	// Circulations[i] is the signed unit circulation of Cycles[i], length M().
	Circulations [][]float64
	// Version is the instance version the basis was built from.
	Version uint64
}

// Len returns the number of cycles.
func (b *Basis) Len() int { return len(b.Cycles) }

// Options configures Build.
type Options struct {
	// MaxCycles is the bound on enumerated and recorded cycles.
	MaxCycles int
}

// DefaultOptions returns the defaults used when no option is given.
func DefaultOptions() Options {
	return Options{MaxCycles: DefaultMaxCycles}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxCycles sets the cycle bound. Panics if n ≤ 0.
func WithMaxCycles(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("cycles: WithMaxCycles(%d): bound must be positive", n))
	}

	return func(o *Options) { o.MaxCycles = n }
}
