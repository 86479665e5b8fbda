// SPDX-License-Identifier: MIT
// Package: potflow/cycles
//
// basis.go — Build: enumeration, edge resolution, parallel-edge expansion and
// deterministic ordering.

package cycles

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/potflow/network"
)

// recorder collects distinct edge-index cycles keyed by their sorted edge set.
type recorder struct {
	limit  int
	seen   map[string]struct{}
	cycles [][]int
	buf    []int
	key    strings.Builder
}

func newRecorder(limit int) *recorder {
	return &recorder{limit: limit, seen: make(map[string]struct{})}
}

// record stores a copy of cycle unless it repeats an edge or was seen before.
func (r *recorder) record(cycle []int) error {
	r.buf = append(r.buf[:0], cycle...)
	slices.Sort(r.buf)
	for i := 1; i < len(r.buf); i++ {
		if r.buf[i] == r.buf[i-1] {
			return nil
		}
	}

	r.key.Reset()
	for i, e := range r.buf {
		if i > 0 {
			r.key.WriteByte(',')
		}
		r.key.WriteString(strconv.Itoa(e))
	}
	k := r.key.String()
	if _, dup := r.seen[k]; dup {
		return nil
	}
	if len(r.cycles) >= r.limit {
		return ErrTooManyCycles
	}
	r.seen[k] = struct{}{}
	r.cycles = append(r.cycles, append([]int(nil), cycle...))

	return nil
}

// Build enumerates the cycle basis of in.
//
// Steps:
//  1. every self-loop becomes a 1-cycle;
//  2. every pair of parallel edges becomes a 2-cycle;
//  3. every simple cycle of length ≥ 3 of the collapsed graph is resolved to
//     the first edge of each node pair, then re-resolved through every
//     combination of alternative parallel edges;
//  4. the distinct cycles are sorted by their sorted edge-index set and
//     converted to circulations.
//
// Errors: ErrNilInstance, ErrTooManyCycles (wrapped).
func Build(in *network.Instance, opts ...Option) (*Basis, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rec := newRecorder(o.MaxCycles)
	if err := collect(in, rec, o.MaxCycles); err != nil {
		return nil, fmt.Errorf("cycles: Build (n=%d, m=%d): %w", in.N(), in.M(), err)
	}

	// Deterministic order: lexicographic on the sorted edge set.
	keys := make([][]int, len(rec.cycles))
	order := make([]int, len(rec.cycles))
	for i, c := range rec.cycles {
		keys[i] = slices.Sorted(slices.Values(c))
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return slices.Compare(keys[a], keys[b]) })

	b := &Basis{
		Cycles:       make([][]int, len(order)),
		Circulations: make([][]float64, len(order)),
		Version:      in.Version(),
	}
	for i, j := range order {
		b.Cycles[i] = rec.cycles[j]
		b.Circulations[i] = Circulation(in, rec.cycles[j])
	}

	return b, nil
}

func collect(in *network.Instance, rec *recorder, limit int) error {
	// 1) Self-loops.
	for e := 0; e < in.M(); e++ {
		if in.Edge(e).IsLoop() {
			if err := rec.record([]int{e}); err != nil {
				return err
			}
		}
	}

	// 2) Pairs of parallel edges, once per unordered node pair.
	adj := collapse(in)
	for a, nbrs := range adj {
		for _, b := range nbrs {
			if b < a {
				continue
			}
			par := in.EdgesBetween(a, b)
			for i := 0; i < len(par); i++ {
				for j := i + 1; j < len(par); j++ {
					if err := rec.record([]int{par[i], par[j]}); err != nil {
						return err
					}
				}
			}
		}
	}

	// 3) Simple cycles with parallel-edge expansion.
	var (
		cands     [][]int
		resolved  []int
		ambiguous []int
	)
	return simpleCycles(adj, limit, func(path []int) error {
		L := len(path)
		cands = cands[:0]
		resolved = resolved[:0]
		ambiguous = ambiguous[:0]
		for i := 0; i < L; i++ {
			par := in.EdgesBetween(path[i], path[(i+1)%L])
			cands = append(cands, par)
			resolved = append(resolved, par[0])
			if len(par) > 1 {
				ambiguous = append(ambiguous, i)
			}
		}
		if err := rec.record(resolved); err != nil {
			return err
		}

		return expand(rec, cands, resolved, ambiguous)
	})
}

// expand re-resolves every k-combination (k = 1..A) of the ambiguous
// positions to each tuple of their non-first parallel edges.
func expand(rec *recorder, cands [][]int, base, ambiguous []int) error {
	var err error
	work := make([]int, len(base))
	radix := make([]int, 0, len(ambiguous))
	for k := 1; k <= len(ambiguous) && err == nil; k++ {
		forEachCombination(len(ambiguous), k, func(idx []int) bool {
			radix = radix[:0]
			for _, i := range idx {
				radix = append(radix, len(cands[ambiguous[i]]))
			}
			forEachProduct(radix, func(t []int) bool {
				copy(work, base)
				for j, i := range idx {
					p := ambiguous[i]
					work[p] = cands[p][t[j]]
				}
				err = rec.record(work)
				return err == nil
			})
			return err == nil
		})
	}

	return err
}
