package cycles

import (
	"slices"

	"github.com/katalvlaran/potflow/network"
)

// collapse returns the undirected simple graph underlying in: for every node
// its sorted, duplicate-free neighbors, self-loops dropped.
func collapse(in *network.Instance) [][]int {
	adj := make([][]int, in.N())
	for v := range adj {
		for _, e := range in.Incident(v) {
			ed := in.Edge(e)
			if ed.IsLoop() {
				continue
			}
			w := ed.Head
			if w == v {
				w = ed.Tail
			}
			adj[v] = append(adj[v], w)
		}
		slices.Sort(adj[v])
		adj[v] = slices.Compact(adj[v])
	}

	return adj
}

// simpleCycles calls visit with every simple cycle of length ≥ 3 of the
// undirected graph adj, as a node sequence starting at its smallest node.
// Each cycle is reported once: of its two traversal directions only the one
// whose second node is smaller than its last node is kept.
//
// The path slice passed to visit is reused; visit must copy it to keep it.
// Enumeration stops with ErrTooManyCycles once more than limit cycles were
// found, or with whatever error visit returns.
func simpleCycles(adj [][]int, limit int, visit func(path []int) error) error {
	n := len(adj)
	onPath := make([]bool, n)
	path := make([]int, 0, n)
	found := 0

	var walk func(start, v int) error
	walk = func(start, v int) error {
		for _, w := range adj[v] {
			// 1) Nodes below start were handled by an earlier root.
			if w < start {
				continue
			}
			// 2) Closing edge back to the root.
			if w == start {
				if len(path) >= 3 && path[1] < path[len(path)-1] {
					found++
					if found > limit {
						return ErrTooManyCycles
					}
					if err := visit(path); err != nil {
						return err
					}
				}
				continue
			}
			if onPath[w] {
				continue
			}
			// 3) Extend and backtrack.
			onPath[w] = true
			path = append(path, w)
			if err := walk(start, w); err != nil {
				return err
			}
			path = path[:len(path)-1]
			onPath[w] = false
		}

		return nil
	}

	for s := 0; s < n; s++ {
		onPath[s] = true
		path = append(path[:0], s)
		if err := walk(s, s); err != nil {
			return err
		}
		onPath[s] = false
	}

	return nil
}
