package cycles

import "github.com/katalvlaran/potflow/network"

// Circulation converts an edge-index cycle into a signed unit circulation of
// length in.M(): +1 for edges traversed tail→head, −1 for edges traversed
// against their direction, 0 elsewhere. A self-loop gets +1.
//
// The walk starts at the node edge cycle[0] shares with the last edge; for a
// 2-cycle of parallel edges it starts at the tail of cycle[0]. The result
// satisfies NetInflow(c) = 0 for every well-formed cycle.
func Circulation(in *network.Instance, cycle []int) []float64 {
	c := make([]float64, in.M())
	switch len(cycle) {
	case 0:
		return c
	case 1:
		c[cycle[0]] = 1
		return c
	}

	first := in.Edge(cycle[0])
	cur := first.Tail
	if len(cycle) > 2 {
		last := in.Edge(cycle[len(cycle)-1])
		if first.Tail != last.Tail && first.Tail != last.Head {
			cur = first.Head
		}
	}

	for _, e := range cycle {
		ed := in.Edge(e)
		if ed.Tail == cur {
			c[e]++
			cur = ed.Head
		} else {
			c[e]--
			cur = ed.Tail
		}
	}

	return c
}
