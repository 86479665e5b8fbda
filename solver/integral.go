package solver

import (
	"math"

	"github.com/katalvlaran/potflow/cycles"
	"github.com/katalvlaran/potflow/network"
)

// snapTolerance is the distance below which a flow component counts as
// integral.
const snapTolerance = 1e-6

// Integralize turns a feasible fractional flow on in into an integral one
// whose cost is not higher.
//
// With integral demands and bounds, the edges carrying fractional flow never
// leave a node with a single such edge, so they contain a simple cycle, and
// basis lists every simple cycle of in. Each round takes the first basis
// cycle made only of fractional edges and pushes flow around it until one of
// its edges reaches a bound. The direction is the one that lowers the cost;
// on a zero-cost cycle it is the one that moves flow off higher-numbered
// edges, so ties between equally cheap routes always settle the same way.
// Every round makes at least one more edge integral.
//
// Components left fractional (only possible when flow is not balanced to
// within snapTolerance) are rounded half to even. flow is not modified.
// Complexity: O(m · |basis| · L) for cycle length L.
func Integralize(in *network.Instance, flow []float64, basis *cycles.Basis) []int64 {
	x := append([]float64(nil), flow...)
	for e := range x {
		snap(x, e)
	}

	for range x {
		k := fractionalCycle(x, basis.Cycles)
		if k < 0 {
			break
		}
		cyc, circ := basis.Cycles[k], basis.Circulations[k]

		// 1) Direction: cheaper first, then off higher edge indices.
		var dc, dw float64
		for _, e := range cyc {
			dc += float64(in.CostOf(e)) * circ[e]
			dw += float64(e) * circ[e]
		}
		dir := 1.0
		if dc > 0 || (dc == 0 && dw > 0) {
			dir = -1
		}

		// 2) Largest step that keeps every cycle edge within its bounds.
		step, stop := math.Inf(1), -1
		for _, e := range cyc {
			room := x[e] - float64(in.Lower(e))
			if dir*circ[e] > 0 {
				room = float64(in.Upper(e)) - x[e]
			}
			if room < step {
				step, stop = room, e
			}
		}

		for _, e := range cyc {
			x[e] += step * dir * circ[e]
			snap(x, e)
		}
		if dir*circ[stop] > 0 {
			x[stop] = float64(in.Upper(stop))
		} else {
			x[stop] = float64(in.Lower(stop))
		}
	}

	return roundFlow(x)
}

func snap(x []float64, e int) {
	if r := math.Round(x[e]); math.Abs(x[e]-r) <= snapTolerance {
		x[e] = r
	}
}

func fractionalCycle(x []float64, cycs [][]int) int {
next:
	for k, cyc := range cycs {
		for _, e := range cyc {
			if x[e] == math.Trunc(x[e]) {
				continue next
			}
		}

		return k
	}

	return -1
}
