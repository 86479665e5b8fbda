package solver

import "math"

// Direction is the circulation chosen by MinRatioCycle.
type Direction struct {
	Ratio float64
	// Circulation is the basis entry multiplied by Sign.
	Circulation []float64
	// Index of the basis entry.
	Index int
	Sign  float64
}

// MinRatioCycle returns the circulation c and sign s minimizing
//
//	(grad · s·c) / Σ_e |lengths_e · s·c_e|
//
// Positive orientation is tried before negative and only a strictly smaller
// ratio replaces the incumbent, so ties go to the earliest basis entry. NaN
// ratios are skipped. ErrNoFiniteRatio is returned if nothing finite remains.
func MinRatioCycle(grad, lengths []float64, circulations [][]float64) (Direction, error) {
	best := Direction{Ratio: math.Inf(1), Index: -1}
	for i, c := range circulations {
		var dot, norm float64
		for e, x := range c {
			if x == 0 {
				continue
			}
			dot += grad[e] * x
			norm += math.Abs(lengths[e] * x)
		}
		for _, s := range [2]float64{1, -1} {
			if r := s * dot / norm; r < best.Ratio {
				best.Ratio, best.Index, best.Sign = r, i, s
			}
		}
	}
	if best.Index < 0 || math.IsInf(best.Ratio, 0) {
		return Direction{}, ErrNoFiniteRatio
	}

	c := circulations[best.Index]
	best.Circulation = make([]float64, len(c))
	for e, x := range c {
		best.Circulation[e] = best.Sign * x
	}

	return best, nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i, x := range a {
		s += x * b[i]
	}

	return s
}
