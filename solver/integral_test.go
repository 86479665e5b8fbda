package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potflow/cycles"
	"github.com/katalvlaran/potflow/network"
	"github.com/katalvlaran/potflow/solver"
)

func TestIntegralize(t *testing.T) {
	cases := []struct {
		name  string
		costs []int64
		flow  []float64
		want  []int64
	}{
		// The two-hop path and the direct edge cost the same; the tie moves
		// flow off the highest edge index.
		{"tie", []int64{1, 1, 2}, []float64{2.5, 2.5, 2.5}, []int64{5, 5, 0}},
		{"two-hop cheaper", []int64{1, 1, 3}, []float64{1.25, 1.25, 3.75}, []int64{5, 5, 0}},
		{"direct cheaper", []int64{2, 2, 1}, []float64{2.5, 2.5, 2.5}, []int64{0, 0, 5}},
		{"already integral", []int64{1, 1, 2}, []float64{3, 3, 2}, []int64{3, 3, 2}},
		{"numerical noise", []int64{1, 1, 2}, []float64{4.9999999, 5.0000001, 0}, []int64{5, 5, 0}},
		// Edge 1 is integral, so no cycle is fractional and rounding decides.
		{"no fractional cycle", []int64{1, 1, 2}, []float64{2.5, 1, 3.5}, []int64{2, 1, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := network.NewInstance(
				[]int64{-5, 0, 5},
				[]network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 0, Head: 2}},
				tc.costs, nil, []int64{5, 5, 10},
			)
			require.NoError(t, err)
			basis, err := cycles.Build(in)
			require.NoError(t, err)

			input := append([]float64(nil), tc.flow...)
			got := solver.Integralize(in, input, basis)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.flow, input)
			if in.CheckFlow(got) == nil {
				assert.LessOrEqual(t, float64(in.FlowCost(got)), in.Cost(tc.flow)+1e-9)
			}
		})
	}
}

// A parallel pair carrying half units settles on the cheaper edge while the
// rest of the flow stays put.
func TestIntegralize_ParallelPair(t *testing.T) {
	in, err := network.NewInstance(
		[]int64{-3, 0, 3},
		[]network.Edge{{Tail: 0, Head: 1}, {Tail: 0, Head: 1}, {Tail: 1, Head: 2}},
		[]int64{2, 1, 1},
		nil,
		[]int64{4, 4, 5},
	)
	require.NoError(t, err)
	basis, err := cycles.Build(in)
	require.NoError(t, err)

	got := solver.Integralize(in, []float64{1.5, 1.5, 3}, basis)
	assert.Equal(t, []int64{0, 3, 3}, got)
	require.NoError(t, in.CheckFlow(got))
}
