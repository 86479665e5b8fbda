package cycles_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potflow/cycles"
	"github.com/katalvlaran/potflow/network"
)

// circulationInstance builds a zero-demand instance with unit costs and
// capacities on the given edges over n nodes.
func circulationInstance(t testing.TB, n int, edges []network.Edge) *network.Instance {
	t.Helper()
	ones := make([]int64, len(edges))
	for i := range ones {
		ones[i] = 1
	}
	in, err := network.NewInstance(make([]int64, n), edges, ones, nil, ones)
	require.NoError(t, err)

	return in
}

func k4(t testing.TB, extra ...network.Edge) *network.Instance {
	edges := []network.Edge{{Tail: 0, Head: 1}, {Tail: 0, Head: 2}, {Tail: 0, Head: 3}, {Tail: 1, Head: 2}, {Tail: 1, Head: 3}, {Tail: 2, Head: 3}}
	return circulationInstance(t, 4, append(edges, extra...))
}

func edgeSets(b *cycles.Basis) [][]int {
	out := make([][]int, 0, b.Len())
	for _, c := range b.Cycles {
		out = append(out, slices.Sorted(slices.Values(c)))
	}

	return out
}

func requireConservative(t *testing.T, in *network.Instance, b *cycles.Basis) {
	t.Helper()
	require.Len(t, b.Circulations, b.Len())
	for i, c := range b.Circulations {
		require.Len(t, c, in.M())
		for v, net := range in.NetInflow(c) {
			assert.Zero(t, net, "cycle %v leaks at node %d", b.Cycles[i], v)
		}
		nonzero := 0
		for _, x := range c {
			if x != 0 {
				assert.Equal(t, 1.0, x*x)
				nonzero++
			}
		}
		assert.Equal(t, len(b.Cycles[i]), nonzero)
	}
}

func TestBuild_Triangle(t *testing.T) {
	in := circulationInstance(t, 3, []network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 0, Head: 2}})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, b.Cycles)
	assert.Equal(t, [][]float64{{1, 1, -1}}, b.Circulations)
	assert.Equal(t, in.Version(), b.Version)
}

func TestBuild_ForestHasNoCycles(t *testing.T) {
	in := circulationInstance(t, 4, []network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 3, Head: 1}})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Zero(t, b.Len())
}

func TestBuild_ParallelEdges(t *testing.T) {
	in, err := network.NewInstance(
		[]int64{0, 0, 0},
		[]network.Edge{{Tail: 0, Head: 1}, {Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 0}},
		[]int64{1, 2, 1, 1},
		nil,
		[]int64{4, 5, 9, 9},
	)
	require.NoError(t, err)

	b, err := cycles.Build(in)
	require.NoError(t, err)
	// The 2-cycle between the parallel edges plus the triangle through each of them.
	assert.Equal(t, [][]int{{0, 1}, {0, 2, 3}, {1, 2, 3}}, b.Cycles)
	assert.Equal(t, [][]float64{
		{1, -1, 0, 0},
		{1, 0, 1, 1},
		{0, 1, 1, 1},
	}, b.Circulations)
	requireConservative(t, in, b)
}

func TestBuild_OppositeParallelEdges(t *testing.T) {
	in := circulationInstance(t, 2, []network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 0}})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}}, b.Circulations)
}

func TestBuild_EveryAlternativeCombination(t *testing.T) {
	in := circulationInstance(t, 3, []network.Edge{
		{Tail: 0, Head: 1}, {Tail: 1, Head: 0}, // parallel on 0-1
		{Tail: 1, Head: 2}, {Tail: 1, Head: 2}, // parallel on 1-2
		{Tail: 2, Head: 0},
	})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1},
		{0, 2, 4},
		{0, 3, 4},
		{1, 2, 4},
		{1, 3, 4},
		{2, 3},
	}, edgeSets(b))
	requireConservative(t, in, b)
}

func TestBuild_ThreeParallelEdges(t *testing.T) {
	in := circulationInstance(t, 3, []network.Edge{{Tail: 0, Head: 1}, {Tail: 0, Head: 1}, {Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 0}})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1},
		{0, 2},
		{0, 3, 4},
		{1, 2},
		{1, 3, 4},
		{2, 3, 4},
	}, edgeSets(b))
	requireConservative(t, in, b)
}

func TestBuild_SelfLoop(t *testing.T) {
	in := circulationInstance(t, 2, []network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 1}})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, b.Cycles)
	assert.Equal(t, [][]float64{{0, 1}}, b.Circulations)
}

func TestBuild_CompleteGraphWithParallelEdge(t *testing.T) {
	in := k4(t, network.Edge{Tail: 1, Head: 0})

	b, err := cycles.Build(in)
	require.NoError(t, err)
	// 7 simple cycles, 4 of which use the doubled pair, plus the 2-cycle.
	assert.Equal(t, 12, b.Len())
	requireConservative(t, in, b)

	sets := edgeSets(b)
	assert.True(t, slices.IsSortedFunc(sets, slices.Compare[[]int]))
}

func TestBuild_Deterministic(t *testing.T) {
	in := k4(t, network.Edge{Tail: 2, Head: 3})

	first, err := cycles.Build(in)
	require.NoError(t, err)
	second, err := cycles.Build(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuild_IndependentOfEdgeOrder(t *testing.T) {
	edges := []network.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 3}, {Tail: 3, Head: 0}, {Tail: 0, Head: 2}, {Tail: 1, Head: 3}, {Tail: 3, Head: 1}, {Tail: 4, Head: 0}, {Tail: 4, Head: 2}}
	reversed := slices.Clone(edges)
	slices.Reverse(reversed)
	m := len(edges)

	a, err := cycles.Build(circulationInstance(t, 5, edges))
	require.NoError(t, err)
	b, err := cycles.Build(circulationInstance(t, 5, reversed))
	require.NoError(t, err)

	// Map b's edge indices back to a's numbering.
	mapped := make([][]int, 0, b.Len())
	for _, c := range b.Cycles {
		set := make([]int, len(c))
		for i, e := range c {
			set[i] = m - 1 - e
		}
		slices.Sort(set)
		mapped = append(mapped, set)
	}
	slices.SortFunc(mapped, slices.Compare[[]int])

	assert.Equal(t, edgeSets(a), mapped)
}

func TestBuild_Errors(t *testing.T) {
	_, err := cycles.Build(nil)
	require.ErrorIs(t, err, cycles.ErrNilInstance)

	_, err = cycles.Build(k4(t), cycles.WithMaxCycles(3))
	require.ErrorIs(t, err, cycles.ErrTooManyCycles)

	b, err := cycles.Build(k4(t), cycles.WithMaxCycles(7))
	require.NoError(t, err)
	assert.Equal(t, 7, b.Len())

	assert.Panics(t, func() { cycles.WithMaxCycles(0) })
	assert.Equal(t, cycles.DefaultMaxCycles, cycles.DefaultOptions().MaxCycles)
}

func TestCirculation(t *testing.T) {
	in := circulationInstance(t, 4, []network.Edge{{Tail: 0, Head: 1}, {Tail: 2, Head: 1}, {Tail: 2, Head: 3}, {Tail: 0, Head: 3}})

	// 0 →e0→ 1 ←e1← 2 →e2→ 3 ←e3← 0
	c := cycles.Circulation(in, []int{0, 1, 2, 3})
	assert.Equal(t, []float64{1, -1, 1, -1}, c)

	// Walking the cycle backwards negates the circulation.
	c = cycles.Circulation(in, []int{3, 2, 1, 0})
	assert.Equal(t, []float64{-1, 1, -1, 1}, c)

	assert.Equal(t, make([]float64, 4), cycles.Circulation(in, nil))
}
