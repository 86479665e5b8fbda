package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.gazette.dev/core/allocator/push_relabel"

	"github.com/katalvlaran/potflow/network"
)

// sspEdge is one arc of the residual network used by referenceMinCost.
type sspEdge struct {
	to, cap, flow, cost, rev int
}

// referenceMinCost solves in with successive shortest paths (SPFA) from a
// super source feeding every supply node to a super sink draining every
// demand node. It requires zero lower capacities and no negative cycles.
// ok is false when the demands cannot be met.
func referenceMinCost(t *testing.T, in *network.Instance) (cost int64, ok bool) {
	t.Helper()
	n := in.N() + 2
	src, snk := n-2, n-1
	adj := make([][]sspEdge, n)
	add := func(u, v, capacity, c int) {
		adj[u] = append(adj[u], sspEdge{v, capacity, 0, c, len(adj[v])})
		adj[v] = append(adj[v], sspEdge{u, 0, 0, -c, len(adj[u]) - 1})
	}

	for e := 0; e < in.M(); e++ {
		require.Zero(t, in.Lower(e), "reference solver needs zero lower capacities")
		ed := in.Edge(e)
		add(ed.Tail, ed.Head, int(in.Upper(e)), int(in.CostOf(e)))
	}
	supply := 0
	for v := 0; v < in.N(); v++ {
		switch d := int(in.Demand(v)); {
		case d < 0:
			add(src, v, -d, 0)
			supply -= d
		case d > 0:
			add(v, snk, d, 0)
		}
	}

	dist := make([]int, n)
	prevNode := make([]int, n)
	prevEdge := make([]int, n)
	inQueue := make([]bool, n)
	shortest := func() bool {
		for i := range dist {
			dist[i] = math.MaxInt32
			inQueue[i] = false
		}
		dist[src] = 0
		queue := []int{src}
		inQueue[src] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			inQueue[u] = false
			for i, e := range adj[u] {
				if e.cap > e.flow && dist[e.to] > dist[u]+e.cost {
					dist[e.to] = dist[u] + e.cost
					prevNode[e.to], prevEdge[e.to] = u, i
					if !inQueue[e.to] {
						queue = append(queue, e.to)
						inQueue[e.to] = true
					}
				}
			}
		}

		return dist[snk] != math.MaxInt32
	}

	sent, total := 0, 0
	for shortest() {
		push := math.MaxInt32
		for v := snk; v != src; v = prevNode[v] {
			e := adj[prevNode[v]][prevEdge[v]]
			push = min(push, e.cap-e.flow)
		}
		for v := snk; v != src; v = prevNode[v] {
			e := &adj[prevNode[v]][prevEdge[v]]
			e.flow += push
			adj[v][e.rev].flow -= push
			total += push * e.cost
		}
		sent += push
	}

	return int64(total), sent == supply
}

// referenceMaxFlow computes the max-flow value of mf with gazette's
// push/relabel implementation.
func referenceMaxFlow(t *testing.T, mf *network.MaxFlowInstance) int64 {
	t.Helper()
	n := 0
	for _, e := range mf.Edges {
		n = max(n, e.Tail+1, e.Head+1)
	}
	n = max(n, mf.Source+1, mf.Sink+1)

	nodes := push_relabel.InitNodes(nil, n, 0)
	nodes[mf.Source].Height = uint32(n)
	for i, e := range mf.Edges {
		push_relabel.AddArc(&nodes[e.Tail], &nodes[e.Head], int(mf.Upper[i]), 0)
	}
	push_relabel.FindMaxFlow(&nodes[mf.Source], &nodes[mf.Sink])

	var inflow int64
	for _, arc := range nodes[mf.Sink].Arcs {
		inflow -= int64(arc.Flow)
	}

	return inflow
}
