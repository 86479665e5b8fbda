package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potflow/network"
)

func TestCheckFlow(t *testing.T) {
	in := triangle(t)

	require.NoError(t, in.CheckFlow([]int64{5, 5, 0}))
	require.NoError(t, in.CheckFlow([]int64{2, 2, 3}))
	assert.Equal(t, int64(10), in.FlowCost([]int64{5, 5, 0}))
	assert.Equal(t, int64(13), in.FlowCost([]int64{2, 2, 3}))

	require.ErrorIs(t, in.CheckFlow([]int64{5, 5}), network.ErrFlowLength)
}

func TestCheckFlow_ReportsFirstViolation(t *testing.T) {
	in := triangle(t)
	cases := []struct {
		name string
		flow []int64
		want network.FeasibilityError
		msg  string
	}{
		{
			name: "capacity before balance",
			flow: []int64{6, 0, 0},
			want: network.FeasibilityError{Edge: 0, Node: -1, Got: 6, Lo: 0, Hi: 5},
			msg:  "edge 0 carries 6 outside [0, 5]",
		},
		{
			name: "negative flow",
			flow: []int64{0, -1, 5},
			want: network.FeasibilityError{Edge: 1, Node: -1, Got: -1, Lo: 0, Hi: 5},
			msg:  "edge 1 carries -1 outside [0, 5]",
		},
		{
			name: "unbalanced transit node",
			flow: []int64{3, 2, 3},
			want: network.FeasibilityError{Edge: -1, Node: 0, Got: -6, Lo: -5, Hi: -5},
			msg:  "node 0 has net inflow -6, demand -5",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := in.CheckFlow(tc.flow)
			var fe *network.FeasibilityError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.want, *fe)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
