package reference_test

import (
	"math/rand"
	"testing"

	"github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopcount/internal/reference"
	"github.com/katalvlaran/hopcount/shortcut"
)

func TestSolve_Scenarios(t *testing.T) {
	cases := []struct {
		name      string
		shortcuts []int
		want      []int
	}{
		{"Scenario1", []int{2, 2, 3}, []int{0, 1, 2}},
		{"Scenario2", []int{1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4}},
		{"Scenario3", []int{4, 4, 4, 4, 7, 7, 7}, []int{0, 1, 2, 1, 2, 3, 3}},
		{"Scenario4", []int{1, 2, 3, 4}, []int{0, 1, 2, 3}},
		{"Scenario5", []int{2, 3, 4, 5, 6, 6}, []int{0, 1, 2, 3, 4, 5}},
		{"SingleNode", []int{1}, []int{0}},
		{"SingleNodeOutOfRange", []int{5}, []int{0}},
		{"OutOfRangeIgnored", []int{0, 9, -3, 2}, []int{0, 1, 2, 3}},
		{"BackwardShortcut", []int{1, 1, 1, 1, 2}, []int{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reference.Solve(len(tc.shortcuts), tc.shortcuts))
		})
	}
}

// oracle computes the same distances with an independent Dijkstra library,
// materialising the line graph and shortcuts as arcs.
func oracle(t *testing.T, shortcuts []int) []int {
	t.Helper()
	n := len(shortcuts)
	g := dijkstra.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for u := 0; u < n; u++ {
		for _, v := range shortcut.Neighbors(u, n, shortcuts) {
			require.NoError(t, g.AddArc(u, v, 1))
		}
	}
	out := make([]int, n)
	for v := 1; v < n; v++ {
		best, err := g.Shortest(0, v)
		require.NoError(t, err, "node %d", v)
		out[v] = int(best.Distance)
	}

	return out
}

// TestSolve_AgreesWithOracle cross-checks random maps against the library.
func TestSolve_AgreesWithOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		n := 1 + rnd.Intn(40)
		shortcuts := make([]int, n)
		for i := range shortcuts {
			shortcuts[i] = 1 + rnd.Intn(n)
		}
		assert.Equal(t, oracle(t, shortcuts), reference.Solve(n, shortcuts), "shortcuts=%v", shortcuts)
	}
}
