package shortcut_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopcount/shortcut"
)

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestFromInput_Errors verifies shape checks at the boundary.
func TestFromInput_Errors(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		shortcuts []int
		err       error
	}{
		{"ZeroN", 0, []int{}, shortcut.ErrEmptyNetwork},
		{"NegativeN", -2, []int{1}, shortcut.ErrEmptyNetwork},
		{"TooFew", 3, []int{1, 2}, shortcut.ErrShapeMismatch},
		{"TooMany", 2, []int{1, 2, 3}, shortcut.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shortcut.FromInput(tc.n, tc.shortcuts)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromInput(%d, %v) error = %v; want %v", tc.n, tc.shortcuts, err, tc.err)
			}
			_, err = shortcut.Validate(tc.n, tc.shortcuts)
			if !errors.Is(err, tc.err) {
				t.Errorf("Validate(%d, %v) error = %v; want %v", tc.n, tc.shortcuts, err, tc.err)
			}
		})
	}
}

func TestNewNetwork_Empty(t *testing.T) {
	_, err := shortcut.NewNetwork(nil)
	assert.ErrorIs(t, err, shortcut.ErrEmptyNetwork)
}

// TestValidate_RangeWarnings checks that out-of-range values warn but do not fail.
func TestValidate_RangeWarnings(t *testing.T) {
	warnings, err := shortcut.Validate(4, []int{0, 2, 5, -1})
	require.NoError(t, err)
	assert.Equal(t, []shortcut.RangeWarning{
		{Node: 1, Target: 0, N: 4},
		{Node: 3, Target: 5, N: 4},
		{Node: 4, Target: -1, N: 4},
	}, warnings)
	assert.Equal(t, "shortcut from 3 to 5 is outside [1, 4] and will be ignored", warnings[1].String())

	warnings, err = shortcut.Validate(3, []int{2, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestNetwork_CopiesInput(t *testing.T) {
	in := []int{4, 4, 4, 4, 7, 7, 7}
	nw, err := shortcut.NewNetwork(in)
	require.NoError(t, err)
	in[0] = 1

	tgt, ok := nw.Target(0)
	require.True(t, ok)
	assert.Equal(t, 3, tgt)

	out := nw.Shortcuts()
	out[1] = 1
	assert.Equal(t, []int{4, 4, 4, 4, 7, 7, 7}, nw.Shortcuts())
}

func TestNetwork_Target(t *testing.T) {
	nw, err := shortcut.NewNetwork([]int{3, 2, 9})
	require.NoError(t, err)

	tgt, ok := nw.Target(0)
	assert.True(t, ok)
	assert.Equal(t, 2, tgt)

	_, ok = nw.Target(1) // self
	assert.False(t, ok)
	_, ok = nw.Target(2) // out of range
	assert.False(t, ok)
	_, ok = nw.Target(3) // no such node
	assert.False(t, ok)
}

func TestNetwork_Neighbors(t *testing.T) {
	shortcuts := []int{4, 4, 4, 4, 7, 7, 7}
	nw, err := shortcut.NewNetwork(shortcuts)
	require.NoError(t, err)
	for u := 0; u < nw.Len(); u++ {
		assert.Equal(t, shortcut.Neighbors(u, len(shortcuts), shortcuts), nw.Neighbors(u))
	}
}

// TestNetwork_Edges checks the display edge lists for scenario 3.
func TestNetwork_Edges(t *testing.T) {
	nw, err := shortcut.NewNetwork([]int{4, 4, 4, 4, 7, 7, 7})
	require.NoError(t, err)

	adj := nw.Adjacency()
	assert.Len(t, adj, 12)
	assert.Equal(t, shortcut.Edge{From: 1, To: 2, Kind: shortcut.Adjacent}, adj[0])
	assert.Equal(t, shortcut.Edge{From: 2, To: 1, Kind: shortcut.Adjacent}, adj[1])

	assert.Equal(t, []shortcut.Edge{
		{From: 1, To: 4, Kind: shortcut.Shortcut},
		{From: 2, To: 4, Kind: shortcut.Shortcut},
		{From: 3, To: 4, Kind: shortcut.Shortcut},
		{From: 5, To: 7, Kind: shortcut.Shortcut},
		{From: 6, To: 7, Kind: shortcut.Shortcut},
	}, nw.ShortcutEdges())

	single, err := shortcut.NewNetwork([]int{1})
	require.NoError(t, err)
	assert.Nil(t, single.Adjacency())
	assert.Empty(t, single.ShortcutEdges())
}

func TestEdgeKind_String(t *testing.T) {
	assert.Equal(t, "adjacent", shortcut.Adjacent.String())
	assert.Equal(t, "shortcut", shortcut.Shortcut.String())
}
