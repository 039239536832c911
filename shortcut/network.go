package shortcut

import "fmt"

// Network is an immutable intersection line graph built from a shortcut map.
// It owns a private copy of the map, so later edits by the caller have no effect.
type Network struct {
	shortcuts []int
}

// NewNetwork builds a Network over len(shortcuts) intersections.
// Returns ErrEmptyNetwork for an empty map. Out-of-range values are kept
// verbatim and surface through Warnings.
func NewNetwork(shortcuts []int) (*Network, error) {
	if len(shortcuts) == 0 {
		return nil, ErrEmptyNetwork
	}
	cp := make([]int, len(shortcuts))
	copy(cp, shortcuts)

	return &Network{shortcuts: cp}, nil
}

// FromInput checks the declared intersection count against the map before
// building the Network. This is the shape check every boundary should run.
func FromInput(n int, shortcuts []int) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyNetwork, n)
	}
	if len(shortcuts) != n {
		return nil, fmt.Errorf("%w: expected %d shortcut values, got %d", ErrShapeMismatch, n, len(shortcuts))
	}

	return NewNetwork(shortcuts)
}

// Validate runs the boundary checks without building a Network.
// Shape problems are returned as errors; out-of-range shortcuts are returned
// as warnings and never block computation.
func Validate(n int, shortcuts []int) ([]RangeWarning, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyNetwork, n)
	}
	if len(shortcuts) != n {
		return nil, fmt.Errorf("%w: expected %d shortcut values, got %d", ErrShapeMismatch, n, len(shortcuts))
	}

	return rangeWarnings(shortcuts), nil
}

func rangeWarnings(shortcuts []int) []RangeWarning {
	n := len(shortcuts)
	var warnings []RangeWarning
	for i, v := range shortcuts {
		if !inRange(v, n) {
			warnings = append(warnings, RangeWarning{Node: i + 1, Target: v, N: n})
		}
	}

	return warnings
}

// Len returns the number of intersections.
func (nw *Network) Len() int { return len(nw.shortcuts) }

// Neighbors returns the zero-based neighbours of u. See the package-level Neighbors.
func (nw *Network) Neighbors(u int) []int {
	return Neighbors(u, len(nw.shortcuts), nw.shortcuts)
}

// Target returns the zero-based shortcut target of u, or false when u has no
// usable shortcut (self-loop, out-of-range value, or u itself out of range).
func (nw *Network) Target(u int) (int, bool) {
	if u < 0 || u >= len(nw.shortcuts) {
		return 0, false
	}

	return target(u, len(nw.shortcuts), nw.shortcuts)
}

// Shortcuts returns a copy of the raw 1-based shortcut map.
func (nw *Network) Shortcuts() []int {
	cp := make([]int, len(nw.shortcuts))
	copy(cp, nw.shortcuts)

	return cp
}

// Warnings lists every shortcut whose value lies outside [1, n].
func (nw *Network) Warnings() []RangeWarning {
	return rangeWarnings(nw.shortcuts)
}

// Adjacency returns both directions of every i⇄i+1 pair, 1-based, in order.
func (nw *Network) Adjacency() []Edge {
	n := len(nw.shortcuts)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		edges = append(edges,
			Edge{From: i, To: i + 1, Kind: Adjacent},
			Edge{From: i + 1, To: i, Kind: Adjacent},
		)
	}

	return edges
}

// ShortcutEdges returns every usable shortcut as a 1-based edge, by source node.
// Self-shortcuts and out-of-range values are left out.
func (nw *Network) ShortcutEdges() []Edge {
	var edges []Edge
	for u := range nw.shortcuts {
		if t, ok := nw.Target(u); ok {
			edges = append(edges, Edge{From: u + 1, To: t + 1, Kind: Shortcut})
		}
	}

	return edges
}
