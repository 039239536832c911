// Package spt derives the shortest-path tree (more precisely the shortest-path
// DAG) implied by a distance array: every move (u, v) allowed by the neighbour
// rule with dist[v] == dist[u]+1 lies on some shortest path from intersection 1.
package spt

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hopcount/shortcut"
)

var (
	// ErrNilNetwork is returned when no network is supplied.
	ErrNilNetwork = errors.New("spt: network is nil")

	// ErrLengthMismatch indicates a distance array of the wrong size.
	ErrLengthMismatch = errors.New("spt: distance array length does not match network")
)

// Edge is a 1-based tree edge.
type Edge struct {
	From, To int
}

// Build walks outward from intersection 1 and collects every shortest-path
// edge, in discovery order. Unreached nodes contribute nothing.
func Build(net *shortcut.Network, dist []int) ([]Edge, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Len()
	if len(dist) != n {
		return nil, fmt.Errorf("%w: got %d values for %d intersections", ErrLengthMismatch, len(dist), n)
	}
	if dist[0] == shortcut.Unreached {
		return nil, nil
	}

	var edges []Edge
	seen := make([]bool, n)
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.Neighbors(u) {
			if dist[v] != dist[u]+1 {
				continue
			}
			edges = append(edges, Edge{From: u + 1, To: v + 1})
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return edges, nil
}

// Parents picks one 1-based parent per node from edges (the first edge into
// it wins). Index 0 of the result is unused; roots and unreached nodes get 0.
func Parents(edges []Edge, n int) []int {
	parent := make([]int, n+1)
	for _, e := range edges {
		if e.To >= 1 && e.To <= n && parent[e.To] == 0 {
			parent[e.To] = e.From
		}
	}

	return parent
}
