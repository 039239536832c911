// Package hopcount computes minimum hop counts over a line of intersections
// 1..n where every intersection can also take one one-way shortcut.
//
// 🚦 The model
//
//	Intersection i moves to i-1 and i+1 (when they exist) and to a(i).
//	Every move costs 1. The answer is, for each intersection, the fewest
//	moves needed to reach it from intersection 1.
//
//	    1 ⇄ 2 ⇄ 3 ⇄ 4 ⇄ 5 ⇄ 6 ⇄ 7
//	    └───────────↗   └───────↗     a = [4 4 4 4 7 7 7]
//
//	    distances: 0 1 2 1 2 3 3
//
// Under the hood, everything is organized under these packages:
//
//	shortcut/ — the neighbour rule, the immutable Network type, input validation
//	bfs/      — the solver: Solve(n, shortcuts) and the hookable Run
//	spt/      — shortest-path edges derived from a distance array
//	render/   — Graphviz DOT drawings of the structure and of the result
//	cmd/hopcount — CLI: solve, path, render, verify, presets
//
// Quick start:
//
//	dist, err := bfs.Solve(7, []int{4, 4, 4, 4, 7, 7, 7})
//	// dist == [0 1 2 1 2 3 3]
//
//	go install github.com/katalvlaran/hopcount/cmd/hopcount@latest
//	printf '3\n2 2 3\n' | hopcount solve
package hopcount
