// Package bfs computes minimum hop counts from intersection 1 over a
// shortcut.Network using breadth-first search.
//
// What
//
//   - Solve(n, shortcuts) validates the input shape and returns the distance
//     array: dist[i] is the number of moves from intersection 1 to i+1.
//   - Run(network, opts...) exposes the full traversal: visit order, distances,
//     BFS-tree parents and PathTo reconstruction.
//   - Hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - MaxDepth limits how far the traversal goes (d>0), d==0 means no limit.
//
// Why BFS
//
//	Every move costs 1, so nodes leave the FIFO queue in non-decreasing
//	distance order and the first distance assigned to a node is final.
//	No priority queue is needed.
//
// Determinism
//
//	shortcut.Neighbors returns neighbours in ascending order, so Order and
//	Parent are reproducible for a given input.
//
// Complexity (n = intersections, at most 3 moves per node)
//
//   - Time:   O(n)
//   - Memory: O(n) for the queue, distance and parent slices.
//
// Usage
//
//	dist, err := bfs.Solve(3, []int{2, 2, 3})
//	// dist == [0 1 2]
//
//	nw, _ := shortcut.FromInput(7, []int{4, 4, 4, 4, 7, 7, 7})
//	res, err := bfs.Run(nw, bfs.WithOnVisit(func(node, depth int) error { return nil }))
//	path, err := res.PathTo(6)
//
// Errors
//
//   - shortcut.ErrEmptyNetwork, shortcut.ErrShapeMismatch from Solve on bad input.
//   - ErrNilNetwork        if Run gets a nil network.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath            from PathTo for unreached or unknown nodes.
//   - Wrapped errors returned by OnVisit.
package bfs
