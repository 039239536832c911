// Package shortcut models the intersection line graph: nodes 1..n joined to
// their left and right neighbours, plus one directed shortcut per node.
//
// What
//
//   - Neighbors is the neighbour rule as a pure function over a raw shortcut map.
//   - Network wraps a validated copy of the map and answers the same question
//     per node, together with the edge lists needed for display.
//   - Validate performs boundary checks: a shape mismatch is an error, an
//     out-of-range shortcut only produces a RangeWarning.
//
// Indexing
//
//	Shortcut values are 1-based (as read from input). Every node index accepted
//	or returned by this package is zero-based unless the type says otherwise
//	(Edge and RangeWarning carry 1-based nodes because they are meant for people).
//
// Out-of-range policy
//
//	A shortcut value outside [1, n] is treated as "no shortcut". The move is
//	omitted from the neighbour set; nothing is rejected. Self-shortcuts are
//	omitted the same way.
//
// Complexity
//
//   - Neighbors: O(1) time, at most three entries.
//   - NewNetwork: O(n) time and memory (the map is copied).
package shortcut
