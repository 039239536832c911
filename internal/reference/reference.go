// Package reference holds a Dijkstra-style hop-count solver used only to
// cross-check the breadth-first solver in tests and in the verify harness.
//
// It relaxes the three moves of each node inline with weight 1 and uses a
// plain container/heap min-heap with lazy decrease-key: improved distances are
// pushed as new entries, and popped entries whose key exceeds the recorded
// distance are discarded as stale.
//
// Complexity: O(n log n) time, O(n) memory (at most three pushes per node).
package reference

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/hopcount/shortcut"
)

const edgeCost = 1

// Solve returns hop counts from intersection 1, shortcut.Unreached for nodes
// it cannot reach. The caller must pass len(shortcuts) == n, n >= 1.
func Solve(n int, shortcuts []int) []int {
	r := &runner{n: n, shortcuts: shortcuts, dist: make([]int, n)}
	r.init()
	r.process()

	out := make([]int, n)
	for i, d := range r.dist {
		if d == math.MaxInt {
			out[i] = shortcut.Unreached
			continue
		}
		out[i] = d
	}

	return out
}

// runner holds the mutable state of one execution.
type runner struct {
	n         int
	shortcuts []int
	dist      []int
	pq        nodePQ
}

// init sets every distance to +∞ except the source, and seeds the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	r.dist[0] = 0
	r.pq = make(nodePQ, 0, r.n)
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{node: 0, dist: 0})
}

// process pops the closest entry until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.dist > r.dist[item.node] {
			continue // stale
		}
		r.relaxAll(item.node)
	}
}

// relaxAll tries the left, right and shortcut moves out of u.
func (r *runner) relaxAll(u int) {
	if u-1 >= 0 {
		r.relax(u, u-1)
	}
	if u+1 < r.n {
		r.relax(u, u+1)
	}
	if v := r.shortcuts[u] - 1; v >= 0 && v < r.n {
		r.relax(u, v)
	}
}

func (r *runner) relax(u, v int) {
	nd := r.dist[u] + edgeCost
	if nd >= r.dist[v] {
		return
	}
	r.dist[v] = nd
	heap.Push(&r.pq, nodeItem{node: v, dist: nd})
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	node int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist, ties by node.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
