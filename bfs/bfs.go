package bfs

import (
	"fmt"

	"github.com/katalvlaran/hopcount/shortcut"
)

// walker encapsulates mutable BFS state for one call.
type walker struct {
	net   *shortcut.Network
	opts  Options
	queue []int
	head  int
	res   *Result
}

// Solve returns the minimum number of moves from intersection 1 to every
// intersection. n must be at least 1 and shortcuts must hold exactly n values;
// otherwise the shortcut package's shape errors are returned. Out-of-range
// shortcut values are ignored.
func Solve(n int, shortcuts []int) ([]int, error) {
	net, err := shortcut.FromInput(n, shortcuts)
	if err != nil {
		return nil, err
	}
	res, err := Run(net)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Run performs breadth-first search from intersection 1 over net.
// Returns ErrNilNetwork, ErrOptionViolation, or any OnVisit error.
func Run(net *shortcut.Network, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := net.Len()
	w := &walker{
		net:   net,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = shortcut.Unreached
		w.res.Parent[i] = -1
	}

	w.enqueue(Source, 0, -1)

	return w.res, w.loop()
}

// enqueue fixes the distance of node, records its parent and queues it.
func (w *walker) enqueue(node, depth, parent int) {
	w.res.Dist[node] = depth
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, depth)
	w.queue = append(w.queue, node)
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		node := w.dequeue()
		if err := w.visit(node); err != nil {
			return err
		}
		w.enqueueNeighbors(node)
	}

	return nil
}

// dequeue pops the next node and invokes OnDequeue.
func (w *walker) dequeue() int {
	node := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(node, w.res.Dist[node])

	return node
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(node int) error {
	w.res.Order = append(w.res.Order, node)
	if err := w.opts.OnVisit(node, w.res.Dist[node]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at node %d: %w", node, err)
	}

	return nil
}

// enqueueNeighbors discovers every neighbour still at Unreached.
func (w *walker) enqueueNeighbors(node int) {
	next := w.res.Dist[node] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, v := range w.net.Neighbors(node) {
		if w.res.Dist[v] == shortcut.Unreached {
			w.enqueue(v, next, node)
		}
	}
}
