package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hopcount/shortcut"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Source is the zero-based index of intersection 1.
const Source = 0

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a node is discovered and queued.
	// Receives the zero-based node and its distance from the source.
	OnEnqueue func(node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Nodes further away stay Unreached.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search past the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal. All slices are indexed by
// zero-based node.
//   - Order: nodes in visit sequence.
//   - Dist: hop count from the source, shortcut.Unreached when not reached.
//   - Parent: predecessor in the BFS tree, -1 for the source and unreached nodes.
type Result struct {
	Order  []int
	Dist   []int
	Parent []int
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != shortcut.Unreached
}

// PathTo reconstructs the zero-based node sequence from the source to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: node %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Dist[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
