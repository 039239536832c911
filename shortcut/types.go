package shortcut

import (
	"errors"
	"fmt"
)

// Sentinel errors for shortcut maps.
var (
	// ErrEmptyNetwork indicates a network with no intersections (n < 1).
	ErrEmptyNetwork = errors.New("shortcut: network must have at least one intersection")

	// ErrShapeMismatch indicates len(shortcuts) differs from n.
	ErrShapeMismatch = errors.New("shortcut: shortcut count does not match intersection count")
)

// Unreached marks a node the source cannot reach in a distance array.
const Unreached = -1

// EdgeKind tells adjacency moves from shortcut moves.
type EdgeKind int

const (
	// Adjacent is a move between i and i±1.
	Adjacent EdgeKind = iota
	// Shortcut is the directed move from i to a(i).
	Shortcut
)

// String returns "adjacent" or "shortcut".
func (k EdgeKind) String() string {
	if k == Shortcut {
		return "shortcut"
	}

	return "adjacent"
}

// Edge is a directed move between two 1-based intersections.
type Edge struct {
	From, To int
	Kind     EdgeKind
}

// RangeWarning reports a shortcut whose target lies outside [1, n].
// Node and Target are 1-based, exactly as supplied.
type RangeWarning struct {
	Node   int
	Target int
	N      int
}

// String renders the warning for logs.
func (w RangeWarning) String() string {
	return fmt.Sprintf("shortcut from %d to %d is outside [1, %d] and will be ignored", w.Node, w.Target, w.N)
}
