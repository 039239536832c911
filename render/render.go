// Package render draws intersection networks as Graphviz DOT documents:
// the static structure (adjacency and shortcut moves) and the solved result
// (distances per node plus the shortest-path edges).
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/hopcount/shortcut"
	"github.com/katalvlaran/hopcount/spt"
)

// ErrNilNetwork is returned when no network is supplied.
var ErrNilNetwork = errors.New("render: network is nil")

// Colours used by both views.
const (
	adjacencyColor = "gray"
	shortcutColor  = "blue"
	treeColor      = "red"
	sourceFill     = "lightblue"
	unreachedFill  = "lightcoral"
	reachedFill    = "lightgray"
)

// Structure draws every adjacency move in both directions (gray) and every
// usable shortcut (blue, dashed), left to right.
func Structure(net *shortcut.Network) (*dot.Graph, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	g.Attr("size", "10,5")
	g.Attr("ratio", "compress")

	nodes := addNodes(g, net.Len(), func(i int) string { return fmt.Sprintf("Node %d", i) })
	for _, e := range net.Adjacency() {
		g.Edge(nodes[e.From], nodes[e.To]).Attr("color", adjacencyColor)
	}
	for _, e := range net.ShortcutEdges() {
		g.Edge(nodes[e.From], nodes[e.To]).
			Attr("color", shortcutColor).
			Attr("style", "dashed").
			Attr("tooltip", fmt.Sprintf("Shortcut from %d to %d", e.From, e.To))
	}

	return g, nil
}

// Result labels each node with its distance and draws the shortest-path
// edges derived by spt.Build, top to bottom.
func Result(net *shortcut.Network, dist []int) (*dot.Graph, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	edges, err := spt.Build(net, dist)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "TB")
	g.Attr("size", "8,10")
	g.Attr("ratio", "compress")

	nodes := addNodes(g, net.Len(), func(i int) string {
		return fmt.Sprintf("Node %d\nDist: %s", i, distLabel(dist[i-1]))
	})
	for i := 1; i <= net.Len(); i++ {
		nodes[i].Attr("style", "filled").Attr("fillcolor", fill(dist[i-1]))
	}
	for _, e := range edges {
		g.Edge(nodes[e.From], nodes[e.To]).Attr("color", treeColor).Attr("penwidth", "1.5")
	}

	return g, nil
}

// Write emits g as DOT text.
func Write(w io.Writer, g *dot.Graph) error {
	_, err := io.WriteString(w, g.String())

	return err
}

// addNodes creates nodes 1..n; index 0 of the result is unused.
func addNodes(g *dot.Graph, n int, label func(i int) string) []dot.Node {
	nodes := make([]dot.Node, n+1)
	for i := 1; i <= n; i++ {
		nodes[i] = g.Node(strconv.Itoa(i)).Label(label(i))
	}

	return nodes
}

func distLabel(d int) string {
	if d == shortcut.Unreached {
		return "∞"
	}

	return strconv.Itoa(d)
}

func fill(d int) string {
	switch d {
	case 0:
		return sourceFill
	case shortcut.Unreached:
		return unreachedFill
	default:
		return reachedFill
	}
}
