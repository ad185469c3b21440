// Package overlay holds the fixed catalog of ASCII stencils and the
// primitive templates each one expands into. Stencils are compiled once
// at package init and are immutable and read-only thereafter, matching
// the single-threaded resource model the pipeline as a whole follows.
package overlay

import "github.com/stencilgraph/stencilgraph/pkg/geom"

// wildcard is the sentinel byte used in a stencil's pattern rows to mark
// a cell that matches any input character. It is the NUL byte, which
// cannot appear in real ASCII-art input.
const wildcard = 0

// LocalNode is a node template expressed in a stencil's local coordinate
// frame: the origin is the stencil's upper-left cell, one unit per cell.
type LocalNode struct {
	X, Y    float64
	Style   geom.Style
	Fusable bool
}

// node is shorthand for a default (miter, fusable) local node.
func node(x, y float64) LocalNode {
	return LocalNode{X: x, Y: y, Fusable: true}
}

// curveNode is shorthand for a curve-style local node.
func curveNode(x, y float64) LocalNode {
	return LocalNode{X: x, Y: y, Style: geom.Curve, Fusable: true}
}

// anchor is shorthand for a non-fusable (anchor) local node, used at `+`
// junctions and bracket boundaries that must never merge into an
// adjoining straight line.
func anchor(x, y float64) LocalNode {
	return LocalNode{X: x, Y: y, Fusable: false}
}

// curveAnchor is a non-fusable node with curve styling.
func curveAnchor(x, y float64) LocalNode {
	return LocalNode{X: x, Y: y, Style: geom.Curve, Fusable: false}
}

// LocalPoint names a position referenced by a top_of annotation; it
// carries no style or fusability because top_of only ever needs to
// identify an edge by its translated endpoint coordinates.
type LocalPoint struct{ X, Y float64 }

// LocalEdge is an edge template with its own two endpoint node specs and
// an optional reference to another edge (by endpoint coordinates) that
// it is drawn above.
type LocalEdge struct {
	A, B  LocalNode
	TopOf *[2]LocalPoint
}

func edge(a, b LocalNode) LocalEdge {
	return LocalEdge{A: a, B: b}
}

func edgeTopOf(a, b LocalNode, topA, topB LocalPoint) LocalEdge {
	pts := [2]LocalPoint{topA, topB}
	return LocalEdge{A: a, B: b, TopOf: &pts}
}

// Stencil is a compiled, immutable H x W character pattern paired with
// the primitives it emits on a successful match.
type Stencil struct {
	Name  string
	Rows  []string // wildcard cells hold the NUL byte
	Nodes []LocalNode
	Edges []LocalEdge
}

func stencil(name string, rows []string, edges ...LocalEdge) Stencil {
	return Stencil{Name: name, Rows: rows, Edges: edges}
}

func nodeStencil(name string, rows []string, n LocalNode) Stencil {
	return Stencil{Name: name, Rows: rows, Nodes: []LocalNode{n}}
}

func (s Stencil) height() int { return len(s.Rows) }

func (s Stencil) width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// MatchesAt reports whether the stencil matches grid at origin (x0, y0).
// grid is addressed grid[row][col]; rows may have ragged length, treated
// as out-of-bounds past their end.
func (s Stencil) MatchesAt(grid []string, x0, y0 int) bool {
	if y0+s.height() > len(grid) {
		return false
	}
	for i, pattern := range s.Rows {
		row := grid[y0+i]
		for j := 0; j < len(pattern); j++ {
			want := pattern[j]
			if want == wildcard {
				continue
			}
			col := x0 + j
			if col >= len(row) {
				return false
			}
			if row[col] != want {
				return false
			}
		}
	}
	return true
}

// EmittedNode is a node emitted by a match, in global grid coordinates.
type EmittedNode struct {
	Pos     geom.Point
	Style   geom.Style
	Fusable bool
}

// EmittedEdge is an edge emitted by a match: its two endpoints (in global
// coordinates, alongside the style/fusable attributes they carry) and an
// optional top_of reference, also in global coordinates.
type EmittedEdge struct {
	A, B  EmittedNode
	TopOf *[2]geom.Point
}

func (n LocalNode) translate(x0, y0 int) EmittedNode {
	return EmittedNode{
		Pos:     geom.NewPoint(n.X+float64(x0), n.Y+float64(y0)),
		Style:   n.Style,
		Fusable: n.Fusable,
	}
}

// Emit translates the stencil's node and edge templates by (x0, y0) and
// returns them as global-coordinate primitives, ready for the matcher to
// insert into the multigraph.
func (s Stencil) Emit(x0, y0 int) ([]EmittedNode, []EmittedEdge) {
	nodes := make([]EmittedNode, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = n.translate(x0, y0)
	}
	edges := make([]EmittedEdge, len(s.Edges))
	for i, e := range s.Edges {
		ee := EmittedEdge{A: e.A.translate(x0, y0), B: e.B.translate(x0, y0)}
		if e.TopOf != nil {
			pts := [2]geom.Point{
				geom.NewPoint(e.TopOf[0].X+float64(x0), e.TopOf[0].Y+float64(y0)),
				geom.NewPoint(e.TopOf[1].X+float64(x0), e.TopOf[1].Y+float64(y0)),
			}
			ee.TopOf = &pts
		}
		edges[i] = ee
	}
	return nodes, edges
}
