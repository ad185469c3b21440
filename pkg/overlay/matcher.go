package overlay

import (
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
)

// Grid is the core's input: a rectangular array of ASCII characters.
// Rows may be ragged (shorter than the widest row); cells past a row's
// end are treated as out of bounds, the same as an explicit wildcard
// mismatch would be, which is how a degenerate or partial grid silently
// contributes nothing rather than panicking.
type Grid []string

// Match slides every stencil in cat over grid and composes their
// emissions into a single multigraph: an O(|grid| * |catalog| *
// max-stencil-area) scan. Degenerate stencils (grid smaller than the
// stencil) are silently skipped because MatchesAt simply never succeeds
// for them.
//
// Non-fusable (anchor) emissions at the same position resolve to one
// node, whichever stencil emitted them, so every stencil touching a `+`
// cell shares that cell's anchor. Anchors still never fuse with fusable
// nodes.
func Match(grid Grid, cat []Stencil) *multigraph.Graph {
	g := multigraph.New()
	rows := []string(grid)
	anchors := make(map[geom.Point]multigraph.NodeID)
	addNode := func(n EmittedNode) multigraph.NodeID {
		if n.Fusable {
			return g.AddNode(n.Pos, n.Style, true)
		}
		if id, ok := anchors[n.Pos]; ok {
			return id
		}
		id := g.AddNode(n.Pos, n.Style, false)
		anchors[n.Pos] = id
		return id
	}

	for _, s := range cat {
		h := s.height()
		w := s.width()
		if h == 0 || w == 0 {
			continue
		}
		for y0 := 0; y0+h <= len(rows); y0++ {
			maxX := len(rows[y0])
			for x0 := 0; x0 < maxX; x0++ {
				if !s.MatchesAt(rows, x0, y0) {
					continue
				}
				nodes, edges := s.Emit(x0, y0)
				for _, n := range nodes {
					addNode(n)
				}
				for _, e := range edges {
					a := addNode(e.A)
					b := addNode(e.B)
					g.AddEdge(a, b, e.TopOf)
				}
			}
		}
	}
	return g
}
