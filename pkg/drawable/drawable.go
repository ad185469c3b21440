// Package drawable implements the tagged-union Drawable type: Polygon,
// OpenGraph, and Text are distinct concrete types behind a common
// Drawable interface, with z-order and name-list operations dispatched
// per concrete type rather than through runtime type switches scattered
// across callers.
package drawable

import (
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
	"github.com/stencilgraph/stencilgraph/pkg/planar"
)

// Edge is a drawable's edge expressed as a pair of resolved positions,
// the representation top_of resolution (pkg/zorder) and rendering both
// need.
type Edge struct {
	A, B  geom.Point
	TopOf *[2]geom.Point
}

// Drawable is the polymorphic handle over {Polygon, OpenGraph, Text}.
type Drawable interface {
	Edges() []Edge
	HasEdge(a, b geom.Point) bool
	ZOrder() int
	SetZOrder(z int)
	AddName(name string)
	Names() []string
}

// Style is the rendering-backend lookup. It is not implemented here —
// style application is an external collaborator — but the core's
// Drawable values are shaped so a renderer can attach one.
type Style interface {
	FillType() string // one of: solid, dashed, dotted, dash-dotted
	Width() float64
	Color() []RGBA // single entry = flat, multiple = linear gradient
}

// RGBA is an 8-bit-per-channel color used by Style.Color.
type RGBA struct{ R, G, B, A uint8 }

type base struct {
	z     int
	names []string
}

func (b *base) ZOrder() int         { return b.z }
func (b *base) SetZOrder(z int)     { b.z = z }
func (b *base) AddName(name string) { b.names = append(b.names, name) }
func (b *base) Names() []string     { return b.names }

// Polygon is a closed cyclic node sequence extracted as a planar minimum
// cycle.
type Polygon struct {
	base
	g     *multigraph.Graph
	nodes []multigraph.NodeID // closed: nodes[0] == nodes[len-1]
}

// NewPolygon wraps a planar.Polygon traced against g.
func NewPolygon(g *multigraph.Graph, p planar.Polygon) *Polygon {
	return &Polygon{g: g, nodes: p.Nodes}
}

// Nodes returns the polygon's closed node-ID cycle.
func (p *Polygon) Nodes() []multigraph.NodeID { return p.nodes }

func (p *Polygon) positions() []geom.Point {
	pts := make([]geom.Point, len(p.nodes))
	for i, id := range p.nodes {
		pts[i] = p.g.Node(id).Pos
	}
	return pts
}

// Edges returns the polygon's boundary as consecutive point pairs.
func (p *Polygon) Edges() []Edge {
	edges := make([]Edge, 0, len(p.nodes)-1)
	for i := 0; i+1 < len(p.nodes); i++ {
		edges = append(edges, resolveEdge(p.g, p.nodes[i], p.nodes[i+1]))
	}
	return edges
}

func resolveEdge(g *multigraph.Graph, a, b multigraph.NodeID) Edge {
	e := Edge{A: g.Node(a).Pos, B: g.Node(b).Pos}
	if me, ok := g.EdgeBetween(a, b); ok && me.TopOf != nil {
		e.TopOf = me.TopOf
	}
	return e
}

// HasEdge reports whether (a, b) matches one of the polygon's boundary
// edges in either direction, within geom.Epsilon.
func (p *Polygon) HasEdge(a, b geom.Point) bool {
	for _, e := range p.Edges() {
		if (geom.PointsEqual(e.A, a) && geom.PointsEqual(e.B, b)) ||
			(geom.PointsEqual(e.A, b) && geom.PointsEqual(e.B, a)) {
			return true
		}
	}
	return false
}

// Min returns the polygon's axis-aligned bounding-box minimum corner.
func (p *Polygon) Min() geom.Point { return p.bbox(false) }

// Max returns the polygon's axis-aligned bounding-box maximum corner.
func (p *Polygon) Max() geom.Point { return p.bbox(true) }

func (p *Polygon) bbox(max bool) geom.Point {
	pts := p.positions()
	out := pts[0]
	for _, pt := range pts[1:] {
		if max {
			if pt.X > out.X {
				out.X = pt.X
			}
			if pt.Y > out.Y {
				out.Y = pt.Y
			}
		} else {
			if pt.X < out.X {
				out.X = pt.X
			}
			if pt.Y < out.Y {
				out.Y = pt.Y
			}
		}
	}
	return out
}

// Contains reports whether point lies inside the polygon (ray-casting,
// boundary counts as contained).
func (p *Polygon) Contains(point geom.Point) bool {
	pts := p.positions()
	inside := false
	n := len(pts) - 1 // pts is closed; iterate the n distinct edges
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if geom.SegmentDistance(pts[j], pts[i], point, point) <= geom.Epsilon {
			return true
		}
		yi, yj := pts[i].Y, pts[j].Y
		xi, xj := pts[i].X, pts[j].X
		if (yi > point.Y) != (yj > point.Y) {
			xIntersect := (xj-xi)*(point.Y-yi)/(yj-yi) + xi
			if point.X < xIntersect {
				inside = !inside
			} else if point.X == xIntersect {
				return true
			}
		}
	}
	return inside
}

// ContainsPolygon reports strict containment: every node of other is
// inside p.
func (p *Polygon) ContainsPolygon(other *Polygon) bool {
	if p == other {
		return false
	}
	for _, pt := range other.positions()[:len(other.positions())-1] {
		if !p.Contains(pt) {
			return false
		}
	}
	return true
}

// OpenGraph is a connected residual sub-multigraph decomposed into
// maximal simple trails.
type OpenGraph struct {
	base
	g     *multigraph.Graph
	paths [][]multigraph.NodeID
}

// NewOpenGraph wraps a planar.OpenGraph.
func NewOpenGraph(o planar.OpenGraph) *OpenGraph {
	return &OpenGraph{g: o.Sub, paths: o.Paths}
}

// Paths returns the ordered node sequences making up the open graph,
// each an ordered walk obtained by the trail decomposition in pkg/planar.
func (o *OpenGraph) Paths() [][]geom.Point {
	out := make([][]geom.Point, len(o.paths))
	for i, path := range o.paths {
		pts := make([]geom.Point, len(path))
		for j, id := range path {
			pts[j] = o.g.Node(id).Pos
		}
		out[i] = pts
	}
	return out
}

// Edges returns every edge of the underlying sub-multigraph as point
// pairs.
func (o *OpenGraph) Edges() []Edge {
	edges := o.g.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{A: o.g.Node(e.A).Pos, B: o.g.Node(e.B).Pos, TopOf: e.TopOf}
	}
	return out
}

// HasEdge reports whether (a, b) matches one of the open graph's edges
// in either direction, within geom.Epsilon.
func (o *OpenGraph) HasEdge(a, b geom.Point) bool {
	for _, e := range o.Edges() {
		if (geom.PointsEqual(e.A, a) && geom.PointsEqual(e.B, b)) ||
			(geom.PointsEqual(e.A, b) && geom.PointsEqual(e.B, a)) {
			return true
		}
	}
	return false
}

// Text is a floating label: a grid position, literal content, and the
// per-letter positions derived from it.
type Text struct {
	base
	Position geom.Point
	Content  string
}

// NewText creates a Text drawable and records its own content as a name
// on itself.
func NewText(position geom.Point, content string) *Text {
	t := &Text{Position: position, Content: content}
	t.AddName(content)
	return t
}

// LetterPosition returns the grid position of the i-th character.
func (t *Text) LetterPosition(i int) geom.Point {
	return t.Position.Add(geom.NewPoint(float64(i), 0))
}

// CenterPoint returns the cell-center point used for polygon containment
// tests: T.position + (0.5, 0.5).
func (t *Text) CenterPoint() geom.Point {
	return t.Position.Add(geom.NewPoint(0.5, 0.5))
}

// Edges is always empty for Text.
func (t *Text) Edges() []Edge { return nil }

// HasEdge is always false for Text.
func (t *Text) HasEdge(geom.Point, geom.Point) bool { return false }
