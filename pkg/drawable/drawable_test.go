package drawable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/drawable"
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
	"github.com/stencilgraph/stencilgraph/pkg/planar"
)

func unitSquare(t *testing.T) *drawable.Polygon {
	t.Helper()
	g := multigraph.New()
	a := g.AddNode(geom.NewPoint(0, 0), geom.Miter, false)
	b := g.AddNode(geom.NewPoint(2, 0), geom.Miter, false)
	c := g.AddNode(geom.NewPoint(2, 2), geom.Miter, false)
	d := g.AddNode(geom.NewPoint(0, 2), geom.Miter, false)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, a, nil)
	p := planar.Polygon{Graph: g, Nodes: []multigraph.NodeID{a, b, c, d, a}}
	return drawable.NewPolygon(g, p)
}

func TestPolygonContainsInteriorAndBoundary(t *testing.T) {
	p := unitSquare(t)
	require.True(t, p.Contains(geom.NewPoint(1, 1)))
	require.True(t, p.Contains(geom.NewPoint(0, 1))) // on boundary
	require.False(t, p.Contains(geom.NewPoint(3, 3)))
}

func TestPolygonContainsPolygonStrict(t *testing.T) {
	outer := unitSquare(t)

	g := multigraph.New()
	a := g.AddNode(geom.NewPoint(0.5, 0.5), geom.Miter, false)
	b := g.AddNode(geom.NewPoint(1.5, 0.5), geom.Miter, false)
	c := g.AddNode(geom.NewPoint(1.5, 1.5), geom.Miter, false)
	d := g.AddNode(geom.NewPoint(0.5, 1.5), geom.Miter, false)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, a, nil)
	inner := drawable.NewPolygon(g, planar.Polygon{Graph: g, Nodes: []multigraph.NodeID{a, b, c, d, a}})

	require.True(t, outer.ContainsPolygon(inner))
	require.False(t, inner.ContainsPolygon(outer))
	require.False(t, outer.ContainsPolygon(outer))
}

func TestPolygonBoundingBox(t *testing.T) {
	p := unitSquare(t)
	require.Equal(t, geom.NewPoint(0, 0), p.Min())
	require.Equal(t, geom.NewPoint(2, 2), p.Max())
}

func TestTextLetterPositionAndCenterPoint(t *testing.T) {
	txt := drawable.NewText(geom.NewPoint(3, 4), "hi")
	require.Equal(t, geom.NewPoint(3, 4), txt.LetterPosition(0))
	require.Equal(t, geom.NewPoint(4, 4), txt.LetterPosition(1))
	require.Equal(t, geom.NewPoint(3.5, 4.5), txt.CenterPoint())
	require.Equal(t, []string{"hi"}, txt.Names())
	require.Nil(t, txt.Edges())
	require.False(t, txt.HasEdge(geom.NewPoint(0, 0), geom.NewPoint(1, 1)))
}

func TestZOrderGetSet(t *testing.T) {
	txt := drawable.NewText(geom.NewPoint(0, 0), "x")
	require.Equal(t, 0, txt.ZOrder())
	txt.SetZOrder(3)
	require.Equal(t, 3, txt.ZOrder())
}
