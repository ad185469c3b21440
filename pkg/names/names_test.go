package names_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/drawable"
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
	"github.com/stencilgraph/stencilgraph/pkg/names"
	"github.com/stencilgraph/stencilgraph/pkg/planar"
	"github.com/stencilgraph/stencilgraph/pkg/sgerrors"
)

func square(t *testing.T, x0, y0, x1, y1 float64) *drawable.Polygon {
	t.Helper()
	g := multigraph.New()
	a := g.AddNode(geom.NewPoint(x0, y0), geom.Miter, false)
	b := g.AddNode(geom.NewPoint(x1, y0), geom.Miter, false)
	c := g.AddNode(geom.NewPoint(x1, y1), geom.Miter, false)
	d := g.AddNode(geom.NewPoint(x0, y1), geom.Miter, false)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, a, nil)
	return drawable.NewPolygon(g, planar.Polygon{Graph: g, Nodes: []multigraph.NodeID{a, b, c, d, a}})
}

func TestBindInnermostAttachesTextToDeepestContainingPolygon(t *testing.T) {
	outer := square(t, 0, 0, 10, 10)
	inner := square(t, 1, 1, 5, 5)
	outer.SetZOrder(0)
	inner.SetZOrder(1)

	txt := drawable.NewText(geom.NewPoint(2, 2), "hi")

	err := names.BindInnermost([]*drawable.Polygon{outer, inner}, nil, []*drawable.Text{txt})

	require.NoError(t, err)
	require.Contains(t, inner.Names(), "hi")
	require.NotContains(t, outer.Names(), "hi")
	require.Equal(t, inner.ZOrder()+1, txt.ZOrder())
}

func TestBindInnermostUnboundTextIsUntouched(t *testing.T) {
	outer := square(t, 0, 0, 2, 2)
	txt := drawable.NewText(geom.NewPoint(100, 100), "far")

	err := names.BindInnermost([]*drawable.Polygon{outer}, nil, []*drawable.Text{txt})

	require.NoError(t, err)
	require.Empty(t, outer.Names())
	require.Equal(t, 0, txt.ZOrder())
}

func TestBindInnermostRejectsEmptyContentText(t *testing.T) {
	outer := square(t, 0, 0, 2, 2)
	txt := drawable.NewText(geom.NewPoint(1, 1), "")

	err := names.BindInnermost([]*drawable.Polygon{outer}, nil, []*drawable.Text{txt})

	require.Error(t, err)
	require.True(t, sgerrors.Is(err, sgerrors.ErrCodeInvalidText))
}

func TestBindDirectOnlySkipsPolygonsThatContainAnother(t *testing.T) {
	outer := square(t, 0, 0, 10, 10)
	inner := square(t, 1, 1, 5, 5)
	outer.SetZOrder(0)
	inner.SetZOrder(1)

	txt := drawable.NewText(geom.NewPoint(2, 2), "hi")

	err := names.BindDirectOnly([]*drawable.Polygon{outer, inner}, nil, []*drawable.Text{txt})

	require.NoError(t, err)
	require.Contains(t, inner.Names(), "hi")
	require.Empty(t, outer.Names())
}

func TestBindOpenGraphsNearbySegment(t *testing.T) {
	g := multigraph.New()
	a := g.AddNode(geom.NewPoint(0, 0.5), geom.Miter, true)
	b := g.AddNode(geom.NewPoint(5, 0.5), geom.Miter, true)
	g.AddEdge(a, b, nil)
	og := drawable.NewOpenGraph(planar.OpenGraph{Sub: g, Paths: [][]multigraph.NodeID{{a, b}}})

	txt := drawable.NewText(geom.NewPoint(1, 0), "lbl")

	err := names.BindInnermost(nil, []*drawable.OpenGraph{og}, []*drawable.Text{txt})

	require.NoError(t, err)
	require.Contains(t, og.Names(), "lbl")
}
