package zorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/drawable"
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
	"github.com/stencilgraph/stencilgraph/pkg/overlay"
	"github.com/stencilgraph/stencilgraph/pkg/planar"
	"github.com/stencilgraph/stencilgraph/pkg/zorder"
)

func TestAssignZOrderNestedBoxesOuterBelowInner(t *testing.T) {
	grid := []string{
		"+-----+",
		"| +-+ |",
		"| | | |",
		"| +-+ |",
		"+-----+",
	}
	g := overlay.Match(grid, overlay.Catalog)
	polys, _ := planar.Analyze(g.Components())
	require.Len(t, polys, 2)

	drawables := make([]drawable.Drawable, len(polys))
	for i, p := range polys {
		drawables[i] = drawable.NewPolygon(p.Graph, p)
	}

	zorder.AssignZOrder(nil, drawables)

	outer, inner := drawables[0].(*drawable.Polygon), drawables[1].(*drawable.Polygon)
	if outer.ContainsPolygon(inner) {
		require.Less(t, outer.ZOrder(), inner.ZOrder())
	} else {
		require.Less(t, inner.ZOrder(), outer.ZOrder())
	}
}

func TestAssignZOrderEmptyIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		zorder.AssignZOrder(nil, nil)
	})
}

// TestAssignZOrderTopOfOwnerAboveReferencedEdge pins down the crossing
// rule: the drawable whose edge carries a top_of annotation must be
// assigned a strictly greater z-order than the drawable whose edge the
// annotation points at, independent of any containment relationship
// between them.
func TestAssignZOrderTopOfOwnerAboveReferencedEdge(t *testing.T) {
	crossPoint1 := geom.NewPoint(5, 5)
	crossPoint2 := geom.NewPoint(6, 5)

	under := multigraph.New()
	u1 := under.AddNode(crossPoint1, geom.Miter, false)
	u2 := under.AddNode(crossPoint2, geom.Miter, false)
	under.AddEdge(u1, u2, nil)
	underGraph := drawable.NewOpenGraph(planar.OpenGraph{Sub: under, Paths: [][]multigraph.NodeID{{u1, u2}}})

	over := multigraph.New()
	o1 := over.AddNode(geom.NewPoint(5.5, 4), geom.Miter, false)
	o2 := over.AddNode(geom.NewPoint(5.5, 6), geom.Miter, false)
	over.AddEdge(o1, o2, &[2]geom.Point{crossPoint1, crossPoint2})
	overGraph := drawable.NewOpenGraph(planar.OpenGraph{Sub: over, Paths: [][]multigraph.NodeID{{o1, o2}}})

	drawables := []drawable.Drawable{underGraph, overGraph}
	zorder.AssignZOrder(nil, drawables)

	require.Greater(t, overGraph.ZOrder(), underGraph.ZOrder())
}
