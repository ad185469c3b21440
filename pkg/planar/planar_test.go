package planar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/overlay"
	"github.com/stencilgraph/stencilgraph/pkg/planar"
)

func TestAnalyzeSingleLineIsOneOpenPath(t *testing.T) {
	g := overlay.Match(overlay.Grid{"---"}, overlay.Catalog)
	polys, openGraphs := planar.Analyze(g.Components())

	require.Empty(t, polys)
	require.Len(t, openGraphs, 1)
	require.Len(t, openGraphs[0].Paths, 1)

	path := openGraphs[0].Paths[0]
	first := openGraphs[0].Sub.Node(path[0]).Pos
	last := openGraphs[0].Sub.Node(path[len(path)-1]).Pos
	require.InDelta(t, 0, first.X, 1e-9)
	require.InDelta(t, 3, last.X, 1e-9)
}

func TestAnalyzeSimpleBoxIsOnePolygon(t *testing.T) {
	g := overlay.Match(overlay.Grid{"+-+", "| |", "+-+"}, overlay.Catalog)
	polys, openGraphs := planar.Analyze(g.Components())

	require.Len(t, polys, 1)
	require.Empty(t, openGraphs)
	// closed cycle: 4 distinct corners plus the repeated first node.
	require.Len(t, polys[0].Nodes, 5)
	require.Equal(t, polys[0].Nodes[0], polys[0].Nodes[len(polys[0].Nodes)-1])
}

func TestAnalyzeOverlappingBoxesYieldsPolygons(t *testing.T) {
	grid := []string{
		"+---+",
		"|   |",
		"| +-+-+",
		"| | | |",
		"| +-+-+",
		"|   |",
		"+---+",
	}
	g := overlay.Match(grid, overlay.Catalog)
	polys, _ := planar.Analyze(g.Components())
	require.GreaterOrEqual(t, len(polys), 1)
}

func TestFaceLengthSumsEdgeLengths(t *testing.T) {
	g := overlay.Match(overlay.Grid{"+-+", "| |", "+-+"}, overlay.Catalog)
	polys, _ := planar.Analyze(g.Components())
	require.Len(t, polys, 1)
	length := planar.FaceLength(polys[0].Graph, polys[0].Nodes)
	require.InDelta(t, 8.0, length, 1e-9) // 2x2 square perimeter
}
