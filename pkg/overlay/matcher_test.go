package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchSingleDash(t *testing.T) {
	// Three adjacent "-" stencils each emit a unit edge; shared endpoints
	// fuse, leaving 4 nodes and 3 edges spanning x=0..3 at y=0.5.
	g := Match(Grid{"---"}, Catalog)
	require.Len(t, g.Nodes(), 4)
	require.Len(t, g.Edges(), 3)
	for _, n := range g.Nodes() {
		require.InDelta(t, 0.5, n.Pos.Y, 1e-9)
		require.True(t, n.Fusable)
	}
	var xs []float64
	for _, n := range g.Nodes() {
		xs = append(xs, n.Pos.X)
	}
	require.ElementsMatch(t, []float64{0, 1, 2, 3}, xs)
}

func TestMatchTranslationInvariance(t *testing.T) {
	// Translating the whole grid leaves topology (node/edge counts)
	// unchanged, a round-trip property the matcher must preserve.
	base := Match(Grid{"---"}, Catalog)
	shifted := Match(Grid{"   ", "   ", "  ---"}, Catalog)
	require.Equal(t, len(base.Nodes()), len(shifted.Nodes()))
	require.Equal(t, len(base.Edges()), len(shifted.Edges()))
}

func TestMatchBoxProducesFourCorners(t *testing.T) {
	g := Match(Grid{"+-+", "| |", "+-+"}, Catalog)
	var corners int
	for _, n := range g.Nodes() {
		if !n.Fusable {
			corners++
		}
	}
	require.Equal(t, 4, corners)
}

func TestMatchSoloPlus(t *testing.T) {
	g := Match(Grid{"+"}, Catalog)
	require.Len(t, g.Nodes(), 1)
	require.Empty(t, g.Edges())
	require.False(t, g.Nodes()[0].Fusable)
}
