package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/drawable"
	"github.com/stencilgraph/stencilgraph/pkg/scene"
)

func TestParseSingleLineYieldsOneOpenGraphNoPolygons(t *testing.T) {
	result, err := scene.Parse([]string{"---"}, nil, scene.Options{})

	require.NoError(t, err)
	require.Equal(t, 0, result.Stats.PolygonCount)
	require.Equal(t, 1, result.Stats.OpenGraphCount)
	require.Equal(t, 0, result.Stats.TextCount)
}

func TestParseSimpleBoxYieldsOnePolygon(t *testing.T) {
	result, err := scene.Parse([]string{"+-+", "| |", "+-+"}, nil, scene.Options{})

	require.NoError(t, err)
	require.Equal(t, 1, result.Stats.PolygonCount)
	require.Equal(t, 0, result.Stats.OpenGraphCount)
}

func TestParseNestedBoxesOrdersZByContainment(t *testing.T) {
	grid := []string{
		"+-----+",
		"| +-+ |",
		"| | | |",
		"| +-+ |",
		"+-----+",
	}
	result, err := scene.Parse(grid, nil, scene.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, result.Stats.PolygonCount)

	var polys []*drawable.Polygon
	for _, d := range result.Drawables {
		if p, ok := d.(*drawable.Polygon); ok {
			polys = append(polys, p)
		}
	}
	require.Len(t, polys, 2)

	var outer, inner *drawable.Polygon
	if polys[0].ContainsPolygon(polys[1]) {
		outer, inner = polys[0], polys[1]
	} else {
		outer, inner = polys[1], polys[0]
	}
	require.Less(t, outer.ZOrder(), inner.ZOrder())
}

func TestParseTextInBoxBindsToPolygon(t *testing.T) {
	grid := []string{
		"+---+",
		"|   |",
		"+---+",
	}
	texts := []scene.TextInput{{X: 1, Y: 1, Content: "hi"}}
	result, err := scene.Parse(grid, texts, scene.Options{})

	require.NoError(t, err)
	require.Equal(t, 1, result.Stats.PolygonCount)
	require.Equal(t, 1, result.Stats.TextCount)

	var poly *drawable.Polygon
	var txt *drawable.Text
	for _, d := range result.Drawables {
		switch v := d.(type) {
		case *drawable.Polygon:
			poly = v
		case *drawable.Text:
			txt = v
		}
	}
	require.NotNil(t, poly)
	require.NotNil(t, txt)
	require.Contains(t, poly.Names(), "hi")
	require.Equal(t, poly.ZOrder()+1, txt.ZOrder())
}

func TestParseBindDirectOnlyOption(t *testing.T) {
	grid := []string{
		"+---+",
		"|   |",
		"+---+",
	}
	texts := []scene.TextInput{{X: 1, Y: 1, Content: "hi"}}
	result, err := scene.Parse(grid, texts, scene.Options{NameBinding: scene.BindDirectOnly})

	require.NoError(t, err)
	require.Equal(t, 1, result.Stats.TextCount)
}
