package overlay

import "github.com/stencilgraph/stencilgraph/pkg/sgerrors"

// Catalog is the fixed, ordered list of stencils the matcher slides over
// the grid. It is compiled once at package init and never mutated
// afterward. Order does not affect output (every match flows into the
// same multigraph), except that the fusion rule in pkg/multigraph always
// respects each emission's own Fusable flag regardless of which stencil
// produced it.
//
// The geometry here — node positions, topOf references, the bracket and
// tilde crossing constants — is load-bearing: it reproduces the ASCII
// stencil table a diagram-to-vector compiler of this shape has always
// used, cell for cell.
var Catalog = mustBuildCatalog(0.5, 0.25)

func mustBuildCatalog(crossingLength, crossingHeight float64) []Stencil {
	cat, err := BuildCatalog(crossingLength, crossingHeight)
	if err != nil {
		panic(err)
	}
	return cat
}

// BuildCatalog compiles the stencil catalog against the given crossing
// geometry, letting callers thread pkg/config's MatcherConfig tunables
// through instead of always matching against the package-level defaults
// Catalog was built with. crossingLength and crossingHeight must each
// describe a non-degenerate crossing notch (see the range checks below);
// an out-of-range value would place a crossing's broken-edge endpoints
// outside the unit cell or collapse them onto each other, so it is
// rejected as a malformed catalog entry rather than silently producing
// garbled geometry.
func BuildCatalog(crossingLength, crossingHeight float64) ([]Stencil, error) {
	if crossingLength <= 0 || crossingLength >= 1 {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidStencil,
			"crossing_length must be in (0, 1), got %v", crossingLength)
	}
	if crossingHeight <= 0 || crossingHeight >= 0.5 {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidStencil,
			"crossing_height must be in (0, 0.5), got %v", crossingHeight)
	}

	cat := []Stencil{
		stencil("dash", []string{"-"}, edge(node(0, 0.5), node(1, 0.5))),
		stencil("pipe", []string{"|"}, edge(node(0.5, 0), node(0.5, 1))),
		stencil("anti-diagonal", []string{"/"}, edge(node(0, 1), node(1, 0))),
		stencil("diagonal", []string{"\\"}, edge(node(1, 1), node(0, 0))),

		stencil("horizontal-crossing", []string{"-|-"},
			edgeTopOf(node(1, 0.5), node(2, 0.5), LocalPoint{X: 1.5, Y: 0}, LocalPoint{X: 1.5, Y: 1})),
		stencil("vertical-crossing", []string{"|", "-", "|"},
			edgeTopOf(node(0.5, 1), node(0.5, 2), LocalPoint{X: 0, Y: 1.5}, LocalPoint{X: 1, Y: 1.5})),

		stencil("corner-plus-dash-right", []string{"+-"}, edge(anchor(0.5, 0.5), node(1, 0.5))),
		stencil("corner-dash-plus-right", []string{"-+"}, edge(node(1, 0.5), anchor(1.5, 0.5))),
		stencil("corner-plus-pipe-down", []string{"+", "|"}, edge(anchor(0.5, 0.5), node(0.5, 1))),
		stencil("corner-pipe-plus-down", []string{"|", "+"}, edge(node(0.5, 1), anchor(0.5, 1.5))),

		stencil("corner-slash-plus", []string{"\x00/", "+\x00"}, edge(node(1, 1), anchor(0.5, 1.5))),
		stencil("corner-star-plus-a", []string{"\x00*", "+\x00"}, edge(curveNode(1.5, 0.5), anchor(0.5, 1.5))),
		stencil("corner-star-plus-b", []string{"*\x00", "\x00+"}, edge(curveNode(0.5, 0.5), anchor(1.5, 1.5))),
		stencil("corner-plus-plus-a", []string{"+\x00", "\x00+"}, edge(anchor(0.5, 0.5), anchor(1.5, 1.5))),
		stencil("corner-plus-star-a", []string{"\x00+", "*\x00"}, edge(node(1.5, 0.5), curveAnchor(0.5, 1.5))),
		stencil("corner-plus-plus-b", []string{"\x00+", "+\x00"}, edge(anchor(1.5, 0.5), anchor(0.5, 1.5))),
		stencil("corner-plus-star-b", []string{"+\x00", "\x00*"}, edge(node(0.5, 0.5), curveAnchor(1.5, 1.5))),
		stencil("corner-backslash-plus-a", []string{"\\\x00", "\x00+"}, edge(node(1, 1), anchor(1.5, 1.5))),
		stencil("corner-plus-backslash-a", []string{"+\x00", "\x00\\"}, edge(anchor(0.5, 0.5), node(1, 1))),
		stencil("corner-plus-slash", []string{"\x00+", "/\x00"}, edge(anchor(1.5, 0.5), node(1, 1))),

		stencil("pipe-star-down", []string{"|", "*"}, edge(node(0.5, 1), curveNode(0.5, 1.5))),
		stencil("star-pipe-down", []string{"*", "|"}, edge(curveNode(0.5, 0.5), node(0.5, 1))),
		stencil("star-dash-right", []string{"*-"}, edge(curveNode(0.5, 0.5), node(1, 0.5))),
		stencil("dash-star-right", []string{"-*"}, edge(node(1, 0.5), curveNode(1.5, 0.5))),

		stencil("plus-plus-right", []string{"++"}, edge(anchor(0.5, 0.5), anchor(1.5, 0.5))),
		stencil("plus-plus-down", []string{"+", "+"}, edge(anchor(0.5, 0.5), anchor(0.5, 1.5))),

		nodeStencil("solo-plus", []string{"+"}, anchor(0.5, 0.5)),

		stencil("arrow-down-from-pipe", []string{"|", "v"}, edge(node(0.5, 1), node(0.5, 1.55))),
		stencil("arrow-up-to-pipe", []string{"^", "|"}, edge(node(0.5, 0.45), node(0.5, 1))),
		stencil("arrow-up-from-pipe", []string{"|", "^"}, edge(node(0.5, 1), node(0.5, 1.45))),
		stencil("arrow-down-to-pipe", []string{"v", "|"}, edge(node(0.5, 0.55), node(0.5, 1))),
		stencil("arrow-left-from-dash", []string{"-<"}, edge(node(1, 0.5), node(2, 0.5))),
		stencil("arrow-right-from-dash", []string{">-"}, edge(node(0, 0.5), node(1, 0.5))),

		stencil("arrow-up-from-plus", []string{"+", "^"}, edge(node(0.5, 0.5), node(0.5, 1.45))),
		stencil("arrow-down-to-plus", []string{"v", "+"}, edge(node(0.5, 0.55), node(0.5, 1.5))),
		stencil("arrow-left-from-plus", []string{"+<"}, edge(node(0.5, 0.5), node(2, 0.5))),
		stencil("arrow-right-to-plus", []string{">+"}, edge(node(0, 0.5), node(1.5, 0.5))),

		stencil("star-star-right", []string{"**"}, edge(curveNode(0.5, 0.5), curveNode(1.5, 0.5))),
		stencil("star-star-down", []string{"*", "*"}, edge(curveNode(0.5, 0.5), curveNode(0.5, 1.5))),
		stencil("star-star-anti-diagonal", []string{"\x00*", "*\x00"}, edge(curveNode(1.5, 0.5), curveNode(0.5, 1.5))),
		stencil("star-star-diagonal", []string{"*\x00", "\x00*"}, edge(curveNode(0.5, 0.5), curveNode(1.5, 1.5))),
	}

	crossingTop := (1.0 - crossingLength) / 2.0
	crossingBottom := 1.0 - (1.0-crossingLength)/2.0
	crossingTopCurve := crossingTop + crossingLength/5.0
	crossingBottomCurve := crossingBottom - crossingLength/5.0
	bracketLeft := 0.5 - crossingHeight
	bracketRight := 0.5 + crossingHeight

	cat = append(cat,
		stencil("bracket-left", []string{"["},
			edge(node(0.5, 0), node(0.5, crossingTop)),
			edge(node(0.5, crossingTop), node(bracketLeft, crossingTop)),
			edge(node(bracketLeft, crossingTop), node(bracketLeft, crossingBottom)),
			edge(node(0.5, crossingBottom), node(bracketLeft, crossingBottom)),
			edge(node(0.5, 1), node(0.5, crossingBottom)),
		),
		stencil("bracket-right", []string{"]"},
			edge(node(0.5, 0), node(0.5, crossingTop)),
			edge(node(0.5, crossingTop), node(bracketRight, crossingTop)),
			edge(node(bracketRight, crossingTop), node(bracketRight, crossingBottom)),
			edge(node(0.5, crossingBottom), node(bracketRight, crossingBottom)),
			edge(node(0.5, 1), node(0.5, crossingBottom)),
		),
		stencil("paren-close", []string{")"},
			edge(curveNode(0.5, 0), curveNode(0.5, crossingTop)),
			edge(curveNode(0.5, crossingTop), curveNode(bracketRight, crossingTopCurve)),
			edge(curveNode(bracketRight, crossingTopCurve), curveNode(bracketRight, crossingBottomCurve)),
			edge(curveNode(0.5, crossingBottom), curveNode(bracketRight, crossingBottomCurve)),
			edge(curveNode(0.5, 1), curveNode(0.5, crossingBottom)),
		),
		stencil("paren-open", []string{"("},
			edge(curveNode(0.5, 0), curveNode(0.5, crossingTop)),
			edge(curveNode(0.5, crossingTop), curveNode(bracketLeft, crossingTopCurve)),
			edge(curveNode(bracketLeft, crossingTopCurve), curveNode(bracketLeft, crossingBottomCurve)),
			edge(curveNode(0.5, crossingBottom), curveNode(bracketLeft, crossingBottomCurve)),
			edge(curveNode(0.5, 1), curveNode(0.5, crossingBottom)),
		),
	)

	tildeLeft := (1.0 - crossingLength) / 4.0
	tildeRight := 1.0 - (1.0-crossingLength)/4.0
	tildeLeftCurve := tildeLeft + crossingLength/5.0
	tildeRightCurve := tildeRight - crossingLength/5.0
	tildeTop := 0.5 - crossingHeight/2

	cat = append(cat, stencil("tilde", []string{"~"},
		edge(curveNode(0, 0.5), curveNode(tildeLeft, 0.5)),
		edge(curveNode(tildeLeft, 0.5), curveNode(tildeLeftCurve, tildeTop)),
		edge(curveNode(tildeLeftCurve, tildeTop), curveNode(tildeRightCurve, tildeTop)),
		edge(curveNode(tildeRightCurve, tildeTop), curveNode(tildeRight, 0.5)),
		edge(curveNode(tildeRight, 0.5), curveNode(1, 0.5)),
	))

	for _, ind := range []rune{'[', ']', '(', ')'} {
		indStr := string(ind)
		cat = append(cat,
			stencil("dash-before-"+indStr, []string{"-" + indStr},
				edge(anchor(1, 0.5), anchor(1.5, 0.5))),
			stencil(indStr+"-after-dash", []string{indStr + "-"},
				edge(anchor(0.5, 0.5), anchor(1, 0.5))),
		)
	}

	cat = append(cat,
		stencil("tilde-above-pipe", []string{"~", "|"}, edge(anchor(0.5, 1), anchor(0.5, 0.5))),
		stencil("pipe-above-tilde", []string{"|", "~"}, edge(anchor(0.5, 1), anchor(0.5, 1.5))),
	)

	return cat
}
