// Package scenedot renders a composed multigraph as Graphviz DOT, for
// developers inspecting the overlay matcher's output while debugging a
// stencil or a fusion rule. It is a wireframe debug aid: no styles, no
// fills, no gradients, and it never touches the polygon/open-graph/text
// drawables an external rendering backend consumes.
//
// The DOT builder and SVG rendering follow a hand-built DOT string piped
// through github.com/goccy/go-graphviz.
package scenedot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/teleivo/dot"

	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
)

// ToDOT renders g's nodes and edges as an undirected Graphviz DOT graph. Non-fusable
// nodes (stencil anchors: `+` junctions, bracket boundaries) are drawn
// filled grey so a reader can immediately spot where the matcher refused
// to merge coincident nodes; curve-style nodes get a dashed outline.
// top_of edges are labeled so the eventual z-order can be sanity-checked
// against the source grid by eye.
func ToDOT(g *multigraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%.2f,%.2f", n.Pos.X, n.Pos.Y))}
		if !n.Fusable {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		if n.Style.String() == "curve" {
			attrs = append(attrs, "style=\"filled,dashed\"")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, joinAttrs(attrs))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.TopOf != nil {
			fmt.Fprintf(&buf, "  n%d -- n%d [label=\"top_of\"];\n", e.A, e.B)
			continue
		}
		fmt.Fprintf(&buf, "  n%d -- n%d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func joinAttrs(attrs []string) string {
	out := attrs[0]
	for _, a := range attrs[1:] {
		out += ", " + a
	}
	return out
}

// RenderSVG renders dot (as produced by ToDOT) to an SVG document via
// Graphviz.
func RenderSVG(dotSrc string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Format canonicalizes dotSrc's whitespace by piping it through
// teleivo/dot's formatter, following teleivo-dot's own Printer.Print
// contract: parse, then print the formatted AST to w.
func Format(w io.Writer, dotSrc string) error {
	r := bytes.NewReader([]byte(dotSrc))
	return dot.NewPrinter(r, w).Print()
}
