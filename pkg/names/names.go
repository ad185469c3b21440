// Package names implements the name binder: attaching text labels to the
// innermost containing polygon and to open graphs whose edges pass near
// the label.
//
// Two variants are kept: BindInnermost (the z-order-based rule) and
// BindDirectOnly (the alternate "only directly containing" rule),
// preserved as a documented choice rather than discarded.
package names

import (
	"github.com/stencilgraph/stencilgraph/pkg/drawable"
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/sgerrors"
)

const segmentProximity = 1.0 // grid units

// BindInnermost binds every text in texts against polygons and open
// graphs:
//  1. a text always names itself (done by drawable.NewText at construction).
//  2. among polygons containing the text's cell center, the one with the
//     greatest z-order (innermost) receives the text's content as a name,
//     and the text's own z-order becomes that polygon's z-order + 1.
//  3. every open graph with an edge within segmentProximity of the
//     text's first-to-last letter segment receives the text's content
//     as a name.
//
// A text with empty content cannot meaningfully name anything it binds
// to, so it is rejected up front rather than silently attached.
func BindInnermost(polygons []*drawable.Polygon, openGraphs []*drawable.OpenGraph, texts []*drawable.Text) error {
	if err := checkTexts(texts); err != nil {
		return err
	}
	for _, t := range texts {
		bindOpenGraphs(t, openGraphs)

		center := t.CenterPoint()
		var innermost *drawable.Polygon
		for _, p := range polygons {
			if !p.Contains(center) {
				continue
			}
			if innermost == nil || p.ZOrder() > innermost.ZOrder() {
				innermost = p
			}
		}
		if innermost != nil {
			innermost.AddName(t.Content)
			t.SetZOrder(innermost.ZOrder() + 1)
		}
	}
	return nil
}

// BindDirectOnly implements the alternate "only directly containing"
// rule: among the polygons containing the text, any polygon that itself
// contains another containing polygon is skipped, and the content is
// attached to every remaining (innermost-by-containment) polygon. Open
// graph binding is identical to BindInnermost.
func BindDirectOnly(polygons []*drawable.Polygon, openGraphs []*drawable.OpenGraph, texts []*drawable.Text) error {
	if err := checkTexts(texts); err != nil {
		return err
	}
	for _, t := range texts {
		bindOpenGraphs(t, openGraphs)

		center := t.CenterPoint()
		var containing []*drawable.Polygon
		for _, p := range polygons {
			if p.Contains(center) {
				containing = append(containing, p)
			}
		}

		var direct []*drawable.Polygon
		for _, p := range containing {
			outer := false
			for _, q := range containing {
				if p != q && p.ContainsPolygon(q) {
					outer = true
					break
				}
			}
			if !outer {
				direct = append(direct, p)
			}
		}

		maxZ := -1
		for _, p := range direct {
			p.AddName(t.Content)
			if p.ZOrder() > maxZ {
				maxZ = p.ZOrder()
			}
		}
		if maxZ >= 0 {
			t.SetZOrder(maxZ + 1)
		}
	}
	return nil
}

func checkTexts(texts []*drawable.Text) error {
	for _, t := range texts {
		if t.Content == "" {
			return sgerrors.New(sgerrors.ErrCodeInvalidText, "text at %v has empty content", t.CenterPoint())
		}
	}
	return nil
}

func bindOpenGraphs(t *drawable.Text, openGraphs []*drawable.OpenGraph) {
	p1 := t.LetterPosition(0)
	last := len([]rune(t.Content)) - 1
	if last < 0 {
		last = 0
	}
	p2 := t.LetterPosition(last)

	for _, og := range openGraphs {
		for _, e := range og.Edges() {
			if geom.SegmentDistance(e.A, e.B, p1, p2) <= segmentProximity {
				og.AddName(t.Content)
				break
			}
		}
	}
}
