// Package geom defines the 2D primitives the rest of the pipeline builds
// on: points, node styles, and the handful of vector operations the
// planar analyzer and name binder need. Positions are expressed with
// github.com/golang/geo/r2.Vector so that dot/cross products and segment
// distance math come from a real vector library rather than hand-rolled
// float pairs.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position in grid coordinates. Grid cell (x, y)'s upper-left
// corner is (float64(x), float64(y)); cell centers sit at +0.5, +0.5.
type Point = r2.Vector

// Epsilon is the coordinate-equality tolerance used by PointsEqual and
// the segment predicates below.
const Epsilon = 1e-9

// NewPoint builds a Point from grid-unit coordinates.
func NewPoint(x, y float64) Point {
	return r2.Vector{X: x, Y: y}
}

// PointsEqual reports whether a and b are within Epsilon of each other.
func PointsEqual(a, b Point) bool {
	return a.Sub(b).Norm() <= Epsilon
}

// Style is the path-construction hint carried by a node.
type Style int

const (
	// Miter is the default: adjoining edges meet at a sharp corner.
	Miter Style = iota
	// Curve marks a node generated by a `*` stencil cell: adjoining
	// edges should be rendered as a smooth curve through this point.
	Curve
)

func (s Style) String() string {
	if s == Curve {
		return "curve"
	}
	return "miter"
}

// Node is a 2D point with the two matcher-relevant attributes from the
// specification: path style and fusability.
type Node struct {
	Pos     Point
	Style   Style
	Fusable bool
}

// Translate returns a copy of n shifted by (dx, dy).
func (n Node) Translate(dx, dy float64) Node {
	n.Pos = n.Pos.Add(NewPoint(dx, dy))
	return n
}

// Length returns the Euclidean distance between two points.
func Length(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// Angle returns the angle in radians of the vector from a to b, in
// [-pi, pi], used to order a node's incident edges around it for planar
// face tracing.
func Angle(a, b Point) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X)
}

// SegmentDistance returns the minimum distance between segments p1-p2 and
// p3-p4, including the zero distance when the segments intersect.
func SegmentDistance(p1, p2, p3, p4 Point) float64 {
	if segmentsIntersect(p1, p2, p3, p4) {
		return 0
	}
	d := math.Inf(1)
	for _, c := range []struct{ p, a, b Point }{
		{p1, p3, p4}, {p2, p3, p4}, {p3, p1, p2}, {p4, p1, p2},
	} {
		if v := pointSegmentDistance(c.p, c.a, c.b); v < d {
			d = v
		}
	}
	return d
}

func pointSegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom <= Epsilon*Epsilon {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Mul(t))
	return p.Sub(proj).Norm()
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if math.Abs(d1) <= Epsilon && onSegment(p3, p4, p1) {
		return true
	}
	if math.Abs(d2) <= Epsilon && onSegment(p3, p4, p2) {
		return true
	}
	if math.Abs(d3) <= Epsilon && onSegment(p1, p2, p3) {
		return true
	}
	if math.Abs(d4) <= Epsilon && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func direction(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X)-Epsilon <= p.X && p.X <= math.Max(a.X, b.X)+Epsilon &&
		math.Min(a.Y, b.Y)-Epsilon <= p.Y && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}
