package supershape

import (
	"iter"
	"slices"
)

// Curve is a sampled supershape. Points are ordered by increasing angle, and
// consumers draw edges between consecutive points, optionally closing the
// loop from the last point to the first.
type Curve []Point

// Flat returns the curve's coordinates interleaved as x0, y0, x1, y1, …, the
// layout expected by many drawing APIs.
func (c Curve) Flat() []float64 {
	out := make([]float64, 0, 2*len(c))
	for _, pt := range c {
		out = append(out, pt.X, pt.Y)
	}
	return out
}

// Elements returns an iterator over path elements that draw the curve as a
// polyline. If closed is true, the polyline is closed off.
func (c Curve) Elements(closed bool) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(c) == 0 {
			return
		}
		if !yield(MoveTo(c[0])) {
			return
		}
		for _, pt := range c[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		if closed {
			yield(ClosePath())
		}
	}
}

// Path returns the curve as a polyline. See [Curve.Elements].
func (c Curve) Path(closed bool) Path {
	return slices.Collect(c.Elements(closed))
}

// Lines returns an iterator over the edges between consecutive points, plus
// the closing edge if closed is true.
func (c Curve) Lines(closed bool) iter.Seq[Line] {
	return Lines(c.Elements(closed))
}

// Transform returns a new curve with aff applied to every point.
func (c Curve) Transform(aff Affine) Curve {
	out := make(Curve, len(c))
	for i, pt := range c {
		out[i] = pt.Transform(aff)
	}
	return out
}

// BoundingBox returns the smallest rectangle enclosing all points. An empty
// curve has the zero rectangle as its bounding box.
func (c Curve) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(c[0], c[0])
	for _, pt := range c[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Perimeter returns the length of the polyline, including the closing edge if
// closed is true.
func (c Curve) Perimeter(closed bool) float64 {
	var sum float64
	for l := range c.Lines(closed) {
		sum += l.Length()
	}
	return sum
}

// SignedArea returns the signed area of the closed polygon through the
// curve's points.
//
// The convention for positive area is that y increases when x is positive.
// Curves sampled with positive travel and positive scale factors wind
// anticlockwise in a y-up space and thus have positive area.
func (c Curve) SignedArea() float64 {
	var sum float64
	for l := range c.Lines(true) {
		sum += l.SignedArea()
	}
	return sum
}

// Centroid returns the arithmetic mean of the curve's points. It returns the
// origin for an empty curve.
func (c Curve) Centroid() Point {
	if len(c) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, pt := range c {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(c))
	return Point{X: sx / n, Y: sy / n}
}
