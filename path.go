package supershape

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a drawing command, akin to the commands of PostScript or of
// an SVG path. Supershapes are polylines, so only straight lines exist.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("InvalidPathElement(%s)", el.P0)
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a polyline made of path elements.
type Path []PathElement

// Transform returns a new path with an affine transformation applied to it.
func (p Path) Transform(aff Affine) Path {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Lines returns an iterator over the path's line segments.
func (p Path) Lines() iter.Seq[Line] { return Lines(slices.Values(p)) }

// Perimeter returns the total length of the path's line segments.
func (p Path) Perimeter() float64 {
	var sum float64
	for l := range p.Lines() {
		sum += l.Length()
	}
	return sum
}

// SignedArea returns the signed area of the path's closed subpaths. Open
// subpaths contribute as if they were closed.
func (p Path) SignedArea() float64 {
	var sum float64
	for l := range Lines(closeSubpaths(p.Elements())) {
		sum += l.SignedArea()
	}
	return sum
}

// BoundingBox returns the smallest rectangle enclosing all points of the path.
// The zero rectangle is returned for an empty path.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	first := true
	for _, el := range p {
		if el.Kind == ClosePathKind {
			continue
		}
		if first {
			first = false
			bbox = NewRectFromPoints(el.P0, el.P0)
		} else {
			bbox = bbox.UnionPoint(el.P0)
		}
	}
	return bbox
}

// SVG returns the path as SVG path data.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path data to w.
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// Lines converts a sequence of path elements to a sequence of line segments.
// A ClosePath element yields the closing line unless the subpath already ends
// at its start.
func Lines(seq iter.Seq[PathElement]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		first := true
		var start, last Point
		for el := range seq {
			if first {
				first = false
				if el.Kind == ClosePathKind {
					panic("first path element mustn't be ClosePath")
				}
				start = el.P0
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(Line{p, el.P0}) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// closeSubpaths inserts ClosePath elements for subpaths that lack them.
func closeSubpaths(seq iter.Seq[PathElement]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		open := false
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				if open && !yield(ClosePath()) {
					return
				}
				open = true
			case ClosePathKind:
				open = false
			}
			if !yield(el) {
				return
			}
		}
		if open {
			yield(ClosePath())
		}
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", formatCoord(el.P0.X, opts), formatCoord(el.P0.Y, opts))
		case LineToKind:
			writef("L%s,%s", formatCoord(el.P0.X, opts), formatCoord(el.P0.Y, opts))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

func formatCoord(n float64, opts SVGOptions) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
