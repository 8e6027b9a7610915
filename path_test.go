package supershape

import (
	"bytes"
	"slices"
	"testing"
)

func TestSVG(t *testing.T) {
	c := Curve{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	if got, want := c.Path(true).SVG(SVGOptions{}), "M0,0 L1,0 L1,1 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := SVG(c.Elements(false), SVGOptions{}), "M0,0 L1,0 L1,1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	c = Curve{Pt(0.123456, 1.5), Pt(-0.0001, 2), Pt(10, -3.25)}
	if got, want := c.Path(false).SVG(SVGOptions{MaxPrecision: 3}), "M0.123,1.5 L0,2 L10,-3.25"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var buf bytes.Buffer
	if err := c.Path(true).WriteSVG(&buf, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "M0.123456,1.5 L-0.0001,2 L10,-3.25 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathElementString(t *testing.T) {
	tests := []struct {
		el   PathElement
		want string
	}{
		{MoveTo(Pt(1, 2)), "MoveTo((1, 2))"},
		{LineTo(Pt(-1, 0.5)), "LineTo((-1, 0.5))"},
		{ClosePath(), "ClosePath()"},
	}
	for _, tt := range tests {
		if got := tt.el.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPathBuilding(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(4, 0))
	p.LineTo(Pt(4, 3))
	p.ClosePath()
	p.MoveTo(Pt(10, 10))
	p.LineTo(Pt(11, 10))

	lines := slices.Collect(p.Lines())
	want := []Line{
		{Pt(0, 0), Pt(4, 0)},
		{Pt(4, 0), Pt(4, 3)},
		{Pt(4, 3), Pt(0, 0)},
		{Pt(10, 10), Pt(11, 10)},
	}
	diff(t, want, lines)

	if got := p.Perimeter(); got != 13 {
		t.Errorf("got perimeter %g, want 13", got)
	}
	// The second subpath is degenerate and has no area.
	if got := p.SignedArea(); got != 6 {
		t.Errorf("got area %g, want 6", got)
	}
	diff(t, Rect{0, 0, 11, 10}, p.BoundingBox())
	diff(t, Rect{}, Path{}.BoundingBox())
}

func TestRectPath(t *testing.T) {
	r := Rect{0, 0, 10, 5}
	if a, pa := r.Area(), r.Path().SignedArea(); a != pa {
		t.Errorf("rect area %g differs from path area %g", a, pa)
	}
}
