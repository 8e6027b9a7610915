// Package bounds holds the tunables of the interactive supershape viewer and
// the ranges a user interface restricts them to.
//
// The supershape package itself accepts any value for which the superformula
// is defined. The limits in this package keep user-supplied values in a range
// that renders well and never triggers an invalid parameter.
package bounds

import (
	"math"

	"honnef.co/go/supershape"
)

// Bound restricts a numeric tunable to [Min, Max].
//
// Out of range values are not clamped to the nearest limit. They are replaced
// by ErrorValue, which need not be the default value.
type Bound struct {
	Min, Max   float64
	ErrorValue float64
}

// Contains reports whether v is within the bound. NaN is never contained.
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Apply returns v if it is within the bound and ErrorValue otherwise.
func (b Bound) Apply(v float64) float64 {
	if b.Contains(v) {
		return v
	}
	return b.ErrorValue
}

var (
	Size      = Bound{Min: 1, Max: 512, ErrorValue: 512}
	A         = Bound{Min: 0.1, Max: 1, ErrorValue: 1}
	B         = Bound{Min: 0.1, Max: 1, ErrorValue: 1}
	M         = Bound{Min: -100, Max: 100, ErrorValue: 16}
	N1        = Bound{Min: 1, Max: 50, ErrorValue: 4}
	N2        = Bound{Min: 1, Max: 50, ErrorValue: 4}
	N3        = Bound{Min: 1, Max: 50, ErrorValue: 10}
	Points    = Bound{Min: 2, Max: 1000, ErrorValue: 100}
	Percent   = Bound{Min: 1, Max: 10, ErrorValue: 1}
	Travel    = Bound{Min: 2, Max: 100, ErrorValue: 2}
	LineWidth = Bound{Min: 1, Max: 10, ErrorValue: 1}
)

// Settings are the viewer's tunables.
type Settings struct {
	// Size is the edge length of the square the shape is drawn into.
	Size float64
	// Foreground and Background are colors in RRGGBBAA hex notation.
	Foreground string
	Background string

	A, B       float64
	M          float64
	N1, N2, N3 float64
	Points     int
	Percent    float64
	// Travel is measured in multiples of π.
	Travel float64

	// Line selects drawing a closed outline instead of individual points.
	Line      bool
	LineWidth float64
}

// Defaults returns the viewer's initial settings.
func Defaults() Settings {
	return Settings{
		Size:       256,
		Foreground: "3619ffff",
		Background: "19526699",
		A:          1,
		B:          1,
		M:          7,
		N1:         2,
		N2:         8,
		N3:         4,
		Points:     100,
		Percent:    1,
		Travel:     2,
		Line:       false,
		LineWidth:  1,
	}
}

// A Replacement records a tunable whose value was out of bounds.
type Replacement struct {
	Name string
	From float64
	To   float64
}

// Sanitize applies every bound to s. It returns the resulting settings and
// the tunables whose values had to be replaced, in a fixed order.
func (s Settings) Sanitize() (Settings, []Replacement) {
	var repl []Replacement
	apply := func(name string, b Bound, v *float64) {
		if nv := b.Apply(*v); nv != *v {
			repl = append(repl, Replacement{Name: name, From: *v, To: nv})
			*v = nv
		}
	}
	apply("size", Size, &s.Size)
	apply("a", A, &s.A)
	apply("b", B, &s.B)
	apply("m", M, &s.M)
	apply("n1", N1, &s.N1)
	apply("n2", N2, &s.N2)
	apply("n3", N3, &s.N3)
	points := float64(s.Points)
	apply("points", Points, &points)
	s.Points = int(points)
	apply("percent", Percent, &s.Percent)
	apply("travel", Travel, &s.Travel)
	apply("line-width", LineWidth, &s.LineWidth)
	return s, repl
}

// Params converts the settings to sampling parameters. The shape is sized to
// fill a square of edge length Size centered on the origin.
func (s Settings) Params() supershape.Params {
	return supershape.Params{
		Superformula: supershape.Superformula{
			A:  s.A,
			B:  s.B,
			M:  s.M,
			N1: s.N1,
			N2: s.N2,
			N3: s.N3,
		},
		PointCount: s.Points,
		Percent:    s.Percent,
		Travel:     math.Pi * s.Travel,
		Width:      s.Size / 2,
		Height:     s.Size / 2,
	}
}
