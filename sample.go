package supershape

import (
	"iter"
	"math"
)

// DefaultTravel is one full revolution.
const DefaultTravel = 2 * math.Pi

// maxPrealloc bounds the capacity Sample reserves up front. Larger curves
// grow as they are sampled.
const maxPrealloc = 1 << 16

// Params describes a sampled supershape.
type Params struct {
	Superformula

	// PointCount is the number of samples in a sweep of Travel radians.
	PointCount int
	// Percent is the fraction of PointCount that is actually sampled. Values
	// below 1 truncate the sweep, values above 1 continue it past Travel. The
	// angular step doesn't depend on Percent.
	Percent float64
	// Travel is the angular span, in radians, of PointCount samples. It is
	// used as is. In particular, a travel of zero evaluates every sample at
	// φ = 0. Use [DefaultTravel] for a full revolution.
	Travel float64

	// Width and Height scale the x and y coordinates of every point.
	Width  float64
	Height float64
}

// DefaultParams returns the parameters of a seven-fold star with unit
// scaling, sampled at 100 points over a full revolution.
func DefaultParams() Params {
	return Params{
		Superformula: Superformula{
			A:  1,
			B:  1,
			M:  7,
			N1: 2,
			N2: 8,
			N3: 4,
		},
		PointCount: 100,
		Percent:    1,
		Travel:     DefaultTravel,
		Width:      1,
		Height:     1,
	}
}

// SampleCount returns floor(PointCount·Percent), or zero if that is not
// positive.
func (p Params) SampleCount() int {
	n := math.Floor(float64(p.PointCount) * p.Percent)
	if !(n >= 1) {
		return 0
	}
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Angles returns the angles at which the curve is sampled,
// φᵢ = i·Travel/PointCount for i in [0, SampleCount).
func (p Params) Angles() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := p.SampleCount()
		for i := range n {
			if !yield(float64(i) * p.Travel / float64(p.PointCount)) {
				return
			}
		}
	}
}

// Validate reports an [*InvalidParameterError] if the superformula is
// undefined for p's shape parameters or if Percent is not finite.
func (p Params) Validate() error {
	if err := p.validatePercent(); err != nil {
		return err
	}
	return p.Superformula.Validate()
}

func (p Params) validatePercent() error {
	if math.IsNaN(p.Percent) || math.IsInf(p.Percent, 0) {
		return &InvalidParameterError{Param: "percent", Value: p.Percent, Reason: "must be finite"}
	}
	return nil
}

// Sample evaluates the superformula at each of p's angles and scales the
// resulting points by Width and Height.
//
// A sample count of zero produces an empty curve without validating the
// shape parameters. Otherwise, invalid parameters cause Sample to return an
// [*InvalidParameterError] and no curve.
//
// Sample has no side effects and is safe for concurrent use. The returned
// curve is never shared.
func Sample(p Params) (Curve, error) {
	if err := p.validatePercent(); err != nil {
		return nil, err
	}
	n := p.SampleCount()
	if n == 0 {
		return Curve{}, nil
	}
	if err := p.Superformula.Validate(); err != nil {
		return nil, err
	}

	c := make(Curve, 0, min(n, maxPrealloc))
	for phi := range p.Angles() {
		c = append(c, p.Superformula.eval(phi).Scale(p.Width, p.Height))
	}
	return c, nil
}
