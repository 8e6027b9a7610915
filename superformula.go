package supershape

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every [*InvalidParameterError].
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports a parameter for which the superformula is
// undefined.
type InvalidParameterError struct {
	// Param names the offending parameter, e.g. "a" or "n1".
	Param string
	Value float64
	// Reason describes the constraint that was violated.
	Reason string
}

func (err *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %g: %s", err.Param, err.Value, err.Reason)
}

func (err *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Superformula holds the shape parameters of Gielis's superformula
//
//	r(φ) = (|cos(mφ/4)/a|^n2 + |sin(mφ/4)/b|^n3)^(−1/n1)
//
// A and B are the radial denominators and must be non-zero. M controls the
// rotational symmetry and may be any real number, including zero and
// negative values. N1 must be non-zero. N2 and N3 are unconstrained.
//
// Typical user interfaces restrict a and b to (0, 1], m to [−100, 100] and
// the exponents to [1, 50]. Superformula doesn't impose these limits.
type Superformula struct {
	A, B float64
	M    float64
	N1   float64
	N2   float64
	N3   float64
}

// Validate reports an [*InvalidParameterError] if a, b or n1 is zero.
func (sf Superformula) Validate() error {
	switch {
	case sf.A == 0:
		return &InvalidParameterError{Param: "a", Value: sf.A, Reason: "must be non-zero"}
	case sf.B == 0:
		return &InvalidParameterError{Param: "b", Value: sf.B, Reason: "must be non-zero"}
	case sf.N1 == 0:
		return &InvalidParameterError{Param: "n1", Value: sf.N1, Reason: "must be non-zero"}
	}
	return nil
}

// Radius returns r(phi).
func (sf Superformula) Radius(phi float64) (float64, error) {
	if err := sf.Validate(); err != nil {
		return 0, err
	}
	return sf.radius(phi), nil
}

// Eval evaluates the superformula at the angle phi, in radians, and returns
// the point (r·cos φ, r·sin φ). A radius of exactly zero yields the origin.
func (sf Superformula) Eval(phi float64) (Point, error) {
	if err := sf.Validate(); err != nil {
		return Point{}, err
	}
	return sf.eval(phi), nil
}

// radius computes r(phi) for validated parameters. The order of operations
// is fixed so that results are reproducible bit for bit.
func (sf Superformula) radius(phi float64) float64 {
	t1 := math.Cos(sf.M*phi/4) / sf.A
	t1 = math.Abs(t1)
	t1 = math.Pow(t1, sf.N2)

	t2 := math.Sin(sf.M*phi/4) / sf.B
	t2 = math.Abs(t2)
	t2 = math.Pow(t2, sf.N3)

	t3 := -1 / sf.N1
	return math.Pow(t1+t2, t3)
}

func (sf Superformula) eval(phi float64) Point {
	r := sf.radius(phi)
	// Exact comparison: only a radius that is truly zero, typically because
	// t1+t2 overflowed to +Inf, snaps to the origin.
	if math.Abs(r) == 0 {
		return Point{}
	}
	return Point{
		X: r * math.Cos(phi),
		Y: r * math.Sin(phi),
	}
}

// Evaluate evaluates the superformula with the given parameters at the angle
// phi. It is shorthand for Superformula{a, b, m, n1, n2, n3}.Eval(phi).
func Evaluate(a, b, m, n1, n2, n3, phi float64) (Point, error) {
	return Superformula{A: a, B: b, M: m, N1: n1, N2: n2, N3: n3}.Eval(phi)
}
