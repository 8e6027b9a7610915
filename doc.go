// Package supershape computes supershapes, polylines that approximate Johan
// Gielis's superformula
//
//	r(φ) = (|cos(mφ/4)/a|^n2 + |sin(mφ/4)/b|^n3)^(−1/n1)
//
// The superformula generalizes the superellipse. Varying the symmetry m and
// the exponents n1, n2 and n3 produces circles, polygons, stars and flower
// shapes.
//
// # Evaluating and sampling
//
// [Superformula.Eval] (and its shorthand [Evaluate]) computes a single point
// at an angle φ. [Sample] sweeps φ from 0 in steps of Travel/PointCount,
// producing floor(PointCount·Percent) points, and scales them by Width and
// Height. Reducing Percent truncates the sweep instead of compressing it, so
// a curve sampled with a smaller Percent is a prefix of the one sampled with
// Percent = 1.
//
// Both are pure functions. The superformula is undefined when a, b or n1 is
// zero. In that case an [*InvalidParameterError] is returned, which matches
// [ErrInvalidParameter]. No partial curve is ever returned. All other inputs
// are evaluated with ordinary IEEE 754 semantics. A radius that is exactly
// zero maps to the origin.
//
// The package does not clamp parameters to "nice" ranges. That is left to
// user interfaces.
//
// # Consuming curves
//
// A [Curve] is an ordered slice of points. It can be handed to a renderer as a
// flat coordinate list ([Curve.Flat]), as a polyline of path elements
// ([Curve.Elements], [Curve.Path]), or as SVG path data ([SVG]). Curves
// are computed in a y-up space centered on the origin. Use [Curve.Transform]
// with an [Affine] to map them into a canvas.
//
// # Literature
//
//   - [Superformula]
//   - Gielis, J. "A generic geometric transformation that unifies a wide range
//     of natural and abstract shapes", American Journal of Botany 90(3), 2003.
//
// [Superformula]: https://en.wikipedia.org/wiki/Superformula
package supershape
