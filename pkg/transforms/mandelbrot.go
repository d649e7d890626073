package transforms

import "github.com/willbeason/textbrot/pkg/plane"

// Mandelbrot iterates z -> z*z + c from z = 0.
type Mandelbrot struct {
	// MaxIterations bounds the work done per point. Points which survive
	// this many steps are treated as members of the set.
	MaxIterations int
}

func (m Mandelbrot) Next(z plane.Complex, c plane.Complex) plane.Complex {
	return plane.Add(plane.Mul(z, z), c)
}

func (m Mandelbrot) Limit() int {
	return m.MaxIterations
}

// Evaluate runs the escape test for c.
//
// The radius check follows the update, so a c outside the escape radius
// escapes with a count of zero.
func (m Mandelbrot) Evaluate(c plane.Complex) Outcome {
	z := plane.Complex{}

	for i := 0; i < m.MaxIterations; i++ {
		z = m.Next(z, c)
		if plane.SquaredMagnitude(z) > plane.EscapeRadiusSquared {
			return Outcome{Count: i, Escaped: true}
		}
	}

	return Outcome{Count: m.MaxIterations}
}

// Escape returns the escape-time count for c, in [0, MaxIterations].
func (m Mandelbrot) Escape(c plane.Complex) int {
	return m.Evaluate(c).Count
}
