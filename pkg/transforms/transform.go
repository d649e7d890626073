package transforms

import "github.com/willbeason/textbrot/pkg/plane"

// A Transform advances an orbit by one step for the parameter c.
type Transform interface {
	Next(z plane.Complex, c plane.Complex) plane.Complex
}

// An Evaluator classifies a point of the plane by its escape time.
type Evaluator interface {
	Transform
	Evaluate(c plane.Complex) Outcome
	Limit() int
}

// Outcome is the terminal state of one bounded iteration.
//
// An Escaped outcome carries the number of iterations completed before the
// orbit left the escape radius. A bounded outcome always has Count equal to
// the iteration limit.
type Outcome struct {
	Count   int
	Escaped bool
}

var _ Evaluator = Mandelbrot{}
