package plane

import "fmt"

// A Viewport is the rectangle of the complex plane shown on a Width x Height raster.
//
// Column 0 maps to ReMin and row 0 maps to ImMin; rows grow toward ImMax.
type Viewport struct {
	Width, Height int

	ReMin, ReMax float64
	ImMin, ImMax float64
}

// Map converts a raster coordinate into the complex plane.
//
// The viewport must have been validated; Map does no checking of its own.
func (v Viewport) Map(col, row int) Complex {
	return Complex{
		Real: float64(col)/float64(v.Width)*(v.ReMax-v.ReMin) + v.ReMin,
		Imag: float64(row)/float64(v.Height)*(v.ImMax-v.ImMin) + v.ImMin,
	}
}

// RangeError describes a viewport that cannot be mapped.
type RangeError struct {
	Field  string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("viewport %s: %s", e.Field, e.Reason)
}

func (v Viewport) Validate() error {
	switch {
	case v.Width <= 0:
		return &RangeError{Field: "width", Reason: fmt.Sprintf("must be positive, got %d", v.Width)}
	case v.Height <= 0:
		return &RangeError{Field: "height", Reason: fmt.Sprintf("must be positive, got %d", v.Height)}
	case !(v.ReMax > v.ReMin):
		return &RangeError{Field: "real range", Reason: fmt.Sprintf("[%g, %g] is empty", v.ReMin, v.ReMax)}
	case !(v.ImMax > v.ImMin):
		return &RangeError{Field: "imaginary range", Reason: fmt.Sprintf("[%g, %g] is empty", v.ImMin, v.ImMax)}
	}

	return nil
}
