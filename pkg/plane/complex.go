package plane

// EscapeRadiusSquared is the squared magnitude beyond which an orbit is
// considered divergent. Comparing squares avoids a square root; it is
// equivalent to |z| > 2.
const EscapeRadiusSquared = 4.0

// Complex is a point in the complex plane.
type Complex struct {
	Real float64
	Imag float64
}

func Add(a, b Complex) Complex {
	return Complex{
		Real: a.Real + b.Real,
		Imag: a.Imag + b.Imag,
	}
}

func Mul(a, b Complex) Complex {
	return Complex{
		Real: a.Real*b.Real - a.Imag*b.Imag,
		Imag: a.Real*b.Imag + a.Imag*b.Real,
	}
}

func SquaredMagnitude(a Complex) float64 {
	return a.Real*a.Real + a.Imag*a.Imag
}
