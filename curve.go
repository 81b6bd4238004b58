package curve3

import "github.com/chewxy/math32"

// DefaultAccuracy is a default value for methods that take an accuracy
// argument.
const DefaultAccuracy = 1e-4

// Evaluator describes a curve that can be evaluated at a parameter.
//
// For the curves in this package, t is in the range [0, 1]. Curves that loop
// accept any t and wrap it; open curves clamp it.
type Evaluator interface {
	Eval(t float32) Point
}

// EvaluatorFunc adapts an ordinary function to the [Evaluator] interface.
type EvaluatorFunc func(t float32) Point

func (fn EvaluatorFunc) Eval(t float32) Point { return fn(t) }

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float32) float32
}

var (
	_ Evaluator = Line{}
	_ Evaluator = CubicBez{}
	_ Evaluator = Circle{}
	_ Evaluator = Spline{}
	_ Arclener  = Line{}
	_ Arclener  = CubicBez{}
	_ Arclener  = Circle{}
	_ Arclener  = Spline{}
)

// clamp01 clamps t to [0, 1].
func clamp01(t float32) float32 {
	return min(max(t, 0), 1)
}

// wrap01 maps t into [0, 1) by discarding its integral part.
func wrap01(t float32) float32 {
	t -= math32.Floor(t)
	if t >= 1 {
		// t was a tiny negative number that rounded up to 1.
		return 0
	}
	return t
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8Half = [...][2]float32{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float32{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}
