package curve3

import "github.com/chewxy/math32"

// Circle is a closed circular curve. It lies in the plane through Center
// orthogonal to Normal.
//
// Evaluating a circle at t ∈ [0, 1] walks it once, starting and ending at the
// same point. Values outside that range wrap around.
type Circle struct {
	Center Point
	Radius float32
	Normal Vec3
}

func (c Circle) Eval(t float32) Point {
	u, v := c.basis()
	s, co := math32.Sincos(2 * math32.Pi * wrap01(t))
	return c.Center.
		Translate(u.Mul(c.Radius * co)).
		Translate(v.Mul(c.Radius * s))
}

// Arclen returns the circumference of the circle.
func (c Circle) Arclen(accuracy float32) float32 {
	return 2 * math32.Pi * math32.Abs(c.Radius)
}

// basis returns two orthonormal vectors spanning the circle's plane. A zero
// normal is treated as the z axis.
func (c Circle) basis() (Vec3, Vec3) {
	n := c.Normal
	if n.Hypot2() == 0 {
		n = Vec3{Z: 1}
	}
	n = n.Normalize()
	u := n.perpendicular()
	return u, n.Cross(u)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math32.IsInf(c.Radius, 0) || c.Normal.IsInf()
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math32.IsNaN(c.Radius) || c.Normal.IsNaN()
}
