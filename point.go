package curve3

import (
	"fmt"

	"github.com/chewxy/math32"
)

type Point struct {
	X float32
	Y float32
	Z float32
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) Splat() (float32, float32, float32) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point) Translate(o Vec3) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Scale scales the point's coordinates by f, relative to the origin.
func (pt Point) Scale(f float32) Point {
	return Point(Vec3(pt).Mul(f))
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float32) Point {
	return Point(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
//
// The result doesn't overflow for coordinates whose squares would.
// Distance is symmetric bit for bit: pt.Distance(o) == o.Distance(pt).
func (pt Point) Distance(o Point) float32 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float32 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math32.IsInf(pt.X, 0) || math32.IsInf(pt.Y, 0) || math32.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math32.IsNaN(pt.X) || math32.IsNaN(pt.Y) || math32.IsNaN(pt.Z)
}
