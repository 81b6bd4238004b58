package curve3

import (
	"errors"
	"fmt"
)

var errPointCount = errors.New("wrong number of points")

// Spline is a piecewise cubic Bézier curve. Each segment occupies an equal
// share of the parameter range [0, 1].
//
// A looping spline's last segment is expected to end where the first one
// starts; Eval wraps parameters around instead of clamping them.
type Spline struct {
	Segments []CubicBez
	Loop     bool
}

// Eval evaluates the spline at t. An empty spline evaluates to the origin.
func (s Spline) Eval(t float32) Point {
	n := len(s.Segments)
	if n == 0 {
		return Point{}
	}
	if s.Loop {
		t = wrap01(t)
	} else {
		t = clamp01(t)
	}
	x := t * float32(n)
	i := int(x)
	if i >= n {
		i = n - 1
	}
	return s.Segments[i].Eval(x - float32(i))
}

// Arclen returns the length of the spline, the sum of its segments' lengths.
func (s Spline) Arclen(accuracy float32) float32 {
	if len(s.Segments) == 0 {
		return 0
	}
	var sum float32
	acc := accuracy / float32(len(s.Segments))
	for _, seg := range s.Segments {
		sum += seg.Arclen(acc)
	}
	return sum
}

func (s Spline) Translate(v Vec3) Spline {
	out := Spline{Segments: make([]CubicBez, len(s.Segments)), Loop: s.Loop}
	for i, seg := range s.Segments {
		out.Segments[i] = seg.Translate(v)
	}
	return out
}

// Scale scales the spline by f, relative to the origin.
func (s Spline) Scale(f float32) Spline {
	out := Spline{Segments: make([]CubicBez, len(s.Segments)), Loop: s.Loop}
	for i, seg := range s.Segments {
		out.Segments[i] = seg.Scale(f)
	}
	return out
}

// Start returns the spline's first point.
func (s Spline) Start() Point { return s.Eval(0) }

// End returns the spline's last point. For looping splines, this is the same
// as the first point.
func (s Spline) End() Point { return s.Eval(1) }

// Polyline returns a spline made of straight segments connecting points. If
// loop is set, a closing segment from the last point back to the first one is
// added.
func Polyline(points []Point, loop bool) (Spline, error) {
	if len(points) < 2 {
		return Spline{}, fmt.Errorf("polyline: %w: got %d, need at least 2", errPointCount, len(points))
	}
	n := len(points) - 1
	if loop {
		n++
	}
	segs := make([]CubicBez, n)
	for i := range n {
		segs[i] = Line{points[i], points[(i+1)%len(points)]}.Cubic()
	}
	return Spline{Segments: segs, Loop: loop}, nil
}

// CatmullRom returns a uniform Catmull-Rom spline through points, converted
// to Bézier form. Open splines duplicate their end points to obtain the
// missing neighbors.
func CatmullRom(points []Point, loop bool) (Spline, error) {
	if len(points) < 2 {
		return Spline{}, fmt.Errorf("catmull-rom: %w: got %d, need at least 2", errPointCount, len(points))
	}
	np := len(points)
	at := func(i int) Point {
		if loop {
			return points[((i%np)+np)%np]
		}
		return points[min(max(i, 0), np-1)]
	}
	n := np - 1
	if loop {
		n = np
	}
	segs := make([]CubicBez, n)
	for i := range n {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		segs[i] = CubicBez{
			P0: p1,
			P1: p1.Translate(p2.Sub(p0).Mul(1.0 / 6.0)),
			P2: p2.Translate(p3.Sub(p1).Mul(-1.0 / 6.0)),
			P3: p2,
		}
	}
	return Spline{Segments: segs, Loop: loop}, nil
}

// BezierSpline returns a spline from a flat list of Bézier control points,
// in the layout P0 C1 C2 P1 C1 C2 P2 …. Open splines need 3n+1 points for n
// segments. Looping splines need 3n points, and their last segment ends at
// the first point.
func BezierSpline(points []Point, loop bool) (Spline, error) {
	var n int
	switch {
	case loop && len(points) >= 3 && len(points)%3 == 0:
		n = len(points) / 3
	case !loop && len(points) >= 4 && len(points)%3 == 1:
		n = (len(points) - 1) / 3
	default:
		return Spline{}, fmt.Errorf("bezier: %w: got %d control points (loop=%t)", errPointCount, len(points), loop)
	}
	segs := make([]CubicBez, n)
	for i := range n {
		j := 3 * i
		segs[i] = CubicBez{
			P0: points[j],
			P1: points[j+1],
			P2: points[j+2],
			P3: points[(j+3)%len(points)],
		}
	}
	return Spline{Segments: segs, Loop: loop}, nil
}
