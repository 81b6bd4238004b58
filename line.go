package curve3

// Line represents a line segment in 3D space.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float32 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float32) float32 {
	return l.Length()
}

func (l Line) Eval(t float32) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec3) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Cubic returns the line as a cubic Bézier with the same parametrization.
func (l Line) Cubic() CubicBez {
	return CubicBez{
		P0: l.P0,
		P1: l.P0.Lerp(l.P1, 1.0/3.0),
		P2: l.P0.Lerp(l.P1, 2.0/3.0),
		P3: l.P1,
	}
}

// Nearest returns the squared distance between pt and the closest point on
// the line, as well as the parameter of that point.
func (l Line) Nearest(pt Point) (distSq, t float32) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// ClosestPoints computes the parameters s on l and t on o of the closest
// points of approach between the two segments.
//
// For parallel segments, one of the (infinitely many) closest pairs is
// returned.
func (l Line) ClosestPoints(o Line) (s, t float32) {
	// See Ericson, Real-Time Collision Detection, 5.1.9.
	const epsilon = 1e-12
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	r := l.P0.Sub(o.P0)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	switch {
	case a <= epsilon && e <= epsilon:
		return 0, 0
	case a <= epsilon:
		return 0, clamp01(f / e)
	}
	c := d1.Dot(r)
	if e <= epsilon {
		return clamp01(-c / a), 0
	}

	b := d1.Dot(d2)
	denom := a*e - b*b
	if denom != 0 {
		s = clamp01((b*f - c*e) / denom)
	}
	t = (b*s + f) / e
	if t < 0 {
		t = 0
		s = clamp01(-c / a)
	} else if t > 1 {
		t = 1
		s = clamp01((b - c) / a)
	}
	return s, t
}
