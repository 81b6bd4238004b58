package curve3

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var splinePoints = []Point{
	Pt(0, 0, 0),
	Pt(4, 3, 1),
	Pt(8, -1, 2),
	Pt(12, 2, 0),
}

func TestCatmullRomInterpolates(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-5)
	open := mustSpline(CatmullRom(splinePoints, false))
	if len(open.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(open.Segments))
	}
	for i, p := range splinePoints {
		diff(t, p, open.Eval(float32(i)/3), opt)
	}

	loop := mustSpline(CatmullRom(splinePoints, true))
	if len(loop.Segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(loop.Segments))
	}
	for i, p := range splinePoints {
		diff(t, p, loop.Eval(float32(i)/4), opt)
	}
	diff(t, loop.Eval(0), loop.Eval(1), opt)
	diff(t, loop.Eval(0.1), loop.Eval(1.1), opt)
	diff(t, loop.Eval(0.9), loop.Eval(-0.1), opt)
}

func TestCatmullRomSmooth(t *testing.T) {
	s := mustSpline(CatmullRom(splinePoints, true))
	opt := cmpopts.EquateApprox(0, 1e-4)
	// Tangents are continuous across segment boundaries, including the
	// closing one.
	for i := range s.Segments {
		next := s.Segments[(i+1)%len(s.Segments)]
		diff(t, s.Segments[i].Deriv(1), next.Deriv(0), opt)
	}
}

func TestSplineClamps(t *testing.T) {
	s := mustSpline(CatmullRom(splinePoints, false))
	diff(t, splinePoints[0], s.Eval(-1))
	diff(t, splinePoints[3], s.Eval(2))
	diff(t, s.Start(), s.Eval(0))
	diff(t, s.End(), s.Eval(1))
	diff(t, Point{}, Spline{}.Eval(0.5))
}

func TestPolyline(t *testing.T) {
	open := mustSpline(Polyline(splinePoints, false))
	loop := mustSpline(Polyline(splinePoints, true))
	if len(open.Segments) != 3 || len(loop.Segments) != 4 {
		t.Fatalf("got %d and %d segments, want 3 and 4", len(open.Segments), len(loop.Segments))
	}
	var want float32
	for i := range splinePoints {
		want += splinePoints[i].Distance(splinePoints[(i+1)%len(splinePoints)])
	}
	diff(t, want, loop.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, 1e-4))
	diff(t, splinePoints[1].Lerp(splinePoints[2], 0.5), open.Eval(0.5), cmpopts.EquateApprox(0, 1e-5))
}

func TestBezierSpline(t *testing.T) {
	pts := []Point{
		Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 1, 0),
		Pt(3, 0, 0), Pt(4, -1, 0), Pt(5, -1, 0),
		Pt(6, 0, 0),
	}
	s := mustSpline(BezierSpline(pts, false))
	if len(s.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(s.Segments))
	}
	diff(t, Pt(3, 0, 0), s.Eval(0.5))
	diff(t, Pt(6, 0, 0), s.Eval(1))

	loop := mustSpline(BezierSpline(pts[:6], true))
	diff(t, pts[0], loop.Segments[1].P3)

	for _, tt := range []struct {
		n    int
		loop bool
	}{
		{0, false},
		{3, false},
		{5, false},
		{2, true},
		{4, true},
	} {
		if _, err := BezierSpline(pts[:tt.n], tt.loop); err == nil {
			t.Errorf("expected error for %d control points (loop=%t)", tt.n, tt.loop)
		}
	}
}

func TestSplineTooFewPoints(t *testing.T) {
	if _, err := CatmullRom(splinePoints[:1], false); err == nil {
		t.Error("expected error for a single point")
	}
	if _, err := Polyline(nil, true); err == nil {
		t.Error("expected error for no points")
	}
}
