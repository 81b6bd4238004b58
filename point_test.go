package curve3

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0, 2), Pt(0, 0, 0).Translate(Vec(-10, 0, 2)))
	diff(t, Vec(1, 2, 3), Pt(2, 4, 6).Sub(Pt(1, 2, 3)))
	diff(t, Pt(1, 2, 3), Pt(0, 0, 0).Midpoint(Pt(2, 4, 6)))
	diff(t, Pt(2, 4, 6), Pt(1, 2, 3).Scale(2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10, 0)
	p2 := Pt(0, 5, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1, 3)
	p4 := Pt(-7, -2, 15)
	diff(t, float32(13), p3.Distance(p4), cmpopts.EquateApprox(0, 1e-5))
	if d1, d2 := p3.Distance(p4), p4.Distance(p3); d1 != d2 {
		t.Errorf("distance isn't symmetric: %v != %v", d1, d2)
	}
	diff(t, float32(169), p3.DistanceSquared(p4))
}

func TestPointDistanceOverflow(t *testing.T) {
	// Squaring these coordinates overflows float32.
	p1 := Pt(3e30, 0, 0)
	p2 := Pt(0, 4e30, 0)
	d := p1.Distance(p2)
	if math32.IsInf(d, 0) {
		t.Fatal("distance overflowed")
	}
	diff(t, float32(5e30), d, cmpopts.EquateApprox(1e-6, 0))
}

func TestVecCross(t *testing.T) {
	x, y, z := Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, 1)
	diff(t, z, x.Cross(y))
	diff(t, x, y.Cross(z))
	diff(t, y, z.Cross(x))
	diff(t, float32(0), Vec(1, 2, 3).Cross(Vec(-4, 5, 6)).Dot(Vec(1, 2, 3)))
}

func TestVecArithmetic(t *testing.T) {
	v := Vec(1, -2, 3)
	diff(t, Vec(0.5, -1, 1.5), v.Div(2))
	diff(t, Vec(2, -4, 6), v.Mul(2))
	diff(t, v, v.Mul(4).Div(4))
	diff(t, Vec(-1, 2, -3), v.Negate())
	diff(t, Vec(0, 0, 0), v.Add(v.Negate()))
}

func TestVecPerpendicular(t *testing.T) {
	for _, v := range []Vec3{
		Vec(1, 0, 0),
		Vec(0, 1, 0),
		Vec(0, 0, 1),
		Vec(1, 1, 1),
		Vec(-3, 0.5, 7),
	} {
		p := v.perpendicular()
		diff(t, float32(1), p.Hypot(), cmpopts.EquateApprox(0, 1e-6))
		diff(t, float32(0), p.Dot(v), cmpopts.EquateApprox(0, 1e-5))
	}
}

func TestVecIsInfNaN(t *testing.T) {
	if Vec(1, 2, 3).IsInf() || Vec(1, 2, 3).IsNaN() {
		t.Error("finite vector reported as infinite or NaN")
	}
	if !Vec(0, 0, math32.Inf(-1)).IsInf() {
		t.Error("infinite vector reported as finite")
	}
	if !Pt(math32.NaN(), 0, 0).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
}
