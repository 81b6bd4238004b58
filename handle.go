package curve3

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// DefaultResolution is the distance map resolution used when none is given.
const DefaultResolution = 0.001

// ErrInvalidCurve is returned when a [Handle] violates one of the
// preconditions of the solver.
var ErrInvalidCurve = errors.New("invalid curve")

// A Handle is an immutable snapshot of a curve, sufficient to evaluate it
// at linear times: the segment data, whether the curve loops, its total
// length, and its distance map along with the resolution the map was
// sampled at.
//
// Handles are safe for concurrent use as long as nobody modifies them or
// the data they refer to.
type Handle struct {
	Segments   Evaluator
	Loop       bool
	Length     float32
	Resolution float32
	Distances  DistanceMap
}

// NewHandle measures e and returns a handle for it. The distance map is
// sampled at resolution, or at [DefaultResolution] if resolution is zero.
func NewHandle(e Evaluator, loop bool, resolution float32) (Handle, error) {
	if e == nil {
		return Handle{}, fmt.Errorf("%w: no segments", ErrInvalidCurve)
	}
	if resolution == 0 {
		resolution = DefaultResolution
	}
	if !(resolution > 0 && resolution <= 1) {
		return Handle{}, fmt.Errorf("%w: resolution %g not in (0, 1]", ErrInvalidCurve, resolution)
	}
	m := NewDistanceMap(e, resolution)
	h := Handle{
		Segments:   e,
		Loop:       loop,
		Length:     measure(e, m),
		Resolution: resolution,
		Distances:  m,
	}
	if err := h.Validate(); err != nil {
		return Handle{}, err
	}
	return h, nil
}

// measure returns the length of e. Curves implementing [Arclener] are
// measured with [DefaultAccuracy]; the distance map's chords always fall
// short of the true length on curved segments. Other curves, and arc lengths
// that aren't positive and finite, fall back to the map's length.
func measure(e Evaluator, m DistanceMap) float32 {
	a, ok := e.(Arclener)
	if !ok {
		return m.Length()
	}
	if l := a.Arclen(DefaultAccuracy); l > 0 && !math32.IsInf(l, 0) {
		return l
	}
	return m.Length()
}

// Validate checks the handle's invariants. The returned error wraps
// [ErrInvalidCurve].
func (h Handle) Validate() error {
	switch {
	case h.Segments == nil:
		return fmt.Errorf("%w: no segments", ErrInvalidCurve)
	case !(h.Length > 0) || math32.IsInf(h.Length, 0):
		return fmt.Errorf("%w: length %g is not positive and finite", ErrInvalidCurve, h.Length)
	case !(h.Resolution > 0 && h.Resolution <= 1):
		return fmt.Errorf("%w: resolution %g not in (0, 1]", ErrInvalidCurve, h.Resolution)
	case !h.Distances.Valid():
		return fmt.Errorf("%w: distance map is not a non-decreasing table starting at 0", ErrInvalidCurve)
	}
	return nil
}

// At evaluates the curve at the linear time t, using [ToFixedTime].
func (h Handle) At(t float32) Point {
	return h.eval(ToFixedTime, t)
}

// eval clamps t for open curves, converts it to a fixed time with reparam
// and evaluates the segments there.
func (h Handle) eval(reparam Reparametrizer, t float32) Point {
	if !h.Loop {
		t = clamp01(t)
	}
	return h.Segments.Eval(reparam(h.Distances, h.Resolution, t, h.Loop))
}

// param maps a search parameter to the linear time it denotes on the curve.
func (h Handle) param(t float32) float32 {
	if h.Loop {
		return wrap01(t)
	}
	return clamp01(t)
}
