package curve3

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Bounds of the per-curve sampling step, in linear time units.
const (
	MinSampleStep = 0.0001
	MaxSampleStep = 0.2
)

// ErrInvalidOptions is returned when the sampling density or the precision
// passed to the solver are out of range.
var ErrInvalidOptions = errors.New("invalid options")

// NearestOptions configures [FindNearestPair].
type NearestOptions struct {
	// StepsPer100Units is the number of samples taken per 100 units of arc
	// length during the first, global pass. Must be positive.
	StepsPer100Units float32
	// Precision is the number of passes. The first pass scans the whole
	// parameter space; every following pass zooms in on the best pair found
	// so far, halving the sampling step. Must be at least 1.
	Precision int
	// Reparametrize converts linear times to fixed times. It defaults to
	// [ToFixedTime].
	Reparametrize Reparametrizer
}

func (opts NearestOptions) validate() error {
	if !(opts.StepsPer100Units > 0) || math32.IsInf(opts.StepsPer100Units, 0) {
		return fmt.Errorf("%w: steps per 100 units %g is not positive and finite", ErrInvalidOptions, opts.StepsPer100Units)
	}
	if opts.Precision < 1 {
		return fmt.Errorf("%w: precision %d is less than 1", ErrInvalidOptions, opts.Precision)
	}
	return nil
}

// NearestPair is the result of [FindNearestPair].
type NearestPair struct {
	// P1 and P2 are the closest points found on the first and second curve.
	P1, P2 Point
	// T1 and T2 are the linear times of P1 and P2, in [0, 1].
	T1, T2 float32
	// Distance is the distance between P1 and P2.
	Distance float32
}

// FindNearestPoints returns the pair of points, one on each curve, that are
// closest to each other. See [FindNearestPair] for details.
func FindNearestPoints(c1, c2 Handle, stepsPer100Units float32, precision int) (Point, Point, error) {
	res, err := FindNearestPair(c1, c2, NearestOptions{
		StepsPer100Units: stepsPer100Units,
		Precision:        precision,
	})
	return res.P1, res.P2, err
}

// FindNearestPair searches for the linear times t1 and t2 that minimize the
// distance between c1 at t1 and c2 at t2.
//
// The search is a hierarchical grid search over [0, 1]×[0, 1]. The first
// pass samples both curves over their whole range. Each curve's step is
// derived from its length, so both curves are sampled at the same spatial
// density, regardless of their lengths. Every further pass samples a window
// of twice the previous step around the best pair so far, at half the
// previous step.
//
// The first pass decides which basin the search converges into. A narrow
// feature shorter than a curve's step may be missed entirely, in which case
// the result is a local minimum. Increase opts.StepsPer100Units for such
// curves; increasing opts.Precision only refines the basin found.
//
// The result is never farther apart than the curves' midpoints, and never
// gets worse as opts.Precision increases. Among equally distant pairs, the
// one found first wins, scanning t1 in the outer loop and t2 in the inner
// one, both ascending. The search is deterministic and doesn't allocate.
func FindNearestPair(c1, c2 Handle, opts NearestOptions) (NearestPair, error) {
	if err := opts.validate(); err != nil {
		return NearestPair{}, err
	}
	if err := c1.Validate(); err != nil {
		return NearestPair{}, fmt.Errorf("first curve: %w", err)
	}
	if err := c2.Validate(); err != nil {
		return NearestPair{}, fmt.Errorf("second curve: %w", err)
	}
	reparam := opts.Reparametrize
	if reparam == nil {
		reparam = ToFixedTime
	}

	step1 := sampleStep(c1.Length, opts.StepsPer100Units)
	step2 := sampleStep(c2.Length, opts.StepsPer100Units)
	range1, range2 := float32(0.5), float32(0.5)

	// The first pass is centered on the midpoints. They only win if the
	// first pass's grid does strictly worse than them.
	mid := candidate{t1: 0.5, t2: 0.5}
	mid.p1 = c1.eval(reparam, mid.t1)
	mid.p2 = c2.eval(reparam, mid.t2)
	mid.dist = mid.p1.Distance(mid.p2)
	best := candidate{t1: mid.t1, t2: mid.t2, dist: math32.Inf(1)}

	for pass := range opts.Precision {
		lo1, hi1 := best.t1-range1, best.t1+range1+step1
		lo2, hi2 := best.t2-range2, best.t2+range2+step2
		if !advances(lo1, hi1, step1) || !advances(lo2, hi2, step2) {
			// Further passes can't sample anything new.
			break
		}
		for t1 := lo1; t1 <= hi1; t1 += step1 {
			p1 := c1.eval(reparam, t1)
			for t2 := lo2; t2 <= hi2; t2 += step2 {
				p2 := c2.eval(reparam, t2)
				if d := p1.Distance(p2); d < best.dist {
					best = candidate{t1: c1.param(t1), t2: c2.param(t2), p1: p1, p2: p2, dist: d}
				}
			}
		}
		if pass == 0 && !(best.dist <= mid.dist) {
			best = mid
		}
		range1, range2 = step1*2, step2*2
		step1, step2 = step1/2, step2/2
	}

	return NearestPair{
		P1:       best.p1,
		P2:       best.p2,
		T1:       best.t1,
		T2:       best.t2,
		Distance: best.dist,
	}, nil
}

// candidate is the best pair of linear times found so far. t1 and t2 are
// clamped or wrapped into [0, 1], and center the next pass's window.
type candidate struct {
	t1, t2 float32
	p1, p2 Point
	dist   float32
}

// sampleStep returns the first pass's sampling step for a curve of the given
// length.
func sampleStep(length, stepsPer100Units float32) float32 {
	return min(max((100/length)/stepsPer100Units, MinSampleStep), MaxSampleStep)
}

// advances reports whether repeatedly adding step moves a float32 through
// all of [lo, hi].
func advances(lo, hi, step float32) bool {
	m := max(math32.Abs(lo), math32.Abs(hi))
	return float32(m+step) > m
}
