package curve3

import (
	"slices"

	"github.com/chewxy/math32"
)

// A DistanceMap is a table of cumulative arc lengths of a curve. Entry i
// holds the length from the start of the curve to the curve's parameter
// min(i*resolution, 1), where resolution is the sampling step the map was
// built with. The first entry is always 0 and the last one is the curve's
// total length.
//
// Parameters passed to an [Evaluator] are called fixed times. Parameters
// that are proportional to arc length are called linear times. A distance
// map converts the latter into the former, see [ToFixedTime].
type DistanceMap []float32

// NewDistanceMap samples e at steps of resolution in [0, 1] and accumulates
// the chord lengths between consecutive samples. resolution must be in
// (0, 1].
func NewDistanceMap(e Evaluator, resolution float32) DistanceMap {
	if !(resolution > 0 && resolution <= 1) {
		panic("resolution out of range")
	}
	n := int(math32.Ceil(1 / resolution))
	m := make(DistanceMap, n+1)
	prev := e.Eval(0)
	var acc float32
	for i := 1; i <= n; i++ {
		pt := e.Eval(sampleParam(i, resolution))
		acc += prev.Distance(pt)
		m[i] = acc
		prev = pt
	}
	return m
}

// Length returns the total length recorded in the map.
func (m DistanceMap) Length() float32 {
	if len(m) == 0 {
		return 0
	}
	return m[len(m)-1]
}

// Valid reports whether the map has at least two entries, starts at zero,
// is non-decreasing and contains no NaNs.
func (m DistanceMap) Valid() bool {
	if len(m) < 2 || m[0] != 0 {
		return false
	}
	for i := 1; i < len(m); i++ {
		// Written so that NaNs fail the check.
		if !(m[i] >= m[i-1]) {
			return false
		}
	}
	return true
}

// A Reparametrizer converts a linear time of a curve into a fixed time,
// given the curve's distance map and the resolution it was sampled at.
// If loop is set, linear times outside [0, 1] wrap around.
type Reparametrizer func(m DistanceMap, resolution, linearTime float32, loop bool) float32

var _ Reparametrizer = ToFixedTime

// ToFixedTime is the default [Reparametrizer]. It looks up the arc length
// linearTime*m.Length() in the map and interpolates linearly between the
// neighboring samples.
//
// Linear times outside [0, 1] are wrapped if loop is set and clamped
// otherwise.
func ToFixedTime(m DistanceMap, resolution, linearTime float32, loop bool) float32 {
	if loop {
		linearTime = wrap01(linearTime)
	} else {
		linearTime = clamp01(linearTime)
	}
	total := m.Length()
	if len(m) < 2 || !(total > 0) {
		return linearTime
	}
	target := linearTime * total
	i, found := slices.BinarySearch(m, target)
	switch {
	case i == 0:
		return 0
	case i >= len(m):
		return 1
	case found:
		return sampleParam(i, resolution)
	}
	d0, d1 := m[i-1], m[i]
	u0, u1 := sampleParam(i-1, resolution), sampleParam(i, resolution)
	frac := (target - d0) / (d1 - d0)
	return u0 + (u1-u0)*frac
}

// sampleParam returns the parameter of a distance map's i-th sample.
func sampleParam(i int, resolution float32) float32 {
	return min(float32(i)*resolution, 1)
}
