// Package curve3 finds the closest pair of points between two parametric
// curves in 3D space. It also provides the single-precision primitives
// needed to describe such curves.
//
// # Curves and handles
//
// [Evaluator] describes curves that can be evaluated at t ∈ [0, 1]. This
// package provides [Line], [CubicBez], [Circle] and [Spline], the latter
// being a sequence of cubic Béziers that can be built from Catmull-Rom
// ([CatmullRom]), Bézier ([BezierSpline]) or polyline ([Polyline]) control
// points. Any function can serve as a curve via [EvaluatorFunc].
//
// The parametrization of most curves is not proportional to arc length:
// equal steps in t cover unequal distances. A [DistanceMap] records the
// cumulative arc length of a curve at regular parameter steps, and
// [ToFixedTime] uses it to convert a linear time (a fraction of the curve's
// length) into a fixed time (the parameter to evaluate the curve at).
//
// A [Handle] bundles a curve with its distance map, its length, and whether
// it loops. [NewHandle] measures a curve and builds one. Handles are what
// the solver operates on.
//
// # Nearest points
//
// [FindNearestPoints] and [FindNearestPair] run a hierarchical grid search
// over the linear times of two curves. The first pass samples both curves
// entirely, at a spatial density chosen by the caller; further passes zoom
// in on the best pair found. The search runs in bounded time, never
// allocates, and is deterministic. It is not guaranteed to find the global
// minimum: features smaller than the first pass's sampling step may be
// missed.
//
// [NearestPairs] solves all pairs among a set of curves concurrently.
//
// # Precision
//
// All computations use float32, via [github.com/chewxy/math32]. The first
// pass samples a curve at no finer than [MinSampleStep] of its length. Every
// further pass halves the step, until float32 resolution stops the
// refinement.
//
// # Logging
//
// The package logs nothing by default. See [SetLogger].
package curve3
