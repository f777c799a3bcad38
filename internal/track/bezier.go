package track

import (
	"drivesim/internal/common"
	"drivesim/internal/numeric"
)

// arcLengthSubdivisions is the number of trapezoidal-rule subdivisions
// used for every arc-length integral over [0,1] (spec §4.2, §9: coarse
// but cheap and consistent across all segments).
const arcLengthSubdivisions = 32

// closestPointTolerance is the bisection width threshold used for
// closest-point-on-curve searches (spec §4.2; §9 notes this tolerance
// is sized for the shipped maps, not universal).
const closestPointTolerance = 1e-2

// bboxTolerance is the bisection width threshold used when locating a
// segment's bounding box extrema at construction time.
const bboxTolerance = 1e-4

// BezierControl is a point together with the tangent velocity vector
// that defines how the spline enters and leaves it.
type BezierControl struct {
	Point    common.Vec2
	Velocity common.Vec2
}

// ClosestPointResult is the outcome of a closest-point-on-curve query.
type ClosestPointResult struct {
	Parameter  float64
	DistanceSq float64
}

// CubicBezier is a single cubic Bézier segment with its polynomial
// coefficients, arc length, and bounding box precomputed at
// construction. It is immutable after construction.
type CubicBezier struct {
	start, p1, p2, end common.Vec2
	c1, c2, c3         common.Vec2
	arcLen             float64
	bbox               boundingBox
}

// NewCubicBezier constructs a cubic Bézier segment from its four
// control points, precomputing its arc length and bounding box.
func NewCubicBezier(start, p1, p2, end common.Vec2) CubicBezier {
	c1 := p1.Sub(start).Scale(3)
	c2 := start.Scale(3).Sub(p1.Scale(6)).Add(p2.Scale(3))
	c3 := start.Scale(-1).Add(p1.Scale(3)).Sub(p2.Scale(3)).Add(end)

	b := CubicBezier{start: start, p1: p1, p2: p2, end: end, c1: c1, c2: c2, c3: c3}
	b.arcLen = b.integrateArcLength(0, 1, arcLengthSubdivisions)
	b.bbox = b.computeBoundingBox()
	return b
}

// Get evaluates the segment's position at t (t should be in [0,1]).
func (b CubicBezier) Get(t float64) common.Vec2 {
	return b.start.Add(b.c1.Scale(t)).Add(b.c2.Scale(t * t)).Add(b.c3.Scale(t * t * t))
}

// Velocity evaluates the segment's derivative at t.
func (b CubicBezier) Velocity(t float64) common.Vec2 {
	return b.c1.Add(b.c2.Scale(2 * t)).Add(b.c3.Scale(3 * t * t))
}

// Tangent returns the unit tangent direction at t.
func (b CubicBezier) Tangent(t float64) common.Vec2 {
	return b.Velocity(t).Normalize()
}

func (b CubicBezier) integrateArcLength(tStart, tEnd float64, steps int) float64 {
	dt := (tEnd - tStart) / float64(steps)
	sum := 0.0
	for i := 1; i < steps; i++ {
		t := tStart + float64(i)*dt
		sum += b.Velocity(t).Len() * dt
	}
	sum += 0.5 * dt * (b.Velocity(tStart).Len() + b.Velocity(tEnd).Len())
	return sum
}

// ArcLength returns the tangential arc length from t=0 to t. t=1 uses
// the value cached at construction.
func (b CubicBezier) ArcLength(t float64) float64 {
	if t == 1.0 {
		return b.arcLen
	}
	return b.integrateArcLength(0, t, arcLengthSubdivisions)
}

func (b CubicBezier) computeBoundingBox() boundingBox {
	fx := func(t float64) float64 { return b.Get(t).X }
	fpx := func(t float64) float64 { return b.Velocity(t).X }
	minX := numeric.FindMinDifferentiable(fx, fpx, 0, 1, bboxTolerance).Value
	maxX := -numeric.FindMinDifferentiable(
		func(t float64) float64 { return -fx(t) },
		func(t float64) float64 { return -fpx(t) },
		0, 1, bboxTolerance,
	).Value

	fy := func(t float64) float64 { return b.Get(t).Y }
	fpy := func(t float64) float64 { return b.Velocity(t).Y }
	minY := numeric.FindMinDifferentiable(fy, fpy, 0, 1, bboxTolerance).Value
	maxY := -numeric.FindMinDifferentiable(
		func(t float64) float64 { return -fy(t) },
		func(t float64) float64 { return -fpy(t) },
		0, 1, bboxTolerance,
	).Value

	return newBoundingBox(minX, maxX, minY, maxY)
}

// ClosestPoint finds the parameter t in [0,1] minimizing the squared
// distance from the segment to point.
func (b CubicBezier) ClosestPoint(point common.Vec2) ClosestPointResult {
	f := func(t float64) float64 {
		delta := b.Get(t).Sub(point)
		return delta.Dot(delta)
	}
	fp := func(t float64) float64 {
		delta := b.Get(t).Sub(point)
		return delta.Dot(b.Velocity(t)) * 2
	}
	obs := numeric.FindMinDifferentiable(f, fp, 0, 1, closestPointTolerance)
	return ClosestPointResult{Parameter: obs.X, DistanceSq: obs.Value}
}
