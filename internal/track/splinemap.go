package track

import (
	"drivesim/internal/common"
	"drivesim/internal/numeric"
	"drivesim/internal/physics"
)

// edgeSearchStepFraction sets the marching step used by RayCollision,
// as a fraction of the track width.
const edgeSearchStepFraction = 0.1

// edgeRootTolerance is the bisection width threshold used to refine
// the edge position found by marching.
const edgeRootTolerance = 1e-2

// SplineMap is a Road backed by a SmoothBezierSpline centerline and a
// constant track width: a point is on the track iff its squared
// distance to the centerline is under (width/2)^2.
type SplineMap struct {
	spline SmoothBezierSpline
	width  float64
	maxD2  float64
}

// NewSplineMap builds a SplineMap from a centerline spline and a
// constant track width.
func NewSplineMap(spline SmoothBezierSpline, width float64) SplineMap {
	return SplineMap{spline: spline, width: width, maxD2: 0.25 * width * width}
}

// Width returns the track's constant width.
func (m SplineMap) Width() float64 {
	return m.width
}

// Spline returns the track's centerline.
func (m SplineMap) Spline() SmoothBezierSpline {
	return m.spline
}

func (m SplineMap) pointInside(point common.Vec2) bool {
	return m.spline.ClosestPoint(point).DistanceSq < m.maxD2
}

// IsCrashed reports whether either the car's back or front reference
// point has left the track (spec §4.5). Both points are checked
// because a wide car can clip the outer edge on a tight turn while its
// center of mass stays on the centerline.
func (m SplineMap) IsCrashed(state physics.CarState, config physics.CarConfig) bool {
	backPoint := state.Position.Sub(state.UnitForward.Scale(config.BackAxle))
	frontPoint := backPoint.Add(state.UnitForward.Scale(config.Length))
	return !m.pointInside(backPoint) || !m.pointInside(frontPoint)
}

// RayCollision finds the first intersection of the ray from origin in
// direction (not required to be normalized) with the track edge, by
// marching in fixed steps until the point leaves the track and then
// refining with bisection. If origin is already outside the track, it
// is returned unchanged.
func (m SplineMap) RayCollision(origin, direction common.Vec2) common.Vec2 {
	stepLength := m.width * edgeSearchStepFraction
	step := direction.Normalize().Scale(stepLength)

	if !m.pointInside(origin) {
		return origin
	}

	p := origin
	for {
		next := p.Add(step)
		if !m.pointInside(next) {
			break
		}
		p = next
	}
	insidePoint := p

	edgeDeviation := func(t float64) float64 {
		probe := insidePoint.Add(step.Scale(t))
		return m.spline.ClosestPoint(probe).DistanceSq - m.maxD2
	}
	t, ok := numeric.FindRoot(edgeDeviation, 0, 1, edgeRootTolerance)
	if !ok {
		panic("track: RayCollision expected a root between the last inside point and the first outside point")
	}
	return insidePoint.Add(step.Scale(t))
}

// MakeOval returns the small oval track used for quick smoke tests.
func MakeOval() SplineMap {
	spline := NewSmoothBezierSpline([]BezierControl{
		{Point: common.Vec2{X: 0, Y: 0}, Velocity: common.Vec2{X: 6, Y: 0}},
		{Point: common.Vec2{X: 10, Y: 10}, Velocity: common.Vec2{X: 0, Y: 6}},
		{Point: common.Vec2{X: 0, Y: 20}, Velocity: common.Vec2{X: -6, Y: 0}},
		{Point: common.Vec2{X: -20, Y: 20}, Velocity: common.Vec2{X: -6, Y: 0}},
		{Point: common.Vec2{X: -30, Y: 10}, Velocity: common.Vec2{X: 0, Y: -6}},
		{Point: common.Vec2{X: -20, Y: 0}, Velocity: common.Vec2{X: 6, Y: 0}},
		{Point: common.Vec2{X: 0, Y: 0}, Velocity: common.Vec2{X: 6, Y: 0}},
	})
	return NewSplineMap(spline, 8.0)
}

// MakeSimpleRacetrack returns a small closed loop with a handful of
// turns, useful as an easier alternative to MakeRacetrack.
func MakeSimpleRacetrack() SplineMap {
	spline := NewSmoothBezierSpline([]BezierControl{
		{Point: common.Vec2{X: 0, Y: 0}, Velocity: common.Vec2{X: 50, Y: -10}},
		{Point: common.Vec2{X: 87.5, Y: 50}, Velocity: common.Vec2{X: 0, Y: 25}},
		{Point: common.Vec2{X: 50, Y: 150}, Velocity: common.Vec2{X: -40, Y: 10}},
		{Point: common.Vec2{X: -25, Y: 100}, Velocity: common.Vec2{X: 0, Y: -40}},
		{Point: common.Vec2{X: 50, Y: 75}, Velocity: common.Vec2{X: 25, Y: -25}},
		{Point: common.Vec2{X: 0, Y: 50}, Velocity: common.Vec2{X: -20, Y: 0}},
		{Point: common.Vec2{X: 0, Y: 0}, Velocity: common.Vec2{X: 50, Y: -10}},
	})
	return NewSplineMap(spline, 10.0)
}

// MakeRacetrack returns the full, many-segment racetrack used for
// training and evaluation.
func MakeRacetrack() SplineMap {
	spline := NewSmoothBezierSpline([]BezierControl{
		{Point: common.Vec2{X: 0.0, Y: 0.0}, Velocity: common.Vec2{X: -30.0, Y: 4.0}},
		{Point: common.Vec2{X: -168.4, Y: 24.5}, Velocity: common.Vec2{X: -30.0, Y: 4.0}},
		{Point: common.Vec2{X: -246.0, Y: 36.6}, Velocity: common.Vec2{X: -6.0, Y: 6.0}},
		{Point: common.Vec2{X: -260.0, Y: 67.6}, Velocity: common.Vec2{X: -6.0, Y: 6.0}},
		{Point: common.Vec2{X: -296.0, Y: 77.6}, Velocity: common.Vec2{X: -8.0, Y: 8.0}},
		{Point: common.Vec2{X: -342.5, Y: 192.6}, Velocity: common.Vec2{X: -8.0, Y: 30.0}},
		{Point: common.Vec2{X: -365.0, Y: 300.6}, Velocity: common.Vec2{X: -8.0, Y: 16.0}},
		{Point: common.Vec2{X: -417.5, Y: 400.8}, Velocity: common.Vec2{X: -2.0, Y: 16.0}},
		{Point: common.Vec2{X: -402.0, Y: 437.6}, Velocity: common.Vec2{X: 10.0, Y: 8.0}},
		{Point: common.Vec2{X: -341.0, Y: 445.6}, Velocity: common.Vec2{X: 24.0, Y: -10.0}},
		{Point: common.Vec2{X: -189.0, Y: 367.6}, Velocity: common.Vec2{X: 32.0, Y: -18.0}},
		{Point: common.Vec2{X: -56.8, Y: 277.2}, Velocity: common.Vec2{X: 12.0, Y: -4.0}},
		{Point: common.Vec2{X: 44.0, Y: 256.6}, Velocity: common.Vec2{X: 8.0, Y: -3.0}},
		{Point: common.Vec2{X: 67.0, Y: 220.6}, Velocity: common.Vec2{X: 0.0, Y: -20.0}},
		{Point: common.Vec2{X: 33.0, Y: 182.6}, Velocity: common.Vec2{X: -14.0, Y: -4.0}},
		{Point: common.Vec2{X: -56.1, Y: 194.9}, Velocity: common.Vec2{X: -19.0, Y: 10.0}},
		{Point: common.Vec2{X: -147.5, Y: 252.0}, Velocity: common.Vec2{X: -15.0, Y: 4.0}},
		{Point: common.Vec2{X: -177.1, Y: 249.1}, Velocity: common.Vec2{X: -7.0, Y: -4.0}},
		{Point: common.Vec2{X: -194.3, Y: 226.9}, Velocity: common.Vec2{X: -3.0, Y: -10.0}},
		{Point: common.Vec2{X: -196.8, Y: 146.9}, Velocity: common.Vec2{X: 4.0, Y: -9.0}},
		{Point: common.Vec2{X: -161.0, Y: 118.6}, Velocity: common.Vec2{X: 16.0, Y: 0.0}},
		{Point: common.Vec2{X: -119.3, Y: 132.1}, Velocity: common.Vec2{X: 8.0, Y: 4.0}},
		{Point: common.Vec2{X: -71.2, Y: 145.1}, Velocity: common.Vec2{X: 15.0, Y: 0.0}},
		{Point: common.Vec2{X: -32.5, Y: 135.2}, Velocity: common.Vec2{X: 8.0, Y: -3.2}},
		{Point: common.Vec2{X: 156.6, Y: 57.3}, Velocity: common.Vec2{X: 8.0, Y: -3.2}},
		{Point: common.Vec2{X: 176.2, Y: 33.9}, Velocity: common.Vec2{X: 0.0, Y: -15.0}},
		{Point: common.Vec2{X: 152.8, Y: -3.1}, Velocity: common.Vec2{X: -12.0, Y: -6.0}},
		{Point: common.Vec2{X: 101.7, Y: -13.7}, Velocity: common.Vec2{X: -12.0, Y: 0.0}},
		{Point: common.Vec2{X: 0.0, Y: 0.0}, Velocity: common.Vec2{X: -30.0, Y: 4.0}},
	})
	return NewSplineMap(spline, 10.0)
}
