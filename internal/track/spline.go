package track

import (
	"math"

	"drivesim/internal/common"
)

// SmoothBezierSpline is an ordered, non-empty sequence of tangent-
// continuous cubic segments addressed by a parameter u in [0, N],
// where the integer part selects the segment and the fractional part
// is the local t within it.
type SmoothBezierSpline struct {
	segments []CubicBezier
	maxU     float64
}

// NewSmoothBezierSpline builds a spline from an ordered list of
// controls. Segment i connects control i to control i+1 using handles
// derived from each control's tangent velocity (control.Point +
// control.Velocity outgoing, next.Point - next.Velocity incoming),
// which is what keeps the tangent continuous across every interior
// joint. Closed tracks repeat the first control as the last entry.
//
// Panics if fewer than two controls are given, since that cannot
// produce a single segment.
func NewSmoothBezierSpline(controls []BezierControl) SmoothBezierSpline {
	if len(controls) < 2 {
		panic("track: SmoothBezierSpline requires at least two control points")
	}
	segments := make([]CubicBezier, 0, len(controls)-1)
	for i := 0; i < len(controls)-1; i++ {
		start := controls[i]
		end := controls[i+1]
		segments = append(segments, NewCubicBezier(
			start.Point,
			start.Point.Add(start.Velocity),
			end.Point.Sub(end.Velocity),
			end.Point,
		))
	}
	return SmoothBezierSpline{segments: segments, maxU: float64(len(segments))}
}

// MaxU is the upper bound of the spline's parameter range.
func (s SmoothBezierSpline) MaxU() float64 {
	return s.maxU
}

// segmentAndT resolves u into the segment it addresses and the local
// parameter t within that segment.
func (s SmoothBezierSpline) segmentAndT(u float64) (CubicBezier, int, float64) {
	if u >= s.maxU {
		i := len(s.segments) - 1
		return s.segments[i], i, 1.0
	}
	if u < 0 {
		u = 0
	}
	i := int(u)
	return s.segments[i], i, u - float64(i)
}

// Get evaluates the spline's position at u.
func (s SmoothBezierSpline) Get(u float64) common.Vec2 {
	segment, _, t := s.segmentAndT(u)
	return segment.Get(t)
}

// Velocity evaluates the spline's derivative at u.
func (s SmoothBezierSpline) Velocity(u float64) common.Vec2 {
	segment, _, t := s.segmentAndT(u)
	return segment.Velocity(t)
}

// Tangent returns the unit tangent direction at u.
func (s SmoothBezierSpline) Tangent(u float64) common.Vec2 {
	return s.Velocity(u).Normalize()
}

// ArcLength returns the arc length accumulated from u=0 to u.
func (s SmoothBezierSpline) ArcLength(u float64) float64 {
	segment, i, t := s.segmentAndT(u)
	previous := 0.0
	for _, prior := range s.segments[:i] {
		previous += prior.ArcLength(1.0)
	}
	return previous + segment.ArcLength(t)
}

// TotalLength returns the spline's full arc length.
func (s SmoothBezierSpline) TotalLength() float64 {
	return s.ArcLength(s.maxU)
}

// ClosestPoint performs a pruned global nearest-point search: each
// segment's bounding box gives a cheap lower bound (nearest point on the
// box) and
// upper bound (farthest corner) on the true distance, and only segments
// whose lower bound is within the best known upper bound are searched
// with the expensive per-segment minimizer.
func (s SmoothBezierSpline) ClosestPoint(point common.Vec2) ClosestPointResult {
	closestD2 := make([]float64, len(s.segments))
	upperBound := math.MaxFloat64

	for i, segment := range s.segments {
		closest := segment.bbox.closestPoint(point)
		farthest := segment.bbox.farthestPoint(point)

		cd := point.Sub(closest)
		fd := point.Sub(farthest)
		closestD2[i] = cd.Dot(cd)
		farthestD2 := fd.Dot(fd)

		if farthestD2 < upperBound {
			upperBound = farthestD2
		}
	}

	var best ClosestPointResult
	haveBest := false
	for i, segment := range s.segments {
		if closestD2[i] > upperBound {
			continue
		}
		candidate := segment.ClosestPoint(point)
		result := ClosestPointResult{
			Parameter:  float64(i) + candidate.Parameter,
			DistanceSq: candidate.DistanceSq,
		}
		if !haveBest || result.DistanceSq < best.DistanceSq {
			best = result
			haveBest = true
		}
	}
	if !haveBest {
		panic("track: SmoothBezierSpline.ClosestPoint found no candidate segment")
	}
	return best
}
