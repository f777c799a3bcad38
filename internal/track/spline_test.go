package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivesim/internal/common"
)

func TestSmoothBezierSplineRequiresTwoControls(t *testing.T) {
	assert.Panics(t, func() {
		NewSmoothBezierSpline([]BezierControl{{Point: common.Vec2{X: 0, Y: 0}}})
	})
}

func TestSmoothBezierSplineArcLengthMonotone(t *testing.T) {
	spline := MakeOval().Spline()
	previous := 0.0
	steps := 40
	for i := 0; i <= steps; i++ {
		u := spline.MaxU() * float64(i) / float64(steps)
		length := spline.ArcLength(u)
		assert.GreaterOrEqual(t, length, previous-1e-9)
		assert.LessOrEqual(t, length, spline.TotalLength()+1e-9)
		previous = length
	}
}

func TestSmoothBezierSplineClosestPointOnOwnCurve(t *testing.T) {
	spline := MakeOval().Spline()
	for u := 0.0; u < spline.MaxU(); u += 0.37 {
		point := spline.Get(u)
		result := spline.ClosestPoint(point)
		require.InDelta(t, 0.0, result.DistanceSq, 1e-4)
	}
}
