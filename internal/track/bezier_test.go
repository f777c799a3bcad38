package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivesim/internal/common"
)

// symmetricBezier is the arch defined by (-1,0),(-1,1),(1,1),(1,0) used
// throughout these tests; it is symmetric about the line x=0.
func symmetricBezier() CubicBezier {
	return NewCubicBezier(
		common.Vec2{X: -1, Y: 0},
		common.Vec2{X: -1, Y: 1},
		common.Vec2{X: 1, Y: 1},
		common.Vec2{X: 1, Y: 0},
	)
}

func TestCubicBezierClosestPoint(t *testing.T) {
	b := symmetricBezier()

	below := b.ClosestPoint(common.Vec2{X: -1, Y: -5})
	assert.InDelta(t, 0.0, below.Parameter, 1e-2)

	above := b.ClosestPoint(common.Vec2{X: 0, Y: 7})
	assert.InDelta(t, 0.5, above.Parameter, 1e-2)

	left := b.ClosestPoint(common.Vec2{X: -2, Y: 0})
	assert.InDelta(t, 1.0, left.DistanceSq, 1e-2)
}

func TestCubicBezierArcLengthMonotone(t *testing.T) {
	b := symmetricBezier()
	previous := 0.0
	for i := 0; i <= 10; i++ {
		param := float64(i) / 10
		length := b.ArcLength(param)
		assert.GreaterOrEqual(t, length, previous)
		previous = length
	}
	require.InDelta(t, b.ArcLength(1.0), b.arcLen, 1e-9)
}

func TestCubicBezierEndpoints(t *testing.T) {
	b := symmetricBezier()
	start := b.Get(0)
	end := b.Get(1)
	assert.InDelta(t, -1.0, start.X, 1e-9)
	assert.InDelta(t, 0.0, start.Y, 1e-9)
	assert.InDelta(t, 1.0, end.X, 1e-9)
	assert.InDelta(t, 0.0, end.Y, 1e-9)
}
