package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivesim/internal/common"
	"drivesim/internal/physics"
)

func TestSplineMapPointOnCenterlineIsInside(t *testing.T) {
	m := MakeOval()
	center := m.spline.Get(0)
	assert.True(t, m.pointInside(center))
}

func TestSplineMapFarAwayPointIsOutside(t *testing.T) {
	m := MakeOval()
	far := common.Vec2{X: 1000, Y: 1000}
	assert.False(t, m.pointInside(far))
}

func TestSplineMapIsCrashedWhenFarOffTrack(t *testing.T) {
	m := MakeOval()
	config := physics.DefaultCarConfig()
	state := physics.DefaultCarState()
	state.Position = common.Vec2{X: 1000, Y: 1000}
	assert.True(t, m.IsCrashed(state, config))
}

func TestSplineMapIsCrashedOnCenterlineIsFalse(t *testing.T) {
	m := MakeOval()
	config := physics.DefaultCarConfig()
	state := physics.DefaultCarState()
	state.Position = m.spline.Get(0)
	state.UnitForward = m.spline.Tangent(0)
	assert.False(t, m.IsCrashed(state, config))
}

func TestSplineMapRayCollisionFromOutsideReturnsOrigin(t *testing.T) {
	m := MakeOval()
	origin := common.Vec2{X: 1000, Y: 1000}
	direction := common.Vec2{X: 1, Y: 0}
	hit := m.RayCollision(origin, direction)
	assert.Equal(t, origin, hit)
}

func TestSplineMapRayCollisionLandsOnEdge(t *testing.T) {
	m := MakeOval()
	origin := m.spline.Get(0)
	direction := m.spline.Tangent(0).Rotate90()
	hit := m.RayCollision(origin, direction)
	require.InDelta(t, m.maxD2, m.spline.ClosestPoint(hit).DistanceSq, 1e-2)
}
