package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivesim/internal/common"
)

func TestInvTurnRadius(t *testing.T) {
	config := CarConfig{Length: 1.0}
	got := invTurnRadius(config, 45.0*math.Pi/180)
	assert.InDelta(t, 1.0, got, 1e-6)
}

func TestUpdateInertial(t *testing.T) {
	config := CarConfig{Length: 1.0, BackAxle: 0.0, FrontAxle: 1.0, MaxDelta: 0.5, Acceleration: 6.0, BrakeAcceleration: 8.0, SteerSpeed: 0.7}
	state := CarState{Position: common.Vec2{X: 0, Y: 0}, UnitForward: common.Vec2{X: 1, Y: 0}, Speed: 1.0, SteerDelta: 0.0}
	input := CarInput{ForwardAcc: 0, TargetDelta: 0, Braking: false}

	dt := 1.0 / 16.0
	for i := 0; i < 32; i++ {
		state = state.Update(input, dt, config)
	}
	require.InDelta(t, 2.0, state.Position.X, 1e-6)
	require.InDelta(t, 0.0, state.Position.Y, 1e-6)
}

func TestUpdateCircle(t *testing.T) {
	config := CarConfig{Length: 1.0, BackAxle: 0.0, FrontAxle: 1.0, MaxDelta: 0.5, Acceleration: 6.0, BrakeAcceleration: 8.0, SteerSpeed: 0.7}
	delta := 45.0 * math.Pi / 180
	require.InDelta(t, 1.0, invTurnRadius(config, delta), 1e-6)

	state := CarState{Position: common.Vec2{X: 0, Y: 0}, UnitForward: common.Vec2{X: 1, Y: 0}, Speed: 1.0, SteerDelta: delta}
	input := CarInput{ForwardAcc: 0, TargetDelta: delta, Braking: false}

	phi := 90.0 * math.Pi / 180
	dt := phi / 64.0
	for i := 0; i < 64; i++ {
		state = state.Update(input, dt, config)
	}

	// Center of rotation is (0, 1); after 90 degrees the car should be at (1, 1).
	diff := state.Position.Sub(common.Vec2{X: 1, Y: 1})
	assert.Less(t, diff.Len(), 0.001)
}

func TestUpdateAcceleration(t *testing.T) {
	config := CarConfig{Length: 1.0, BackAxle: 0.0, FrontAxle: 1.0, MaxDelta: 0.5, Acceleration: 6.0, BrakeAcceleration: 8.0, SteerSpeed: 0.7}
	state := CarState{Position: common.Vec2{X: 0, Y: 0}, UnitForward: common.Vec2{X: 1, Y: 0}, Speed: 0.0000001, SteerDelta: 0.0}
	input := CarInput{ForwardAcc: 1.0, TargetDelta: 0, Braking: false}

	dt := 1.0 / 64.0
	for i := 0; i < 64; i++ {
		state = state.Update(input, dt, config)
	}

	// Displacement should be 0.5*a*t^2 = 0.5; speed should reach 1.0.
	assert.Less(t, math.Abs(state.Speed-1.0), 0.001)
	diff := state.Position.Sub(common.Vec2{X: 0.5, Y: 0})
	assert.Less(t, diff.Len(), 0.001)
}
