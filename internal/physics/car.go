// Package physics implements the bicycle-model kinematic car: a
// small-angle-safe closed-form arc integrator with lagged steering,
// throttle, and braking.
package physics

import (
	"math"

	"drivesim/internal/common"
)

// CarConfig holds the car's immutable physical parameters, all in the
// car body frame.
type CarConfig struct {
	Length            float64 // wheelbase-ish overall length
	BackAxle          float64 // offset of the back reference point from the car's reference point
	FrontAxle         float64 // offset of the front reference point from the car's reference point
	MaxDelta          float64 // steering limit, radians
	Acceleration      float64
	BrakeAcceleration float64
	SteerSpeed        float64
}

// DefaultCarConfig mirrors the dimensions and response used by the
// shipped tracks.
func DefaultCarConfig() CarConfig {
	return CarConfig{
		Length:            3.0,
		FrontAxle:         0.5,
		BackAxle:          2.5,
		MaxDelta:          0.5,
		Acceleration:      6.0,
		BrakeAcceleration: 8.0,
		SteerSpeed:        0.7,
	}
}

// CarState is the car's full transient state.
type CarState struct {
	Position     common.Vec2 // world position
	UnitForward  common.Vec2 // unit-length forward direction
	Speed        float64     // >= 0; reversing is clamped at zero
	SteerDelta   float64     // current steering wheel angle, in [-MaxDelta, MaxDelta]
}

// DefaultCarState is the state a Simulator resets to.
func DefaultCarState() CarState {
	return CarState{
		Position:    common.Vec2{X: 0, Y: 0},
		UnitForward: common.Vec2{X: 1, Y: 0},
		Speed:       8.0,
		SteerDelta:  0.0,
	}
}

// CarInput is the per-step control input.
type CarInput struct {
	ForwardAcc  float64
	TargetDelta float64
	Braking     bool
}

// invTurnRadius computes the reciprocal turn radius (positive when
// turning left) for a wheel deflection of delta.
func invTurnRadius(config CarConfig, delta float64) float64 {
	return math.Tan(delta) / config.Length
}

// steerUpdate advances the steering wheel angle toward target at
// config.SteerSpeed, clamping so the update never overshoots target.
func steerUpdate(delta, target, dt float64, config CarConfig) float64 {
	direction := math.Copysign(1, target-delta)
	next := delta + dt*direction*config.SteerSpeed
	if (target-next)*direction > 0 {
		return next
	}
	return target
}

// Update advances the car one time step dt under input, returning the
// new state. The rotational update switches between a large-angle
// closed-form branch and a small-angle Taylor-series branch to avoid
// 1/curvature blow-ups near straight-line driving (spec §4.6).
func (s CarState) Update(input CarInput, dt float64, config CarConfig) CarState {
	steerDelta := steerUpdate(s.SteerDelta, input.TargetDelta, dt, config)

	speed := s.Speed
	var dv float64
	if input.Braking {
		brakeAcc := -math.Copysign(1, speed) * config.BrakeAcceleration
		dv = dt * (brakeAcc + input.ForwardAcc)
	} else {
		dv = dt * input.ForwardAcc
	}

	avgSpeed := speed + 0.5*dv
	if avgSpeed*speed <= 0 {
		avgSpeed = 0
	}
	newSpeed := speed + dv
	if newSpeed < 0 {
		newSpeed = 0
	}

	signedInvRadius := invTurnRadius(config, steerDelta)
	arc := avgSpeed * dt
	signedPhi := arc * signedInvRadius
	phi := math.Abs(signedPhi)

	eLeft := s.UnitForward.Rotate90()

	var forward, left float64
	if phi > 1.0 {
		radius := 1.0 / math.Abs(signedInvRadius)
		forward = radius * math.Sin(phi)
		left = radius * (1 - math.Cos(phi))
		if signedPhi < 0 {
			left = -left
		}
	} else {
		forwardFactor := 1.0 - phi*phi/6.0
		forward = arc * forwardFactor
		left = 0.5 * arc * signedPhi
	}

	newPosition := s.Position.Add(s.UnitForward.Scale(forward)).Add(eLeft.Scale(left))
	newUnitForward := s.UnitForward.Rotate(signedPhi)

	return CarState{
		Position:    newPosition,
		UnitForward: newUnitForward,
		Speed:       newSpeed,
		SteerDelta:  steerDelta,
	}
}
