package sim

import (
	"math"
	"math/rand"

	"drivesim/internal/physics"
	"drivesim/internal/track"
)

// actionInput implements the Action -> CarInput table of §4.7.
func actionInput(action Action, carCfg physics.CarConfig) physics.CarInput {
	switch action {
	case ActionLeft:
		return physics.CarInput{ForwardAcc: 0, TargetDelta: carCfg.MaxDelta, Braking: false}
	case ActionRight:
		return physics.CarInput{ForwardAcc: 0, TargetDelta: -carCfg.MaxDelta, Braking: false}
	case ActionAccelerate:
		return physics.CarInput{ForwardAcc: carCfg.Acceleration, TargetDelta: 0, Braking: false}
	case ActionBrake:
		return physics.CarInput{ForwardAcc: 0, TargetDelta: 0, Braking: true}
	case ActionCoast:
		return physics.CarInput{ForwardAcc: 0, TargetDelta: 0, Braking: false}
	default:
		panic("sim: actionInput called with an undecoded action")
	}
}

// TransitionObservation is the result of a single Step.
type TransitionObservation struct {
	Reward float64
	Done   bool
}

// StateObservation is the result of Observe.
type StateObservation struct {
	LidarReadings []float64
	SteerDelta    float64
	Speed         float64
}

// Simulator is the boundary façade: it owns the car's configuration,
// a fixed track, the car's current transient state, a step clock and
// iteration counter, and an optional seeded PRNG reserved for reset
// randomization (none of the core dynamics are stochastic; see
// track/road.go's ReadLidar and physics.CarState.Update, both pure
// functions of their arguments).
type Simulator struct {
	config SimConfig
	road   track.SplineMap
	state  physics.CarState

	observeDelta bool
	observeSpeed bool

	t   float64
	i   int
	rng *rand.Rand
}

// New constructs a Simulator on road and immediately resets it,
// optionally seeding its PRNG.
func New(config SimConfig, road track.SplineMap, observeDelta, observeSpeed bool, seed *uint64) *Simulator {
	s := &Simulator{
		config:       config,
		road:         road,
		observeDelta: observeDelta,
		observeSpeed: observeSpeed,
		rng:          rand.New(rand.NewSource(1)),
	}
	s.Reset(seed)
	return s
}

// Reset restores the car to its default state and zeros the clock and
// iteration counter. If seed is non-nil the PRNG is reseeded;
// otherwise the existing generator is left in place (spec §4, §9
// "Determinism vs. PRNG").
func (s *Simulator) Reset(seed *uint64) {
	s.state = physics.DefaultCarState()
	s.t = 0
	s.i = 0
	if seed != nil {
		s.rng = rand.New(rand.NewSource(int64(*seed)))
	}
}

// Step maps action to a car input (panicking if action is not one of
// the defined Actions; DecodeAction is where raw wire values are
// checked), advances the car by one Dt, tests for a crash
// against the new state, computes the shaped reward, and commits the
// transition. The committed state after a crash is still the crashed
// pose; callers must Reset before further Steps.
func (s *Simulator) Step(action Action) TransitionObservation {
	dt := s.config.Dt
	input := actionInput(action, s.config.Car)

	newState := s.state.Update(input, dt, s.config.Car)
	crashed := s.road.IsCrashed(newState, s.config.Car)

	reward := s.reward(s.state, newState, crashed)

	s.state = newState
	s.t += dt
	s.i++

	return TransitionObservation{Reward: reward, Done: crashed}
}

// reward implements the shaped reward of §4.7: signed wrapped travel
// progress, instantaneous centering improvement, a centerline-distance
// integral penalty, and a terminal crash term.
func (s *Simulator) reward(oldState, newState physics.CarState, crashed bool) float64 {
	rcfg := s.config.Reward
	spline := s.road.Spline()

	c1 := spline.ClosestPoint(oldState.Position)
	c2 := spline.ClosestPoint(newState.Position)
	travel1 := spline.ArcLength(c1.Parameter)
	travel2 := spline.ArcLength(c2.Parameter)

	totalLength := spline.TotalLength()
	travel := math.Mod((travel2-travel1)+1.5*totalLength, totalLength) - 0.5*totalLength
	dSqDecrease := c2.DistanceSq - c1.DistanceSq

	reward := rcfg.TravelCoeff*travel +
		rcfg.CenterCoeff*dSqDecrease -
		rcfg.CenterIntegralCoeff*c2.DistanceSq*s.config.Dt
	if crashed {
		reward += rcfg.CrashReward
	}
	return reward
}

// Observe samples the LiDAR fan from the car's current state and
// reports the current steer_delta and speed alongside the readings.
// Both fields are always filled in; the observeDelta and observeSpeed
// flags are not consulted here and only affect ObservationDim.
func (s *Simulator) Observe() StateObservation {
	readings := track.ReadLidar(s.road, s.state.Position, s.state.UnitForward, s.config.Lidar)
	return StateObservation{
		LidarReadings: readings,
		SteerDelta:    s.state.SteerDelta,
		Speed:         s.state.Speed,
	}
}

// Dt is the integration step the simulator was configured with.
func (s *Simulator) Dt() float64 { return s.config.Dt }

// T is the simulator's clock, in seconds since the last reset.
func (s *Simulator) T() float64 { return s.t }

// I is the number of steps taken since the last reset.
func (s *Simulator) I() int { return s.i }

// ObservationDim is the number of LiDAR angles plus one for each of
// the observeDelta and observeSpeed flags that is enabled.
func (s *Simulator) ObservationDim() int {
	dim := s.config.Lidar.NAngles()
	if s.observeDelta {
		dim++
	}
	if s.observeSpeed {
		dim++
	}
	return dim
}

// State returns the car's current transient state.
func (s *Simulator) State() physics.CarState { return s.state }

// Config returns the simulator's configuration.
func (s *Simulator) Config() SimConfig { return s.config }

// Road returns the simulator's track.
func (s *Simulator) Road() track.SplineMap { return s.road }
