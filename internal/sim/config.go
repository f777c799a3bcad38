package sim

import (
	"drivesim/internal/physics"
	"drivesim/internal/track"
)

// RewardConfig weights the terms of the shaped per-step reward (§4.7).
type RewardConfig struct {
	TravelCoeff         float64
	CenterCoeff         float64
	CrashReward         float64
	CenterIntegralCoeff float64
}

// DefaultRewardConfig matches the coefficients the environment ships
// with.
func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		TravelCoeff:         1.0,
		CenterCoeff:         2.0,
		CrashReward:         -100.0,
		CenterIntegralCoeff: 1.0,
	}
}

// SimConfig aggregates the car's physical configuration, the reward
// shaping weights, the LiDAR fan, and the integration step.
type SimConfig struct {
	Car    physics.CarConfig
	Reward RewardConfig
	Lidar  track.LidarArray
	Dt     float64
}

// DefaultSimConfig matches the environment's default construction.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Car:    physics.DefaultCarConfig(),
		Reward: DefaultRewardConfig(),
		Lidar:  track.DefaultLidarArray(),
		Dt:     0.2,
	}
}
