package track

import (
	"drivesim/internal/common"
	"drivesim/internal/physics"
)

// Road is the capability set a track exposes to the simulator and to
// LiDAR sensing: a crash predicate and a ray/edge intersection query.
// ReadLidar is implemented in terms of just these two operations, so a
// future non-spline track only needs to satisfy this interface (spec
// §9 "Polymorphism over track kinds").
type Road interface {
	IsCrashed(state physics.CarState, config physics.CarConfig) bool
	RayCollision(origin, direction common.Vec2) common.Vec2
}

// ReadLidar samples a LidarArray against road from the car's current
// position and heading. Each reading is the projection of the ray
// intersection onto the ray direction, i.e. the distance from the car
// to the edge along that ray; it is nonnegative whenever the origin is
// inside the track.
func ReadLidar(road Road, position, unitForward common.Vec2, lidar LidarArray) []float64 {
	readings := make([]float64, len(lidar.angles))
	for i, angle := range lidar.angles {
		direction := unitForward.Rotate(angle)
		intersection := road.RayCollision(position, direction)
		readings[i] = direction.Dot(intersection.Sub(position))
	}
	return readings
}
