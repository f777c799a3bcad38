package sim

import "drivesim/internal/common"

// widthRatio sets the chassis's visual width as a fraction of its
// length, for GraphicsState only; it has no effect on physics or
// crash detection.
const widthRatio = 0.4

// RoadExport is a piecewise-linear sampling of a track's left and
// right edges, for front-ends to draw.
type RoadExport struct {
	LeftX, LeftY   []float64
	RightX, RightY []float64
}

// ExportRoad samples the simulator's track edges at roughly
// arc-length-uniform spacing into nSegments pieces. Each step's
// parameter increment is corrected using a midpoint velocity estimate
// (a single Heun/predictor-corrector pass), since converting a target
// arc-length step into a parameter step exactly would require
// integrating 1/|velocity(u)|.
func (s *Simulator) ExportRoad(nSegments int) RoadExport {
	spline := s.road.Spline()
	maxU := spline.MaxU()
	ds := spline.TotalLength() / float64(nSegments)

	export := RoadExport{}
	u := 0.0
	for u < maxU {
		v0 := spline.Velocity(u)
		du := ds / v0.Len()
		predicted := spline.Velocity(u + du)
		v := v0.Scale(0.5).Add(predicted.Scale(0.5))
		du = ds / v.Len()

		center := spline.Get(u)
		lateral := spline.Tangent(u).Rotate90().Scale(0.5 * s.road.Width())
		left := center.Add(lateral)
		right := center.Sub(lateral)

		export.LeftX = append(export.LeftX, left.X)
		export.LeftY = append(export.LeftY, left.Y)
		export.RightX = append(export.RightX, right.X)
		export.RightY = append(export.RightY, right.Y)

		u += du
	}
	return export
}

// CarGraphicsExport is a snapshot of the car's chassis corners and
// LiDAR ray endpoints, for front-ends to draw.
type CarGraphicsExport struct {
	CarX, CarY  [4]float64
	LidarCenter common.Vec2
	LidarX      []float64
	LidarY      []float64
}

// GraphicsState computes the car's chassis rectangle (back-left,
// front-left, front-right, back-right) and, from the current LiDAR
// readings, the world-space endpoint of each ray.
func (s *Simulator) GraphicsState() CarGraphicsExport {
	state := s.state
	carCfg := s.config.Car
	angles := s.config.Lidar.Angles()
	readings := s.Observe().LidarReadings

	lidarX := make([]float64, len(angles))
	lidarY := make([]float64, len(angles))
	for i, angle := range angles {
		direction := state.UnitForward.Rotate(angle)
		point := state.Position.Add(direction.Scale(readings[i]))
		lidarX[i] = point.X
		lidarY[i] = point.Y
	}

	backCenter := state.Position.Sub(state.UnitForward.Scale(carCfg.BackAxle))
	halfLateral := state.UnitForward.Rotate90().Scale(carCfg.Length * widthRatio * 0.5)
	forwardDisplacement := state.UnitForward.Scale(carCfg.Length)

	backLeft := backCenter.Add(halfLateral)
	backRight := backCenter.Sub(halfLateral)
	frontLeft := backLeft.Add(forwardDisplacement)
	frontRight := backRight.Add(forwardDisplacement)

	return CarGraphicsExport{
		CarX:        [4]float64{backLeft.X, frontLeft.X, frontRight.X, backRight.X},
		CarY:        [4]float64{backLeft.Y, frontLeft.Y, frontRight.Y, backRight.Y},
		LidarCenter: state.Position,
		LidarX:      lidarX,
		LidarY:      lidarY,
	}
}
