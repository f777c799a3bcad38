package track

import "math"

// LidarArray holds an ordered, symmetric list of fan angles (radians)
// used to sample distances to the track edge.
type LidarArray struct {
	angles []float64
}

// NewLidarArray builds a LidarArray from a positive, monotone list of
// angles in degrees: the result is
// [-aK,...,-a1, 0, a1,...,aK] converted to radians, so it is always odd
// length, symmetric, sorted, and includes zero.
func NewLidarArray(degrees []float64) LidarArray {
	angles := make([]float64, 0, 2*len(degrees)+1)
	for i := len(degrees) - 1; i >= 0; i-- {
		angles = append(angles, -degrees[i])
	}
	angles = append(angles, 0)
	angles = append(angles, degrees...)
	for i, a := range angles {
		angles[i] = a * math.Pi / 180
	}
	return LidarArray{angles: angles}
}

// DefaultLidarArray is the fan used when no explicit configuration is
// supplied.
func DefaultLidarArray() LidarArray {
	return NewLidarArray([]float64{1, 2, 5, 10, 30, 45, 60, 90, 120})
}

// NAngles returns the number of fan angles.
func (l LidarArray) NAngles() int {
	return len(l.angles)
}

// Angles returns the fan's angles in radians.
func (l LidarArray) Angles() []float64 {
	return l.angles
}
