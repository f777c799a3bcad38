package track

import "drivesim/internal/common"

// boundingBox is an axis-aligned box derived from a curve's extrema.
type boundingBox struct {
	minX, maxX, minY, maxY float64
	corners                [4]common.Vec2
}

func newBoundingBox(minX, maxX, minY, maxY float64) boundingBox {
	return boundingBox{
		minX: minX, maxX: maxX, minY: minY, maxY: maxY,
		corners: [4]common.Vec2{
			{X: minX, Y: minY},
			{X: minX, Y: maxY},
			{X: maxX, Y: minY},
			{X: maxX, Y: maxY},
		},
	}
}

// closestPoint finds the closest point on the box to p using a
// nine-quadrant piecewise clamp: each axis independently clamps to the
// box's extent, or passes p's own coordinate through when already
// inside that extent.
func (b boundingBox) closestPoint(p common.Vec2) common.Vec2 {
	x, y := p.X, p.Y
	cx := x
	switch {
	case x <= b.minX:
		cx = b.minX
	case x > b.maxX:
		cx = b.maxX
	}
	cy := y
	switch {
	case y <= b.minY:
		cy = b.minY
	case y > b.maxY:
		cy = b.maxY
	}
	return common.Vec2{X: cx, Y: cy}
}

// farthestPoint returns whichever of the box's four corners is
// farthest from p; the farthest point on an axis-aligned box is always
// one of its corners.
func (b boundingBox) farthestPoint(p common.Vec2) common.Vec2 {
	best := b.corners[0]
	bestD2 := p.Sub(best).Dot(p.Sub(best))
	for _, corner := range b.corners[1:] {
		delta := p.Sub(corner)
		d2 := delta.Dot(delta)
		if d2 > bestD2 {
			bestD2 = d2
			best = corner
		}
	}
	return best
}
