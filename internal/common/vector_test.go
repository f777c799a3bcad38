package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, Vec2{4, 7}, Vec2{1, 2}.Add(Vec2{3, 5}))
}

func TestSub(t *testing.T) {
	assert.Equal(t, Vec2{3, 3}, Vec2{4, 6}.Sub(Vec2{1, 3}))
}

func TestScale(t *testing.T) {
	assert.Equal(t, Vec2{2, 4}, Vec2{1, 2}.Scale(2))
}

func TestDot(t *testing.T) {
	v1 := Vec2{2, 4}
	v2 := Vec2{-1, 1}
	assert.Equal(t, 2.0, v1.Dot(v2))
	assert.Equal(t, 2.0, v2.Dot(v1))
}

func TestRotate90(t *testing.T) {
	assert.Equal(t, Vec2{0, 1}, Vec2{1, 0}.Rotate90())
	assert.Equal(t, Vec2{-1, 0}, Vec2{0, 1}.Rotate90())
}

func TestRotate(t *testing.T) {
	v1 := Vec2{1, 0}
	back := v1.Rotate(0.1).Rotate(-0.1)
	assert.InDelta(t, v1.X, back.X, 1e-9)
	assert.InDelta(t, v1.Y, back.Y, 1e-9)

	thirty := 30.0 * math.Pi / 180.0
	assert.InDelta(t, 0.5, v1.Rotate(thirty).Y, 0.001)
	assert.InDelta(t, 0.5, v1.Rotate(2*thirty).X, 0.001)
	assert.InDelta(t, 0.0, v1.Rotate(3*thirty).X, 0.001)
	assert.InDelta(t, -0.5, v1.Rotate(4*thirty).X, 0.001)
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Vec2{3, 4}.Len())
}

func TestNormalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)

	require.Panics(t, func() { Vec2{}.Normalize() })
}
