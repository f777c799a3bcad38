// Package numeric implements the bisection root finder and grid-seeded
// 1-D minimizer that the spline geometry in internal/track builds on.
package numeric

import "math"

type sign int

const (
	signNegative sign = -1
	signZero     sign = 0
	signPositive sign = 1
)

func signOf(value float64) sign {
	switch {
	case math.IsNaN(value):
		panic("numeric: observation must be finite")
	case value < 0:
		return signNegative
	case value > 0:
		return signPositive
	default:
		return signZero
	}
}

type parity int

const (
	rising parity = iota
	falling
)

// Observation is a function evaluated at a point x, paired with its
// value.
type Observation struct {
	X     float64
	Value float64
}

func newObservation(x, value float64) Observation {
	if math.IsInf(value, 0) {
		panic("numeric: observation must be finite")
	}
	return Observation{X: x, Value: value}
}

type openInterval struct {
	left, right Observation
	p           parity
}

func (iv openInterval) width() float64 {
	return iv.right.X - iv.left.X
}

// update narrows the interval using a new observation taken inside it,
// or reports that the observation itself is a root.
func (iv openInterval) update(obs Observation) (openInterval, float64, bool) {
	s := signOf(obs.Value)
	if s == signZero {
		return openInterval{}, obs.X, true
	}
	switch {
	case iv.p == rising && s == signPositive, iv.p == falling && s == signNegative:
		return openInterval{left: iv.left, right: obs, p: iv.p}, 0, false
	default:
		return openInterval{left: obs, right: iv.right, p: iv.p}, 0, false
	}
}

// FindRoot performs sign-based bisection for a continuous scalar
// function f over [xMin, xMax], refining until the bracket width is at
// most widthThreshold or 20 iterations have elapsed, whichever comes
// first. It reports ok=false when the endpoints share a sign, meaning no
// sign change (and hence no guaranteed root) was bracketed.
func FindRoot(f func(float64) float64, xMin, xMax, widthThreshold float64) (root float64, ok bool) {
	left := newObservation(xMin, f(xMin))
	right := newObservation(xMax, f(xMax))

	leftSign, rightSign := signOf(left.Value), signOf(right.Value)

	var p parity
	switch {
	case leftSign == signZero:
		return xMin, true
	case rightSign == signZero:
		return xMax, true
	case leftSign == signNegative && rightSign == signPositive:
		p = rising
	case leftSign == signPositive && rightSign == signNegative:
		p = falling
	default:
		return 0, false
	}

	interval := openInterval{left: left, right: right, p: p}
	for iteration := 0; interval.width() > widthThreshold && iteration < 20; iteration++ {
		midX := 0.5 * (interval.left.X + interval.right.X)
		obs := newObservation(midX, f(midX))
		next, x, found := interval.update(obs)
		if found {
			return x, true
		}
		interval = next
	}

	// Final estimate: linear two-point approximation between the
	// remaining bracket endpoints.
	k := (interval.right.X - interval.left.X) / (interval.right.Value - interval.left.Value)
	return interval.left.X - interval.left.Value*k, true
}

// findLocalMinDifferentiable finds a root of the derivative fp over
// [xMin, xMax], which constitutes a local minimum of f provided fp(xMin)
// <= 0 <= fp(xMax) (otherwise the bracket can only contain a maximum).
func findLocalMinDifferentiable(fp func(float64) float64, xMin, xMax, widthThreshold float64) (float64, bool) {
	dStart, dEnd := fp(xMin), fp(xMax)
	if dStart > 0 || dEnd < 0 {
		return 0, false
	}
	return FindRoot(fp, xMin, xMax, widthThreshold)
}

// FindMinDifferentiable minimizes f over [xMin, xMax] given its
// derivative fp. It seeds the search with a uniform 33-sample grid to
// locate an approximate minimizer, then refines with a derivative-root
// bisection around that sample; the better of the grid sample and the
// refined root is returned.
func FindMinDifferentiable(f, fp func(float64) float64, xMin, xMax, widthThreshold float64) Observation {
	const steps = 32

	dx := (xMax - xMin) / steps

	bestIdx := 0
	bestValue := f(xMin)
	for i := 1; i <= steps; i++ {
		v := f(xMin + float64(i)*dx)
		if v <= bestValue {
			bestValue = v
			bestIdx = i
		}
	}
	xi := xMin + float64(bestIdx)*dx

	xLeft := math.Max(xi-dx, xMin)
	xRight := math.Min(xi+dx, xMax)

	if xLM, found := findLocalMinDifferentiable(fp, xLeft, xRight, widthThreshold); found {
		valueLM := f(xLM)
		if valueLM < bestValue {
			return newObservation(xLM, valueLM)
		}
	}
	return newObservation(xi, bestValue)
}
