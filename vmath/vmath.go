package vmath

import "math"

// --- Bounds ---

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Lerp interpolates a..b by t (unclamped).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Smoothing ---

// ApproachExp moves current toward target by a dt-aware exponential step
// with time constant tau (seconds). Equivalent to a fixed-rate EMA at any
// steady tick rate, but independent of the tick rate itself. tau <= 0
// snaps to target.
func ApproachExp(current, target, dt, tau float64) float64 {
	if dt <= 0 {
		return current
	}
	if tau <= 0 {
		return target
	}
	return current + (target-current)*(1-math.Exp(-dt/tau))
}

// DecayExp scales x by exp(-dt/tau).
func DecayExp(x, dt, tau float64) float64 {
	if dt <= 0 || tau <= 0 {
		return x
	}
	return x * math.Exp(-dt/tau)
}

// --- Geometry ---

// Dist returns the euclidean distance between two points.
func Dist(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}

// Arc maps a 0..1 progress value onto a 0->1->0 half-sine arc.
func Arc(progress float64) float64 {
	return math.Sin(Clamp01(progress) * math.Pi)
}
