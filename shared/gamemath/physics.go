package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by the given fraction of the gap.
func Approach(current, target, smoothing float64) float64 {
	return current + (target-current)*smoothing
}

// ApplyFriction damps speed by a per-reference-frame friction factor, scaled
// so the decay over one second does not depend on dt. refHz is the frame rate
// the factor was tuned at.
func ApplyFriction(speed, friction, dt, refHz float64) float64 {
	return speed * math.Pow(friction, dt*refHz)
}

// SnapToZero returns 0 when |v| is below epsilon.
func SnapToZero(v, epsilon float64) float64 {
	if math.Abs(v) < epsilon {
		return 0
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
