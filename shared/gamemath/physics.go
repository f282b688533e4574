package gamemath

// DecayKnockback applies one tick of geometric resistance to a knockback
// vector. Once the magnitude is at or below threshold it snaps to exactly zero.
func DecayKnockback(v Vec, resistance, threshold float64) Vec {
	if v.Len() <= threshold {
		return Vec{}
	}
	v = v.Scale(resistance)
	if v.Len() <= threshold {
		return Vec{}
	}
	return v
}

// Knockback returns the impulse pushing target away from source.
func Knockback(source, target Vec, impulse float64) Vec {
	dir, _ := DirectionTo(source, target)
	return dir.Scale(impulse)
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
