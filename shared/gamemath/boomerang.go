package gamemath

// Homing returns a velocity of the given speed pointing from from to to.
// Coincident points give zero.
func Homing(from, to Vec, speed float64) Vec {
	dir, ok := to.Sub(from).Normalize()
	if !ok {
		return Vec{}
	}
	return dir.Scale(speed)
}

// Caught reports whether a returning projectile at pos is within radius of
// the catcher.
func Caught(pos, catcher Vec, radius float64) bool {
	return pos.Dist(catcher) <= radius
}
