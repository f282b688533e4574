package gamemath

// Direction is one of the four facings an entity can have.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "down"
	}
}

// Vec returns the unit vector for d.
func (d Direction) Vec() Vec {
	switch d {
	case Up:
		return Vec{0, -1}
	case Left:
		return Vec{-1, 0}
	case Right:
		return Vec{1, 0}
	default:
		return Vec{0, 1}
	}
}

// Vertical reports whether d faces up or down.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// FacingFor picks the facing that best matches v, preferring the dominant
// axis. A zero vector keeps the current facing.
func FacingFor(v Vec, current Direction) Direction {
	switch {
	case v.IsZero():
		return current
	case abs(v.X) > abs(v.Y):
		if v.X > 0 {
			return Right
		}
		return Left
	case v.Y > 0:
		return Down
	default:
		return Up
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
