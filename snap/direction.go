package snap

// Direction is the fling direction implied by a release velocity.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
	DownLeft
	DownRight
	UpLeft
	UpRight
	NoForce

	numDirections = int(NoForce) + 1
)

var directionNames = [numDirections]string{
	Down:      "down",
	Up:        "up",
	Left:      "left",
	Right:     "right",
	DownLeft:  "down-left",
	DownRight: "down-right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	NoForce:   "no-force",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= numDirections {
		return "direction(?)"
	}
	return directionNames[d]
}

// Directions lists every direction, NoForce last.
func Directions() []Direction {
	out := make([]Direction, numDirections)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Classify maps a release velocity to a forcing direction. A component only
// counts when it is strictly beyond ±threshold. Diagonals win over single
// axes, and NoForce is returned when neither axis qualifies.
func Classify(v Vector, threshold float64) Direction {
	assertf(v.valid(), "velocity %+v is not finite", v)
	assertf(threshold >= 0, "negative threshold %v", threshold)

	right := v.X > threshold
	left := v.X < -threshold
	down := v.Y > threshold
	up := v.Y < -threshold

	switch {
	case right && down:
		return DownRight
	case left && down:
		return DownLeft
	case right && up:
		return UpRight
	case left && up:
		return UpLeft
	case right:
		return Right
	case left:
		return Left
	case down:
		return Down
	case up:
		return Up
	}
	return NoForce
}
