package snap

// transitions[direction][previous] is the corner an element settles in after
// a fling. A direction along an edge the element already sits on keeps it
// there. NoForce leaves the corner unchanged.
var transitions = [numDirections][numCorners]Corner{
	Down: {
		UpperLeft:  LowerLeft,
		UpperRight: LowerRight,
		LowerLeft:  LowerLeft,
		LowerRight: LowerRight,
	},
	Up: {
		UpperLeft:  UpperLeft,
		UpperRight: UpperRight,
		LowerLeft:  UpperLeft,
		LowerRight: UpperRight,
	},
	Left: {
		UpperLeft:  UpperLeft,
		UpperRight: UpperLeft,
		LowerLeft:  LowerLeft,
		LowerRight: LowerLeft,
	},
	Right: {
		UpperLeft:  UpperRight,
		UpperRight: UpperRight,
		LowerLeft:  LowerRight,
		LowerRight: LowerRight,
	},
	DownLeft: {
		UpperLeft:  LowerLeft,
		UpperRight: LowerLeft,
		LowerLeft:  LowerLeft,
		LowerRight: LowerLeft,
	},
	DownRight: {
		UpperLeft:  LowerRight,
		UpperRight: LowerRight,
		LowerLeft:  LowerRight,
		LowerRight: LowerRight,
	},
	UpLeft: {
		UpperLeft:  UpperLeft,
		UpperRight: UpperLeft,
		LowerLeft:  UpperLeft,
		LowerRight: UpperLeft,
	},
	UpRight: {
		UpperLeft:  UpperRight,
		UpperRight: UpperRight,
		LowerLeft:  UpperRight,
		LowerRight: UpperRight,
	},
	NoForce: {
		UpperLeft:  UpperLeft,
		UpperRight: UpperRight,
		LowerLeft:  LowerLeft,
		LowerRight: LowerRight,
	},
}

// ResolveFromDirection returns the corner a fling in direction d lands on when
// the element was resting at prev. Out-of-range inputs return prev.
func ResolveFromDirection(d Direction, prev Corner) Corner {
	if d < 0 || int(d) >= numDirections || prev < 0 || int(prev) >= numCorners {
		assertf(false, "resolve %d from %d out of range", int(d), int(prev))
		return prev
	}
	return transitions[d][prev]
}

// ResolveFromPoint returns the corner of the screen quadrant holding center.
// Points on a split line belong to the left or upper side.
func ResolveFromPoint(center Point, screen Size) Corner {
	assertf(center.valid(), "center %+v is not finite", center)
	assertf(screen.valid(), "bad screen size %+v", screen)

	mid := screen.Mid()
	left := center.X <= mid.X
	upper := center.Y <= mid.Y
	switch {
	case upper && left:
		return UpperLeft
	case upper:
		return UpperRight
	case left:
		return LowerLeft
	default:
		return LowerRight
	}
}

// Decision is the outcome of one drag release.
type Decision struct {
	Direction Direction
	Corner    Corner
	// Forced is true when the corner came from the fling direction rather
	// than from the quadrant the element was released in.
	Forced bool
}

// Decide classifies velocity and picks the resting corner. A real direction
// goes through the transition table from prev, otherwise the quadrant of
// center on screen decides.
func Decide(velocity Vector, center Point, prev Corner, threshold float64, screen Size) Decision {
	d := Classify(velocity, threshold)
	if d != NoForce {
		return Decision{Direction: d, Corner: ResolveFromDirection(d, prev), Forced: true}
	}
	return Decision{Direction: d, Corner: ResolveFromPoint(center, screen)}
}
