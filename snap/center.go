package snap

// CenterFor returns the center an element of size elem takes when resting in
// corner c of a screen of size screen, kept clear of the edges by in.
//
// The horizontal insets are crossed on the upper row: UpperLeft offsets by
// in.Right and UpperRight by in.Left. The lower row uses its own edges.
// CenterForEdges is the variant where every corner uses its own edges.
func CenterFor(c Corner, elem, screen Size, in Insets) Point {
	checkGeometry(elem, screen, in)

	hw, hh := elem.Width/2, elem.Height/2
	switch c {
	case UpperLeft:
		return Point{X: hw + in.Right, Y: hh + in.Top}
	case UpperRight:
		return Point{X: screen.Width - hw - in.Left, Y: hh + in.Top}
	case LowerLeft:
		return Point{X: hw + in.Left, Y: screen.Height - hh - in.Bottom}
	case LowerRight:
		return Point{X: screen.Width - hw - in.Right, Y: screen.Height - hh - in.Bottom}
	}
	assertf(false, "unknown corner %d", int(c))
	return screen.Mid()
}

// CenterForEdges is like CenterFor but every corner is inset by the two edges
// it touches.
func CenterForEdges(c Corner, elem, screen Size, in Insets) Point {
	checkGeometry(elem, screen, in)

	hw, hh := elem.Width/2, elem.Height/2
	p := Point{X: hw + in.Left, Y: hh + in.Top}
	if !c.Leftward() {
		p.X = screen.Width - hw - in.Right
	}
	if !c.Upper() {
		p.Y = screen.Height - hh - in.Bottom
	}
	return p
}

func checkGeometry(elem, screen Size, in Insets) {
	assertf(elem.valid(), "bad element size %+v", elem)
	assertf(screen.valid(), "bad screen size %+v", screen)
	assertf(in.valid(), "bad insets %+v", in)
}
