package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cornersnap/snap"
)

var touchIDs []ebiten.TouchID

// Poll reads the primary pointer. If a touch is active the first touch is
// used, otherwise the mouse cursor and left button.
func Poll() PointerState {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	st := PointerState{
		Touches: len(touchIDs),
		Focused: ebiten.IsFocused(),
	}
	var x, y int
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		st.Pressed = true
	} else {
		x, y = ebiten.CursorPosition()
		st.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
	}
	st.Pos = snap.Point{X: float64(x), Y: float64(y)}
	return st
}
