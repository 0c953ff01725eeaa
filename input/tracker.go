// Package input turns raw pointer state into drag gesture samples.
package input

import (
	"time"

	"cornersnap/drag"
	"cornersnap/snap"
)

const (
	defaultDeadZone = 4.0 // pixels
	defaultWindow   = 100 * time.Millisecond
)

// PointerState is one poll of the primary pointer.
type PointerState struct {
	Pressed bool
	Pos     snap.Point
	// Touches is the number of active touches. Zero for a mouse.
	Touches int
	Focused bool
}

type stamp struct {
	p snap.Point
	t time.Time
}

// Tracker follows one pointer and reports drag samples for the element Hit
// accepts. It starts a drag only for presses that begin on the element and
// move past DeadZone.
type Tracker struct {
	// Hit reports whether a point is on the draggable element. A nil Hit
	// accepts every press.
	Hit func(snap.Point) bool
	// DeadZone is how far, in pixels, the pointer must travel before a drag
	// starts.
	DeadZone float64
	// Window is how much recent movement the release velocity is taken from.
	Window time.Duration

	prevPressed bool
	armed       bool
	dragging    bool
	touch       bool
	start, last snap.Point
	hist        []stamp
}

func NewTracker(hit func(snap.Point) bool) *Tracker {
	return &Tracker{
		Hit:      hit,
		DeadZone: defaultDeadZone,
		Window:   defaultWindow,
	}
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool { return t.dragging }

// Feed takes the pointer state at time now. It returns a sample and true
// when the poll produced one.
func (t *Tracker) Feed(st PointerState, now time.Time) (drag.Sample, bool) {
	defer func() { t.prevPressed = st.Pressed }()

	switch {
	case t.dragging:
		return t.feedDragging(st, now)
	case t.armed:
		return t.feedArmed(st, now)
	}

	justPressed := st.Pressed && !t.prevPressed
	if justPressed && st.Focused && st.Touches <= 1 && (t.Hit == nil || t.Hit(st.Pos)) {
		t.armed = true
		t.touch = st.Touches > 0
		t.start = st.Pos
		t.last = st.Pos
		t.hist = t.hist[:0]
		t.record(st.Pos, now)
	}
	return drag.Sample{}, false
}

func (t *Tracker) feedArmed(st PointerState, now time.Time) (drag.Sample, bool) {
	if !st.Pressed || !st.Focused || st.Touches > 1 {
		t.reset()
		return drag.Sample{}, false
	}
	t.record(st.Pos, now)
	if st.Pos.Sub(t.start).Len() <= t.DeadZone {
		return drag.Sample{}, false
	}
	// the start sample carries the travel through the dead zone
	t.dragging = true
	t.last = st.Pos
	return drag.Sample{Phase: drag.PhaseStart, Delta: st.Pos.Sub(t.start)}, true
}

func (t *Tracker) feedDragging(st PointerState, now time.Time) (drag.Sample, bool) {
	switch {
	case !st.Focused:
		t.reset()
		return drag.Sample{Phase: drag.PhaseFail}, true
	case st.Touches > 1:
		t.reset()
		return drag.Sample{Phase: drag.PhaseCancel}, true
	case !st.Pressed:
		// touch positions are gone once the finger lifts, so a touch
		// releases where the last poll saw it. The cursor is still valid.
		var d snap.Vector
		if !t.touch {
			d = st.Pos.Sub(t.last)
		}
		v := t.velocity()
		t.reset()
		return drag.Sample{Phase: drag.PhaseEnd, Delta: d, Velocity: v}, true
	}

	t.record(st.Pos, now)
	d := st.Pos.Sub(t.last)
	t.last = st.Pos
	if d == (snap.Vector{}) {
		return drag.Sample{}, false
	}
	return drag.Sample{Phase: drag.PhaseUpdate, Delta: d}, true
}

func (t *Tracker) record(p snap.Point, now time.Time) {
	t.hist = append(t.hist, stamp{p: p, t: now})
	cut := 0
	for cut < len(t.hist)-2 && now.Sub(t.hist[cut].t) > t.Window {
		cut++
	}
	if cut > 0 {
		t.hist = append(t.hist[:0], t.hist[cut:]...)
	}
}

// velocity is the average speed over the samples kept in the window, in
// pixels per second.
func (t *Tracker) velocity() snap.Vector {
	if len(t.hist) < 2 {
		return snap.Vector{}
	}
	first, last := t.hist[0], t.hist[len(t.hist)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return snap.Vector{}
	}
	return last.p.Sub(first.p).Scale(1 / dt)
}

func (t *Tracker) reset() {
	t.armed = false
	t.dragging = false
	t.hist = t.hist[:0]
}
