// Package drag runs the drag-and-release cycle of a snap-to-corner element.
// A Session consumes gesture samples, asks package snap where the element
// should rest and tells a Mover to go there.
package drag

import (
	"log"
	"time"

	"cornersnap/snap"

	"golang.org/x/time/rate"
)

// State is the coarse state of a session.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "state(?)"
}

// Mover owns the on-screen position of the element. MoveTo with animated
// false must take effect immediately and stop any running animation.
type Mover interface {
	Center() snap.Point
	MoveTo(target snap.Point, animated bool)
}

// Geometry reports the area the element lives in.
type Geometry interface {
	ScreenSize() snap.Size
	SafeAreaInsets() snap.Insets
}

// Session coordinates one draggable element. It is not safe for concurrent
// use: feed it from the same goroutine that delivers input and repositions
// the element.
type Session struct {
	// Log receives debug output when non-nil.
	Log *log.Logger

	cfg    Config
	size   snap.Size
	geom   Geometry
	mover  Mover
	notify *Notifier

	state    State
	center   snap.Point
	resting  snap.Corner
	last     snap.Decision
	decided  bool
	drags    int
	updateRL *rate.Limiter
}

// NewSession returns an idle session resting at cfg.DefaultCorner. It does not
// move the element; call Place for that. A nil notifier is replaced with one
// that has no channel.
func NewSession(cfg Config, elem snap.Size, geom Geometry, mover Mover, n *Notifier) *Session {
	if n == nil {
		n = NewNotifier(0)
	}
	return &Session{
		cfg:      cfg,
		size:     elem,
		geom:     geom,
		mover:    mover,
		notify:   n,
		resting:  cfg.DefaultCorner,
		updateRL: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
}

// Handle advances the session with one gesture sample. Samples that don't
// fit the current state are ignored.
func (s *Session) Handle(sm Sample) {
	if !s.cfg.DraggingEnabled {
		return
	}
	switch sm.Phase {
	case PhaseStart:
		if s.state == Dragging {
			s.debugf("drag: ignoring start, already dragging")
			return
		}
	case PhaseUpdate, PhaseEnd, PhaseCancel, PhaseFail:
		if s.state != Dragging {
			s.debugf("drag: ignoring %v while idle", sm.Phase)
			return
		}
	default:
		s.debugf("drag: unknown phase %d", int(sm.Phase))
		return
	}

	s.notify.Emit(Event{Type: EventGesture, Sample: sm})

	switch sm.Phase {
	case PhaseStart:
		s.state = Dragging
		s.center = s.mover.Center()
		if sm.Delta != (snap.Vector{}) {
			s.center = s.center.Add(sm.Delta)
			s.mover.MoveTo(s.center, false)
		}
		s.drags++
		s.debugf("drag: start at %.0f,%.0f from %v", s.center.X, s.center.Y, s.resting)
		s.notify.Emit(Event{Type: EventDragStarted, Sample: sm})
	case PhaseUpdate:
		s.center = s.center.Add(sm.Delta)
		s.mover.MoveTo(s.center, false)
		if s.Log != nil && s.updateRL.Allow() {
			s.debugf("drag: at %.0f,%.0f", s.center.X, s.center.Y)
		}
	case PhaseEnd:
		s.center = s.center.Add(sm.Delta)
		s.state = Idle
		s.notify.Emit(Event{Type: EventDragEnded, Sample: sm})
		s.release(sm)
	case PhaseCancel:
		s.state = Idle
		s.notify.Emit(Event{Type: EventDragCancelled, Sample: sm})
	case PhaseFail:
		s.state = Idle
		s.notify.Emit(Event{Type: EventDragFailed, Sample: sm})
	}
}

func (s *Session) release(sm Sample) {
	d := snap.Decide(sm.Velocity, s.center, s.resting, s.cfg.Threshold, s.geom.ScreenSize())
	s.last = d
	s.decided = true
	s.debugf("drag: release v=%.0f,%.0f at %.0f,%.0f -> %v, %v (forced %v)",
		sm.Velocity.X, sm.Velocity.Y, s.center.X, s.center.Y, d.Direction, d.Corner, d.Forced)
	target := s.moveTo(d.Corner, true)
	s.notify.Emit(Event{Type: EventSettled, Sample: sm, Decision: d, Target: target})
}

// TargetFor returns the center the element takes when resting at c with the
// current geometry.
func (s *Session) TargetFor(c snap.Corner) snap.Point {
	screen := s.geom.ScreenSize()
	in := s.geom.SafeAreaInsets().Grow(s.cfg.Padding)
	if s.cfg.SymmetricInsets {
		return snap.CenterForEdges(c, s.size, screen, in)
	}
	return snap.CenterFor(c, s.size, screen, in)
}

func (s *Session) moveTo(c snap.Corner, animated bool) snap.Point {
	p := s.TargetFor(c)
	s.mover.MoveTo(p, animated)
	s.resting = c
	return p
}

// MoveToCorner repositions the element and makes c the current corner. A
// drag in progress is cancelled first.
func (s *Session) MoveToCorner(c snap.Corner, animated bool) snap.Point {
	s.cancelDrag()
	return s.moveTo(c, animated)
}

// Place moves the element to its current corner, for example after the
// screen was resized.
func (s *Session) Place(animated bool) snap.Point {
	if s.state == Dragging {
		return s.mover.Center()
	}
	return s.moveTo(s.resting, animated)
}

// SetDefaultCorner changes the default corner and moves the element there.
func (s *Session) SetDefaultCorner(c snap.Corner) {
	s.cfg.DefaultCorner = c
	s.MoveToCorner(c, true)
}

// SetDraggingEnabled turns gesture handling on or off. Disabling it in the
// middle of a drag cancels the drag.
func (s *Session) SetDraggingEnabled(enabled bool) {
	if !enabled {
		s.cancelDrag()
	}
	s.cfg.DraggingEnabled = enabled
}

func (s *Session) cancelDrag() {
	if s.state != Dragging {
		return
	}
	s.state = Idle
	s.debugf("drag: cancelled by host")
	s.notify.Emit(Event{Type: EventDragCancelled, Sample: Sample{Phase: PhaseCancel}, Host: true})
}

func (s *Session) SetThreshold(v float64)        { s.cfg.Threshold = v }
func (s *Session) SetPadding(v float64)          { s.cfg.Padding = v }
func (s *Session) SetSymmetricInsets(on bool)    { s.cfg.SymmetricInsets = on }
func (s *Session) SetElementSize(size snap.Size) { s.size = size }

func (s *Session) CurrentCorner() snap.Corner { return s.resting }
func (s *Session) State() State               { return s.state }
func (s *Session) Config() Config             { return s.cfg }
func (s *Session) ElementSize() snap.Size     { return s.size }
func (s *Session) Notifier() *Notifier        { return s.notify }

// Drags returns how many drags have started.
func (s *Session) Drags() int { return s.drags }

// LastDecision returns the most recent release decision. ok is false until
// the first drag has ended.
func (s *Session) LastDecision() (d snap.Decision, ok bool) {
	return s.last, s.decided
}

func (s *Session) debugf(format string, v ...any) {
	if s.Log != nil {
		s.Log.Printf(format, v...)
	}
}
