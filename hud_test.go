package main

import (
	"strings"
	"testing"
	"time"

	"cornersnap/anim"
	"cornersnap/drag"
	"cornersnap/snap"
)

func newHUDSession() (*drag.Session, *anim.Mover) {
	geom := &screenGeometry{size: snap.Size{Width: 960, Height: 640}}
	mover := anim.New(geom.size.Mid())
	s := drag.NewSession(drag.DefaultConfig(), snap.Size{Width: 72, Height: 72}, geom, mover, nil)
	s.Place(false)
	return s, mover
}

func TestHUDIdle(t *testing.T) {
	s, _ := newHUDSession()
	out := hudText(s, hudState{})
	for _, want := range []string{"state: idle", "corner: upper-right", "threshold: 1,400 px/s", "last: -", "settled in: -", "insets: crossed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("hud missing %q:\n%s", want, out)
		}
	}
}

func TestHUDAfterFling(t *testing.T) {
	s, mover := newHUDSession()
	var h hudState
	s.Notifier().On(drag.EventSettled, func(ev drag.Event) {
		h.decision = ev.Decision
		h.hasDecision = true
		h.velocity = ev.Sample.Velocity
	})
	mover.OnSettled = func(_ snap.Point, took time.Duration) { h.settleTook = took }

	s.Handle(drag.Sample{Phase: drag.PhaseStart})
	s.Handle(drag.Sample{Phase: drag.PhaseUpdate, Delta: snap.Vector{X: -20, Y: 20}})
	s.Handle(drag.Sample{Phase: drag.PhaseEnd, Velocity: snap.Vector{X: -2000, Y: 1800}})
	for i := 0; i < 60 && mover.Animating(); i++ {
		mover.Step(time.Second / 60)
	}
	if mover.Animating() {
		t.Fatalf("animation still running")
	}

	out := hudText(s, h)
	for _, want := range []string{
		"corner: lower-left",
		"drags: 1",
		"via fling (down-left)",
		"v = -2,000, 1,800 px/s",
		"settled in: ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("hud missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "settled in: -") {
		t.Fatalf("settle time not shown:\n%s", out)
	}
}

func TestHUDQuadrantDecision(t *testing.T) {
	s, _ := newHUDSession()
	h := hudState{
		decision:    snap.Decision{Direction: snap.NoForce, Corner: snap.LowerRight},
		hasDecision: true,
		note:        "report saved to sweep.txt",
	}
	out := hudText(s, h)
	if !strings.Contains(out, "lower-right via quadrant") {
		t.Fatalf("quadrant decision not shown:\n%s", out)
	}
	if !strings.HasSuffix(out, "report saved to sweep.txt") {
		t.Fatalf("note not last:\n%s", out)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(0); got != "-" {
		t.Fatalf("zero duration = %q", got)
	}
	if got := formatDuration(1500 * time.Millisecond); !strings.HasPrefix(got, "1s") {
		t.Fatalf("1.5s = %q", got)
	}
}
