// Package anim moves a point toward a target over time with a damped spring.
package anim

import (
	"time"

	"cornersnap/snap"
)

const (
	DefaultDuration = 500 * time.Millisecond
	DefaultDamping  = 0.7
)

// Mover holds the on-screen center of one element. The zero value is not
// ready to use; call New.
type Mover struct {
	Duration time.Duration
	Damping  float64
	// OnSettled is called when an animated move reaches its target. took
	// includes the whole animation, not just the last step.
	OnSettled func(at snap.Point, took time.Duration)

	cur, from, to snap.Point
	elapsed       time.Duration
	active        bool
}

func New(start snap.Point) *Mover {
	return &Mover{
		Duration: DefaultDuration,
		Damping:  DefaultDamping,
		cur:      start,
		to:       start,
	}
}

func (m *Mover) Center() snap.Point { return m.cur }

// Target is where the mover is heading, or its position when idle.
func (m *Mover) Target() snap.Point { return m.to }

func (m *Mover) Animating() bool { return m.active }

// MoveTo jumps to target, or starts animating there from the current center.
// A new call replaces any animation in flight.
func (m *Mover) MoveTo(target snap.Point, animated bool) {
	if !animated || m.Duration <= 0 {
		m.cur = target
		m.to = target
		m.active = false
		return
	}
	m.from = m.cur
	m.to = target
	m.elapsed = 0
	m.active = true
}

// Step advances a running animation by dt.
func (m *Mover) Step(dt time.Duration) {
	if !m.active || dt <= 0 {
		return
	}
	m.elapsed += dt
	if m.elapsed >= m.Duration {
		m.cur = m.to
		m.active = false
		if m.OnSettled != nil {
			m.OnSettled(m.to, m.elapsed)
		}
		return
	}
	k := progress(float64(m.elapsed)/float64(m.Duration), m.Damping)
	m.cur = m.from.Add(m.to.Sub(m.from).Scale(k))
}
