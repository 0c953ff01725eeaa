package anim

import "math"

// settle is how many time constants fit in one animation, so the spring is
// within about 0.1% of rest when the animation ends.
const settle = 7.0

// easeIn returns t squared for t in [0,1].
func easeIn(t float64) float64 { return t * t }

// spring returns the position, 0 at rest and 1 at the target, of a damped
// spring released at t=0 and sampled at t in [0,1]. Damping below 1
// overshoots; 1 and above approach without overshoot.
func spring(t, damping float64) float64 {
	if damping <= 0 {
		damping = 0.01
	}
	if damping >= 1 {
		w := settle
		return 1 - math.Exp(-w*t)*(1+w*t)
	}
	w := settle / damping
	wd := w * math.Sqrt(1-damping*damping)
	decay := math.Exp(-damping * w * t)
	return 1 - decay*(math.Cos(wd*t)+(damping*w/wd)*math.Sin(wd*t))
}

// progress maps elapsed fraction t to interpolation weight.
func progress(t, damping float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return spring(easeIn(t), damping)
}
