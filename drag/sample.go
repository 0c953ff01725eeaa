package drag

import "cornersnap/snap"

// Phase is where a gesture sample sits in the life of a drag.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseUpdate
	PhaseEnd
	PhaseCancel
	PhaseFail
)

var phaseNames = [...]string{
	PhaseStart:  "start",
	PhaseUpdate: "update",
	PhaseEnd:    "end",
	PhaseCancel: "cancel",
	PhaseFail:   "fail",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "phase(?)"
	}
	return phaseNames[p]
}

// Sample is one event from a gesture source.
type Sample struct {
	Phase Phase
	// Delta is the pointer movement since the previous sample. On PhaseStart
	// it is the movement since the press.
	Delta snap.Vector
	// Velocity is in pixels per second. Sources only fill it on PhaseEnd.
	Velocity snap.Vector
}
