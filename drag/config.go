package drag

import "cornersnap/snap"

const (
	DefaultThreshold = 1400
	DefaultPadding   = 16
)

// Config holds the options a host can tune on a session.
type Config struct {
	// Threshold is the per-axis release speed, in px/s, above which a fling
	// picks the corner instead of the release position.
	Threshold float64
	// Padding is added to every safe-area edge.
	Padding float64
	// DefaultCorner is where the element starts.
	DefaultCorner snap.Corner
	// DraggingEnabled turns gesture handling on or off.
	DraggingEnabled bool
	// SymmetricInsets makes every corner use its own edges' insets
	// (snap.CenterForEdges) instead of snap.CenterFor.
	SymmetricInsets bool
}

func DefaultConfig() Config {
	return Config{
		Threshold:       DefaultThreshold,
		Padding:         DefaultPadding,
		DefaultCorner:   snap.UpperRight,
		DraggingEnabled: true,
	}
}
