package snap

import (
	"errors"
	"fmt"
	"strings"
)

// Corner is one of the four screen corners an element rests in.
type Corner int

const (
	UpperLeft Corner = iota
	UpperRight
	LowerLeft
	LowerRight

	numCorners = int(LowerRight) + 1
)

// ErrUnknownCorner is returned by ParseCorner for names it does not know.
var ErrUnknownCorner = errors.New("unknown corner")

var cornerNames = [numCorners]string{
	UpperLeft:  "upper-left",
	UpperRight: "upper-right",
	LowerLeft:  "lower-left",
	LowerRight: "lower-right",
}

var cornerAliases = map[string]Corner{
	"upperleft":   UpperLeft,
	"topleft":     UpperLeft,
	"ul":          UpperLeft,
	"tl":          UpperLeft,
	"upperright":  UpperRight,
	"topright":    UpperRight,
	"ur":          UpperRight,
	"tr":          UpperRight,
	"lowerleft":   LowerLeft,
	"bottomleft":  LowerLeft,
	"ll":          LowerLeft,
	"bl":          LowerLeft,
	"lowerright":  LowerRight,
	"bottomright": LowerRight,
	"lr":          LowerRight,
	"br":          LowerRight,
}

func (c Corner) String() string {
	if c < 0 || int(c) >= numCorners {
		return "corner(?)"
	}
	return cornerNames[c]
}

// Corners lists the four corners.
func Corners() []Corner {
	return []Corner{UpperLeft, UpperRight, LowerLeft, LowerRight}
}

// Upper reports whether the corner is on the top edge.
func (c Corner) Upper() bool { return c == UpperLeft || c == UpperRight }

// Leftward reports whether the corner is on the left edge.
func (c Corner) Leftward() bool { return c == UpperLeft || c == LowerLeft }

// ParseCorner accepts names such as "upper-left", "upperLeft", "top_left" or
// "ul", ignoring case.
func ParseCorner(s string) (Corner, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if c, ok := cornerAliases[key]; ok {
		return c, nil
	}
	return UpperRight, fmt.Errorf("%w: %q", ErrUnknownCorner, s)
}

// MarshalText lets corners round-trip through settings files.
func (c Corner) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= numCorners {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCorner, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Corner) UnmarshalText(b []byte) error {
	v, err := ParseCorner(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
