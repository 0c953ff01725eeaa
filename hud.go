package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"cornersnap/drag"
	"cornersnap/snap"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// hudState collects what the overlay shows about recent drags.
type hudState struct {
	decision    snap.Decision
	hasDecision bool
	velocity    snap.Vector
	settleTook  time.Duration
	note        string
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

func formatSpeed(v float64) string {
	return humanize.Commaf(math.Round(v))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func hudText(s *drag.Session, h hudState) string {
	cfg := s.Config()
	var b strings.Builder

	fmt.Fprintf(&b, "state: %v   corner: %v   drags: %s\n",
		s.State(), s.CurrentCorner(), humanize.Comma(int64(s.Drags())))

	if h.hasDecision {
		how := "quadrant"
		if h.decision.Forced {
			how = "fling"
		}
		fmt.Fprintf(&b, "last: %v via %s (%v)   v = %s, %s px/s\n",
			h.decision.Corner, how, h.decision.Direction,
			formatSpeed(h.velocity.X), formatSpeed(h.velocity.Y))
	} else {
		b.WriteString("last: -\n")
	}
	fmt.Fprintf(&b, "settled in: %s\n", formatDuration(h.settleTook))

	insets := "crossed"
	if cfg.SymmetricInsets {
		insets = "symmetric"
	}
	fmt.Fprintf(&b, "threshold: %s px/s   padding: %s   insets: %s   dragging: %s\n",
		formatSpeed(cfg.Threshold), humanize.Ftoa(cfg.Padding), insets, onOff(cfg.DraggingEnabled))
	b.WriteString("1-4 default corner   D drag   I insets   R report   Esc quit")
	if h.note != "" {
		b.WriteString("\n")
		b.WriteString(h.note)
	}
	return b.String()
}
