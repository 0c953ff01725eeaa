package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"

	"cornersnap/drag"
	"cornersnap/snap"
)

// sweepParams fixes the geometry and configuration a sweep runs against.
type sweepParams struct {
	cfg    drag.Config
	screen snap.Size
	elem   snap.Size
	safe   snap.Insets
	// steps is the number of grid positions per axis.
	steps int
}

func newSweepParams(cfg drag.Config) sweepParams {
	return sweepParams{
		cfg:    cfg,
		screen: snap.Size{Width: float64(gs.WindowWidth), Height: float64(gs.WindowHeight)},
		elem:   snap.Size{Width: gs.ElementSize, Height: gs.ElementSize},
		safe:   gs.SafeArea.insets(),
		steps:  9,
	}
}

// sweepVelocities returns per-axis speeds around the threshold, including the
// exact threshold values that must not count as a fling.
func sweepVelocities(th float64) []float64 {
	return []float64{-2 * th, -th - 1, -th, -th / 2, 0, th / 2, th, th + 1, 2 * th}
}

func sweepPositions(extent float64, steps int) []float64 {
	if steps < 2 {
		return []float64{extent / 2}
	}
	out := make([]float64, steps)
	for i := range out {
		out[i] = extent * float64(i) / float64(steps-1)
	}
	return out
}

// cornerTally counts the outcomes of all decisions made from one previous
// corner.
type cornerTally struct {
	prev      snap.Corner
	total     int
	forced    int
	outcomes  [4]int
	direction [9]int
}

func (t *cornerTally) add(o cornerTally) {
	t.total += o.total
	t.forced += o.forced
	for i := range t.outcomes {
		t.outcomes[i] += o.outcomes[i]
	}
	for i := range t.direction {
		t.direction[i] += o.direction[i]
	}
}

type geometryCheck struct {
	corner    snap.Corner
	crossed   snap.Point
	symmetric snap.Point
	ok        bool
}

type sweepReport struct {
	params     sweepParams
	velocities int
	positions  int
	tallies    [4]cornerTally
	geometry   []geometryCheck
	took       time.Duration
}

func (r sweepReport) decisions() int {
	n := 0
	for _, t := range r.tallies {
		n += t.total
	}
	return n
}

// runSweep decides every combination of previous corner, release velocity
// and release position. Rows of work run concurrently; every row writes only
// its own tally.
func runSweep(p sweepParams) sweepReport {
	start := time.Now()
	vs := sweepVelocities(p.cfg.Threshold)
	xs := sweepPositions(p.screen.Width, p.steps)
	ys := sweepPositions(p.screen.Height, p.steps)
	corners := snap.Corners()

	rows := make([]cornerTally, len(corners)*len(vs))
	swg := sizedwaitgroup.New(runtime.NumCPU())
	for ci, prev := range corners {
		for vi, vy := range vs {
			swg.Add()
			go func(row *cornerTally, prev snap.Corner, vy float64) {
				defer swg.Done()
				row.prev = prev
				for _, vx := range vs {
					v := snap.Vector{X: vx, Y: vy}
					for _, x := range xs {
						for _, y := range ys {
							d := snap.Decide(v, snap.Point{X: x, Y: y}, prev, p.cfg.Threshold, p.screen)
							row.total++
							row.outcomes[d.Corner]++
							row.direction[d.Direction]++
							if d.Forced {
								row.forced++
							}
						}
					}
				}
			}(&rows[ci*len(vs)+vi], prev, vy)
		}
	}
	swg.Wait()

	r := sweepReport{
		params:     p,
		velocities: len(vs) * len(vs),
		positions:  len(xs) * len(ys),
	}
	for i, prev := range corners {
		r.tallies[i].prev = prev
		for vi := range vs {
			r.tallies[i].add(rows[i*len(vs)+vi])
		}
	}
	r.geometry = checkGeometry(p)
	r.took = time.Since(start)
	return r
}

func checkGeometry(p sweepParams) []geometryCheck {
	in := p.safe.Grow(p.cfg.Padding)
	inside := func(c snap.Point) bool {
		return c.X-p.elem.Width/2 >= 0 && c.X+p.elem.Width/2 <= p.screen.Width &&
			c.Y-p.elem.Height/2 >= 0 && c.Y+p.elem.Height/2 <= p.screen.Height
	}
	var out []geometryCheck
	for _, c := range snap.Corners() {
		gc := geometryCheck{
			corner:    c,
			crossed:   snap.CenterFor(c, p.elem, p.screen, in),
			symmetric: snap.CenterForEdges(c, p.elem, p.screen, in),
		}
		gc.ok = inside(gc.crossed) && inside(gc.symmetric)
		out = append(out, gc)
	}
	return out
}

func writeReport(w io.Writer, r sweepReport) error {
	p := r.params
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "cornersnap decision sweep\n")
	fmt.Fprintf(bw, "screen %gx%g  element %gx%g  threshold %s px/s  padding %s\n",
		p.screen.Width, p.screen.Height, p.elem.Width, p.elem.Height,
		humanize.Commaf(p.cfg.Threshold), humanize.Ftoa(p.cfg.Padding))
	fmt.Fprintf(bw, "velocities %d  positions %d  decisions %s  took %s\n\n",
		r.velocities, r.positions, humanize.Comma(int64(r.decisions())), formatDuration(r.took))

	tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "from\t")
	for _, c := range snap.Corners() {
		fmt.Fprintf(tw, "%v\t", c)
	}
	fmt.Fprint(tw, "forced\n")
	for _, t := range r.tallies {
		fmt.Fprintf(tw, "%v\t", t.prev)
		for _, n := range t.outcomes {
			fmt.Fprintf(tw, "%s\t", humanize.Comma(int64(n)))
		}
		fmt.Fprintf(tw, "%s\n", humanize.Comma(int64(t.forced)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(bw, "\ntransitions\n")
	tw = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "direction\t")
	for _, c := range snap.Corners() {
		fmt.Fprintf(tw, "%v\t", c)
	}
	fmt.Fprint(tw, "\n")
	for _, d := range snap.Directions() {
		fmt.Fprintf(tw, "%v\t", d)
		for _, c := range snap.Corners() {
			fmt.Fprintf(tw, "%v\t", snap.ResolveFromDirection(d, c))
		}
		fmt.Fprint(tw, "\n")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(bw, "\ngeometry\n")
	for _, g := range r.geometry {
		status := "ok"
		if !g.ok {
			status = "OFF SCREEN"
		}
		fmt.Fprintf(bw, "%-12v crossed (%g,%g)  symmetric (%g,%g)  %s\n",
			g.corner, g.crossed.X, g.crossed.Y, g.symmetric.X, g.symmetric.Y, status)
	}
	return bw.Flush()
}

func writeSweepFile(path string, p sweepParams) error {
	r := runSweep(p)
	if path == "-" {
		return writeReport(os.Stdout, r)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := writeReport(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	logDebug("sweep: %d decisions written to %s", r.decisions(), path)
	return nil
}
