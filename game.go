package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"

	"cornersnap/anim"
	"cornersnap/drag"
	"cornersnap/input"
	"cornersnap/snap"
)

// screenGeometry is the drag.Geometry of the game window. The safe area
// comes from settings since desktop windows have no system insets.
type screenGeometry struct {
	size snap.Size
	safe snap.Insets
}

func (g *screenGeometry) ScreenSize() snap.Size       { return g.size }
func (g *screenGeometry) SafeAreaInsets() snap.Insets { return g.safe }

type Game struct {
	ctx     context.Context
	geom    *screenGeometry
	mover   *anim.Mover
	session *drag.Session
	tracker *input.Tracker
	pal     palette

	hud      hudState
	notes    chan string
	lastTick time.Time
}

var cornerKeys = map[ebiten.Key]snap.Corner{
	ebiten.Key1: snap.UpperLeft,
	ebiten.Key2: snap.UpperRight,
	ebiten.Key3: snap.LowerLeft,
	ebiten.Key4: snap.LowerRight,
}

func newGame(ctx context.Context, cfg drag.Config) *Game {
	geom := &screenGeometry{
		size: snap.Size{Width: float64(gs.WindowWidth), Height: float64(gs.WindowHeight)},
		safe: gs.SafeArea.insets(),
	}
	mover := anim.New(geom.size.Mid())
	elem := snap.Size{Width: gs.ElementSize, Height: gs.ElementSize}

	g := &Game{
		ctx:   ctx,
		geom:  geom,
		mover: mover,
		pal:   pickPalette(gs.Theme),
		notes: make(chan string, 4),
	}
	g.session = drag.NewSession(cfg, elem, geom, mover, drag.NewNotifier(0))
	g.session.Log = debugLogger
	g.tracker = input.NewTracker(g.onElement)
	g.subscribe()

	mover.OnSettled = func(p snap.Point, took time.Duration) {
		g.hud.settleTook = took
		logDebug("settled at %.0f,%.0f after %v", p.X, p.Y, took)
	}
	g.session.Place(false)
	logDebug("palette %s, starting at %v", g.pal.name, g.session.CurrentCorner())
	return g
}

func (g *Game) subscribe() {
	n := g.session.Notifier()
	n.On(drag.EventSettled, func(ev drag.Event) {
		g.hud.decision = ev.Decision
		g.hud.hasDecision = true
		g.hud.velocity = ev.Sample.Velocity
		g.hud.settleTook = 0
	})
	// a drag that ends without a decision leaves the element where the
	// pointer let go of it, so send it home. Host cancels are followed by
	// their own placement.
	goHome := func(ev drag.Event) {
		if ev.Host {
			return
		}
		logDebug("%v, returning to %v", ev.Type, g.session.CurrentCorner())
		g.session.Place(true)
	}
	n.On(drag.EventDragCancelled, goHome)
	n.On(drag.EventDragFailed, goHome)
}

func (g *Game) onElement(p snap.Point) bool {
	r := g.session.ElementSize().Width / 2
	return p.Sub(g.mover.Center()).Len() <= r
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	case note := <-g.notes:
		g.hud.note = note
	default:
	}

	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	if s, ok := g.tracker.Feed(input.Poll(), now); ok {
		g.session.Handle(s)
	}
	g.mover.Step(dt)

	if settingsDirty && time.Since(lastSettingsSave) >= 5*time.Second {
		saveSettings()
	}
	return nil
}

func (g *Game) handleKeys() {
	for key, c := range cornerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.SetDefaultCorner(c)
			gs.DefaultCorner = c
			settingsDirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		on := !g.session.Config().DraggingEnabled
		wasDragging := g.session.State() == drag.Dragging
		g.session.SetDraggingEnabled(on)
		if wasDragging {
			g.session.Place(true)
		}
		gs.DraggingEnabled = on
		settingsDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		on := !g.session.Config().SymmetricInsets
		g.session.SetSymmetricInsets(on)
		g.session.Place(true)
		gs.SymmetricInsets = on
		settingsDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p := newSweepParams(g.session.Config())
		p.screen = g.geom.size
		go g.exportSweep(p)
	}
}

// exportSweep asks for a file name and writes a sweep report there. It runs
// off the game loop because the dialog blocks.
func (g *Game) exportSweep(p sweepParams) {
	name, err := dialog.File().Filter("Text files", "txt").SetStartDir(baseDir).SetStartFile("sweep.txt").Title("Save sweep report").Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			logError("sweep dialog: %v", err)
		}
		return
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	note := fmt.Sprintf("report saved to %s", filepath.Base(name))
	if err := writeSweepFile(name, p); err != nil {
		logError("sweep: %v", err)
		note = "report failed, see log"
	}
	select {
	case g.notes <- note:
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.pal.bg)

	r := float32(g.session.ElementSize().Width / 2)
	for _, c := range snap.Corners() {
		p := g.session.TargetFor(c)
		col := g.pal.guide
		if c == g.session.CurrentCorner() {
			col = g.pal.resting
		}
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r+4, 2, col, true)
	}

	col := g.pal.element
	if g.session.State() == drag.Dragging {
		col = g.pal.dragging
	}
	c := g.mover.Center()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, col, true)

	// the HUD sits in the middle so it never hides a corner
	mid := g.geom.size.Mid()
	hx, hy := float32(mid.X)-190, float32(mid.Y)-50
	vector.DrawFilledRect(screen, hx-8, hy-8, 396, 112, g.pal.hudBG, false)
	ebitenutil.DebugPrintAt(screen, hudText(g.session, g.hud), int(hx), int(hy))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := snap.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if size != g.geom.size {
		g.geom.size = size
		g.session.Place(false)
		gs.WindowWidth, gs.WindowHeight = outsideWidth, outsideHeight
		settingsDirty = true
	}
	return outsideWidth, outsideHeight
}
