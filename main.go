package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"cornersnap/drag"
	"cornersnap/snap"
)

var (
	baseDir   string
	debugMode bool
	sweepOut  string
)

func main() {
	flag.BoolVar(&debugMode, "debug", false, "verbose/debug logging")
	threshold := flag.Float64("threshold", -1, "fling threshold in px/s (negative keeps the saved value)")
	padding := flag.Float64("padding", -1, "corner padding in px (negative keeps the saved value)")
	corner := flag.String("corner", "", "default corner: upper-left, upper-right, lower-left or lower-right")
	noDrag := flag.Bool("no-drag", false, "start with dragging disabled")
	symmetric := flag.Bool("symmetric-insets", false, "inset every corner by its own edges")
	flag.StringVar(&sweepOut, "sweep", "", "write a decision sweep report to this file ('-' for stdout) and exit")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	setupLogging(debugMode)
	defer closeLogs()
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	// flags override the saved settings for this run only
	cfg := gs.dragConfig()
	if *threshold >= 0 {
		cfg.Threshold = *threshold
	}
	if *padding >= 0 {
		cfg.Padding = *padding
	}
	if *corner != "" {
		c, err := snap.ParseCorner(*corner)
		if err != nil {
			log.Fatalf("-corner: %v", err)
		}
		cfg.DefaultCorner = c
	}
	if *noDrag {
		cfg.DraggingEnabled = false
	}
	if *symmetric {
		cfg.SymmetricInsets = true
	}

	if sweepOut != "" {
		if err := writeSweepFile(sweepOut, newSweepParams(cfg)); err != nil {
			log.Fatalf("sweep: %v", err)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runGame(ctx, cfg); err != nil {
		logError("run: %v", err)
		dialog.Message("%v", err).Title("cornersnap").Error()
		closeLogs()
		os.Exit(1)
	}
	if settingsDirty {
		saveSettings()
	}
}

func runGame(ctx context.Context, cfg drag.Config) error {
	ebiten.SetWindowTitle("cornersnap")
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(ctx, cfg)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
