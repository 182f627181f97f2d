// Command voronoi-term animates the tessellation in a terminal. Every
// character cell shows two vertically stacked pixels using the upper half
// block, so a W x H terminal is a W x 2H pixel surface.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/frameloop"
)

const upperHalfBlock = '▀'

// errQuit ends the frame loop on a quit key.
var errQuit = errors.New("quit")

type viewer struct {
	screen tcell.Screen
	driver *frameloop.Driver
	events chan tcell.Event
}

func newViewer(screen tcell.Screen, d *frameloop.Driver) *viewer {
	return &viewer{
		screen: screen,
		driver: d,
		events: make(chan tcell.Event, 100),
	}
}

// pollEvents forwards screen events until the screen is finalized.
func (v *viewer) pollEvents() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		v.events <- ev
	}
}

// frame handles pending input, then draws one frame.
func (v *viewer) frame(now time.Time) error {
	for {
		select {
		case ev := <-v.events:
			if !v.handleEvent(ev) {
				return errQuit
			}
		default:
			v.draw(now)
			return nil
		}
	}
}

func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) draw(now time.Time) {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	img := v.driver.Frame(now, cols, rows*2)
	paint(v.screen, img)
	v.screen.Show()
}

// paint maps pixel rows 2y and 2y+1 of img onto terminal row y.
func paint(screen tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y*2 < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			screen.SetContent(x, y, upperHalfBlock, nil, cellStyle(img, b.Min.X+x, b.Min.Y+y*2))
		}
	}
}

// cellStyle colors the upper half of a cell with the pixel at (x, y) and
// the lower half with the pixel below it.
func cellStyle(img *image.RGBA, x, y int) tcell.Style {
	top := img.RGBAAt(x, y)
	bottom := top
	if y+1 < img.Bounds().Max.Y {
		bottom = img.RGBAAt(x, y+1)
	}
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

func main() {
	cfg := voronoi.DefaultConfig()
	cfg.TileSize = 2
	cfg.MarkerSize = 2
	cfg.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		voronoi.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg voronoi.Config) error {
	e, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	v := newViewer(screen, frameloop.NewDriver(e, cfg))
	go v.pollEvents()

	err = frameloop.Run(context.Background(), cfg.FrameInterval(), v.frame)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
