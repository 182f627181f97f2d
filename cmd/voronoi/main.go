// Command voronoi renders the tessellation to a PNG image, or to an
// animated GIF when more than one frame is requested.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/frameloop"
	"github.com/gogpu/voronoi/internal/parallel"
)

func main() {
	cfg := voronoi.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)

	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "voronoi.png", "output file (.png or .gif)")
		frames  = flag.Int("frames", 1, "number of frames; more than one writes a GIF")
		scale   = flag.Int("scale", 1, "nearest-neighbour upscale factor")
		workers = flag.Int("workers", 0, "GIF palette goroutines (0 uses GOMAXPROCS)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	voronoi.SetLogger(logger)

	out := target{path: *output, width: *width, height: *height, frames: *frames, scale: *scale, workers: *workers}
	if err := run(cfg, out); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

// target describes what run writes.
type target struct {
	path          string
	width, height int
	frames        int
	scale         int
	workers       int
}

func run(cfg voronoi.Config, out target) error {
	if out.width <= 0 || out.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", out.width, out.height)
	}
	if out.frames <= 0 || out.scale <= 0 {
		return fmt.Errorf("frames and scale must be positive, got %d and %d", out.frames, out.scale)
	}

	e, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	d := frameloop.NewDriver(e, cfg)

	f, err := os.Create(out.path)
	if err != nil {
		return err
	}
	defer f.Close()

	if out.frames > 1 || strings.EqualFold(filepath.Ext(out.path), ".gif") {
		err = writeGIF(f, d, cfg.FrameInterval(), out)
	} else {
		err = png.Encode(f, upscale(d.Frame(time.Now(), out.width, out.height), out.scale))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", out.path, err)
	}

	voronoi.Logger().Info("saved", "path", out.path,
		"size", fmt.Sprintf("%dx%d", out.width*out.scale, out.height*out.scale),
		"frames", out.frames, "steps", d.Steps())
	return f.Close()
}

// writeGIF renders frames on a simulated clock spaced by every, so the
// animation plays at the configured frame rate whatever the render cost.
// Frames are rendered in order, then mapped onto the palette concurrently.
func writeGIF(w io.Writer, d *frameloop.Driver, every time.Duration, out target) error {
	delay := max(int(every/(10*time.Millisecond)), 2)
	every = time.Duration(delay) * 10 * time.Millisecond

	start := time.Now()
	rendered := make([]*image.RGBA, out.frames)
	for i := range rendered {
		rendered[i] = upscale(d.Frame(start.Add(time.Duration(i)*every), out.width, out.height), out.scale)
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, out.frames),
		Delay: make([]int, out.frames),
	}
	pool := parallel.NewPool(out.workers)
	defer pool.Close()
	pool.ForEach(out.frames, func(i int) {
		img := rendered[i]
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(p, p.Rect, img, img.Rect.Min, draw.Src)
		anim.Image[i] = p
		anim.Delay[i] = delay
	})
	return gif.EncodeAll(w, anim)
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}
