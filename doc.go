// Package voronoi renders an animated, blocky approximation of a Voronoi
// tessellation.
//
// # Overview
//
// A set of colored seed points partitions a raster surface into square
// tiles. Each tile takes the color of the seed point nearest to its
// top-left pixel. Seed points may drift inside a small region around their
// initial position, which turns the tessellation into a slowly moving
// plasma-like effect.
//
// # Quick Start
//
//	import "github.com/gogpu/voronoi"
//
//	// 64 random points, colored along the rainbow
//	e := voronoi.New(64)
//
//	// One animation step, then a 640x480 frame with 15 pixel tiles
//	e.Tick(true, 0.05, 0.1)
//	f := e.Render(640, 480, 15)
//
//	// Save to PNG
//	f.SavePNG("voronoi.png")
//
// # Architecture
//
// The package is organized into:
//   - Colors: RGB, HSL, GenerateRamp, RampBetween
//   - Seed points: SeedPoint with optional Motion (bounded random walk)
//   - Engine: owns the points, assigns ramps, rasterizes Frames
//   - Config: the settings shared by the commands under cmd/
//
// # Coordinate System
//
// Seed positions are normalized to the surface:
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - (1,1) is the bottom-right corner
//   - Headings are in degrees, 0 is right, increasing towards +Y
//
// # Performance
//
// Render scans every seed point for every tile, so its cost grows with
// (width/tile)·(height/tile)·points. That is plenty for a few hundred
// points; there is no spatial index.
package voronoi

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
