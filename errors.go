package voronoi

import "errors"

// Configuration errors reported by Config.Validate and the text codecs.
var (
	ErrInvalidPointCount = errors.New("voronoi: point count must be positive")
	ErrInvalidTileSize   = errors.New("voronoi: tile size must be positive")
	ErrInvalidSpeed      = errors.New("voronoi: speed must be finite and non-negative")
	ErrInvalidAmplitude  = errors.New("voronoi: amplitude must be within [0, 1]")
	ErrInvalidMarkerSize = errors.New("voronoi: marker size must be positive")
	ErrInvalidFPS        = errors.New("voronoi: fps cap must be positive")
	ErrInvalidInterval   = errors.New("voronoi: move interval must be positive")
	ErrUnknownRamp       = errors.New("voronoi: unknown ramp kind")
	ErrUnknownDirection  = errors.New("voronoi: unknown ramp direction")
)
