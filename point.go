package voronoi

// Point represents a 2D position. Seed positions are normalized to the
// surface, so (0,0) is the top-left corner and (1,1) the bottom-right.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns the point with X multiplied by sx and Y by sy.
// Scale(width, height) maps a normalized position onto a surface.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// DistanceSquared returns the squared Euclidean distance between two points.
func (p Point) DistanceSquared(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Bounds is an axis-aligned rectangle with inclusive edges.
type Bounds struct {
	Min, Max Point
}

// Around returns the bounds extending amplitude on each axis from center.
func Around(center Point, amplitude float64) Bounds {
	return Bounds{
		Min: Point{X: center.X - amplitude, Y: center.Y - amplitude},
		Max: Point{X: center.X + amplitude, Y: center.Y + amplitude},
	}
}

// Intersect returns the largest bounds contained in both b and o.
func (b Bounds) Intersect(o Bounds) Bounds {
	return Bounds{
		Min: Point{X: max(b.Min.X, o.Min.X), Y: max(b.Min.Y, o.Min.Y)},
		Max: Point{X: min(b.Max.X, o.Max.X), Y: min(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp returns p moved into b independently on each axis.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: max(min(p.X, b.Max.X), b.Min.X),
		Y: max(min(p.Y, b.Max.Y), b.Min.Y),
	}
}

// unitBounds is the normalized surface.
var unitBounds = Bounds{Max: Point{X: 1, Y: 1}}
