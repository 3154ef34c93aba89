// Package core provides the character raster the platform draws views on.
// It contains no external dependencies (especially no Bubble Tea) so the
// mapping from property units to cells stays pure and testable.
package core

import "math"

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clip returns the part of r inside bounds.
func (r Rect) Clip(bounds Rect) Rect {
	x0, y0 := max(r.X, bounds.X), max(r.Y, bounds.Y)
	x1, y1 := min(r.Right(), bounds.Right()), min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Scale maps property units to terminal cells. Terminal cells are roughly
// twice as tall as they are wide, so rows usually cover more units.
type Scale struct {
	UnitsPerCol float64
	UnitsPerRow float64
}

// DefaultScale fits the 500-unit reference width into 50 columns.
func DefaultScale() Scale {
	return Scale{UnitsPerCol: 10, UnitsPerRow: 20}
}

// Cells converts a frame in property units to cells. Sizes round to the
// nearest cell and negative sizes become empty.
func (s Scale) Cells(x, y, w, h float64) Rect {
	col := func(v float64) int { return int(math.Round(v / s.UnitsPerCol)) }
	row := func(v float64) int { return int(math.Round(v / s.UnitsPerRow)) }
	return Rect{X: col(x), Y: row(y), W: max(0, col(w)), H: max(0, row(h))}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
