// Package ui holds the geometry and color aggregates a toolkit animates.
// Every attribute is an observable property; the types carry no behavior of
// their own beyond construction and formatting.
package ui

import (
	"fmt"

	"github.com/vovakirdan/tui-motion/internal/observable"
)

// Point is a position.
type Point struct {
	X *observable.Float
	Y *observable.Float
}

// Size is a width and height.
type Size struct {
	Width  *observable.Float
	Height *observable.Float
}

// Rect is a positioned size.
type Rect struct {
	Position Point
	Size     Size
}

// Color is an RGB color with 0-255 integer channels.
type Color struct {
	R *observable.Int
	G *observable.Int
	B *observable.Int
}

// View is a colored frame.
type View struct {
	Color Color
	Frame Rect
}

// NewPoint creates a point at the origin.
func NewPoint() Point {
	return Point{X: observable.New(0.0), Y: observable.New(0.0)}
}

// NewSize creates an empty size.
func NewSize() Size {
	return Size{Width: observable.New(0.0), Height: observable.New(0.0)}
}

// NewRect creates an empty rect at the origin.
func NewRect() Rect {
	return Rect{Position: NewPoint(), Size: NewSize()}
}

// NewColor creates black.
func NewColor() Color {
	return Color{R: observable.New(0), G: observable.New(0), B: observable.New(0)}
}

// NewView creates a black, empty view at the origin.
func NewView() *View {
	return &View{Color: NewColor(), Frame: NewRect()}
}

// Hex formats the color as #rrggbb, clamping channels to [0, 255].
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R.Get()), channel(c.G.Get()), channel(c.B.Get()))
}

func channel(v int) int {
	return max(0, min(255, v))
}
