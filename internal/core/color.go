package core

import "fmt"

// Color is a cell foreground color in #rrggbb form. The zero value means the
// terminal default.
type Color string

// ColorDefault leaves the cell unstyled.
const ColorDefault Color = ""

// RGB builds a Color from channels, clamping each to [0, 255].
func RGB(r, g, b int) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", Clamp(r, 0, 255), Clamp(g, 0, 255), Clamp(b, 0, 255)))
}
