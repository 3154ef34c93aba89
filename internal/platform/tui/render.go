package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/ui"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run. A nil renderer
// uses the lipgloss default.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return s.Render(func(c core.Color, text string) string {
		return r.NewStyle().Foreground(lipgloss.Color(string(c))).Render(text)
	})
}

// ViewColor returns the view's current color.
func ViewColor(v *ui.View) core.Color {
	return core.RGB(v.Color.R.Get(), v.Color.G.Get(), v.Color.B.Get())
}

// ViewCells maps the view's frame to cells inside area.
func ViewCells(v *ui.View, scale core.Scale, area core.Rect) core.Rect {
	f := v.Frame
	r := scale.Cells(f.Position.X.Get(), f.Position.Y.Get(), f.Size.Width.Get(), f.Size.Height.Get())
	r.X += area.X
	r.Y += area.Y
	return r.Clip(area)
}

// DrawView draws the view as a filled, outlined box inside area.
func DrawView(s *core.Screen, v *ui.View, scale core.Scale, area core.Rect) {
	r := ViewCells(v, scale, area)
	if r.Empty() {
		return
	}
	c := ViewColor(v)
	s.DrawRect(r, '▒', c)
	s.DrawBox(r, c)
}
