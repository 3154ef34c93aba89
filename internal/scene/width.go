package scene

import "github.com/vovakirdan/tui-motion/internal/ui"

func init() {
	Register("width", func() Scene { return &Width{} })
}

// Width glides the frame width between two targets.
type Width struct {
	env Env
}

func (*Width) ID() string    { return "width" }
func (*Width) Title() string { return "Width" }

func (w *Width) Build(v *ui.View, env Env) {
	w.env = env.withDefaults()
	v.Frame.Size.Height.Set(120)
	v.Color.R.Set(95)
	v.Color.G.Set(135)
	v.Color.B.Set(255)
	glide(v.Frame.Size.Width, "width", w.env)
}

func (w *Width) Trigger(v *ui.View, step int) {
	v.Frame.Size.Width.Set(w.env.target(step, 500.64, 120))
}
