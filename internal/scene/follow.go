package scene

import "github.com/vovakirdan/tui-motion/internal/ui"

func init() {
	Register("follow", func() Scene { return &Follow{} })
}

// Follow jumps the width and lets the height catch up.
type Follow struct {
	env Env
}

// followRatio is height per unit of width.
const followRatio = 0.5

func (*Follow) ID() string    { return "follow" }
func (*Follow) Title() string { return "Follow" }

func (f *Follow) Build(v *ui.View, env Env) {
	f.env = env.withDefaults()
	v.Frame.Size.Width.Set(160)
	v.Frame.Size.Height.Set(160 * followRatio)
	v.Color.R.Set(80)
	v.Color.G.Set(200)
	v.Color.B.Set(120)
	chase(v.Frame.Size.Width, v.Frame.Size.Height, "height", f.env, func(w float64) float64 {
		return w * followRatio
	})
}

func (f *Follow) Trigger(v *ui.View, step int) {
	v.Frame.Size.Width.Set(f.env.target(step, 480, 160))
}
