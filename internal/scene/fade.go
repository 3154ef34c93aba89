package scene

import "github.com/vovakirdan/tui-motion/internal/ui"

func init() {
	Register("fade", func() Scene { return &Fade{} })
}

// Fade blends every color channel between white and black. Targets, when
// set, are gray levels.
type Fade struct {
	env Env
}

func (*Fade) ID() string    { return "fade" }
func (*Fade) Title() string { return "Fade" }

func (f *Fade) Build(v *ui.View, env Env) {
	f.env = env.withDefaults()
	v.Frame.Size.Width.Set(300)
	v.Frame.Size.Height.Set(120)
	v.Color.R.Set(255)
	v.Color.G.Set(255)
	v.Color.B.Set(255)
	glide(v.Color.R, "red", f.env)
	glide(v.Color.G, "green", f.env)
	glide(v.Color.B, "blue", f.env)
}

func (f *Fade) Trigger(v *ui.View, step int) {
	level := int(f.env.target(step, 0, 255))
	v.Color.R.Set(level)
	v.Color.G.Set(level)
	v.Color.B.Set(level)
}
