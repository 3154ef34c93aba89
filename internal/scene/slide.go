package scene

import "github.com/vovakirdan/tui-motion/internal/ui"

func init() {
	Register("slide", func() Scene { return &Slide{} })
}

// Slide moves a small box around the corners of a rectangle. The first
// target, when set, is the rectangle width; the height is half of it.
type Slide struct {
	env Env
}

func (*Slide) ID() string    { return "slide" }
func (*Slide) Title() string { return "Slide" }

func (s *Slide) Build(v *ui.View, env Env) {
	s.env = env.withDefaults()
	v.Frame.Size.Width.Set(80)
	v.Frame.Size.Height.Set(40)
	v.Color.R.Set(255)
	v.Color.G.Set(170)
	v.Color.B.Set(60)
	glide(v.Frame.Position.X, "x", s.env)
	glide(v.Frame.Position.Y, "y", s.env)
}

func (s *Slide) Trigger(v *ui.View, step int) {
	w := s.env.target(0, 400)
	h := w / 2
	corners := [4][2]float64{{w, 0}, {w, h}, {0, h}, {0, 0}}
	c := corners[step%len(corners)]
	if c[0] != v.Frame.Position.X.Get() {
		v.Frame.Position.X.Set(c[0])
	}
	if c[1] != v.Frame.Position.Y.Get() {
		v.Frame.Position.Y.Set(c[1])
	}
}
