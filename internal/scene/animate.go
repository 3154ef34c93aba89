package scene

import (
	"time"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/logging"
	"github.com/vovakirdan/tui-motion/internal/observable"
)

// DefaultDuration is used when Env.Duration is unset.
const DefaultDuration = 250 * time.Millisecond

func (e Env) withDefaults() Env {
	if e.Clock == nil {
		e.Clock = clock.Default
	}
	if e.Director == nil {
		e.Director = anim.Blocking{Clock: e.Clock}
	}
	if e.Duration <= 0 {
		e.Duration = DefaultDuration
	}
	if e.Logger == nil {
		e.Logger = logging.Nop()
	}
	return e
}

// target returns the i-th trigger value, cycling through Targets when set
// and through defaults otherwise.
func (e Env) target(i int, defaults ...float64) float64 {
	vals := e.Targets
	if len(vals) == 0 {
		vals = defaults
	}
	if i < 0 {
		i = -i
	}
	return vals[i%len(vals)]
}

// glide makes every external write to p animate from the old value to the
// new one. Writes made by any of the glide's own animations are ignored,
// including ones superseded by a later write that are still ticking.
func glide[T anim.Number](p *observable.Value[T], label string, env Env) {
	var live []*anim.Animation[T]
	p.AddObserver(func(old, new T) {
		if ownWrite(live) {
			return
		}
		live = pruneSettled(live)
		a, err := anim.New(p, old, new, env.Duration, anim.WithClock(env.Clock), anim.WithLabel(label))
		if err != nil {
			env.Logger.Error("cannot build animation", "label", label, "err", err)
			return
		}
		live = append(live, a)
		play(env, a, label)
	})
}

func ownWrite[T anim.Number](live []*anim.Animation[T]) bool {
	for _, a := range live {
		if a.Writing() {
			return true
		}
	}
	return false
}

func pruneSettled[T anim.Number](live []*anim.Animation[T]) []*anim.Animation[T] {
	kept := live[:0]
	for _, a := range live {
		if a.Active() {
			kept = append(kept, a)
		}
	}
	return kept
}

// chase animates dst toward fn(new) whenever src is written externally.
func chase[T anim.Number](src *observable.Float, dst *observable.Value[T], label string, env Env, fn func(float64) T) {
	src.AddObserver(func(_, new float64) {
		a, err := anim.New(dst, dst.Get(), fn(new), env.Duration, anim.WithClock(env.Clock), anim.WithLabel(label))
		if err != nil {
			env.Logger.Error("cannot build animation", "label", label, "err", err)
			return
		}
		play(env, a, label)
	})
}

func play(env Env, s anim.Stepper, label string) {
	env.Logger.Debug("play", "label", label)
	if err := env.Director.Play(s); err != nil {
		env.Logger.Warn("animation stopped", "label", label, "err", err)
	}
}
