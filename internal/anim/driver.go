package anim

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-motion/internal/clock"
)

// Stepper is anything a driver can advance: Animation[T] for every T.
type Stepper interface {
	// Prep arms the stepper at the current time of its clock.
	Prep()
	// Tick writes the value for now into the target.
	Tick(now int64) error
	// Finished reports whether the duration has elapsed at now.
	Finished(now int64) bool
	// Info describes the stepper for hooks.
	Info() Info
}

// Info identifies a stepper and its timing.
type Info struct {
	Label      string
	StartTime  int64
	DurationMS int64
	Ticks      int
}

// Event is passed to Hooks.
type Event struct {
	Info
	Now      int64
	Progress float64
}

// Hooks observe animation lifecycle events. Nil fields are skipped.
type Hooks struct {
	// OnStart fires after a stepper is armed by a Director.
	OnStart func(Event)
	// OnTick fires after every tick.
	OnTick func(Event)
	// OnFinish fires after the tick that reached the end of the duration.
	OnFinish func(Event)
}

// Merge returns hooks that call h and then every hook in others.
func (h Hooks) Merge(others ...Hooks) Hooks {
	all := append([]Hooks{h}, others...)
	fan := func(pick func(Hooks) func(Event)) func(Event) {
		var fns []func(Event)
		for _, hk := range all {
			if fn := pick(hk); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(e Event) {
			for _, fn := range fns {
				fn(e)
			}
		}
	}
	return Hooks{
		OnStart:  fan(func(hk Hooks) func(Event) { return hk.OnStart }),
		OnTick:   fan(func(hk Hooks) func(Event) { return hk.OnTick }),
		OnFinish: fan(func(hk Hooks) func(Event) { return hk.OnFinish }),
	}
}

func (h Hooks) start(s Stepper, now int64) {
	if h.OnStart != nil {
		h.OnStart(newEvent(s, now))
	}
}

func (h Hooks) tick(s Stepper, now int64) {
	if h.OnTick != nil {
		h.OnTick(newEvent(s, now))
	}
}

func (h Hooks) finish(s Stepper, now int64) {
	if h.OnFinish != nil {
		h.OnFinish(newEvent(s, now))
	}
}

func newEvent(s Stepper, now int64) Event {
	info := s.Info()
	e := Event{Info: info, Now: now}
	if info.DurationMS > 0 && now != info.StartTime {
		e.Progress = float64(now-info.StartTime) / float64(info.DurationMS)
	}
	return e
}

// step performs one driver iteration and reports whether the stepper is done.
func step(s Stepper, now int64, hooks Hooks) (bool, error) {
	if err := s.Tick(now); err != nil {
		return false, err
	}
	hooks.tick(s, now)
	if s.Finished(now) {
		hooks.finish(s, now)
		return true, nil
	}
	return false, nil
}

// Drive ticks an armed stepper against clk until it finishes, waiting
// interval between ticks. It always ticks at least once, so an animation that
// is already past its duration still writes its end value.
//
// If ctx ends first, Drive returns ctx.Err() and the target keeps the last
// value written.
func Drive(ctx context.Context, s Stepper, clk clock.Clock, interval time.Duration, hooks Hooks) error {
	var timer *time.Timer
	for {
		done, err := step(s, clk.Now(), hooks)
		if err != nil || done {
			return err
		}

		if interval <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		if timer == nil {
			timer = time.NewTimer(interval)
			defer timer.Stop()
		} else {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// DriveSamples replays samples, ticking once per sample until the stepper
// finishes. Samples must not decrease. It returns the number of ticks made.
func DriveSamples(s Stepper, samples []int64, hooks Hooks) (int, error) {
	for i, now := range samples {
		done, err := step(s, now, hooks)
		if err != nil {
			return i, err
		}
		if done {
			return i + 1, nil
		}
	}
	return len(samples), nil
}

// Director starts steppers. Scenes hand animations to a Director without
// knowing whether they run to completion immediately or frame by frame.
type Director interface {
	Play(s Stepper) error
}

// Blocking is a Director that runs each stepper to completion inside Play,
// sleeping Interval between ticks.
type Blocking struct {
	Ctx      context.Context
	Clock    clock.Clock
	Interval time.Duration
	Hooks    Hooks
}

// Play arms s and drives it until it finishes or Ctx ends.
func (b Blocking) Play(s Stepper) error {
	ctx := b.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	clk := b.Clock
	if clk == nil {
		clk = clock.Default
	}

	s.Prep()
	b.Hooks.start(s, s.Info().StartTime)
	return Drive(ctx, s, clk, b.Interval, b.Hooks)
}
