package anim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/observable"
)

// Status represents where an animation is in its lifecycle.
//
//	         Prep()               terminal value written
//	Unarmed ───────► Running ─────────────────────────► Finished
//	                    ▲                                   │
//	                    └───────────── Prep() ──────────────┘
type Status int

const (
	// StatusUnarmed means Prep has not been called yet.
	StatusUnarmed Status = iota
	// StatusRunning means the animation is armed and has not written its end value.
	StatusRunning
	// StatusFinished means a tick has written the end value.
	StatusFinished
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnarmed:
		return "unarmed"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures an Animation.
type Option func(*options)

type options struct {
	clock clock.Clock
	label string
}

// WithClock sets the clock Prep reads the start time from.
// Defaults to clock.Default.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLabel names the animation for logs, metrics and the journal.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// Animation moves a target property from Start to End over Duration.
//
// It is armed with Prep and advanced with Tick. Each Tick computes progress
// from the supplied timestamp and writes exactly one value into the target
// through its Set, which notifies the target's listeners. The target is not
// owned by the animation and must outlive it.
//
// An Animation is single-use: once finished, build a new one for the next
// transition (or call Prep again to replay the same one from the current time).
type Animation[T any] struct {
	target   *observable.Value[T]
	start    T
	end      T
	duration int64
	interp   Interpolator[T]
	clock    clock.Clock
	label    string

	startTime int64
	armed     bool
	settled   bool
	writing   bool
	ticks     int
}

// New creates a linear animation of target from start to end.
// The duration is truncated to whole milliseconds and must be at least 1ms.
func New[T Number](target *observable.Value[T], start, end T, d time.Duration, opts ...Option) (*Animation[T], error) {
	return NewWith(target, start, end, d, Lerp[T], opts...)
}

// NewWith creates an animation that blends values with interp.
func NewWith[T any](target *observable.Value[T], start, end T, d time.Duration, interp Interpolator[T], opts ...Option) (*Animation[T], error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if interp == nil {
		return nil, ErrNilInterpolator
	}
	ms := d.Milliseconds()
	if ms <= 0 {
		return nil, fmt.Errorf("anim: duration %v: %w", d, ErrInvalidDuration)
	}

	o := options{clock: clock.Default}
	for _, opt := range opts {
		opt(&o)
	}

	return &Animation[T]{
		target:   target,
		start:    start,
		end:      end,
		duration: ms,
		interp:   interp,
		clock:    o.clock,
		label:    o.label,
	}, nil
}

// Prep arms the animation, capturing the current clock reading as the start
// time. Calling Prep again restarts the animation from the current time with
// the same endpoints and duration, discarding any progress made so far.
func (a *Animation[T]) Prep() {
	a.startTime = a.clock.Now()
	a.armed = true
	a.settled = false
	a.ticks = 0
}

// Progress returns the elapsed fraction of the duration at now.
// It is exactly 0 when now equals the start time and is not clamped.
func (a *Animation[T]) Progress(now int64) float64 {
	delta := now - a.startTime
	if delta == 0 {
		return 0
	}
	return float64(delta) / float64(a.duration)
}

// ValueAt returns the interpolated value at progress p without clamping.
func (a *Animation[T]) ValueAt(p float64) T {
	return a.interp(a.start, a.end, p)
}

// Tick writes the value for now into the target.
//
// Progress at or beyond 1 writes End exactly, progress at or below 0 writes
// Start exactly, anything else writes ValueAt. Tick returns only after every listener of the
// target has run.
func (a *Animation[T]) Tick(now int64) error {
	if !a.armed {
		return ErrNotArmed
	}

	p := a.Progress(now)
	a.ticks++
	switch {
	case p >= 1:
		a.write(a.end)
		a.settled = true
	case p <= 0:
		a.write(a.start)
	default:
		a.write(a.ValueAt(p))
	}
	return nil
}

func (a *Animation[T]) write(v T) {
	a.writing = true
	defer func() { a.writing = false }()
	a.target.Set(v)
}

// Finished reports whether the duration has elapsed at now.
// It is false for an animation that has not been armed.
func (a *Animation[T]) Finished(now int64) bool {
	if !a.armed {
		return false
	}
	return a.Progress(now) >= 1
}

// Active reports whether the animation is armed and has not yet written its
// end value. Listeners on the target use it to recognise writes coming from
// this animation, including the final one.
func (a *Animation[T]) Active() bool {
	return a.armed && !a.settled
}

// Writing reports whether a Tick is currently assigning the target. It is
// true only inside the target's listeners during that assignment, which lets
// a listener that starts animations on its own property skip the writes the
// animation makes.
func (a *Animation[T]) Writing() bool {
	return a.writing
}

// Status returns the lifecycle state.
func (a *Animation[T]) Status() Status {
	switch {
	case !a.armed:
		return StatusUnarmed
	case a.settled:
		return StatusFinished
	default:
		return StatusRunning
	}
}

// Start returns the start value.
func (a *Animation[T]) Start() T { return a.start }

// End returns the end value.
func (a *Animation[T]) End() T { return a.end }

// Duration returns the animation length.
func (a *Animation[T]) Duration() time.Duration {
	return time.Duration(a.duration) * time.Millisecond
}

// StartTime returns the clock reading captured by the last Prep.
func (a *Animation[T]) StartTime() int64 { return a.startTime }

// Ticks returns the number of ticks since the last Prep.
func (a *Animation[T]) Ticks() int { return a.ticks }

// Target returns the property this animation writes to.
func (a *Animation[T]) Target() *observable.Value[T] { return a.target }

// Info describes the animation for hooks.
func (a *Animation[T]) Info() Info {
	return Info{
		Label:      a.label,
		StartTime:  a.startTime,
		DurationMS: a.duration,
		Ticks:      a.ticks,
	}
}
