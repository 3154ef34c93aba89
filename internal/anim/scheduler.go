package anim

import (
	"errors"

	"github.com/vovakirdan/tui-motion/internal/clock"
)

// Scheduler is a Director for frame loops. Play arms a stepper and queues it;
// Step, called once per frame, samples the clock and ticks every queued
// stepper in the order it was played. Finished steppers are dropped after the
// tick that wrote their end value.
//
// A Scheduler is not safe for concurrent use; call it from the goroutine that
// owns the animated properties.
type Scheduler struct {
	clock   clock.Clock
	hooks   Hooks
	active  []Stepper
	cleared bool
}

// NewScheduler creates a Scheduler sampling clk.
// The clock should be the one the scheduled animations were built with.
func NewScheduler(clk clock.Clock, hooks Hooks) *Scheduler {
	if clk == nil {
		clk = clock.Default
	}
	return &Scheduler{clock: clk, hooks: hooks}
}

// Play arms s and queues it for the next Step.
func (s *Scheduler) Play(st Stepper) error {
	st.Prep()
	s.hooks.start(st, st.Info().StartTime)
	s.active = append(s.active, st)
	return nil
}

// Step ticks every queued stepper once at the current time and returns the
// number still running. Steppers played from inside a tick start on the next
// Step. Tick errors are collected and the failing stepper is dropped.
func (s *Scheduler) Step() (int, error) {
	if len(s.active) == 0 {
		return 0, nil
	}

	now := s.clock.Now()
	current := s.active
	s.active = nil
	s.cleared = false

	var errs []error
	remaining := make([]Stepper, 0, len(current))
	for _, st := range current {
		if s.cleared {
			break
		}
		done, err := step(st, now, s.hooks)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !done {
			remaining = append(remaining, st)
		}
	}

	// a Clear from a listener drops the survivors too
	if s.cleared {
		return len(s.active), errors.Join(errs...)
	}
	// keep anything played during this step after the survivors
	s.active = append(remaining, s.active...)
	return len(s.active), errors.Join(errs...)
}

// Active returns the number of queued steppers.
func (s *Scheduler) Active() int {
	return len(s.active)
}

// Clear drops every queued stepper. Targets keep their last written values.
// Called from a listener during Step, it also stops the rest of that frame;
// steppers played after the Clear stay queued.
func (s *Scheduler) Clear() {
	s.active = nil
	s.cleared = true
}
