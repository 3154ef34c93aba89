// Package clock provides the monotonic millisecond time source used to time
// animations. Production code uses Default; tests inject a Manual clock.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrBackwards is returned when a Manual clock is asked to move back in time.
var ErrBackwards = errors.New("clock: time cannot go backwards")

// Clock reports milliseconds since an arbitrary process-local epoch.
// Implementations must never return a smaller value than a previous call.
// Consecutive calls may return the same value.
type Clock interface {
	Now() int64
}

// Monotonic reads Go's monotonic clock, so wall-clock changes (date
// adjustments, NTP steps) do not affect it.
type Monotonic struct {
	epoch time.Time
}

// NewMonotonic creates a Monotonic clock whose epoch is the moment of the call.
func NewMonotonic() *Monotonic {
	return &Monotonic{epoch: time.Now()}
}

// Now returns whole milliseconds elapsed since the epoch.
func (m *Monotonic) Now() int64 {
	return time.Since(m.epoch).Milliseconds()
}

// Default is the process-wide clock.
var Default Clock = NewMonotonic()

// Manual is a clock that only moves when told to. Not safe for concurrent use.
type Manual struct {
	now int64
}

// NewManual creates a Manual clock reading start.
func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

// Now returns the current reading.
func (m *Manual) Now() int64 {
	return m.now
}

// Advance moves the clock forward by ms. Negative values are ignored.
func (m *Manual) Advance(ms int64) {
	if ms > 0 {
		m.now += ms
	}
}

// Set moves the clock to ms. It fails if ms is before the current reading.
func (m *Manual) Set(ms int64) error {
	if ms < m.now {
		return fmt.Errorf("clock: set %d before %d: %w", ms, m.now, ErrBackwards)
	}
	m.now = ms
	return nil
}

// Pausable wraps a clock and stops reading time while paused. Readings
// resume from where they stopped, so paused time never counts toward an
// animation's progress. Not safe for concurrent use.
type Pausable struct {
	base     Clock
	lost     int64 // total ms spent paused
	pausedAt int64
	paused   bool
}

// NewPausable wraps base, or Default when base is nil.
func NewPausable(base Clock) *Pausable {
	if base == nil {
		base = Default
	}
	return &Pausable{base: base}
}

// Now returns the base reading minus the time spent paused.
func (p *Pausable) Now() int64 {
	if p.paused {
		return p.pausedAt - p.lost
	}
	return p.base.Now() - p.lost
}

// Pause freezes the reading. Pausing twice has no effect.
func (p *Pausable) Pause() {
	if p.paused {
		return
	}
	p.pausedAt = p.base.Now()
	p.paused = true
}

// Resume continues from the frozen reading.
func (p *Pausable) Resume() {
	if !p.paused {
		return
	}
	p.lost += p.base.Now() - p.pausedAt
	p.paused = false
}

// Paused reports whether the clock is frozen.
func (p *Pausable) Paused() bool {
	return p.paused
}
