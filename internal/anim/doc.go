// Package anim drives observable properties from one value to another over
// time.
//
// # Core Components
//
//   - [Animation]: a linear transition of one [observable.Value] from a start
//     value to an end value over a fixed duration. Armed with Prep, advanced
//     with Tick, queried with Progress and Finished.
//
//   - [Interpolator] and [Lerp]: pure blending functions. Lerp works for every
//     numeric type; integer results are truncated toward zero.
//
//   - [Drive] and [DriveSamples]: driver loops that tick a [Stepper] until it
//     finishes, either against a live clock or over a fixed list of samples.
//
//   - [Director]: where scenes hand animations. [Blocking] runs them to
//     completion on the spot; [Scheduler] advances them once per frame.
//
// # Timing
//
// Timestamps are milliseconds from a [clock.Clock]. Progress is
// (now - start) / duration and is clamped only by Tick: at or past the end
// the target receives exactly the end value, before the start it receives the
// start value. Drivers may use any non-decreasing sequence of timestamps.
//
// # Basic Usage
//
//	width := observable.New(0.0)
//	a, err := anim.New(width, 0, 500.64, 250*time.Millisecond)
//	if err != nil {
//	    return err
//	}
//	a.Prep()
//	return anim.Drive(ctx, a, clock.Default, time.Second/120, anim.Hooks{})
package anim
