package anim

import "errors"

// ErrInvalidDuration is returned when an animation duration is shorter than
// one millisecond.
var ErrInvalidDuration = errors.New("anim: duration must be at least 1ms")

// ErrNotArmed is returned when an animation is ticked before Prep.
var ErrNotArmed = errors.New("anim: animation not armed")

// ErrNilTarget is returned when an animation has no target property.
var ErrNilTarget = errors.New("anim: nil target")

// ErrNilInterpolator is returned when a custom animation has no interpolator.
var ErrNilInterpolator = errors.New("anim: nil interpolator")
