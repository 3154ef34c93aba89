package anim

// Number is the set of types Lerp can blend.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Interpolator returns the value at progress between start and end.
// Progress 0 maps to start and 1 to end; values outside [0, 1] extrapolate.
type Interpolator[T any] func(start, end T, progress float64) T

// Lerp linearly interpolates between start and end.
//
// The blend is computed in float64 and converted back to T, so integer types
// truncate toward zero: Lerp(255, 0, 0.333) is 170, not 170.085. Progress 0
// and 1 return start and end unchanged; in between, 64-bit integers beyond
// 2^53 lose precision.
func Lerp[T Number](start, end T, progress float64) T {
	switch progress {
	case 0:
		return start
	case 1:
		return end
	}
	s := float64(start)
	return T(s + progress*(float64(end)-s))
}
