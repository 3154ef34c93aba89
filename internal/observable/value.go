// Package observable provides typed value cells that notify listeners
// synchronously whenever they are assigned.
//
// A Value is the building block for UI attributes such as position, size and
// color channels. Listeners receive the previous and the assigned value and run
// before the assignment is stored, so Get inside a listener still reports the
// previous value.
//
// Values are not safe for concurrent use. Every Set on a given Value must come
// from a single goroutine (or be serialized by the caller).
package observable

// Listener is called with the stored value and the value being assigned.
type Listener[T any] func(old, new T)

// Value is an observable cell holding a T.
type Value[T any] struct {
	value     T
	listeners []Listener[T]
}

// Float is an observable float64 property (sizes and positions).
type Float = Value[float64]

// Int is an observable int property (color channels).
type Int = Value[int]

// New creates a Value holding initial with no listeners.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the stored value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set notifies every listener in registration order with (old, val) and then
// stores val.
//
// The old value is captured once, before the first listener runs. A listener
// may call Set on this or any other Value; the nested call completes with its
// own notifications using whatever is stored at that moment. The outer call
// then continues with its original old and val and stores val last.
// Listeners added while Set is notifying are not called for that Set.
func (v *Value[T]) Set(val T) {
	old := v.value
	listeners := v.listeners[:len(v.listeners):len(v.listeners)]
	for _, l := range listeners {
		l(old, val)
	}
	v.value = val
}

// AddObserver appends l to the listener list. Nil listeners are ignored.
// Listeners cannot be removed.
func (v *Value[T]) AddObserver(l Listener[T]) {
	if l == nil {
		return
	}
	v.listeners = append(v.listeners, l)
}

// Observers returns the number of registered listeners.
func (v *Value[T]) Observers() int {
	return len(v.listeners)
}
