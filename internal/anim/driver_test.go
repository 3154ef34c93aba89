package anim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/observable"
)

// steppingClock advances by step on every read.
type steppingClock struct {
	now  int64
	step int64
}

func (c *steppingClock) Now() int64 {
	n := c.now
	c.now += c.step
	return n
}

type recorder struct {
	starts, ticks, finishes []Event
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnStart:  func(e Event) { r.starts = append(r.starts, e) },
		OnTick:   func(e Event) { r.ticks = append(r.ticks, e) },
		OnFinish: func(e Event) { r.finishes = append(r.finishes, e) },
	}
}

func TestDriveSamplesReferenceScenario(t *testing.T) {
	clk := clock.NewManual(0)
	width := observable.New(0.0)
	var seen []float64
	width.AddObserver(func(_, new float64) { seen = append(seen, new) })

	a, err := New(width, 0, 500.64, 250*time.Millisecond, WithClock(clk), WithLabel("width"))
	require.NoError(t, err)
	a.Prep()

	var rec recorder
	n, err := DriveSamples(a, []int64{0, 125, 250, 300, 400}, rec.hooks())
	require.NoError(t, err)

	assert.Equal(t, 3, n, "stops at the first finished sample")
	assert.Equal(t, []float64{0, 250.32, 500.64}, seen)
	require.Len(t, rec.ticks, 3)
	require.Len(t, rec.finishes, 1)
	assert.Equal(t, "width", rec.finishes[0].Label)
	assert.Equal(t, int64(250), rec.finishes[0].Now)
	assert.Equal(t, 1.0, rec.finishes[0].Progress)
	assert.Equal(t, 0.5, rec.ticks[1].Progress)
}

func TestDriveSamplesUnarmed(t *testing.T) {
	a, err := New(observable.New(0), 0, 1, time.Second)
	require.NoError(t, err)

	n, err := DriveSamples(a, []int64{1, 2}, Hooks{})
	assert.ErrorIs(t, err, ErrNotArmed)
	assert.Equal(t, 0, n)
}

func TestDriveSamplesNotFinished(t *testing.T) {
	clk := clock.NewManual(0)
	a, err := New(observable.New(0.0), 0, 1, time.Second, WithClock(clk))
	require.NoError(t, err)
	a.Prep()

	n, err := DriveSamples(a, []int64{10, 20}, Hooks{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, StatusRunning, a.Status())
}

func TestDriveTicksAtLeastOnce(t *testing.T) {
	clk := clock.NewManual(0)
	target := observable.New(0.0)
	a, err := New(target, 0, 9, 10*time.Millisecond, WithClock(clk))
	require.NoError(t, err)
	a.Prep()

	// already past the end before the driver starts
	clk.Advance(500)

	require.NoError(t, Drive(context.Background(), a, clk, time.Millisecond, Hooks{}))
	assert.Equal(t, 9.0, target.Get())
	assert.Equal(t, 1, a.Ticks())
}

func TestDriveRunsToCompletion(t *testing.T) {
	clk := &steppingClock{step: 40}
	target := observable.New(0)
	a, err := New(target, 0, 200, 200*time.Millisecond, WithClock(clk))
	require.NoError(t, err)
	a.Prep() // reads 0

	var rec recorder
	require.NoError(t, Drive(context.Background(), a, clk, 0, rec.hooks()))

	// samples 40, 80, 120, 160, 200
	assert.Equal(t, 5, a.Ticks())
	assert.Equal(t, 200, target.Get())
	assert.Len(t, rec.finishes, 1)
	assert.Empty(t, rec.starts, "Drive does not arm")
}

func TestDriveStopsOnContext(t *testing.T) {
	clk := clock.NewManual(0)
	target := observable.New(0.0)
	a, err := New(target, 0, 1, time.Hour, WithClock(clk))
	require.NoError(t, err)
	a.Prep()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = Drive(ctx, a, clk, 5*time.Millisecond, Hooks{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, a.Ticks(), 1)
	assert.Equal(t, StatusRunning, a.Status(), "target keeps its last value")
}

func TestDriveRealClock(t *testing.T) {
	target := observable.New(0.0)
	a, err := New(target, 0, 500.64, 30*time.Millisecond)
	require.NoError(t, err)

	var rec recorder
	b := Blocking{Interval: time.Millisecond, Hooks: rec.hooks()}
	require.NoError(t, b.Play(a))

	assert.Equal(t, 500.64, target.Get())
	assert.Equal(t, StatusFinished, a.Status())
	assert.Len(t, rec.starts, 1)
	assert.Len(t, rec.finishes, 1)
}

func TestBlockingDirectorFromListener(t *testing.T) {
	clk := &steppingClock{step: 50}
	width := observable.New(0.0)

	var logged []float64
	width.AddObserver(func(_, new float64) { logged = append(logged, new) })

	director := Blocking{Clock: clk}
	var current *Animation[float64]
	width.AddObserver(func(old, new float64) {
		if current != nil && current.Writing() {
			return
		}
		a, err := New(width, old, new, 250*time.Millisecond, WithClock(clk))
		require.NoError(t, err)
		current = a
		require.NoError(t, director.Play(a))
	})

	width.Set(500.64)

	// external write, then ticks at 50..250, then the outer store
	require.NotEmpty(t, logged)
	assert.Equal(t, 500.64, logged[0])
	assert.Equal(t, 500.64, logged[len(logged)-1])
	assert.Equal(t, 500.64, width.Get())
	assert.Equal(t, StatusFinished, current.Status())
	assert.Equal(t, 5, current.Ticks())
}

func TestHooksMerge(t *testing.T) {
	var order []string
	a := Hooks{OnTick: func(Event) { order = append(order, "a") }}
	b := Hooks{OnTick: func(Event) { order = append(order, "b") }, OnFinish: func(Event) { order = append(order, "b-finish") }}

	m := a.Merge(b, Hooks{})
	assert.Nil(t, m.OnStart)
	m.OnTick(Event{})
	m.OnFinish(Event{})

	assert.Equal(t, []string{"a", "b", "b-finish"}, order)
}
