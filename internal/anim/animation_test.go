package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/observable"
)

func newArmed[T Number](t *testing.T, start, end T, d time.Duration) (*Animation[T], *observable.Value[T], int64) {
	t.Helper()
	clk := clock.NewManual(1000)
	target := observable.New(start)
	a, err := New(target, start, end, d, WithClock(clk))
	require.NoError(t, err)
	a.Prep()
	return a, target, a.StartTime()
}

func TestNewRejectsInvalidInput(t *testing.T) {
	target := observable.New(0.0)

	tests := []struct {
		name string
		d    time.Duration
		err  error
	}{
		{"zero duration", 0, ErrInvalidDuration},
		{"negative duration", -time.Second, ErrInvalidDuration},
		{"sub-millisecond duration", 500 * time.Microsecond, ErrInvalidDuration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(target, 0, 1, tc.d)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := New[float64](nil, 0, 1, time.Second)
	assert.ErrorIs(t, err, ErrNilTarget)

	_, err = NewWith(target, 0, 1, time.Second, nil)
	assert.ErrorIs(t, err, ErrNilInterpolator)
}

func TestTickBeforePrep(t *testing.T) {
	target := observable.New(3.0)
	a, err := New(target, 0, 10, time.Second, WithClock(clock.NewManual(0)))
	require.NoError(t, err)

	assert.Equal(t, StatusUnarmed, a.Status())
	assert.ErrorIs(t, a.Tick(500), ErrNotArmed)
	assert.False(t, a.Finished(5000))
	assert.False(t, a.Active())
	assert.Equal(t, 3.0, target.Get(), "target untouched")
}

func TestReferenceScenario(t *testing.T) {
	a, target, t0 := newArmed(t, 0.0, 500.64, 250*time.Millisecond)

	steps := []struct {
		offset   int64
		want     float64
		finished bool
	}{
		{0, 0.0, false},
		{125, 250.32, false},
		{250, 500.64, true},
		{300, 500.64, true},
	}
	for _, s := range steps {
		require.NoError(t, a.Tick(t0+s.offset))
		assert.Equal(t, s.want, target.Get(), "offset %d", s.offset)
		assert.Equal(t, s.finished, a.Finished(t0+s.offset), "offset %d", s.offset)
	}
	assert.Equal(t, StatusFinished, a.Status())
	assert.Equal(t, 4, a.Ticks())
}

func TestProgress(t *testing.T) {
	a, _, t0 := newArmed(t, 0.0, 1.0, time.Second)

	assert.Equal(t, 0.0, a.Progress(t0))
	assert.Equal(t, 0.25, a.Progress(t0+250))
	assert.Equal(t, 1.0, a.Progress(t0+1000))
	assert.Equal(t, 1.5, a.Progress(t0+1500), "not clamped")
	assert.Equal(t, -0.1, a.Progress(t0-100), "not clamped")
}

func TestValueAtExtrapolates(t *testing.T) {
	a, _, _ := newArmed(t, 10.0, 20.0, time.Second)
	assert.Equal(t, 25.0, a.ValueAt(1.5))
	assert.Equal(t, 5.0, a.ValueAt(-0.5))
}

func TestTickEndpointsAndMidpoint(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		d          int64
	}{
		{"rising", 0.1, 0.3, 1000},
		{"falling", 300, -42.5, 250},
		{"odd duration", 1.0 / 3, 7.77, 333},
		{"constant", 5, 5, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, target, t0 := newArmed(t, tc.start, tc.end, time.Duration(tc.d)*time.Millisecond)

			require.NoError(t, a.Tick(t0))
			assert.Equal(t, tc.start, target.Get())

			require.NoError(t, a.Tick(t0+tc.d/2))
			p := a.Progress(t0 + tc.d/2)
			assert.Equal(t, tc.start+p*(tc.end-tc.start), target.Get())

			require.NoError(t, a.Tick(t0+tc.d))
			assert.Equal(t, tc.end, target.Get(), "end is exact")
		})
	}
}

func TestExactMidpoint(t *testing.T) {
	a, target, t0 := newArmed(t, 12.0, 80.0, 200*time.Millisecond)
	require.NoError(t, a.Tick(t0+100))
	assert.Equal(t, 12.0+(80.0-12.0)*0.5, target.Get())
}

func TestTickBeforeStartClampsToStart(t *testing.T) {
	a, target, t0 := newArmed(t, 4.0, 8.0, time.Second)
	target.Set(-1)

	require.NoError(t, a.Tick(t0-50))
	assert.Equal(t, 4.0, target.Get())
	assert.Equal(t, StatusRunning, a.Status())
}

func TestTerminalClampIsIdempotent(t *testing.T) {
	a, target, t0 := newArmed(t, 0.7, 0.1, 90*time.Millisecond)
	for i := int64(0); i < 50; i++ {
		require.NoError(t, a.Tick(t0+90+i*37))
		require.Equal(t, 0.1, target.Get())
		require.True(t, a.Finished(t0+90+i*37))
	}
}

func TestMonotoneApproach(t *testing.T) {
	for _, tc := range []struct{ start, end float64 }{{0, 500.64}, {255, 0}, {-3, 3}} {
		a, target, t0 := newArmed(t, tc.start, tc.end, 250*time.Millisecond)
		prevDist := math.Inf(1)
		for off := int64(0); off <= 250; off += 7 {
			require.NoError(t, a.Tick(t0+off))
			dist := math.Abs(tc.end - target.Get())
			require.LessOrEqual(t, dist, prevDist, "offset %d", off)
			prevDist = dist
		}
	}
}

func TestIntegerTruncation(t *testing.T) {
	a, target, t0 := newArmed(t, 120, 0, time.Second)
	require.NoError(t, a.Tick(t0+500))
	assert.Equal(t, 60, target.Get())

	b, target2, t1 := newArmed(t, 255, 0, time.Second)
	require.NoError(t, b.Tick(t1+333))
	// 255 + 0.333*(0-255) = 170.085
	assert.Equal(t, 170, target2.Get())

	require.NoError(t, b.Tick(t1+999))
	// 255 - 254.745 = 0.255, truncated
	assert.Equal(t, 0, target2.Get())
	assert.False(t, b.Finished(t1+999))
}

func TestWideIntegerEndpointsAreExact(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end int64
		}{
			{"above 2^53", 1<<53 + 1, 0},
			{"max to min", math.MaxInt64, math.MinInt64},
			{"min to max", math.MinInt64 + 1, math.MaxInt64},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				a, target, t0 := newArmed(t, tc.start, tc.end, time.Second)
				require.NoError(t, a.Tick(t0))
				assert.Equal(t, tc.start, target.Get())
				require.NoError(t, a.Tick(t0+1000))
				assert.Equal(t, tc.end, target.Get())
			})
		}
	})

	t.Run("uint64", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end uint64
		}{
			{"max to zero", math.MaxUint64, 0},
			{"zero to max", 0, math.MaxUint64},
			{"above 2^53", 1<<53 + 1, 1<<53 + 3},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				a, target, t0 := newArmed(t, tc.start, tc.end, time.Second)
				require.NoError(t, a.Tick(t0))
				assert.Equal(t, tc.start, target.Get())
				require.NoError(t, a.Tick(t0+1000))
				assert.Equal(t, tc.end, target.Get())
			})
		}
	})
}

func TestLerpEndpointsPassThrough(t *testing.T) {
	assert.Equal(t, int64(1<<53+1), Lerp(int64(1<<53+1), 0, 0))
	assert.Equal(t, uint64(math.MaxUint64), Lerp(0, uint64(math.MaxUint64), 1))
	assert.Equal(t, 0.3, Lerp(0.1, 0.3, 1))
}

func TestIntegerNeverOvershootsDownward(t *testing.T) {
	a, target, t0 := newArmed(t, 0, 255, time.Second)
	for off := int64(0); off <= 1000; off += 13 {
		require.NoError(t, a.Tick(t0+off))
		require.LessOrEqual(t, target.Get(), 255)
		require.GreaterOrEqual(t, target.Get(), 0)
	}
}

func TestTickNotifiesListeners(t *testing.T) {
	a, target, t0 := newArmed(t, 0.0, 100.0, 100*time.Millisecond)

	type change struct{ old, new float64 }
	var changes []change
	target.AddObserver(func(old, new float64) {
		changes = append(changes, change{old, new})
	})

	require.NoError(t, a.Tick(t0))
	require.NoError(t, a.Tick(t0+50))
	require.NoError(t, a.Tick(t0+100))

	assert.Equal(t, []change{{0, 0}, {0, 50}, {50, 100}}, changes)
}

func TestActiveDuringFinalWrite(t *testing.T) {
	a, target, t0 := newArmed(t, 0.0, 10.0, 100*time.Millisecond)

	var activeSeen, writingSeen []bool
	target.AddObserver(func(_, _ float64) {
		activeSeen = append(activeSeen, a.Active())
		writingSeen = append(writingSeen, a.Writing())
	})

	require.NoError(t, a.Tick(t0+50))
	require.NoError(t, a.Tick(t0+100))
	target.Set(3)

	assert.Equal(t, []bool{true, true, false}, activeSeen)
	assert.Equal(t, []bool{true, true, false}, writingSeen)
	assert.False(t, a.Active())
	assert.False(t, a.Writing())
	assert.Equal(t, StatusFinished, a.Status())
}

func TestPrepAgainRestarts(t *testing.T) {
	clk := clock.NewManual(0)
	target := observable.New(0.0)
	a, err := New(target, 0, 100, 100*time.Millisecond, WithClock(clk))
	require.NoError(t, err)

	a.Prep()
	clk.Advance(150)
	require.NoError(t, a.Tick(clk.Now()))
	require.Equal(t, StatusFinished, a.Status())

	a.Prep()
	assert.Equal(t, int64(150), a.StartTime())
	assert.Equal(t, StatusRunning, a.Status())
	assert.Equal(t, 0, a.Ticks())

	clk.Advance(25)
	require.NoError(t, a.Tick(clk.Now()))
	assert.Equal(t, 25.0, target.Get())
}

func TestAccessors(t *testing.T) {
	target := observable.New(int64(0))
	a, err := New(target, 1, 9, 1500*time.Millisecond, WithLabel("x"), WithClock(clock.NewManual(42)))
	require.NoError(t, err)
	a.Prep()

	assert.Equal(t, int64(1), a.Start())
	assert.Equal(t, int64(9), a.End())
	assert.Equal(t, 1500*time.Millisecond, a.Duration())
	assert.Same(t, target, a.Target())
	assert.Equal(t, Info{Label: "x", StartTime: 42, DurationMS: 1500}, a.Info())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unarmed", StatusUnarmed.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "finished", StatusFinished.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}

func TestCustomInterpolator(t *testing.T) {
	type pair struct{ A, B float64 }
	target := observable.New(pair{})
	lerpPair := func(s, e pair, p float64) pair {
		return pair{Lerp(s.A, e.A, p), Lerp(s.B, e.B, p)}
	}
	clk := clock.NewManual(0)
	a, err := NewWith(target, pair{0, 10}, pair{10, 0}, 100*time.Millisecond, lerpPair, WithClock(clk))
	require.NoError(t, err)
	a.Prep()

	require.NoError(t, a.Tick(50))
	assert.Equal(t, pair{5, 5}, target.Get())
}
