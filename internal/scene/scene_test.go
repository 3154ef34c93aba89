package scene

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/ui"
)

// stepClock advances by step on every read.
type stepClock struct {
	now, step int64
}

func (c *stepClock) Now() int64 {
	n := c.now
	c.now += c.step
	return n
}

func TestRegistryHasBuiltins(t *testing.T) {
	want := []string{"fade", "follow", "slide", "width"}
	list := List()
	if len(list) != len(want) {
		t.Fatalf("List() = %d scenes, want %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("List()[%d].ID = %q, want %q", i, list[i].ID, id)
		}
		if !Exists(id) {
			t.Errorf("Exists(%q) = false", id)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register("width", func() Scene { return &Width{} })
}

func TestWidthBlockingReachesTarget(t *testing.T) {
	clk := &stepClock{step: 50}
	v := ui.NewView()
	s, err := Create("width")
	if err != nil {
		t.Fatal(err)
	}

	var seen []float64
	v.Frame.Size.Width.AddObserver(func(_, n float64) { seen = append(seen, n) })
	s.Build(v, Env{Director: anim.Blocking{Clock: clk}, Clock: clk, Duration: 250 * time.Millisecond})

	s.Trigger(v, 0)
	if got := v.Frame.Size.Width.Get(); got != 500.64 {
		t.Fatalf("width = %v, want 500.64", got)
	}
	// external write plus five ticks
	if len(seen) != 6 {
		t.Fatalf("observed %d writes, want 6: %v", len(seen), seen)
	}

	s.Trigger(v, 1)
	if got := v.Frame.Size.Width.Get(); got != 120 {
		t.Fatalf("width = %v, want 120", got)
	}
}

func TestWidthSchedulerGlides(t *testing.T) {
	clk := clock.NewManual(0)
	sched := anim.NewScheduler(clk, anim.Hooks{})
	v := ui.NewView()
	s := &Width{}
	s.Build(v, Env{Director: sched, Clock: clk, Duration: 200 * time.Millisecond, Targets: []float64{100}})

	s.Trigger(v, 0)
	if sched.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", sched.Active())
	}

	if _, err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if got := v.Frame.Size.Width.Get(); got != 0 {
		t.Errorf("width at t=0 = %v, want 0", got)
	}

	clk.Advance(100)
	if _, err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if got := v.Frame.Size.Width.Get(); got != 50 {
		t.Errorf("width at t=100 = %v, want 50", got)
	}

	clk.Advance(100)
	if _, err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if got := v.Frame.Size.Width.Get(); got != 100 {
		t.Errorf("width at t=200 = %v, want 100", got)
	}
	if sched.Active() != 0 {
		t.Errorf("Active() = %d after finish, want 0", sched.Active())
	}
}

func TestFadeBlendsChannels(t *testing.T) {
	clk := clock.NewManual(0)
	sched := anim.NewScheduler(clk, anim.Hooks{})
	v := ui.NewView()
	s := &Fade{}
	s.Build(v, Env{Director: sched, Clock: clk, Duration: time.Second})

	s.Trigger(v, 0)
	if sched.Active() != 3 {
		t.Fatalf("Active() = %d, want 3", sched.Active())
	}

	clk.Advance(333)
	if _, err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if got := v.Color.Hex(); got != "#aaaaaa" {
		t.Errorf("Hex() = %s, want #aaaaaa", got)
	}

	clk.Advance(667)
	if _, err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if got := v.Color.Hex(); got != "#000000" {
		t.Errorf("Hex() = %s, want #000000", got)
	}
}

func TestFollowChasesWidth(t *testing.T) {
	clk := clock.NewManual(0)
	sched := anim.NewScheduler(clk, anim.Hooks{})
	v := ui.NewView()
	s := &Follow{}
	s.Build(v, Env{Director: sched, Clock: clk, Duration: 100 * time.Millisecond})

	s.Trigger(v, 0)
	if got := v.Frame.Size.Width.Get(); got != 480 {
		t.Fatalf("width = %v, want 480 immediately", got)
	}

	clk.Advance(100)
	if _, err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if got := v.Frame.Size.Height.Get(); got != 480*followRatio {
		t.Errorf("height = %v, want %v", got, 480*followRatio)
	}
	if got := v.Color.R.Get(); got != 80 {
		t.Errorf("red = %d, want 80 (untouched)", got)
	}
}

func TestSlideVisitsCorners(t *testing.T) {
	clk := &stepClock{step: 100}
	v := ui.NewView()
	s := &Slide{}
	s.Build(v, Env{Director: anim.Blocking{Clock: clk}, Clock: clk, Duration: 100 * time.Millisecond, Targets: []float64{200}})

	want := [][2]float64{{200, 0}, {200, 100}, {0, 100}, {0, 0}}
	for step, w := range want {
		s.Trigger(v, step)
		got := [2]float64{v.Frame.Position.X.Get(), v.Frame.Position.Y.Get()}
		if got != w {
			t.Errorf("step %d: position = %v, want %v", step, got, w)
		}
	}
}

func TestEnvDefaults(t *testing.T) {
	env := Env{}.withDefaults()
	if env.Director == nil || env.Clock == nil || env.Logger == nil {
		t.Fatal("withDefaults left nil fields")
	}
	if env.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", env.Duration, DefaultDuration)
	}
	if got := env.target(3, 1, 2); got != 2 {
		t.Errorf("target(3) = %v, want 2", got)
	}
}

func TestWidthRetargetMidFlight(t *testing.T) {
	clk := clock.NewManual(0)
	sched := anim.NewScheduler(clk, anim.Hooks{})
	v := ui.NewView()
	s := &Width{}
	s.Build(v, Env{Director: sched, Clock: clk, Duration: 100 * time.Millisecond})

	s.Trigger(v, 0)
	step := func(ms int64) {
		t.Helper()
		clk.Advance(ms)
		if _, err := sched.Step(); err != nil {
			t.Fatal(err)
		}
	}
	step(0)
	step(50)

	s.Trigger(v, 1)
	if sched.Active() != 2 {
		t.Fatalf("Active() = %d after retarget, want 2", sched.Active())
	}

	// the first glide settles here; its final write must not start another
	step(50)
	if sched.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", sched.Active())
	}
	if got := v.Frame.Size.Width.Get(); got <= 120 || got >= 500.64 {
		t.Errorf("width = %v, want between 120 and 500.64", got)
	}

	step(50)
	if sched.Active() != 0 {
		t.Errorf("Active() = %d, want 0", sched.Active())
	}
	if got := v.Frame.Size.Width.Get(); got != 120 {
		t.Errorf("width = %v, want 120", got)
	}
}
