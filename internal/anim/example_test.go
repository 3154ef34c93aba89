package anim_test

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/observable"
)

// This example animates a width property and prints every write.
func ExampleAnimation() {
	clk := clock.NewManual(0)
	width := observable.New(0.0)
	width.AddObserver(func(old, current float64) {
		fmt.Printf("width %.2f -> %.2f\n", old, current)
	})

	a, err := anim.New(width, 0, 500.64, 250*time.Millisecond, anim.WithClock(clk))
	if err != nil {
		panic(err)
	}
	a.Prep()

	for _, now := range []int64{0, 125, 250, 300} {
		if err := a.Tick(now); err != nil {
			panic(err)
		}
	}
	fmt.Println("finished:", a.Finished(300))

	// Output:
	// width 0.00 -> 0.00
	// width 0.00 -> 250.32
	// width 250.32 -> 500.64
	// width 500.64 -> 500.64
	// finished: true
}

// This example blends integer color channels, which truncate toward zero.
func ExampleLerp() {
	fmt.Println(anim.Lerp(255, 0, 0.333))
	fmt.Println(anim.Lerp(120, 0, 0.5))
	fmt.Printf("%.2f\n", anim.Lerp(0.0, 500.64, 0.5))

	// Output:
	// 170
	// 60
	// 250.32
}

// This example replays a fixed set of timestamps through a frame scheduler.
func ExampleScheduler() {
	clk := clock.NewManual(0)
	red := observable.New(255)

	s := anim.NewScheduler(clk, anim.Hooks{
		OnFinish: func(e anim.Event) { fmt.Println("done:", e.Label, "after", e.Ticks, "ticks") },
	})
	a, _ := anim.New(red, 255, 0, time.Second, anim.WithClock(clk), anim.WithLabel("red"))
	_ = s.Play(a)

	for s.Active() > 0 {
		clk.Advance(400)
		_, _ = s.Step()
		fmt.Println("red:", red.Get())
	}

	// Output:
	// red: 153
	// red: 51
	// done: red after 3 ticks
	// red: 0
}
