package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/observable"
	"github.com/vovakirdan/tui-motion/internal/scene"
	"github.com/vovakirdan/tui-motion/internal/ui"
)

var flagDemoSteps int

var demoCmd = &cobra.Command{
	Use:   "demo [scene]",
	Short: "Run a scene in the console",
	Long: `Builds a scene, performs its triggers one after another, and logs
every property write. Each trigger blocks until its transitions finish.

Examples:
  motion demo                 # width, one trigger (0 -> 500.64)
  motion demo fade --steps 2  # fade to black and back
  motion demo slide --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoSteps, "steps", 1, "Number of triggers to perform")
}

func runDemo(_ *cobra.Command, args []string) {
	sceneID := "width"
	if len(args) > 0 {
		sceneID = args[0]
	}

	cfg := loadConfig()
	logger := newLogger(cfg, "motion", os.Stderr)

	s, err := scene.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'motion list' to see available scenes.")
		os.Exit(1)
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := ui.NewView()
	observeView(v, logger)

	hooks := journalHooks(store, logger)(sceneID).Merge(anim.Hooks{
		OnFinish: func(e anim.Event) {
			logger.Info("finished", "label", e.Label, "ticks", e.Ticks, "ms", e.Now-e.StartTime)
		},
	})
	s.Build(v, scene.Env{
		Director: anim.Blocking{Ctx: ctx, Clock: clock.Default, Interval: cfg.TickInterval(), Hooks: hooks},
		Clock:    clock.Default,
		Duration: cfg.Duration(),
		Logger:   logger,
		Targets:  cfg.Targets(sceneID),
	})

	for step := 0; step < flagDemoSteps; step++ {
		if ctx.Err() != nil {
			break
		}
		logger.Info("trigger", "scene", sceneID, "step", step)
		s.Trigger(v, step)
	}
	logger.Info("done", "width", v.Frame.Size.Width.Get(), "height", v.Frame.Size.Height.Get(),
		"x", v.Frame.Position.X.Get(), "y", v.Frame.Position.Y.Get(), "color", v.Color.Hex())
}

// observeView logs every write to every property of v.
func observeView(v *ui.View, logger *log.Logger) {
	logFloat(v.Frame.Size.Width, "width", logger)
	logFloat(v.Frame.Size.Height, "height", logger)
	logFloat(v.Frame.Position.X, "x", logger)
	logFloat(v.Frame.Position.Y, "y", logger)
	logInt(v.Color.R, "r", logger)
	logInt(v.Color.G, "g", logger)
	logInt(v.Color.B, "b", logger)
}

func logFloat(p *observable.Float, name string, logger *log.Logger) {
	p.AddObserver(func(old, new float64) {
		logger.Info(name, "old", old, "new", new)
	})
}

func logInt(p *observable.Int, name string, logger *log.Logger) {
	p.AddObserver(func(old, new int) {
		logger.Info(name, "old", old, "new", new)
	})
}
