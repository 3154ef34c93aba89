package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/logging"
	"github.com/vovakirdan/tui-motion/internal/platform/tui"
	"github.com/vovakirdan/tui-motion/internal/storage"
)

// Global flags
var (
	flagConfig   string
	flagFPS      int
	flagDuration time.Duration
	flagDBPath   string
	flagLogLevel string
)

// loadConfig reads the config file and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Animation.TickRate = flagFPS
	}
	if flagDuration > 0 {
		cfg.Animation.DurationMS = int(flagDuration.Milliseconds())
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the process logger writing to w.
func newLogger(cfg config.Config, prefix string, w io.Writer) *log.Logger {
	l := logging.New(cfg.Logging.Level, prefix, w)
	l.SetReportTimestamp(cfg.Logging.Timestamps)
	return l
}

// tuiLogger logs to ~/.motion/motion.log, since stderr belongs to the
// alternate screen while a TUI runs. The returned close func is never nil.
func tuiLogger(cfg config.Config) (*log.Logger, func()) {
	path := config.ExpandHome(filepath.Join("~", ".motion", "motion.log"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logging.Nop(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Nop(), func() {}
	}
	return newLogger(cfg, "motion", f), func() { f.Close() }
}

// openStore opens the journal. Failures are logged and yield a nil store;
// the journal is best-effort.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open journal", "path", cfg.Storage.DBPath, "err", err)
		return nil
	}
	return store
}

// journalHooks returns a hook factory recording finished runs in store.
func journalHooks(store *storage.Store, logger *log.Logger) func(string) anim.Hooks {
	return func(sceneID string) anim.Hooks {
		if store == nil {
			return anim.Hooks{}
		}
		return storage.JournalHooks(store, sceneID, logger)
	}
}

// runtimeConfig sizes the frame loop to the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = cfg.Animation.TickRate
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}

// playOptions assembles the options shared by play, menu, and serve.
func playOptions(cfg config.Config, rt core.RuntimeConfig, hooks func(string) anim.Hooks, logger *log.Logger) tui.Options {
	return tui.Options{
		Runtime:  rt,
		Duration: cfg.Duration(),
		Targets:  cfg.Targets,
		Hooks:    hooks,
		Logger:   logger,
	}
}
