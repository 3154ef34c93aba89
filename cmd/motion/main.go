// motion is a terminal playground for property animations: every write to a
// view's property can glide from its old value to the new one.
//
// Usage:
//
//	motion list                 - List available scenes
//	motion demo [scene]         - Run a scene in the console and log every write
//	motion play <scene>         - Play a scene full-screen
//	motion menu                 - Pick scenes interactively
//	motion journal [label]      - Show recorded animation runs
//	motion serve                - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.motion/config.yaml, ./configs/motion.yaml)
//	--fps <rate>        - Override the frame rate
//	--duration <d>      - Override the animation duration
//	--db <path>         - Override the journal database path
//	--log-level <level> - Override the log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-motion/internal/scene"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "motion",
	Short: "motion - animate view properties in your terminal",
	Long: `motion turns writes to a view's properties into timed transitions.
A scene listens to one property and, when it changes, animates it (or
another property) from the old value to the new one.

Available commands:
  list     - Show all available scenes
  demo     - Console run that logs every property write
  play     - Play a scene full-screen
  menu     - Interactive scene picker
  journal  - View recorded animation runs
  serve    - Start SSH server for remote sessions

Examples:
  motion list
  motion demo width
  motion play fade --duration 1s
  motion menu --fps 30
  motion serve --ssh :2222 --metrics :9090`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	pf.DurationVar(&flagDuration, "duration", 0, "Animation duration (0 = from config)")
	pf.StringVar(&flagDBPath, "db", "", "Path to journal database (empty = from config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (empty = from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(serveCmd)
}
