package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/platform/tui"
	"github.com/vovakirdan/tui-motion/internal/scene"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene full-screen",
	Long: `Starts a scene in full-screen mode.

Controls:
  space/enter - Trigger the next write
  r           - Reset the scene
  p           - Pause or resume time
  q           - Quit

Examples:
  motion play width
  motion play slide --duration 600ms`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := args[0]
	if !scene.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'motion list' to see available scenes.")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog := tuiLogger(cfg)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	opts := playOptions(cfg, runtimeConfig(cfg), journalHooks(store, logger), logger)
	if _, err := tui.Run(sceneID, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
