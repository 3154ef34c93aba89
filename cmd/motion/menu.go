package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes interactively",
	Long: `Opens a scene picker. Selecting a scene plays it; leaving the
scene with esc returns to the picker. Tab opens the run journal.`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := tuiLogger(cfg)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig(cfg)
	hooks := journalHooks(store, logger)

	for {
		result, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		rt = result.Config

		if result.WantsJournal {
			goBack, err := tui.RunJournal(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}
			continue
		}

		goBack, err := tui.Run(result.SceneID, playOptions(cfg, rt, hooks, logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !goBack {
			return
		}
	}
}
