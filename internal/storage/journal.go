package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-motion/internal/anim"
)

// JournalHooks returns hooks that save a Run whenever an animation finishes.
// Save failures are logged and do not interrupt the animation.
func JournalHooks(store *Store, scene string, logger *log.Logger) anim.Hooks {
	return anim.Hooks{
		OnFinish: func(e anim.Event) {
			_, err := store.SaveRun(Run{
				Label:      e.Label,
				Scene:      scene,
				DurationMS: e.DurationMS,
				Ticks:      e.Ticks,
				StartTime:  e.StartTime,
			})
			if err != nil && logger != nil {
				logger.Warn("journal write failed", "label", e.Label, "err", err)
			}
		},
	}
}
