// Package tui provides the Bubble Tea integration for motion.
// It runs the frame loop, maps keys to scene triggers, and draws the
// animated view.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame to step running animations.
// Loop identifies the frame loop that scheduled it; a model ignores frames
// from any loop but its own.
type FrameMsg struct {
	Loop uint64
	Time time.Time
}

var lastLoop atomic.Uint64

// newLoopID returns a process-unique frame loop id.
func newLoopID() uint64 {
	return lastLoop.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a frame message for loop at
// the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Loop: loop, Time: t}
	})
}
