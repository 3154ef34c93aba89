package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/logging"
	"github.com/vovakirdan/tui-motion/internal/scene"
	"github.com/vovakirdan/tui-motion/internal/ui"
)

// chromeRows is the number of screen rows used by the status and help lines.
const chromeRows = 3

// Options configures a play session.
type Options struct {
	Runtime  core.RuntimeConfig
	Duration time.Duration
	// Targets returns per-scene trigger overrides. May be nil.
	Targets func(sceneID string) []float64
	// Hooks returns lifecycle hooks for a scene, e.g. metrics and the
	// journal. May be nil.
	Hooks  func(sceneID string) anim.Hooks
	Logger *log.Logger
	// Renderer styles output; nil uses the lipgloss default.
	Renderer *lipgloss.Renderer
}

func (o Options) targets(id string) []float64 {
	if o.Targets == nil {
		return nil
	}
	return o.Targets(id)
}

func (o Options) hooks(id string) anim.Hooks {
	if o.Hooks == nil {
		return anim.Hooks{}
	}
	return o.Hooks(id)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

// stage holds the mutable animation state shared by every copy of a Model.
type stage struct {
	scene scene.Scene
	view  *ui.View
	sched *anim.Scheduler
	clock *clock.Pausable
	step  int
}

// Model is the Bubble Tea model for playing one scene.
type Model struct {
	sceneID  string
	title    string
	opts     Options
	stage    *stage
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	frames   uint64
	loop     uint64
	lastErr  error
	quitting bool
	back     bool
}

// NewModel creates a play model for the registered scene id.
func NewModel(sceneID string, opts Options) (Model, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.Scale == (core.Scale{}) {
		opts.Runtime.Scale = core.DefaultScale()
	}

	m := Model{
		sceneID: sceneID,
		opts:    opts,
		loop:    newLoopID(),
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(0, opts.Runtime.ScreenH-chromeRows)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	m.title = m.stage.scene.Title()
	return m, nil
}

// reset builds a fresh view and scene. The stage is replaced, not mutated,
// so animations from the old stage stop with it.
func (m *Model) reset() error {
	sc, err := scene.Create(m.sceneID)
	if err != nil {
		return err
	}
	clk := clock.NewPausable(nil)
	sched := anim.NewScheduler(clk, m.opts.hooks(m.sceneID))
	view := ui.NewView()
	sc.Build(view, scene.Env{
		Director: sched,
		Clock:    clk,
		Duration: m.opts.Duration,
		Logger:   m.opts.logger(),
		Targets:  m.opts.targets(m.sceneID),
	})
	m.stage = &stage{scene: sc, view: view, sched: sched, clock: clk}
	m.lastErr = nil
	return nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-chromeRows))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if msg.Loop != m.loop || m.quitting || m.back {
			return m, nil
		}
		m.frame()
		return m, tickCmd(m.opts.Runtime.TickRate, m.loop)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.back = true
		return m, tea.Quit

	case core.ActionTrigger:
		m.Trigger()

	case core.ActionReset:
		if err := m.reset(); err != nil {
			m.lastErr = err
		}

	case core.ActionPause:
		if m.stage.clock.Paused() {
			m.stage.clock.Resume()
		} else {
			m.stage.clock.Pause()
		}
	}
	return m, nil
}

// Trigger performs the scene's next external write and steps once, so the
// next rendered frame already shows the animation's start value.
func (m *Model) Trigger() {
	st := m.stage
	st.scene.Trigger(st.view, st.step)
	st.step++
	m.opts.logger().Debug("trigger", "scene", m.sceneID, "step", st.step)
	m.stepOnce()
}

func (m *Model) frame() {
	m.frames++
	if m.stage.clock.Paused() {
		return
	}
	m.stepOnce()
}

func (m *Model) stepOnce() {
	if _, err := m.stage.sched.Step(); err != nil {
		m.lastErr = err
		m.opts.logger().Warn("frame step failed", "scene", m.sceneID, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	DrawView(m.screen, m.stage.view, m.opts.Runtime.Scale, m.screen.Bounds())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.opts.Renderer))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.helpStyle().Render(m.help.View(m.keys)))
	return b.String()
}

// status describes the view's current property values.
func (m Model) status() string {
	v := m.stage.view
	state := fmt.Sprintf("%d running", m.stage.sched.Active())
	if m.stage.clock.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf("%s  w=%.2f h=%.2f x=%.2f y=%.2f %s  %s",
		m.title,
		v.Frame.Size.Width.Get(), v.Frame.Size.Height.Get(),
		v.Frame.Position.X.Get(), v.Frame.Position.Y.Get(),
		v.Color.Hex(), state,
	)
	if m.lastErr != nil {
		line += "  error: " + m.lastErr.Error()
	}
	return line
}

func (m Model) helpStyle() lipgloss.Style {
	r := m.opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.NewStyle().Foreground(lipgloss.Color("241"))
}

// AnimatedView returns the view the scene animates.
func (m Model) AnimatedView() *ui.View {
	return m.stage.view
}

// Running returns the number of animations in flight.
func (m Model) Running() int {
	return m.stage.sched.Active()
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one scene.
// It returns true when the user left with "back" rather than "quit".
func Run(sceneID string, opts Options) (bool, error) {
	model, err := NewModel(sceneID, opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
