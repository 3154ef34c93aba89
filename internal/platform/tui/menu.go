package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/scene"
)

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	items       []scene.Info
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model
	renderer    *lipgloss.Renderer
	quitting    bool
	selected    *scene.Info
	openJournal bool
}

// NewMenuModel creates a new menu model listing every registered scene.
func NewMenuModel(cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return MenuModel{
		items:    scene.List(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		renderer: r,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case core.ActionJournal:
		m.openJournal = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  M O T I O N  "), m.width, 15))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scene", m.width, 0))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %s", item.ID, item.Title)
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("> %-8s %s", item.ID, item.Title))
		}
		b.WriteString(centerText(line, m.width, 20))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected scene, or nil if none selected.
func (m MenuModel) Selected() *scene.Info {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsJournal returns true if user requested the journal.
func (m MenuModel) WantsJournal() bool {
	return m.openJournal
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text to center it within width. visible is the printed
// width of text when it carries escape codes; 0 means len(text).
func centerText(text string, width, visible int) string {
	if visible <= 0 {
		visible = len(text)
	}
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID      string
	Config       core.RuntimeConfig
	WantsJournal bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result summarizes how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsJournal():
		result.WantsJournal = true
	case m.Selected() != nil:
		result.SceneID = m.Selected().ID
	default:
		result.Quit = true
	}
	return result
}
