package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-motion/internal/storage"
)

// Journal layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the label sidebar
	sidebarWidth       = 20  // Width of label sidebar
	maxRuns            = 100 // Max runs to load
)

// allLabels is the sidebar entry that shows every run.
const allLabels = "all"

// JournalKeyMap defines the key bindings for the journal.
type JournalKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLabel key.Binding
	PrevLabel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLabel, k.PrevLabel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLabel, k.PrevLabel},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLabel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next label"),
		),
		PrevLabel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev label"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing recorded runs.
type JournalModel struct {
	labels      []string
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	loadErr     error
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	renderer    *lipgloss.Renderer
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewJournalModel creates a journal model. A nil store shows an empty journal.
func NewJournalModel(store *storage.Store, width, height int, r *lipgloss.Renderer) JournalModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := JournalModel{
		labels:      []string{allLabels},
		store:       store,
		keys:        DefaultJournalKeyMap(),
		help:        help.New(),
		renderer:    r,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		if labels, err := store.Labels(); err == nil {
			m.labels = append(m.labels, labels...)
		} else {
			m.loadErr = err
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Label", Width: 10},
		{Title: "Scene", Width: 8},
		{Title: "Ticks", Width: 6},
		{Title: "Duration", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentLabel returns the store filter for the selected sidebar entry.
func (m JournalModel) currentLabel() string {
	if m.cursor == 0 {
		return ""
	}
	return m.labels[m.cursor]
}

func (m *JournalModel) loadRuns() {
	m.runs = nil
	if m.store != nil {
		runs, err := m.store.RecentRuns(m.currentLabel(), maxRuns)
		if err != nil {
			m.loadErr = err
		}
		m.runs = runs
	}
	m.updateTableRows()
}

func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Label,
			r.Scene,
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%dms", r.DurationMS),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLabel):
			m.cursor = (m.cursor + 1) % len(m.labels)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevLabel):
			m.cursor = (m.cursor - 1 + len(m.labels)) % len(m.labels)
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("JOURNAL - %s", m.labels[m.cursor])
	b.WriteString(centerText(titleStyle.Render(title), m.width, len(title)))
	b.WriteString("\n\n")

	boxStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m JournalModel) renderSidebar() string {
	sidebarStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Labels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.labels {
		cursor := "  "
		style := m.renderer.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := l
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}
	return sidebarStyle.Render(sidebar.String())
}

func (m JournalModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.renderer.NewStyle().Foreground(lipgloss.Color("9")).Render("journal unavailable: " + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		emptyStyle := m.renderer.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a scene to fill the journal!")
	}
	return m.table.View()
}

// Runs returns the runs currently shown.
func (m JournalModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunJournal(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewJournalModel(store, width, height, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(JournalModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
