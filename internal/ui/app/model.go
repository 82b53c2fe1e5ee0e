package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	daemondto "lifeagent/internal/modules/daemon/dto"
	"lifeagent/internal/ui/theme"
	focusview "lifeagent/internal/ui/views/focus"
	notesview "lifeagent/internal/ui/views/notes"
)

const refreshInterval = 2 * time.Second

type daemonPort interface {
	Status(ctx context.Context) (daemondto.RuntimeStatusOutput, error)
}

type notesPort interface {
	List(ctx context.Context) ([]string, error)
}

type tabID int

const (
	tabFocus tabID = iota
	tabNotes
	tabCount
)

var tabLabels = [tabCount]string{"Focus", "Notes"}

type tickMsg time.Time

type keyMap struct {
	Tab     key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch view")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Refresh}, {k.Help, k.Quit}}
}

// Model is the root dashboard. It routes keys between the focus and notes views
// and polls the daemon on a fixed interval.
type Model struct {
	focusView focusview.Model
	notesView notesview.Model
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	width     int
	height    int
}

func NewModel(daemon daemonPort, notes notesPort, threshold time.Duration) Model {
	var focusPort focusview.StatusPort
	if daemon != nil {
		focusPort = daemon
	}
	var notesPort notesview.NotesPort
	if notes != nil {
		notesPort = notes
	}
	return Model{
		focusView: focusview.New(focusPort, threshold),
		notesView: notesview.New(notesPort),
		activeTab: tabFocus,
		keys:      defaultKeys(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.focusView.Init(), m.notesView.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var focusCmd, notesCmd tea.Cmd
		m.focusView, focusCmd = m.focusView.Update(msg)
		m.notesView, notesCmd = m.notesView.Update(msg)
		return m, tea.Batch(focusCmd, notesCmd)

	case tickMsg:
		return m, tea.Batch(m.focusView.Refresh(), tick())

	case focusview.StatusMsg:
		var cmd tea.Cmd
		m.focusView, cmd = m.focusView.Update(msg)
		return m, cmd

	case notesview.LoadedMsg:
		var cmd tea.Cmd
		m.notesView, cmd = m.notesView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabNotes && m.notesView.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(m.focusView.Refresh(), m.notesView.Reload())
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabFocus:
		m.focusView, cmd = m.focusView.Update(msg)
	case tabNotes:
		m.notesView, cmd = m.notesView.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = m.help.FullHelpView(m.keys.FullHelp())
	case m.activeTab == tabNotes:
		body = m.notesView.View()
	default:
		body = m.focusView.View()
	}
	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, m.renderTabBar(), "", body, "", footer))
}

func (m Model) renderTabBar() string {
	tabs := make([]string, 0, tabCount)
	for i, label := range tabLabels {
		if tabID(i) == m.activeTab {
			tabs = append(tabs, theme.TabActive.Render(label))
			continue
		}
		tabs = append(tabs, theme.Tab.Render(label))
	}
	return strings.Join(tabs, theme.Muted.Render("│"))
}
