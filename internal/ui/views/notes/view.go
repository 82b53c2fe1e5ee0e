package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"lifeagent/internal/ui/theme"
)

type NotesPort interface {
	List(ctx context.Context) ([]string, error)
}

type LoadedMsg struct {
	Notes []string
	Err   error
}

type noteItem struct {
	index int
	text  string
}

func (i noteItem) Title() string       { return firstLine(i.text) }
func (i noteItem) Description() string { return fmt.Sprintf("#%d", i.index+1) }
func (i noteItem) FilterValue() string { return i.text }

type Model struct {
	port       NotesPort
	list       list.Model
	statusLine string
}

func New(port NotesPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Peach).BorderForeground(theme.Peach)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Peach)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Annotations"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		notes, err := port.List(ctx)
		return LoadedMsg{Notes: notes, Err: err}
	}
}

// Filtering reports whether the list is capturing keys for its filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(max(msg.Width-4, 0), max(msg.Height-6, 0))
		return m, nil
	case LoadedMsg:
		if msg.Err != nil {
			m.statusLine = "notes load failed: " + msg.Err.Error()
			return m, nil
		}
		m.statusLine = fmt.Sprintf("%d notes", len(msg.Notes))
		items := make([]list.Item, 0, len(msg.Notes))
		// Newest first.
		for i := len(msg.Notes) - 1; i >= 0; i-- {
			items = append(items, noteItem{index: i, text: msg.Notes[i]})
		}
		return m, m.list.SetItems(items)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.statusLine == "" {
		return m.list.View()
	}
	return m.list.View() + "\n" + theme.Muted.Render(m.statusLine)
}

func (m Model) StatusLine() string {
	return m.statusLine
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx] + " …"
	}
	return s
}
