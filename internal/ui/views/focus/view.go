package focus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	daemondto "lifeagent/internal/modules/daemon/dto"
	"lifeagent/internal/ui/theme"
)

type StatusPort interface {
	Status(ctx context.Context) (daemondto.RuntimeStatusOutput, error)
}

type StatusMsg struct {
	Status daemondto.RuntimeStatusOutput
	Err    error
}

const barWidth = 24

type Model struct {
	port      StatusPort
	threshold time.Duration
	status    daemondto.RuntimeStatusOutput
	err       error
	loading   bool
	now       func() time.Time
	detail    viewport.Model
	spinner   spinner.Model
	width     int
	height    int
}

func New(port StatusPort, threshold time.Duration) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Peach)

	return Model{
		port:      port,
		threshold: threshold,
		loading:   port != nil,
		now:       time.Now,
		detail:    vp,
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh asks the daemon for a fresh status.
func (m Model) Refresh() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		status, err := port.Status(ctx)
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = max(msg.Width-4, 0)
		m.detail.Height = max(msg.Height-6, 0)
	case StatusMsg:
		m.loading = false
		m.status = msg.Status
		m.err = msg.Err
		m.detail.SetContent(m.render())
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " " + theme.Muted.Render("contacting daemon…")
	}
	return m.detail.View()
}

func (m Model) render() string {
	b := strings.Builder{}
	if m.err != nil {
		b.WriteString(theme.Alarm.Render("status failed: " + m.err.Error()))
		return b.String()
	}
	if !m.status.Running {
		b.WriteString(theme.Muted.Render("Daemon is not running. Start it with `lifeagent daemon start`."))
		return b.String()
	}
	st := m.status.Status
	b.WriteString(theme.Title.Render("Focus"))
	b.WriteString("\n\n")
	switch st.TrackerState {
	case "tracking":
		elapsed := m.now().Sub(st.SessionStart).Truncate(time.Second)
		b.WriteString(fmt.Sprintf("Tracking tab %s for %s\n", st.ActiveID, elapsed))
	default:
		b.WriteString(theme.Muted.Render("Idle") + "\n")
	}
	b.WriteString("\n")
	if len(st.Totals) == 0 {
		b.WriteString(theme.Muted.Render("No time recorded yet.") + "\n")
	}
	for _, item := range st.Totals {
		total := time.Duration(item.TotalMS) * time.Millisecond
		ratio := 0.0
		if m.threshold > 0 {
			ratio = float64(total) / float64(m.threshold)
		}
		b.WriteString(fmt.Sprintf("%-28s %s %s\n", truncate(item.Category, 28), theme.Bar(ratio, barWidth), formatMinutes(total)))
	}
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("pid %d · %s · sweeps %d · reminders %d", st.PID, st.ListenAddr, st.Sweeps, st.Reminders)))
	if st.LastSweepError != "" {
		b.WriteString("\n" + theme.Hot.Render("last sweep: "+st.LastSweepError))
	}
	return b.String()
}

func formatMinutes(d time.Duration) string {
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
