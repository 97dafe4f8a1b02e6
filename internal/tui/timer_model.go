package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/session"
)

// refreshMsg redraws the timer view; the lifecycle manager owns the actual
// one-second ticks and cancels them itself on every state change.
type refreshMsg struct{}

// TimerModel renders the study timer against the session lifecycle manager.
type TimerModel struct {
	width  int
	height int

	manager *session.Manager
	user    models.Identity

	status  string
	elapsed int

	stopped bool // user pressed S, a pending session is staged
	exited  bool // user left the timer view
}

func NewTimerModel(m *session.Manager) TimerModel {
	user, _ := m.User()
	status, elapsed := m.Status()
	return TimerModel{
		manager: m,
		user:    user,
		status:  status,
		elapsed: elapsed,
	}
}

func refreshCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func (m TimerModel) Init() tea.Cmd {
	return refreshCmd()
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.status, m.elapsed = m.manager.Status()
		if m.stopped || m.exited {
			return m, nil
		}
		return m, refreshCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "p", "P":
			if m.status == models.StatusRunning {
				m.manager.Pause()
			} else if m.status == models.StatusPaused {
				// Resume keeps elapsed time.
				_ = m.manager.Start()
			}
			m.status, m.elapsed = m.manager.Status()
			return m, nil
		case "s", "S":
			m.manager.Stop()
			m.status, m.elapsed = m.manager.Status()
			m.stopped = true
			return m, tea.Quit
		case "r", "R":
			m.manager.Reset()
			m.status, m.elapsed = m.manager.Status()
			return m, nil
		case "ctrl+c", "esc", "q":
			// Ticking cannot outlive the process; leave the timer paused
			// instead of silently frozen "running".
			if m.status == models.StatusRunning {
				m.manager.Pause()
			}
			m.exited = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	header := "⏱  STUDY TIMER  ⏱"
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(header))

	statusText, statusColor := "RUNNING", ColorSuccess
	if m.status == models.StatusPaused {
		statusText, statusColor = "PAUSED", ColorWarning
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(statusText))

	clockColor := ColorAccentBright
	if m.status == models.StatusPaused {
		clockColor = ColorDisabledText
	}
	clock := renderBigClock(m.elapsed, clockColor)
	var clockLines []string
	for _, line := range strings.Split(clock, "\n") {
		clockLines = append(clockLines, lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(line))
	}
	components = append(components, strings.Join(clockLines, "\n"))

	summary := m.manager.Selection().Summary()
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(summary))

	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("Studying as %s", m.user.Name)))

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("space pause/resume · s stop · r reset · q leave (pauses)")

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

// RunTimer opens the interactive timer view. The caller has already started
// the timer on the manager.
func RunTimer(manager *session.Manager) error {
	p := tea.NewProgram(NewTimerModel(manager), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	model, ok := finalModel.(TimerModel)
	if !ok {
		return nil
	}

	if model.stopped {
		if pending := manager.PendingSession(); pending != nil {
			fmt.Printf("⏹️  Session stopped after %s.\n", formatSeconds(pending.DurationSeconds))
			fmt.Println("   Keep it with 'studywiz save' or drop it with 'studywiz discard'.")
		}
	} else if model.exited {
		status, elapsed := manager.Status()
		if status == models.StatusPaused {
			fmt.Printf("⏸️  Timer paused at %s. Run 'studywiz start' to resume.\n", formatSeconds(elapsed))
		}
	}
	return nil
}

func formatSeconds(total int) string {
	d := time.Duration(total) * time.Second
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
