package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginModel is a two-field login form (name, email).
type LoginModel struct {
	inputs  []textinput.Model
	focused int

	width  int
	height int

	done      bool
	cancelled bool
}

func NewLoginModel() LoginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "Your name"
	inputs[0].CharLimit = 80
	inputs[0].Focus()

	inputs[1].Placeholder = "you@example.com"
	inputs[1].CharLimit = 120

	return LoginModel{inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.focused == 0 {
				m.inputs[0].Blur()
				m.focused = 1
				return m, m.inputs[1].Focus()
			}
			m.done = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % len(m.inputs)
			return m, m.inputs[m.focused].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m LoginModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("StudyWiz login"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("enter continue · tab switch field · esc cancel"))

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// RunLoginForm collects (name, email) interactively. ok is false when the
// user cancelled.
func RunLoginForm() (name, email string, ok bool, err error) {
	p := tea.NewProgram(NewLoginModel(), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", "", false, fmt.Errorf("login form: %w", err)
	}
	model, isLogin := finalModel.(LoginModel)
	if !isLogin || !model.done {
		return "", "", false, nil
	}
	return strings.TrimSpace(model.inputs[0].Value()),
		strings.TrimSpace(model.inputs[1].Value()),
		true, nil
}
