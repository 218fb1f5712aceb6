// Package register renders the account creation form.
package register

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradesage/tradesage-client/authapi"
	"github.com/tradesage/tradesage-client/internal/tui/theme"
	"github.com/tradesage/tradesage-client/internal/tui/uierr"
	"github.com/tradesage/tradesage-client/session"
)

const submitTimeout = 10 * time.Second

// Field indexes into the form inputs.
const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldPassword
	fieldCount
)

// ResultMsg reports the outcome of a registration attempt.
type ResultMsg struct {
	Err error
}

// Model is the registration form.
type Model struct {
	manager *session.Manager
	inputs  []textinput.Model
	focus   int
	spin    spinner.Model
	busy    bool
	errText string

	Width int
}

// New creates the registration form.
func New(manager *session.Manager) Model {
	placeholders := []string{"first name", "last name", "email", "phone (optional)", "password"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'
	inputs[fieldFirstName].Focus()

	return Model{
		manager: manager,
		inputs:  inputs,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Reset clears the form for a fresh visit.
func (m Model) Reset() Model {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldFirstName
	m.inputs[fieldFirstName].Focus()
	m.busy = false
	m.errText = ""
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		m.busy = false
		m.errText = uierr.Message(msg.Err)
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		case "enter":
			if m.focus < fieldPassword {
				return m.setFocus(m.focus + 1), nil
			}
			m.busy = true
			m.errText = ""
			return m, tea.Batch(m.spin.Tick, m.submit())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	lines := []string{
		theme.StyleTitle.Render("Create your TradeSage account"),
		"",
	}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, "")
	if m.busy {
		lines = append(lines, m.spin.View()+" registering...")
	} else if m.errText != "" {
		lines = append(lines, theme.StyleError.Render(m.errText))
	} else {
		lines = append(lines, theme.StyleDimmed.Render("enter:submit  ctrl+l:sign in  esc:back"))
	}
	return theme.StyleBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) setFocus(focus int) Model {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) submit() tea.Cmd {
	manager := m.manager
	data := authapi.RegistrationData{
		FirstName: strings.TrimSpace(m.inputs[fieldFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[fieldLastName].Value()),
		Email:     strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Phone:     strings.TrimSpace(m.inputs[fieldPhone].Value()),
		Password:  m.inputs[fieldPassword].Value(),
		UserType:  authapi.UserTypeUser,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return ResultMsg{Err: manager.Register(ctx, data)}
	}
}
