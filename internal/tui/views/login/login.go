// Package login renders the sign-in form.
package login

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradesage/tradesage-client/internal/tui/theme"
	"github.com/tradesage/tradesage-client/internal/tui/uierr"
	"github.com/tradesage/tradesage-client/session"
)

const submitTimeout = 10 * time.Second

// ResultMsg reports the outcome of a login attempt.
type ResultMsg struct {
	Err error
}

// Model is the login form.
type Model struct {
	manager  *session.Manager
	email    textinput.Model
	password textinput.Model
	focus    int
	spin     spinner.Model
	busy     bool
	errText  string

	Width int
}

// New creates the login form.
func New(manager *session.Manager) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{manager: manager, email: email, password: password, spin: spin}
}

// Reset clears the form for a fresh visit.
func (m Model) Reset() Model {
	m.email.SetValue("")
	m.password.SetValue("")
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
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
			return m.setFocus((m.focus + 1) % 2), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + 1) % 2), nil
		case "enter":
			if m.focus == 0 {
				return m.setFocus(1), nil
			}
			m.busy = true
			m.errText = ""
			return m, tea.Batch(m.spin.Tick, m.submit())
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	lines := []string{
		theme.StyleTitle.Render("Sign in to TradeSage"),
		"",
		m.email.View(),
		m.password.View(),
		"",
	}
	if m.busy {
		lines = append(lines, m.spin.View()+" signing in...")
	} else if m.errText != "" {
		lines = append(lines, theme.StyleError.Render(m.errText))
	} else {
		lines = append(lines, theme.StyleDimmed.Render("enter:submit  ctrl+r:register  esc:back"))
	}
	return theme.StyleBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) setFocus(focus int) Model {
	m.focus = focus
	if focus == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
	return m
}

func (m Model) submit() tea.Cmd {
	manager := m.manager
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return ResultMsg{Err: manager.Login(ctx, email, password)}
	}
}
