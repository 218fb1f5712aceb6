// Package app holds the root Bubble Tea model. Views never mutate the
// session; they call the manager's operations, and its redirects come back
// through the navigator as messages so every route change passes the guard.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradesage/tradesage-client/internal/tui/nav"
	"github.com/tradesage/tradesage-client/internal/tui/views/dashboard"
	"github.com/tradesage/tradesage-client/internal/tui/views/login"
	"github.com/tradesage/tradesage-client/internal/tui/views/marketing"
	"github.com/tradesage/tradesage-client/internal/tui/views/register"
	"github.com/tradesage/tradesage-client/internal/tui/views/status"
	"github.com/tradesage/tradesage-client/market"
	"github.com/tradesage/tradesage-client/routes"
	"github.com/tradesage/tradesage-client/session"
)

const logoutTimeout = 5 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	appName string
	manager *session.Manager
	guard   *routes.Guard
	nav     *nav.Navigator

	keys   KeyMap
	route  string
	width  int
	height int

	login     login.Model
	register  register.Model
	dashboard dashboard.Model
	marketing marketing.Model

	ticking bool
}

// New creates the root model. The session manager must already be
// initialized so the starting route reflects any persisted session.
func New(appName string, manager *session.Manager, navigator *nav.Navigator, feed *market.Feed) Model {
	route := routes.RouteHome
	ticking := false
	if manager.Authenticated() {
		route = routes.RouteDashboard
		ticking = true
	}
	return Model{
		appName:   appName,
		manager:   manager,
		guard:     routes.NewGuard(manager),
		nav:       navigator,
		keys:      DefaultKeyMap(),
		route:     route,
		login:     login.New(manager),
		register:  register.New(manager),
		dashboard: dashboard.New(feed),
		marketing: marketing.New(),
		ticking:   ticking,
	}
}

// Route returns the current route.
func (m Model) Route() string {
	return m.route
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.nav.Listen(), textinput.Blink}
	if m.ticking {
		cmds = append(cmds, dashboard.Tick())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.login.Width = msg.Width
		m.register.Width = msg.Width
		m.dashboard.Width = msg.Width
		m.dashboard.Height = msg.Height
		m.marketing.Width = msg.Width
		return m, nil

	case nav.Msg:
		next, cmd := m.navigate(msg.Path)
		return next, tea.Batch(m.nav.Listen(), cmd)

	case login.ResultMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case register.ResultMsg:
		var cmd tea.Cmd
		m.register, cmd = m.register.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var loginCmd, registerCmd tea.Cmd
		m.login, loginCmd = m.login.Update(msg)
		m.register, registerCmd = m.register.Update(msg)
		return m, tea.Batch(loginCmd, registerCmd)

	case dashboard.TickMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.route {
	case routes.RouteLogin, routes.RouteRegister:
		switch {
		case key.Matches(msg, m.keys.Escape):
			next, cmd := m.navigate(routes.RouteHome)
			return next, cmd
		case key.Matches(msg, m.keys.Login):
			next, cmd := m.navigate(routes.RouteLogin)
			return next, cmd
		case key.Matches(msg, m.keys.Register):
			next, cmd := m.navigate(routes.RouteRegister)
			return next, cmd
		}
		return m.forward(msg)

	case routes.RouteDashboard:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Logout):
			return m, m.logout()
		case key.Matches(msg, m.keys.Marketing):
			next, cmd := m.navigate(routes.RouteMarketing)
			return next, cmd
		}
		return m.forward(msg)

	default: // home, marketing
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Login):
			next, cmd := m.navigate(routes.RouteLogin)
			return next, cmd
		case key.Matches(msg, m.keys.Register):
			next, cmd := m.navigate(routes.RouteRegister)
			return next, cmd
		case key.Matches(msg, m.keys.Escape):
			next, cmd := m.navigate(routes.RouteHome)
			return next, cmd
		}
		return m, nil
	}
}

// forward delivers a message to the view owning the current route.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.route {
	case routes.RouteLogin:
		m.login, cmd = m.login.Update(msg)
	case routes.RouteRegister:
		m.register, cmd = m.register.Update(msg)
	case routes.RouteDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return m, cmd
}

// navigate runs the route guard and switches the active view. Evaluated on
// every navigation, not just at startup.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	decision := m.guard.Evaluate(path)
	if !decision.Allowed {
		path = decision.RedirectTo
	}
	if path == m.route {
		return m, nil
	}
	m.route = path

	var cmd tea.Cmd
	switch path {
	case routes.RouteLogin:
		m.login = m.login.Reset()
		cmd = textinput.Blink
	case routes.RouteRegister:
		m.register = m.register.Reset()
		cmd = textinput.Blink
	case routes.RouteDashboard:
		if !m.ticking {
			m.ticking = true
			cmd = dashboard.Tick()
		}
	}
	return m, cmd
}

// logout clears the session off the update loop; the manager's redirect
// arrives back as a nav.Msg.
func (m Model) logout() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
		defer cancel()
		manager.Logout(ctx)
		return nil
	}
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	switch m.route {
	case routes.RouteLogin:
		body = m.login.View()
	case routes.RouteRegister:
		body = m.register.View()
	case routes.RouteDashboard:
		body = m.dashboard.View()
	default:
		body = m.marketing.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		status.Render(m.appName, m.manager.Snapshot(), m.route),
		body,
	)
}
