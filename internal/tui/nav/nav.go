// Package nav bridges the session manager's redirects into the Bubble Tea
// message loop.
package nav

import tea "github.com/charmbracelet/bubbletea"

// Msg is delivered to the root model when a navigation is requested.
type Msg struct {
	Path string
}

// Navigator implements session.Navigator by queueing redirect targets for
// the TUI to pick up.
type Navigator struct {
	ch chan string
}

func New() *Navigator {
	return &Navigator{ch: make(chan string, 8)}
}

// Navigate queues a redirect. A full queue drops the redirect rather than
// blocking the session manager.
func (n *Navigator) Navigate(path string) {
	select {
	case n.ch <- path:
	default:
	}
}

// Listen returns a command that waits for the next queued redirect. The root
// model re-issues it after handling each Msg.
func (n *Navigator) Listen() tea.Cmd {
	return func() tea.Msg {
		return Msg{Path: <-n.ch}
	}
}
