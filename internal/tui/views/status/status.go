// Package status renders the one-line bar at the top of every screen.
package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tradesage/tradesage-client/internal/tui/theme"
	"github.com/tradesage/tradesage-client/internal/utils"
	"github.com/tradesage/tradesage-client/session"
)

// Render builds the status line: app name, backend health, identity, route.
func Render(appName string, snap session.Snapshot, route string) string {
	backend := lipgloss.NewStyle().Foreground(theme.ColorHealthy).Render("● backend")
	if !snap.BackendAvailable {
		backend = lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("○ demo mode")
	}

	identity := theme.StyleDimmed.Render("not signed in")
	if snap.Authenticated() {
		user := utils.Value(snap.User)
		identity = theme.StyleSuccess.Render(fmt.Sprintf("%s %s <%s>",
			user.FirstName, user.LastName, user.Email))
	}

	return fmt.Sprintf(" %s  %s  %s  %s",
		theme.StyleTitle.Render(appName),
		backend,
		identity,
		theme.StyleDimmed.Render(route),
	)
}
