package app_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tradesage/tradesage-client/internal/tui/app"
	"github.com/tradesage/tradesage-client/internal/tui/nav"
	"github.com/tradesage/tradesage-client/market"
	"github.com/tradesage/tradesage-client/routes"
	"github.com/tradesage/tradesage-client/session"
	"github.com/tradesage/tradesage-client/session/sessionfakes"
	"github.com/tradesage/tradesage-client/storage/storefakes"
)

func setupTestApp(t *testing.T) (app.Model, *sessionfakes.FakeAuthAPI) {
	t.Helper()
	api := sessionfakes.NewFakeAuthAPI()
	manager, err := session.NewManager(session.Deps{
		API:   api,
		Store: storefakes.NewFakeStore(),
		Nav:   nav.New(),
	})
	require.NoError(t, err)
	require.NoError(t, manager.Initialize(context.Background()))

	return app.New("TradeSage", manager, nav.New(), market.NewFeed(market.WithSeed(1))), api
}

func TestStartsOnLandingPageWhenSignedOut(t *testing.T) {
	model, _ := setupTestApp(t)
	require.Equal(t, routes.RouteHome, model.Route())
}

func TestNavigationToProtectedRouteRedirectsToLogin(t *testing.T) {
	model, _ := setupTestApp(t)

	updated, _ := model.Update(nav.Msg{Path: routes.RouteDashboard})
	m, ok := updated.(app.Model)
	require.True(t, ok)
	require.Equal(t, routes.RouteLogin, m.Route())
}

func TestNavigationToPublicRouteIsAllowed(t *testing.T) {
	model, _ := setupTestApp(t)

	updated, _ := model.Update(nav.Msg{Path: routes.RouteRegister})
	m := updated.(app.Model)
	require.Equal(t, routes.RouteRegister, m.Route())
}

func TestViewRendersStatusBarAndBody(t *testing.T) {
	model, _ := setupTestApp(t)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := updated.(app.Model)
	view := m.View()
	require.Contains(t, view, "TradeSage")
	require.Contains(t, view, "not signed in")
}

func TestForceQuitAlwaysQuits(t *testing.T) {
	model, _ := setupTestApp(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
