package routes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradesage/tradesage-client/routes"
)

type stubSession bool

func (s stubSession) Authenticated() bool { return bool(s) }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		allowed       bool
		redirectTo    string
	}{
		{"anonymous on home", routes.RouteHome, false, true, ""},
		{"anonymous on marketing", routes.RouteMarketing, false, true, ""},
		{"anonymous on login", routes.RouteLogin, false, true, ""},
		{"anonymous on forgot password", routes.RouteForgotPassword, false, true, ""},
		{"anonymous on dashboard", routes.RouteDashboard, false, false, routes.RouteLogin},
		{"anonymous on trade", routes.RouteTrade, false, false, routes.RouteLogin},
		{"authenticated on dashboard", routes.RouteDashboard, true, true, ""},
		{"authenticated on trade", routes.RouteTrade, true, true, ""},
		{"authenticated on login", routes.RouteLogin, true, false, routes.RouteDashboard},
		{"authenticated on register", routes.RouteRegister, true, false, routes.RouteDashboard},
		{"authenticated on home", routes.RouteHome, true, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			guard := routes.NewGuard(stubSession(tc.authenticated))
			decision := guard.Evaluate(tc.path)
			require.Equal(t, tc.allowed, decision.Allowed)
			require.Equal(t, tc.redirectTo, decision.RedirectTo)
		})
	}
}

func TestRouteClassification(t *testing.T) {
	require.True(t, routes.IsAuthEntry(routes.RouteLogin))
	require.True(t, routes.IsAuthEntry(routes.RouteResetPassword))
	require.False(t, routes.IsAuthEntry(routes.RouteDashboard))

	require.True(t, routes.IsProtected(routes.RouteTrade))
	require.True(t, routes.IsProtected(routes.RouteDashboard+"/positions"))
	require.False(t, routes.IsProtected(routes.RouteMarketing))
}
