package routes

import "strings"

// Application routes. The TUI treats these as view identifiers; a browser
// frontend would treat them as paths.
const (
	RouteHome           = "/"
	RouteMarketing      = "/marketing"
	RouteLogin          = "/auth/login"
	RouteRegister       = "/auth/register"
	RouteForgotPassword = "/auth/forgot-password"
	RouteResetPassword  = "/auth/reset-password"
	RouteDashboard      = "/dashboard"
	RouteTrade          = "/trade"
)

// IsAuthEntry reports whether the route is part of the authentication entry
// flow (login, register, password reset).
func IsAuthEntry(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}

// IsProtected reports whether the route requires an authenticated session.
func IsProtected(path string) bool {
	return strings.HasPrefix(path, RouteDashboard) || strings.HasPrefix(path, RouteTrade)
}
