package routes

// Authenticator exposes the single bit of session state the guard needs.
type Authenticator interface {
	Authenticated() bool
}

// Decision is the outcome of evaluating a navigation attempt.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard gates navigation on the current session. A valid session blocks the
// auth-entry routes and unlocks the protected ones; an absent session does
// the inverse. Evaluated on every navigation, not just at startup.
type Guard struct {
	session Authenticator
}

// NewGuard creates a Guard reading from the given session.
func NewGuard(session Authenticator) *Guard {
	return &Guard{session: session}
}

// Evaluate decides whether navigating to path is allowed and, when it is
// not, where to send the user instead.
func (g *Guard) Evaluate(path string) Decision {
	authenticated := g.session.Authenticated()

	if IsProtected(path) && !authenticated {
		return Decision{Allowed: false, RedirectTo: RouteLogin}
	}
	if IsAuthEntry(path) && authenticated {
		return Decision{Allowed: false, RedirectTo: RouteDashboard}
	}
	return Decision{Allowed: true}
}
