package session

import (
	"github.com/tradesage/tradesage-client/authapi"
)

// Status is the lifecycle state of the client session.
type Status int

const (
	StatusUninitialized Status = iota
	StatusInitializing
	StatusAuthenticated
	StatusUnauthenticated
	StatusDemoUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusDemoUnauthenticated:
		return "demo_unauthenticated"
	default:
		return "unknown"
	}
}

// State is the persisted session: the resolved identity plus its token pair.
// User and Token are set together; a token without an identity is never a
// valid rendered state.
type State struct {
	User         *authapi.User `json:"user,omitempty"`
	Token        string        `json:"token,omitempty"`
	RefreshToken string        `json:"refreshToken,omitempty"`
}

// Empty reports whether the state carries no session. An empty state
// serializes to no persisted entry at all.
func (s *State) Empty() bool {
	return s == nil || (s.User == nil && s.Token == "")
}

// Clone returns a deep copy so readers can never mutate the manager's state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	clone := *s
	if s.User != nil {
		user := *s.User
		clone.User = &user
	}
	return &clone
}

// Snapshot is the read-only view handed to route guards and the UI.
type Snapshot struct {
	User             *authapi.User
	Token            string
	Status           Status
	BackendAvailable bool
	Version          uint64
}

// Authenticated reports whether the snapshot represents a logged-in user.
func (s Snapshot) Authenticated() bool {
	return s.User != nil && s.Token != ""
}
