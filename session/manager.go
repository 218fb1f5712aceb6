package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tradesage/tradesage-client/authapi"
	ierrors "github.com/tradesage/tradesage-client/internal/errors"
	"github.com/tradesage/tradesage-client/routes"
)

const (
	defaultPollInterval = 30 * time.Second

	// refreshSlack is how close to expiry a token may get before the poll
	// loop refreshes it proactively.
	refreshSlack = time.Minute
)

// AuthAPI is the slice of the backend client the manager depends on.
type AuthAPI interface {
	Health(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*authapi.LoginResponse, error)
	Register(ctx context.Context, data authapi.RegistrationData) error
	Verify(ctx context.Context, token string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Navigator receives the redirects the manager issues after login, logout
// and a failed startup refresh.
type Navigator interface {
	Navigate(path string)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}

// Deps holds all dependencies for the Manager.
type Deps struct {
	API   AuthAPI
	Store Store
	Nav   Navigator
}

// Manager owns the session state and is its only writer. Route guards and
// the UI read through Snapshot; every mutation goes through the exported
// operations and is persisted before the operation returns.
type Manager struct {
	deps         Deps
	demo         *demoIdentity
	validator    *authapi.Validator
	nowTime      func() time.Time
	pollInterval time.Duration
	currentPath  func() string

	mu               sync.Mutex
	status           Status
	state            *State
	version          uint64
	backendAvailable bool
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager) error

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) error {
		m.nowTime = nowFunc
		return nil
	}
}

// WithDemoMode enables the offline demo login for the given credentials.
// This is a deliberate client-side trust bypass; leave it off for builds
// pointed at a real backend.
func WithDemoMode(email, password string) ManagerOption {
	return func(m *Manager) error {
		demo, err := newDemoIdentity(email, password)
		if err != nil {
			return err
		}
		m.demo = demo
		return nil
	}
}

// WithPollInterval overrides the backend health poll interval.
func WithPollInterval(interval time.Duration) ManagerOption {
	return func(m *Manager) error {
		m.pollInterval = interval
		return nil
	}
}

// WithCurrentPath sets the function reporting the route the user is on,
// used to decide whether a cleared startup session must redirect to login.
func WithCurrentPath(pathFunc func() string) ManagerOption {
	return func(m *Manager) error {
		m.currentPath = pathFunc
		return nil
	}
}

// NewManager initializes a Manager with required dependencies. Optional
// configuration can be provided via options.
func NewManager(deps Deps, options ...ManagerOption) (*Manager, error) {
	if deps.API == nil {
		return nil, errors.New("[NewManager] API client is required")
	}
	if deps.Store == nil {
		return nil, errors.New("[NewManager] Store is required")
	}
	if deps.Nav == nil {
		deps.Nav = noopNavigator{}
	}

	manager := &Manager{
		deps:         deps,
		validator:    authapi.NewValidator(),
		nowTime:      time.Now,
		pollInterval: defaultPollInterval,
		currentPath:  func() string { return routes.RouteHome },
		status:       StatusUninitialized,
	}

	for _, opt := range options {
		if err := opt(manager); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

// Initialize runs the startup sequence: load persisted state, probe the
// backend, then verify or refresh the persisted token. Failures are never
// fatal; the session simply ends up unauthenticated.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	persisted, err := m.deps.Store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("discarding unreadable persisted session")
		persisted = nil
	}
	if persisted != nil && (persisted.User == nil || persisted.Token == "") {
		log.Warn().Msg("discarding partial persisted session")
		persisted = nil
	}
	m.state = persisted
	m.status = StatusInitializing
	startVersion := m.version
	m.mu.Unlock()

	available := m.probeHealth(ctx)

	m.mu.Lock()
	m.backendAvailable = available
	if m.version != startVersion {
		// An interactive login or logout already landed; its result wins.
		m.mu.Unlock()
		log.Debug().Msg("startup sequence superseded by interactive update")
		return nil
	}
	state := m.state.Clone()
	m.mu.Unlock()

	if !available {
		log.Warn().Msg("backend unavailable, falling back to demo mode")
		if state.Empty() {
			return m.commitFromStartup(startVersion, nil, StatusDemoUnauthenticated)
		}
		// Keep the locally cached identity; no remote validation is possible.
		return m.commitFromStartup(startVersion, state, StatusAuthenticated)
	}

	if state.Empty() {
		return m.commitFromStartup(startVersion, nil, StatusUnauthenticated)
	}

	verifyErr := m.deps.API.Verify(ctx, state.Token)
	if verifyErr == nil {
		return m.commitFromStartup(startVersion, state, StatusAuthenticated)
	}
	if ierrors.Is(verifyErr, ierrors.ErrTimeout) || ierrors.Is(verifyErr, ierrors.ErrNetwork) {
		// Transport trouble is not a rejection; keep the cached session and
		// let a later poll or request settle it.
		log.Warn().Err(verifyErr).Msg("token verification unreachable, keeping cached session")
		return m.commitFromStartup(startVersion, state, StatusAuthenticated)
	}

	log.Warn().Err(verifyErr).Msg("token verification failed, attempting refresh")
	if state.RefreshToken != "" {
		newToken, refreshErr := m.deps.API.Refresh(ctx, state.RefreshToken)
		if refreshErr == nil {
			refreshed := state.Clone()
			refreshed.Token = newToken
			return m.commitFromStartup(startVersion, refreshed, StatusAuthenticated)
		}
		log.Warn().Err(refreshErr).Msg("token refresh failed, clearing session")
	}

	if err := m.commitFromStartup(startVersion, nil, StatusUnauthenticated); err != nil {
		return err
	}
	if routes.IsProtected(m.currentPath()) {
		m.deps.Nav.Navigate(routes.RouteLogin)
	}
	return nil
}

// Login authenticates with the backend, or against the demo identity when
// the backend is known unreachable. On failure the session is unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	available := m.backendAvailable
	m.mu.Unlock()

	if !available && m.demo != nil && m.demo.matches(email) {
		if !m.demo.checkPassword(password) {
			return errors.Wrap(ierrors.ErrInvalidCredentials, "[Manager.Login] demo credentials")
		}
		state, err := m.demo.mintState(m.nowTime())
		if err != nil {
			return errors.Wrap(err, "[Manager.Login] mint demo session")
		}
		if err := m.commit(state, StatusAuthenticated); err != nil {
			return err
		}
		log.Info().Str("email", email).Msg("demo login successful")
		m.deps.Nav.Navigate(routes.RouteDashboard)
		return nil
	}

	resp, err := m.deps.API.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if resp.User == nil || resp.Token == "" {
		return errors.New("[Manager.Login] malformed login response")
	}

	state := &State{User: resp.User, Token: resp.Token, RefreshToken: resp.RefreshToken}
	if err := m.commit(state, StatusAuthenticated); err != nil {
		return err
	}
	log.Info().Str("email", resp.User.Email).Msg("login successful")
	m.deps.Nav.Navigate(routes.RouteDashboard)
	return nil
}

// Register submits a registration. It requires a reachable backend and never
// authenticates the caller; success means they must now log in explicitly.
func (m *Manager) Register(ctx context.Context, data authapi.RegistrationData) error {
	m.mu.Lock()
	available := m.backendAvailable
	m.mu.Unlock()

	if !available {
		return errors.Wrap(ierrors.ErrFeatureUnavailable, "[Manager.Register] registration")
	}
	if err := m.validator.ValidateRegistration(data); err != nil {
		return err
	}
	if err := m.deps.API.Register(ctx, data); err != nil {
		return err
	}
	log.Info().Str("email", data.Email).Msg("registration successful")
	m.deps.Nav.Navigate(routes.RouteLogin)
	return nil
}

// Logout clears the session unconditionally. The remote logout call is
// best-effort: its failure is logged, never surfaced, and never blocks the
// local clear. Safe to call on an already-empty session.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	token := ""
	if m.state != nil {
		token = m.state.Token
	}
	available := m.backendAvailable
	m.state = nil
	m.version++
	m.status = StatusUnauthenticated
	if err := m.deps.Store.Clear(); err != nil {
		log.Warn().Err(err).Msg("clearing persisted session failed")
	}
	m.mu.Unlock()

	if token != "" && available {
		if err := m.deps.API.Logout(ctx, token); err != nil {
			log.Warn().Err(err).Msg("remote logout failed")
		}
	}
	m.deps.Nav.Navigate(routes.RouteLogin)
}

// PollHealth re-probes the backend on a fixed interval until ctx is done.
// Availability transitions gate the login/register code paths but never
// change the authenticated state by themselves.
func (m *Manager) PollHealth(ctx context.Context) {
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.setBackendAvailable(m.probeHealth(ctx))
			m.refreshIfExpiring(ctx)
		}
	}
}

// Snapshot returns a read-only copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{
		Status:           m.status,
		BackendAvailable: m.backendAvailable,
		Version:          m.version,
	}
	if m.state != nil {
		if m.state.User != nil {
			user := *m.state.User
			snap.User = &user
		}
		snap.Token = m.state.Token
	}
	return snap
}

// Authenticated implements routes.Authenticator.
func (m *Manager) Authenticated() bool {
	return m.Snapshot().Authenticated()
}

// BackendAvailable reports the result of the most recent health probe.
func (m *Manager) BackendAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backendAvailable
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) probeHealth(ctx context.Context) bool {
	if err := m.deps.API.Health(ctx); err != nil {
		log.Debug().Err(err).Msg("health probe failed")
		return false
	}
	return true
}

func (m *Manager) setBackendAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.backendAvailable != available {
		log.Info().Bool("available", available).Msg("backend availability changed")
	}
	m.backendAvailable = available
}

// refreshIfExpiring renews the access token shortly before its exp claim so
// interactive requests never race an expired token.
func (m *Manager) refreshIfExpiring(ctx context.Context) {
	m.mu.Lock()
	if !m.backendAvailable || m.state.Empty() || m.state.RefreshToken == "" {
		m.mu.Unlock()
		return
	}
	token := m.state.Token
	refreshToken := m.state.RefreshToken
	version := m.version
	m.mu.Unlock()

	exp, ok := TokenExpiry(token)
	if !ok || m.nowTime().Add(refreshSlack).Before(exp) {
		return
	}

	newToken, err := m.deps.API.Refresh(ctx, refreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("proactive token refresh failed")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.version != version || m.state.Empty() {
		log.Debug().Msg("discarding stale proactive refresh")
		return
	}
	refreshed := m.state.Clone()
	refreshed.Token = newToken
	if err := m.deps.Store.Save(refreshed); err != nil {
		log.Warn().Err(err).Msg("persisting refreshed token failed")
		return
	}
	m.state = refreshed
	m.version++
}

// commit applies and persists a new state. Persistence happens before the
// state becomes visible so a reload cannot silently lose a session.
func (m *Manager) commit(state *State, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyLocked(state, status)
}

// commitFromStartup is commit for the startup sequence: the write is
// discarded when an interactive mutation landed since the sequence began, so
// a slow startup can never clobber a fresher result.
func (m *Manager) commitFromStartup(startVersion uint64, state *State, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.version != startVersion {
		log.Debug().Msg("discarding stale startup result")
		return nil
	}
	return m.applyLocked(state, status)
}

func (m *Manager) applyLocked(state *State, status Status) error {
	if state.Empty() {
		if err := m.deps.Store.Clear(); err != nil {
			log.Warn().Err(err).Msg("clearing persisted session failed")
		}
		m.state = nil
	} else {
		if err := m.deps.Store.Save(state); err != nil {
			return errors.Wrap(err, "[Manager] persist session")
		}
		m.state = state
	}
	m.version++
	m.status = status
	return nil
}
