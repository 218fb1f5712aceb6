package sessionfakes

import (
	"context"
	"sync"

	"github.com/tradesage/tradesage-client/authapi"
	"github.com/tradesage/tradesage-client/session"
)

var _ session.AuthAPI = (*FakeAuthAPI)(nil)

// FakeAuthAPI implements session.AuthAPI with injectable behavior per
// endpoint and counters for asserting call patterns.
type FakeAuthAPI struct {
	lock sync.Mutex

	HealthErr   error
	HealthFunc  func() error
	LoginFunc   func(email, password string) (*authapi.LoginResponse, error)
	RegisterErr error
	VerifyErr   error
	RefreshFunc func(refreshToken string) (string, error)
	LogoutErr   error

	HealthCalls   int
	LoginCalls    int
	RegisterCalls int
	VerifyCalls   int
	RefreshCalls  int
	LogoutCalls   int
}

func NewFakeAuthAPI() *FakeAuthAPI {
	return &FakeAuthAPI{}
}

func (f *FakeAuthAPI) Health(ctx context.Context) error {
	f.lock.Lock()
	f.HealthCalls++
	fn := f.HealthFunc
	err := f.HealthErr
	f.lock.Unlock()
	if fn != nil {
		return fn()
	}
	return err
}

func (f *FakeAuthAPI) Login(ctx context.Context, email, password string) (*authapi.LoginResponse, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.LoginCalls++
	if f.LoginFunc == nil {
		return nil, nil
	}
	return f.LoginFunc(email, password)
}

func (f *FakeAuthAPI) Register(ctx context.Context, data authapi.RegistrationData) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.RegisterCalls++
	return f.RegisterErr
}

func (f *FakeAuthAPI) Verify(ctx context.Context, token string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.VerifyCalls++
	return f.VerifyErr
}

func (f *FakeAuthAPI) Refresh(ctx context.Context, refreshToken string) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.RefreshCalls++
	if f.RefreshFunc == nil {
		return "", nil
	}
	return f.RefreshFunc(refreshToken)
}

func (f *FakeAuthAPI) Logout(ctx context.Context, token string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.LogoutCalls++
	return f.LogoutErr
}

// SetHealthErr flips backend reachability between poll cycles.
func (f *FakeAuthAPI) SetHealthErr(err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.HealthErr = err
}
