package sessionfakes

import (
	"sync"

	"github.com/tradesage/tradesage-client/session"
)

var _ session.Navigator = (*FakeNavigator)(nil)

// FakeNavigator records every redirect the manager issues.
type FakeNavigator struct {
	lock   sync.Mutex
	Routes []string
}

func NewFakeNavigator() *FakeNavigator {
	return &FakeNavigator{}
}

func (f *FakeNavigator) Navigate(path string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Routes = append(f.Routes, path)
}

// Navigated returns a copy of the recorded redirect targets.
func (f *FakeNavigator) Navigated() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	out := make([]string, len(f.Routes))
	copy(out, f.Routes)
	return out
}
