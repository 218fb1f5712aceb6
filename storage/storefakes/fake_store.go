package storefakes

import (
	"sync"

	"github.com/tradesage/tradesage-client/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store for tests, with injectable errors
// and call counters.
type FakeStore struct {
	lock  sync.Mutex
	state *session.State

	LoadErr  error
	SaveErr  error
	ClearErr error

	SaveCount  int
	ClearCount int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (fs *FakeStore) Load() (*session.State, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.LoadErr != nil {
		return nil, fs.LoadErr
	}
	return fs.state.Clone(), nil
}

func (fs *FakeStore) Save(state *session.State) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.SaveErr != nil {
		return fs.SaveErr
	}
	fs.state = state.Clone()
	fs.SaveCount++
	return nil
}

func (fs *FakeStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.ClearErr != nil {
		return fs.ClearErr
	}
	fs.state = nil
	fs.ClearCount++
	return nil
}

// Persisted returns a copy of what the store currently holds, or nil.
func (fs *FakeStore) Persisted() *session.State {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	return fs.state.Clone()
}

// Seed pre-populates the store, as if a previous process had persisted state.
func (fs *FakeStore) Seed(state *session.State) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.state = state.Clone()
}
