// Package storage persists the session state to a single JSON file in the
// client's data folder. The envelope carries a schema version so future
// fields can be added without breaking old entries; anything mismatched or
// unparseable is treated as absent.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	ierrors "github.com/tradesage/tradesage-client/internal/errors"
	"github.com/tradesage/tradesage-client/session"
)

const (
	schemaVersion = 1
	fileName      = "session.json"
)

type envelope struct {
	Version int            `json:"version"`
	State   *session.State `json:"state"`
}

// FileStore implements session.Store over a single file. Absence of the file
// means "no session".
type FileStore struct {
	path string
}

var _ session.Store = (*FileStore)(nil)

// NewFileStore creates a store writing to <folder>/session.json.
func NewFileStore(folder string) *FileStore {
	return &FileStore{path: filepath.Join(folder, fileName)}
}

// Load reads the persisted state. A corrupt or schema-mismatched file is
// removed and reported as ErrCorruptState; callers continue unauthenticated.
func (fs *FileStore) Load() (*session.State, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[FileStore.Load] read")
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		fs.discardCorrupt()
		return nil, errors.Wrap(ierrors.ErrCorruptState, "[FileStore.Load] parse")
	}
	if env.Version != schemaVersion {
		fs.discardCorrupt()
		return nil, errors.Wrapf(ierrors.ErrCorruptState, "[FileStore.Load] schema version %d", env.Version)
	}
	if env.State.Empty() {
		return nil, nil
	}
	return env.State, nil
}

// Save writes the state durably. Empty states are not written; Clear handles
// those so that presence of the file stays meaningful.
func (fs *FileStore) Save(state *session.State) error {
	if state.Empty() {
		return fs.Clear()
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.Save] mkdir")
	}
	data, err := json.Marshal(envelope{Version: schemaVersion, State: state})
	if err != nil {
		return errors.Wrap(err, "[FileStore.Save] marshal")
	}

	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] write")
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return errors.Wrap(err, "[FileStore.Save] rename")
	}
	return nil
}

// Clear removes the persisted entry. Removing an absent entry is a no-op.
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] remove")
	}
	return nil
}

func (fs *FileStore) discardCorrupt() {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", fs.path).Msg("removing corrupt session file failed")
	}
}
