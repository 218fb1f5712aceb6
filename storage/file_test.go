package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradesage/tradesage-client/authapi"
	ierrors "github.com/tradesage/tradesage-client/internal/errors"
	"github.com/tradesage/tradesage-client/session"
	"github.com/tradesage/tradesage-client/storage"
)

func testState() *session.State {
	return &session.State{
		User: &authapi.User{
			ID:        "user-1",
			Email:     "jane.doe@example.com",
			FirstName: "Jane",
			LastName:  "Doe",
			UserType:  authapi.UserTypeUser,
		},
		Token:        "access-token-1",
		RefreshToken: "refresh-token-1",
	}
}

func TestRoundTrip(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())

	require.NoError(t, store.Save(testState()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, testState(), loaded)
}

func TestLoadAbsent(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestSaveEmptyRemovesEntry(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStore(dir)
	require.NoError(t, store.Save(testState()))

	require.NoError(t, store.Save(&session.State{}))

	_, err := os.Stat(filepath.Join(dir, "session.json"))
	require.True(t, os.IsNotExist(err), "an absent session serializes to no entry")
}

func TestClearIsIdempotent(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())
	require.NoError(t, store.Save(testState()))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestCorruptFileDiscarded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := storage.NewFileStore(dir)
	_, err := store.Load()
	require.ErrorIs(t, err, ierrors.ErrCorruptState)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "corrupt entries are removed")
}

func TestSchemaMismatchDiscarded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"state":{"token":"x"}}`), 0o600))

	store := storage.NewFileStore(dir)
	_, err := store.Load()
	require.ErrorIs(t, err, ierrors.ErrCorruptState)
}
