package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded, "missing file means no session")

	session := &Session{Token: "tok", UserID: 7, Email: "a@x.com"}
	require.NoError(t, store.Save(session))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, session, loaded)

	require.NoError(t, store.Clear())

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestSessionStore_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	store := NewSessionStore(path)

	require.NoError(t, store.Save(&Session{Token: "tok", UserID: 1, Email: "a@x.com"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewSessionStore(path).Load()
	require.Error(t, err)
}
