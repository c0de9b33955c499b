package sessions_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-blog-client/sessions"
)

func TestFileRepoRoundTrip(t *testing.T) {
	repo := sessions.NewFileRepo(t.TempDir())

	expiresAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Add(3600 * time.Second)
	require.NoError(t, repo.Save(testToken, expiresAt))

	session, err := repo.Read()
	require.NoError(t, err)
	require.Equal(t, testToken, session.Token)
	require.Equal(t, expiresAt.UnixMilli(), session.ExpiresAt.UnixMilli())
}

func TestFileRepoReadWithoutSaveIsEmpty(t *testing.T) {
	repo := sessions.NewFileRepo(filepath.Join(t.TempDir(), "never-created"))

	session, err := repo.Read()
	require.NoError(t, err)
	require.Empty(t, session.Token)
	require.True(t, session.ExpiresAt.IsZero())
}

func TestFileRepoStateFileLayout(t *testing.T) {
	folder := t.TempDir()
	repo := sessions.NewFileRepo(folder)

	expiresAt := time.UnixMilli(1717243200000)
	require.NoError(t, repo.Save(testToken, expiresAt))

	// The state file keeps the browser client's localStorage layout: string
	// values under "token" and "expiresAt", the latter epoch millis.
	raw, err := os.ReadFile(filepath.Join(folder, "session.json"))
	require.NoError(t, err)

	values := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &values))
	require.Equal(t, testToken, values["token"])
	require.Equal(t, "1717243200000", values["expiresAt"])
}

func TestFileRepoClearIsIdempotent(t *testing.T) {
	folder := t.TempDir()
	repo := sessions.NewFileRepo(folder)

	require.NoError(t, repo.Save(testToken, time.Now().Add(time.Hour)))
	require.NoError(t, repo.Clear())
	require.NoError(t, repo.Clear())

	session, err := repo.Read()
	require.NoError(t, err)
	require.Empty(t, session.Token)

	_, err = os.Stat(filepath.Join(folder, "session.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileRepoSaveOverwritesPreviousSession(t *testing.T) {
	repo := sessions.NewFileRepo(t.TempDir())

	require.NoError(t, repo.Save("first-token", time.UnixMilli(1000)))
	require.NoError(t, repo.Save("second-token", time.UnixMilli(2000)))

	session, err := repo.Read()
	require.NoError(t, err)
	require.Equal(t, "second-token", session.Token)
	require.Equal(t, int64(2000), session.ExpiresAt.UnixMilli())
}
