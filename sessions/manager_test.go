package sessions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/sessions"
	fakesessionrepo "github.com/jrsteele09/go-blog-client/sessions/repofakes"
)

const testToken = "eyJhbGciOiJub25lIn0.eyJ1c2VySWQiOiI0MiIsImVtYWlsIjoiYUBiLmNvbSJ9."

// testClock is a controllable now() source for the manager.
type testClock struct {
	now time.Time
}

func (tc *testClock) Now() time.Time { return tc.now }

func (tc *testClock) Advance(d time.Duration) { tc.now = tc.now.Add(d) }

func newTestManager(t *testing.T) (*sessions.Manager, *fakesessionrepo.FakeSessionRepo, *testClock) {
	t.Helper()
	repo := fakesessionrepo.NewFakeSessionRepo()
	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return sessions.NewManager(repo, sessions.WithNowTime(clock.Now)), repo, clock
}

func TestSessionValidity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session sessions.Session
		want    bool
	}{
		{name: "empty session", session: sessions.Session{}, want: false},
		{name: "token without expiry", session: sessions.Session{Token: testToken}, want: false},
		{name: "expiry without token", session: sessions.Session{ExpiresAt: now.Add(time.Hour)}, want: false},
		{name: "expiry in the past", session: sessions.Session{Token: testToken, ExpiresAt: now.Add(-time.Second)}, want: false},
		{name: "expiry exactly now", session: sessions.Session{Token: testToken, ExpiresAt: now}, want: false},
		{name: "expiry in the future", session: sessions.Session{Token: testToken, ExpiresAt: now.Add(time.Second)}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.session.Valid(now))
		})
	}
}

func TestLoginLifecycle(t *testing.T) {
	manager, repo, clock := newTestManager(t)
	require.False(t, manager.Authenticated())

	loginAt := clock.Now()
	require.NoError(t, manager.Login(testToken, 3600*time.Second))

	stored, err := repo.Read()
	require.NoError(t, err)
	require.Equal(t, testToken, stored.Token)
	require.Equal(t, loginAt.Add(3600*time.Second), stored.ExpiresAt)

	clock.Advance(1000 * time.Millisecond)
	require.True(t, manager.Authenticated())

	clock.Advance(3_700_000*time.Millisecond - 1000*time.Millisecond)
	require.False(t, manager.Authenticated())

	// Detecting expiry must not retain the stale session.
	stored, err = repo.Read()
	require.NoError(t, err)
	require.Empty(t, stored.Token)
}

func TestStartupWithExpiredSessionClearsStore(t *testing.T) {
	repo := fakesessionrepo.NewFakeSessionRepo()
	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Save(testToken, clock.Now().Add(-time.Minute)))

	manager := sessions.NewManager(repo, sessions.WithNowTime(clock.Now))
	require.False(t, manager.Authenticated())
	require.GreaterOrEqual(t, repo.Clears, 1)

	stored, err := repo.Read()
	require.NoError(t, err)
	require.Empty(t, stored.Token)
}

func TestStartupWithValidSessionIsAuthenticated(t *testing.T) {
	repo := fakesessionrepo.NewFakeSessionRepo()
	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Save(testToken, clock.Now().Add(time.Hour)))

	manager := sessions.NewManager(repo, sessions.WithNowTime(clock.Now))
	require.True(t, manager.Authenticated())
	require.Zero(t, repo.Clears)
}

func TestLogoutClearsStore(t *testing.T) {
	manager, repo, _ := newTestManager(t)
	require.NoError(t, manager.Login(testToken, time.Hour))
	require.NoError(t, manager.Logout())

	require.False(t, manager.Authenticated())
	stored, err := repo.Read()
	require.NoError(t, err)
	require.Empty(t, stored.Token)
	require.True(t, stored.ExpiresAt.IsZero())
}

func TestSubscribersSeeTransitionsOnce(t *testing.T) {
	manager, _, clock := newTestManager(t)

	var seen []bool
	manager.Subscribe(func(authenticated bool) {
		seen = append(seen, authenticated)
	})

	require.NoError(t, manager.Login(testToken, time.Hour))
	require.True(t, manager.Authenticated())
	require.True(t, manager.Authenticated()) // repeated checks do not re-notify
	require.Equal(t, []bool{true}, seen)

	clock.Advance(2 * time.Hour)
	require.False(t, manager.Authenticated())
	require.Equal(t, []bool{true, false}, seen)

	require.NoError(t, manager.Login(testToken, time.Hour))
	require.NoError(t, manager.Logout())
	require.Equal(t, []bool{true, false, true, false}, seen)
}

func TestIdentityDecodedFromStoredToken(t *testing.T) {
	manager, _, clock := newTestManager(t)
	require.True(t, manager.Identity().IsZero())

	require.NoError(t, manager.Login(testToken, time.Hour))
	identity := manager.Identity()
	require.Equal(t, "42", identity.UserID)
	require.Equal(t, "a@b.com", identity.Email)

	clock.Advance(2 * time.Hour)
	require.True(t, manager.Identity().IsZero(), "expired session must not expose an identity")
}

func TestTokenSource(t *testing.T) {
	manager, _, clock := newTestManager(t)
	source := manager.TokenSource()

	_, err := source.Token()
	require.ErrorIs(t, err, errors.ErrNotAuthenticated)

	require.NoError(t, manager.Login(testToken, time.Hour))
	token, err := source.Token()
	require.NoError(t, err)
	require.Equal(t, testToken, token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
	require.Equal(t, clock.Now().Add(time.Hour), token.Expiry)

	clock.Advance(2 * time.Hour)
	_, err = source.Token()
	require.ErrorIs(t, err, errors.ErrSessionExpired)
	require.ErrorIs(t, err, errors.ErrNotAuthenticated)

	// The expiry sweep cleared the store, so a second fetch sees no session
	// at all rather than an expired one.
	_, err = source.Token()
	require.ErrorIs(t, err, errors.ErrNotAuthenticated)
	require.NotErrorIs(t, err, errors.ErrSessionExpired)
}

func TestReadErrorTreatsSessionAsInvalid(t *testing.T) {
	repo := fakesessionrepo.NewFakeSessionRepo()
	repo.ReadErr = errors.ErrStoreUnavailable

	manager := sessions.NewManager(repo)
	require.False(t, manager.Authenticated())
	require.True(t, manager.Identity().IsZero())
}
