package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-blog-client/internal/errors"
)

var _ authAPI = (*fakeAuthAPI)(nil)

type fakeAuthAPI struct {
	token    string
	lifetime time.Duration
	loginErr error

	registeredEmail   string
	registeredConfirm string
}

func (fa *fakeAuthAPI) Login(email, password string) (string, time.Duration, error) {
	if fa.loginErr != nil {
		return "", 0, fa.loginErr
	}
	return fa.token, fa.lifetime, nil
}

func (fa *fakeAuthAPI) Register(name, email, password, matchingPassword string) error {
	fa.registeredEmail = email
	fa.registeredConfirm = matchingPassword
	return nil
}

func TestRootSubcommandsRegistered(t *testing.T) {
	subcommands := map[string]bool{
		"login":      false,
		"register":   false,
		"logout":     false,
		"whoami":     false,
		"posts":      false,
		"categories": false,
		"tags":       false,
	}

	for _, c := range rootCmd.Commands() {
		if _, exists := subcommands[c.Name()]; exists {
			subcommands[c.Name()] = true
		}
	}
	for name, found := range subcommands {
		require.True(t, found, "subcommand %q not registered on root", name)
	}
}

func TestLoginStoresSession(t *testing.T) {
	fx := setupCmdFixture(t, false)
	fx.auth.token = testSessionToken
	fx.auth.lifetime = 3600 * time.Second

	loginPassword = "secret"
	t.Cleanup(func() { loginPassword = "" })

	require.NoError(t, runLogin(loginCmd, []string{"a@b.com"}))
	require.True(t, fx.manager.Authenticated())

	stored, err := fx.sessionRepo.Read()
	require.NoError(t, err)
	require.Equal(t, testSessionToken, stored.Token)
	require.False(t, stored.ExpiresAt.IsZero())
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	fx := setupCmdFixture(t, false)
	fx.auth.loginErr = errors.ErrLoginFailed

	loginPassword = "wrong"
	t.Cleanup(func() { loginPassword = "" })

	require.ErrorIs(t, runLogin(loginCmd, []string{"a@b.com"}), errors.ErrLoginFailed)
	require.False(t, fx.manager.Authenticated())
}

func TestLogoutClearsStoredSession(t *testing.T) {
	fx := setupCmdFixture(t, true)
	require.True(t, fx.manager.Authenticated())

	require.NoError(t, runLogout(logoutCmd, nil))
	require.False(t, fx.manager.Authenticated())

	stored, err := fx.sessionRepo.Read()
	require.NoError(t, err)
	require.Empty(t, stored.Token)
}

func TestWhoamiRequiresLogin(t *testing.T) {
	setupCmdFixture(t, false)

	require.ErrorIs(t, runWhoami(whoamiCmd, nil), errors.ErrNotAuthenticated)
}

func TestRegisterConfirmationDefaultsToPassword(t *testing.T) {
	fx := setupCmdFixture(t, false)

	registerPassword = "pw"
	t.Cleanup(func() { registerName, registerPassword, registerConfirm = "", "", "" })

	require.NoError(t, runRegister(registerCmd, []string{"new@b.com"}))
	require.Equal(t, "new@b.com", fx.auth.registeredEmail)
	require.Equal(t, "pw", fx.auth.registeredConfirm)
}
