package sessions

import (
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-blog-client/claims"
	"github.com/jrsteele09/go-blog-client/internal/errors"
)

// Manager is the sole authority on whether the client is authenticated.
//
// Validity is never cached: every checkpoint re-reads the store and
// re-derives the answer from the token and expiry, so a transition caused by
// expiry is observed at the next check rather than by a timer. Any
// transition into the unauthenticated state that was not an explicit logout
// clears the store, so a half-valid or expired session is never retained.
type Manager struct {
	repo    Repo
	nowTime func() time.Time

	mu            sync.Mutex
	authenticated bool
	subscribers   []func(bool)
}

// ManagerOption modifies a Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager computes the initial state by reading the store and testing
// validity. An incomplete or expired stored session is cleared immediately.
func NewManager(repo Repo, options ...ManagerOption) *Manager {
	m := &Manager{
		repo:    repo,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}

	m.authenticated = m.checkAndSweep()
	return m
}

// Login persists the token with an absolute expiry of now + lifetime and
// flips the state to authenticated. The login response contract is a
// relative lifetime in seconds; the absolute expiry is computed here, once.
func (m *Manager) Login(token string, lifetime time.Duration) error {
	expiresAt := m.nowTime().Add(lifetime)
	if err := m.repo.Save(token, expiresAt); err != nil {
		return errors.Wrapf(err, "sessions.Manager.Login")
	}
	m.setAuthenticated(true)
	return nil
}

// Logout clears the store and flips the state to unauthenticated.
func (m *Manager) Logout() error {
	if err := m.repo.Clear(); err != nil {
		return errors.Wrapf(err, "sessions.Manager.Logout")
	}
	m.setAuthenticated(false)
	return nil
}

// Authenticated re-evaluates validity against the store. Every call is a
// checkpoint: a session found expired or incomplete here transitions the
// manager to unauthenticated and clears the store.
func (m *Manager) Authenticated() bool {
	valid := m.checkAndSweep()
	m.setAuthenticated(valid)
	return valid
}

// Identity decodes the stored token's claims on demand. It is never cached
// separately from the token. An invalid session yields a zero identity.
func (m *Manager) Identity() claims.Identity {
	session, err := m.repo.Read()
	if err != nil || !session.Valid(m.nowTime()) {
		return claims.Identity{}
	}
	return claims.Decode(session.Token)
}

// Session returns the stored session as-is, valid or not.
func (m *Manager) Session() (Session, error) {
	return m.repo.Read()
}

// Subscribe registers a listener for authenticated-state transitions. The
// listener runs synchronously whenever the flag flips, not on every check.
func (m *Manager) Subscribe(fn func(authenticated bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// TokenSource adapts the stored session to the oauth2 transport, so the REST
// client attaches the bearer token via the standard mechanism. The token
// fetch is itself a validity checkpoint.
func (m *Manager) TokenSource() oauth2.TokenSource {
	return managerTokenSource{manager: m}
}

type managerTokenSource struct {
	manager *Manager
}

func (ts managerTokenSource) Token() (*oauth2.Token, error) {
	m := ts.manager
	session, err := m.repo.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "sessions.TokenSource")
	}
	if !session.Valid(m.nowTime()) {
		m.sweep(session)
		m.setAuthenticated(false)
		if session.Token != "" && !session.ExpiresAt.IsZero() {
			return nil, errors.ErrSessionExpired
		}
		return nil, errors.ErrNotAuthenticated
	}
	return &oauth2.Token{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		Expiry:      session.ExpiresAt,
	}, nil
}

// checkAndSweep reads the store, tests validity and clears out any stored
// remnants of an invalid session.
func (m *Manager) checkAndSweep() bool {
	session, err := m.repo.Read()
	if err != nil {
		_ = m.repo.Clear()
		return false
	}
	if !session.Valid(m.nowTime()) {
		m.sweep(session)
		return false
	}
	return true
}

// sweep clears the store when an invalid session left something behind.
func (m *Manager) sweep(session Session) {
	if session.Token != "" || !session.ExpiresAt.IsZero() {
		_ = m.repo.Clear()
	}
}

func (m *Manager) setAuthenticated(authenticated bool) {
	m.mu.Lock()
	changed := m.authenticated != authenticated
	m.authenticated = authenticated
	subscribers := make([]func(bool), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subscribers {
		fn(authenticated)
	}
}
