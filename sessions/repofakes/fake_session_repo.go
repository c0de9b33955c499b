package fakesessionrepo

import (
	"sync"
	"time"

	"github.com/jrsteele09/go-blog-client/sessions"
)

var _ sessions.Repo = (*FakeSessionRepo)(nil)

type FakeSessionRepo struct {
	lock      sync.RWMutex
	token     string
	expiresAt time.Time

	SaveErr  error
	ReadErr  error
	ClearErr error
	Clears   int
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

func (sr *FakeSessionRepo) Save(token string, expiresAt time.Time) error {
	if sr.SaveErr != nil {
		return sr.SaveErr
	}
	sr.lock.Lock()
	defer sr.lock.Unlock()
	sr.token = token
	sr.expiresAt = expiresAt
	return nil
}

func (sr *FakeSessionRepo) Read() (sessions.Session, error) {
	if sr.ReadErr != nil {
		return sessions.Session{}, sr.ReadErr
	}
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	return sessions.Session{Token: sr.token, ExpiresAt: sr.expiresAt}, nil
}

func (sr *FakeSessionRepo) Clear() error {
	if sr.ClearErr != nil {
		return sr.ClearErr
	}
	sr.lock.Lock()
	defer sr.lock.Unlock()
	sr.token = ""
	sr.expiresAt = time.Time{}
	sr.Clears++
	return nil
}
