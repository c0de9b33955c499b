package sessions

import "time"

// Repo persists the bearer token and its absolute expiry across process runs.
type Repo interface {
	// Save writes both values. The token format is not validated.
	Save(token string, expiresAt time.Time) error

	// Read returns whatever is currently stored. A store that has never been
	// written, or has been cleared, reads as a zero Session.
	Read() (Session, error)

	// Clear removes the entire storage area, not only the session keys.
	// Clearing an already empty store is a no-op.
	Clear() error
}
