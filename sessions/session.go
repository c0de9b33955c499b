package sessions

import "time"

// Storage keys, kept identical to the browser client's localStorage layout so
// the state file stays inspectable and the expiry survives as a plain
// epoch-millis string.
const (
	tokenKey     = "token"
	expiresAtKey = "expiresAt"
)

// Session is the client-held record of whether, and until when, the current
// user is considered authenticated.
type Session struct {
	Token     string    // Opaque bearer token, empty when logged out
	ExpiresAt time.Time // Absolute expiry, zero when logged out
}

// Valid reports whether the session counts as authenticated at the given
// instant: a token must be present and the expiry must be in the future.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" || s.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(s.ExpiresAt)
}
