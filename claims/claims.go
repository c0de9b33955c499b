// Package claims extracts identity claims from a bearer token without
// verifying its signature. The backend owns verification; the client only
// needs a best-effort view of who the token says it belongs to, so that
// ownership checks and the whoami display have something to compare against.
package claims

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Identity holds the identity attributes decoded from a token's payload
// segment. A zero Identity means the token carried no usable claims.
type Identity struct {
	UserID string
	Email  string
}

// IsZero reports whether no identity claim was present in the token.
func (id Identity) IsZero() bool {
	return id.UserID == "" && id.Email == ""
}

// The backend does not fix the identity claim names contractually, so the
// user id and email are resolved through a fallback chain, first present
// field wins.
var (
	userIDClaims = []string{"userId", "id", "sub", "uid"}
	emailClaims  = []string{"email", "sub"}
)

// Decode extracts identity claims from a compact three-segment token.
// It is a total function: any malformed input (empty token, wrong segment
// count, invalid base64url, invalid JSON) yields a zero Identity rather than
// an error. Callers downstream fail closed on an absent identity.
func Decode(rawToken string) Identity {
	if rawToken == "" {
		return Identity{}
	}

	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return Identity{}
	}

	mapClaims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return Identity{}
	}

	return Identity{
		UserID: firstStringClaim(mapClaims, userIDClaims),
		Email:  firstStringClaim(mapClaims, emailClaims),
	}
}

func firstStringClaim(mapClaims jwtlib.MapClaims, names []string) string {
	for _, name := range names {
		value, exists := mapClaims[name]
		if !exists {
			continue
		}
		if s, ok := value.(string); ok && s != "" {
			return s
		}
	}
	return ""
}
