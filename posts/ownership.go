package posts

import (
	"strings"

	"github.com/jrsteele09/go-blog-client/claims"
)

// IsOwner decides whether the given identity authored the post, to gate
// edit/delete controls. Matching is evaluated in order, first match wins:
// author id against user id as case-sensitive strings, then author email
// against identity email case-insensitively. Any absent field skips its
// rule; no rule matching means not owner.
//
// This is a non-authoritative, defense-in-depth check. The backend enforces
// authorization independently; this only controls whether mutation actions
// are offered at all.
func IsOwner(post Post, identity claims.Identity) bool {
	author := post.Author

	if author.ID != "" && identity.UserID != "" && author.ID == identity.UserID {
		return true
	}
	if author.Email != "" && identity.Email != "" && strings.EqualFold(author.Email, identity.Email) {
		return true
	}
	return false
}
