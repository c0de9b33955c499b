package posts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-blog-client/claims"
	"github.com/jrsteele09/go-blog-client/posts"
)

func TestIsOwner(t *testing.T) {
	tests := []struct {
		name     string
		author   posts.Author
		identity claims.Identity
		want     bool
	}{
		{
			name:     "id match",
			author:   posts.Author{ID: "42", Email: "a@b.com"},
			identity: claims.Identity{UserID: "42"},
			want:     true,
		},
		{
			name:     "id mismatch falls through to case-insensitive email match",
			author:   posts.Author{ID: "99", Email: "A@B.com"},
			identity: claims.Identity{UserID: "42", Email: "a@b.com"},
			want:     true,
		},
		{
			name:     "id comparison is case-sensitive",
			author:   posts.Author{ID: "ABC"},
			identity: claims.Identity{UserID: "abc"},
			want:     false,
		},
		{
			name:     "email only on both sides",
			author:   posts.Author{Email: "owner@example.com"},
			identity: claims.Identity{Email: "OWNER@EXAMPLE.COM"},
			want:     true,
		},
		{
			name:     "empty author fails closed",
			author:   posts.Author{},
			identity: claims.Identity{UserID: "42", Email: "a@b.com"},
			want:     false,
		},
		{
			name:     "empty identity fails closed",
			author:   posts.Author{ID: "42", Email: "a@b.com"},
			identity: claims.Identity{},
			want:     false,
		},
		{
			name:     "id mismatch and email mismatch",
			author:   posts.Author{ID: "99", Email: "other@example.com"},
			identity: claims.Identity{UserID: "42", Email: "a@b.com"},
			want:     false,
		},
		{
			name:     "author id present but identity only has email",
			author:   posts.Author{ID: "99", Email: "a@b.com"},
			identity: claims.Identity{Email: "a@b.com"},
			want:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			post := posts.Post{ID: "post-1", Author: tc.author}
			require.Equal(t, tc.want, posts.IsOwner(post, tc.identity))
		})
	}
}
