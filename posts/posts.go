package posts

import (
	"github.com/jrsteele09/go-blog-client/categories"
	"github.com/jrsteele09/go-blog-client/tags"
)

// Status represents the publication state of a post
type Status string

const (
	StatusPublished Status = "PUBLISHED"
	StatusDraft     Status = "DRAFT"
)

// Author is the post's author as embedded in a post record returned by the
// backend. Fields may be absent depending on what the backend exposes.
type Author struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Post mirrors the backend's post record.
type Post struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Content  string               `json:"content"`
	Summary  string               `json:"summary,omitempty"`
	Status   Status               `json:"status"`
	Category *categories.Category `json:"category,omitempty"`
	Tags     []tags.Tag           `json:"tags,omitempty"`
	Author   Author               `json:"author"`
}

// Fields is the mutation payload for creating or updating a post.
type Fields struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Status     Status   `json:"status"`
	CategoryID string   `json:"categoryId,omitempty"`
	TagIDs     []string `json:"tagIds,omitempty"`
}
