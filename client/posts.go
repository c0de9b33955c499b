package client

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-blog-client/posts"
)

type postRepo struct {
	client *Client
}

var _ posts.Repo = postRepo{}

func (pr postRepo) List(filter posts.Filter) ([]posts.Post, error) {
	query := url.Values{}
	if filter.CategoryID != "" {
		query.Set("categoryId", filter.CategoryID)
	}
	if filter.TagID != "" {
		query.Set("tagId", filter.TagID)
	}

	listed := []posts.Post{}
	if err := pr.client.do(pr.client.anonymous, http.MethodGet, "/posts", query, nil, &listed); err != nil {
		return nil, err
	}
	return listed, nil
}

func (pr postRepo) Get(postID string) (*posts.Post, error) {
	post := &posts.Post{}
	if err := pr.client.do(pr.client.anonymous, http.MethodGet, "/posts/"+postID, nil, nil, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (pr postRepo) Drafts() ([]posts.Post, error) {
	drafts := []posts.Post{}
	if err := pr.client.do(pr.client.authorized, http.MethodGet, "/posts/drafts", nil, nil, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (pr postRepo) Create(fields *posts.Fields) (*posts.Post, error) {
	post := &posts.Post{}
	if err := pr.client.do(pr.client.authorized, http.MethodPost, "/posts", nil, fields, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (pr postRepo) Update(postID string, fields *posts.Fields) (*posts.Post, error) {
	post := &posts.Post{}
	if err := pr.client.do(pr.client.authorized, http.MethodPut, "/posts/"+postID, nil, fields, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (pr postRepo) Delete(postID string) error {
	return pr.client.do(pr.client.authorized, http.MethodDelete, "/posts/"+postID, nil, nil, nil)
}
