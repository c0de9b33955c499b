package fakepostrepo

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jrsteele09/go-blog-client/posts"
)

var _ posts.Repo = (*FakePostRepo)(nil)

type FakePostRepo struct {
	lock  sync.RWMutex
	posts map[string]*posts.Post

	// Author stamped onto created posts, standing in for the backend
	// deriving the author from the bearer token.
	Author posts.Author
}

func NewFakePostRepo() *FakePostRepo {
	return &FakePostRepo{posts: make(map[string]*posts.Post)}
}

func (pr *FakePostRepo) List(filter posts.Filter) ([]posts.Post, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	listed := make([]posts.Post, 0)
	for _, post := range pr.posts {
		if post.Status != posts.StatusPublished {
			continue
		}
		if !matchesFilter(post, filter) {
			continue
		}
		listed = append(listed, *post)
	}
	sortByID(listed)
	return listed, nil
}

func (pr *FakePostRepo) Get(postID string) (*posts.Post, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	post, ok := pr.posts[postID]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *post
	return &copied, nil
}

func (pr *FakePostRepo) Drafts() ([]posts.Post, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	drafts := make([]posts.Post, 0)
	for _, post := range pr.posts {
		if post.Status == posts.StatusDraft {
			drafts = append(drafts, *post)
		}
	}
	sortByID(drafts)
	return drafts, nil
}

func (pr *FakePostRepo) Create(fields *posts.Fields) (*posts.Post, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	post := &posts.Post{
		ID:      uuid.New().String(),
		Title:   fields.Title,
		Content: fields.Content,
		Status:  fields.Status,
		Author:  pr.Author,
	}
	pr.posts[post.ID] = post
	copied := *post
	return &copied, nil
}

func (pr *FakePostRepo) Update(postID string, fields *posts.Fields) (*posts.Post, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	post, ok := pr.posts[postID]
	if !ok {
		return nil, errors.New("not found")
	}
	post.Title = fields.Title
	post.Content = fields.Content
	post.Status = fields.Status
	copied := *post
	return &copied, nil
}

func (pr *FakePostRepo) Delete(postID string) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	if _, ok := pr.posts[postID]; !ok {
		return errors.New("not found")
	}
	delete(pr.posts, postID)
	return nil
}

func matchesFilter(post *posts.Post, filter posts.Filter) bool {
	if filter.CategoryID != "" {
		if post.Category == nil || post.Category.ID != filter.CategoryID {
			return false
		}
	}
	if filter.TagID != "" {
		found := false
		for _, tag := range post.Tags {
			if tag.ID == filter.TagID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortByID(listed []posts.Post) {
	sort.Slice(listed, func(i, j int) bool { return listed[i].ID < listed[j].ID })
}
