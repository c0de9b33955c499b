package faketagrepo

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jrsteele09/go-blog-client/tags"
)

var _ tags.Repo = (*FakeTagRepo)(nil)

type FakeTagRepo struct {
	lock sync.RWMutex
	tags map[string]*tags.Tag
}

func NewFakeTagRepo() *FakeTagRepo {
	return &FakeTagRepo{tags: make(map[string]*tags.Tag)}
}

func (tr *FakeTagRepo) List() ([]tags.Tag, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	listed := make([]tags.Tag, 0)
	for _, tag := range tr.tags {
		listed = append(listed, *tag)
	}
	sort.Slice(listed, func(i, j int) bool { return listed[i].Name < listed[j].Name })
	return listed, nil
}

func (tr *FakeTagRepo) Create(name string) (*tags.Tag, error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	tag := &tags.Tag{ID: uuid.New().String(), Name: name}
	tr.tags[tag.ID] = tag
	copied := *tag
	return &copied, nil
}

func (tr *FakeTagRepo) Delete(tagID string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if _, ok := tr.tags[tagID]; !ok {
		return errors.New("not found")
	}
	delete(tr.tags, tagID)
	return nil
}
