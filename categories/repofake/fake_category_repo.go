package fakecategoryrepo

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jrsteele09/go-blog-client/categories"
)

var _ categories.Repo = (*FakeCategoryRepo)(nil)

type FakeCategoryRepo struct {
	lock       sync.RWMutex
	categories map[string]*categories.Category
}

func NewFakeCategoryRepo() *FakeCategoryRepo {
	return &FakeCategoryRepo{categories: make(map[string]*categories.Category)}
}

func (cr *FakeCategoryRepo) List() ([]categories.Category, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	listed := make([]categories.Category, 0)
	for _, category := range cr.categories {
		listed = append(listed, *category)
	}
	sort.Slice(listed, func(i, j int) bool { return listed[i].Name < listed[j].Name })
	return listed, nil
}

func (cr *FakeCategoryRepo) Create(name string) (*categories.Category, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	category := &categories.Category{ID: uuid.New().String(), Name: name}
	cr.categories[category.ID] = category
	copied := *category
	return &copied, nil
}

func (cr *FakeCategoryRepo) Delete(categoryID string) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	if _, ok := cr.categories[categoryID]; !ok {
		return errors.New("not found")
	}
	delete(cr.categories, categoryID)
	return nil
}
