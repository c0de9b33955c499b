package client

import (
	"net/http"

	"github.com/jrsteele09/go-blog-client/categories"
)

type categoryRepo struct {
	client *Client
}

var _ categories.Repo = categoryRepo{}

func (cr categoryRepo) List() ([]categories.Category, error) {
	listed := []categories.Category{}
	if err := cr.client.do(cr.client.anonymous, http.MethodGet, "/categories", nil, nil, &listed); err != nil {
		return nil, err
	}
	return listed, nil
}

func (cr categoryRepo) Create(name string) (*categories.Category, error) {
	category := &categories.Category{}
	payload := categories.Category{Name: name}
	if err := cr.client.do(cr.client.authorized, http.MethodPost, "/categories", nil, payload, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (cr categoryRepo) Delete(categoryID string) error {
	return cr.client.do(cr.client.authorized, http.MethodDelete, "/categories/"+categoryID, nil, nil, nil)
}
