package client

import (
	"net/http"

	"github.com/jrsteele09/go-blog-client/tags"
)

type tagRepo struct {
	client *Client
}

var _ tags.Repo = tagRepo{}

func (tr tagRepo) List() ([]tags.Tag, error) {
	listed := []tags.Tag{}
	if err := tr.client.do(tr.client.anonymous, http.MethodGet, "/tags", nil, nil, &listed); err != nil {
		return nil, err
	}
	return listed, nil
}

func (tr tagRepo) Create(name string) (*tags.Tag, error) {
	tag := &tags.Tag{}
	payload := tags.Tag{Name: name}
	if err := tr.client.do(tr.client.authorized, http.MethodPost, "/tags", nil, payload, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (tr tagRepo) Delete(tagID string) error {
	return tr.client.do(tr.client.authorized, http.MethodDelete, "/tags/"+tagID, nil, nil, nil)
}
