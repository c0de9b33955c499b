// Package client implements the REST surface of the blog backend. It is the
// only package that talks HTTP; the domain repo interfaces (posts,
// categories, tags) are implemented here on top of a shared request helper.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-blog-client/categories"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/posts"
	"github.com/jrsteele09/go-blog-client/tags"
)

const apiPrefix = "/api/v1"

// Client performs HTTP calls against the blog backend. Read-only listing
// endpoints go out unauthenticated; mutating and draft endpoints carry an
// Authorization bearer header supplied by the oauth2 transport. There is no
// retry and no de-duplication of in-flight requests.
type Client struct {
	baseURL    string
	anonymous  *http.Client
	authorized *http.Client
}

// New builds a Client from config. tokenSource supplies the bearer token for
// authorized calls, typically sessions.Manager.TokenSource().
func New(cfg config.Config, tokenSource oauth2.TokenSource) *Client {
	anonymous := &http.Client{Timeout: cfg.GetHTTPTimeout()}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, anonymous)
	authorized := oauth2.NewClient(ctx, tokenSource)
	authorized.Timeout = cfg.GetHTTPTimeout()

	return &Client{
		baseURL:    cfg.GetBaseURL() + apiPrefix,
		anonymous:  anonymous,
		authorized: authorized,
	}
}

// Posts returns the REST-backed posts repository.
func (c *Client) Posts() posts.Repo {
	return postRepo{client: c}
}

// Categories returns the REST-backed categories repository.
func (c *Client) Categories() categories.Repo {
	return categoryRepo{client: c}
}

// Tags returns the REST-backed tags repository.
func (c *Client) Tags() tags.Repo {
	return tagRepo{client: c}
}

// do performs one request. body is JSON-encoded when non-nil; a 2xx response
// body is decoded into out when out is non-nil.
func (c *Client) do(httpClient *http.Client, method, path string, query url.Values, body, out any) error {
	resp, err := c.roundTrip(httpClient, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "client: decode %s %s", method, path)
	}
	return nil
}

// roundTrip performs one request against the backend. Every request, no
// matter which endpoint, carries a Content-Type, a fresh X-Request-Id and a
// debug log entry; callers own the response body.
func (c *Client) roundTrip(httpClient *http.Client, method, path string, query url.Values, body any) (*http.Response, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "client: encode %s %s", method, path)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, requestURL, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "client: %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "client: %s %s", method, path)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("backend request")

	return resp, nil
}

func statusError(statusCode int, method, path string) error {
	var kind error
	switch statusCode {
	case http.StatusUnauthorized:
		kind = errors.ErrNotAuthenticated
	case http.StatusForbidden:
		kind = errors.ErrForbidden
	case http.StatusNotFound:
		kind = errors.ErrNotFound
	default:
		kind = errors.ErrRequestFailed
	}
	return fmt.Errorf("%w: %s %s returned status %d", kind, method, path, statusCode)
}
