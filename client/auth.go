package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-blog-client/internal/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // Lifetime in seconds, relative to now
}

type registerRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	MatchingPassword string `json:"matchingPassword"`
}

// Login exchanges credentials for a bearer token and its lifetime. The
// backend contract is a relative expiresIn in seconds; computing the
// absolute expiry is the session manager's job.
func (c *Client) Login(email, password string) (token string, lifetime time.Duration, err error) {
	var response loginResponse
	if err := c.do(c.anonymous, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &response); err != nil {
		if errors.Is(err, errors.ErrNotAuthenticated) || errors.Is(err, errors.ErrForbidden) {
			return "", 0, errors.ErrLoginFailed
		}
		return "", 0, errors.Wrapf(err, "client.Login")
	}
	if response.Token == "" {
		return "", 0, errors.ErrLoginFailed
	}
	return response.Token, time.Duration(response.ExpiresIn) * time.Second, nil
}

// Register creates a new account. The backend reports failures either as a
// JSON object with a message field, as a field-to-message map, or as plain
// text; whatever arrives is folded into a single error message.
func (c *Client) Register(name, email, password, matchingPassword string) error {
	payload := registerRequest{
		Name:             name,
		Email:            email,
		Password:         password,
		MatchingPassword: matchingPassword,
	}

	resp, err := c.roundTrip(c.anonymous, http.MethodPost, "/auth/register", nil, payload)
	if err != nil {
		return errors.Wrapf(err, "client.Register")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	return fmt.Errorf("%w: %s", errors.ErrRegistrationFailed, registrationMessage(resp))
}

func registrationMessage(resp *http.Response) string {
	fallback := fmt.Sprintf("status %d", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return fallback
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var withMessage struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Message != "" {
			return withMessage.Message
		}

		fieldErrors := map[string]string{}
		if err := json.Unmarshal(body, &fieldErrors); err == nil {
			for _, message := range fieldErrors {
				if message != "" {
					return message
				}
			}
		}
		return fallback
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fallback
}
