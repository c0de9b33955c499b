package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-blog-client/internal/config"
)

func TestBaseURLDefaultsToLocalhost(t *testing.T) {
	require.Equal(t, "http://localhost:8080", config.New().GetBaseURL())

	t.Setenv("BLOG_BASE_URL", "https://blog.example.com")
	require.Equal(t, "https://blog.example.com", config.New().GetBaseURL())
}

func TestHTTPTimeout(t *testing.T) {
	require.Equal(t, 15*time.Second, config.New().GetHTTPTimeout())

	t.Setenv("HTTP_TIMEOUT", "2s")
	require.Equal(t, 2*time.Second, config.New().GetHTTPTimeout())

	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	require.Equal(t, 15*time.Second, config.New().GetHTTPTimeout())
}
