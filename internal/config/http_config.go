package config

import (
	"time"
)

const httpTimeoutVar = "HTTP_TIMEOUT"

type HTTP struct{}

var _ HTTPConfig = HTTP{}

// GetHTTPTimeout returns the per-request timeout for backend calls.
// Accepts any time.ParseDuration string (e.g. "10s", "1m").
func (HTTP) GetHTTPTimeout() time.Duration {
	raw := GetEnv(httpTimeoutVar, "15s")
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
