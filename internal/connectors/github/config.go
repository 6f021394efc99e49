package github

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PageSize is the number of repositories requested per page.
	PageSize = 100
)

// ErrConfigInvalid indicates an invalid client configuration.
var ErrConfigInvalid = errors.New("github: invalid config")

// Config holds the client settings.
type Config struct {
	// BaseURL is the REST endpoint. Default: DefaultBaseURL.
	// Set it for GitHub Enterprise or to point the client at a test server.
	BaseURL string

	// Timeout bounds each HTTP request. Default: DefaultTimeout.
	Timeout time.Duration

	// RequestsPerSecond spaces requests out. Zero disables pacing.
	RequestsPerSecond float64
}

// DefaultConfig returns the configuration for api.github.com without pacing.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// withDefaults fills zero fields and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.RequestsPerSecond < 0 {
		return c, fmt.Errorf("%w: requests_per_second must not be negative, got %v",
			ErrConfigInvalid, c.RequestsPerSecond)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c, fmt.Errorf("%w: base URL %q", ErrConfigInvalid, c.BaseURL)
	}
	return c, nil
}
