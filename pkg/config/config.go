// Package config loads the Grouper Web Services connection settings.
//
// Settings come from the process environment, optionally seeded from a .env
// file. The result is an explicit value handed to constructors rather than
// ambient global state, so tests can build as many configurations as they
// need.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/langedb/grouper-mcp/pkg/logger"
)

// Environment variable names understood by Load.
const (
	EnvBaseURL  = "GROUPER_BASE_URL"
	EnvUsername = "GROUPER_USERNAME"
	EnvPassword = "GROUPER_PASSWORD"
)

// DefaultTimeout is the client-wide timeout for outgoing HTTP requests.
// Individual calls are not wrapped in shorter deadlines.
const DefaultTimeout = 30 * time.Second

// Config holds the connection settings for a Grouper Web Services instance.
type Config struct {
	// BaseURL is the WS REST base, e.g.
	// https://grouper.example.edu/grouper-ws/servicesRest/json/v4_0_000
	BaseURL string

	// Username and Password are the Basic-Auth credentials. They are
	// resolved once at startup and never refreshed mid-process.
	Username string
	Password string

	// Timeout bounds each outgoing HTTP request.
	Timeout time.Duration
}

// Load reads the configuration from the environment. If a .env file exists
// in the working directory it is loaded first; real environment variables
// take precedence over file entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read .env file: %w", err)
		}
	} else {
		logger.Debug("Loaded settings from .env file")
	}

	cfg := &Config{
		BaseURL:  strings.TrimRight(os.Getenv(EnvBaseURL), "/"),
		Username: os.Getenv(EnvUsername),
		Password: os.Getenv(EnvPassword),
		Timeout:  DefaultTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is complete enough to talk to a
// Grouper WS instance.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%s is required", EnvBaseURL)
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", EnvBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", EnvBaseURL, parsed.Scheme)
	}

	if c.Username == "" {
		return fmt.Errorf("%s is required", EnvUsername)
	}
	if c.Password == "" {
		return fmt.Errorf("%s is required", EnvPassword)
	}

	return nil
}
