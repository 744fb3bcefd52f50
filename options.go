package planner

// This file defines functional options that configure the Client during
// construction, plus the environment-variable configuration path.

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer-token and metrics wrappers are
// installed, so transport-related options (like debug logging) end up
// underneath them. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithToken sets the bearer token used for all requests. Without it the
// client can only call Login and Signup.
func WithToken(token string) Option {
	return func(c *Client) error {
		c.token = token
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable in production: the dumps include the Authorization header
// and full request/response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// Config holds the environment-variable configuration for NewFromEnv.
type Config struct {
	BaseURL string        `envconfig:"PLANNER_BASE_URL" required:"true"`
	Token   string        `envconfig:"PLANNER_TOKEN"`
	Timeout time.Duration `envconfig:"PLANNER_TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"PLANNER_DEBUG"`
}

// NewFromEnv constructs a Client from PLANNER_* environment variables.
func NewFromEnv() (*Client, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("PLANNER_BASE_URL must not be empty")
	}
	opts := []Option{WithHTTPTimeout(cfg.Timeout)}
	if cfg.Token != "" {
		opts = append(opts, WithToken(cfg.Token))
	}
	if cfg.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, opts...), nil
}
