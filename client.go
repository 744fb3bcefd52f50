// Package planner is an SDK for the camp-planning backend plus the planning
// core built on top of it: age and eligibility rules, early-bird and sibling
// pricing, and the camp/child selection a guardian assembles into a plan.
//
// The Client half talks to the backend's REST API (people, camps, saved
// plans, auth). The Engine half is pure: it works on snapshots of the
// people and camp caches and never performs I/O itself.
package planner

import (
	"context"
	"net/http"
	"time"

	"github.com/ferienplaner/planner/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the HTTP SDK for the backend. The bearer token is fixed at
// construction; Login and Signup work on an unauthenticated client and
// return a token the caller can build an authenticated client with.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New constructs a Client for the given backend base URL. Additional
// behaviour is configured via functional options.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.wrapTransport()
	return c
}

// wrapTransport installs the bearer-token and metrics wrappers around
// whatever transport the options left behind.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &metricsTransport{
		base: &bearerTransport{base: base, token: c.token},
	}
}

// bearerTransport adds the Authorization header to every request. An empty
// token leaves requests unauthenticated (login / signup).
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Signup creates a guardian account and returns its bearer token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	return api.Signup(ctx, c.http, c.baseURL, req)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, LoginRequest{Email: email, Password: password})
}

// Me returns the account behind the configured token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return api.Me(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// People operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPeople returns all registered children.
func (c *Client) ListPeople(ctx context.Context) ([]Person, error) {
	return api.ListPeople(ctx, c.http, c.baseURL)
}

// AddPerson registers a child.
func (c *Client) AddPerson(ctx context.Context, name string, birthdate Date) (*Person, error) {
	return api.AddPerson(ctx, c.http, c.baseURL, AddPersonRequest{Name: name, Birthdate: birthdate})
}

// UpdatePerson applies a partial update to a child record.
func (c *Client) UpdatePerson(ctx context.Context, id int64, req UpdatePersonRequest) (*Person, error) {
	return api.UpdatePerson(ctx, c.http, c.baseURL, id, req)
}

// DeletePerson removes a child record.
func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	return api.DeletePerson(ctx, c.http, c.baseURL, id)
}

// --------------------------------------------------------------------
// Camp operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCamps returns the camp catalogue, optionally filtered by age bounds.
func (c *Client) ListCamps(ctx context.Context, filter CampFilter) ([]Camp, error) {
	return api.ListCamps(ctx, c.http, c.baseURL, filter)
}

// GetCamp retrieves a single camp.
func (c *Client) GetCamp(ctx context.Context, id int64) (*Camp, error) {
	return api.GetCamp(ctx, c.http, c.baseURL, id)
}

// --------------------------------------------------------------------
// Plan operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPlans returns all saved plans for the account.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	return api.ListPlans(ctx, c.http, c.baseURL)
}

// SavePlan persists a named selection snapshot. Client satisfies the
// engine's PlanSaver interface through this method.
func (c *Client) SavePlan(ctx context.Context, req SavePlanRequest) (*Plan, error) {
	return api.SavePlan(ctx, c.http, c.baseURL, req)
}

// UpdatePlan applies a partial update to a saved plan.
func (c *Client) UpdatePlan(ctx context.Context, id int64, req UpdatePlanRequest) (*Plan, error) {
	return api.UpdatePlan(ctx, c.http, c.baseURL, id, req)
}

// DeletePlan removes a saved plan.
func (c *Client) DeletePlan(ctx context.Context, id int64) error {
	return api.DeletePlan(ctx, c.http, c.baseURL, id)
}
