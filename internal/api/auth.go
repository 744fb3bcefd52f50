package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ferienplaner/planner/internal/types"
)

// Signup creates a guardian account and returns a fresh bearer token.
func Signup(ctx context.Context, httpClient *http.Client, baseURL string, req types.SignupRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	url := fmt.Sprintf("%s/auth/signup", baseURL)
	if err := do(ctx, httpClient, http.MethodPost, url, req, &out, "signup"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	url := fmt.Sprintf("%s/auth/login", baseURL)
	if err := do(ctx, httpClient, http.MethodPost, url, req, &out, "login"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account behind the current token.
func Me(ctx context.Context, httpClient *http.Client, baseURL string) (*types.User, error) {
	var out types.User
	url := fmt.Sprintf("%s/auth/me", baseURL)
	if err := do(ctx, httpClient, http.MethodGet, url, nil, &out, "me"); err != nil {
		return nil, err
	}
	return &out, nil
}
