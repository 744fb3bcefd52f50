package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse is returned by signup and login. The token authenticates all
// subsequent requests; storing it is the caller's concern.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the backend's error body shape.
type ErrorResponse struct {
	Message string `json:"message"`
}
