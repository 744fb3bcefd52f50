package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the backend reports a missing resource.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when the bearer token is missing or rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmptySelection is returned when a plan is saved with no pairings.
var ErrEmptySelection = errors.New("selection is empty")

// ErrPlanNameRequired is returned when a plan is saved without a name.
var ErrPlanNameRequired = errors.New("plan name required")
