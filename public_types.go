package planner

import (
	"time"

	"github.com/ferienplaner/planner/internal/types"
)

// Public type aliases so SDK consumers can import only the planner package.
type (
	// Domain entities
	User     = types.User
	Person   = types.Person
	Camp     = types.Camp
	Plan     = types.Plan
	PlanPair = types.PlanPair
	// PlanPairs normalises the backend's array-or-object selections shape.
	PlanPairs = types.PlanPairs
	Date      = types.Date
	UnixTime  = types.UnixTime

	// Requests
	SignupRequest       = types.SignupRequest
	LoginRequest        = types.LoginRequest
	AddPersonRequest    = types.AddPersonRequest
	UpdatePersonRequest = types.UpdatePersonRequest
	CampFilter          = types.CampFilter
	SavePlanRequest     = types.SavePlanRequest
	UpdatePlanRequest   = types.UpdatePlanRequest

	// Responses
	AuthResponse = types.AuthResponse
)

// NewDate builds a day-granularity calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return types.NewDate(year, month, day)
}

// ParseDate parses "2006-01-02" (or a full RFC 3339 timestamp) into a Date.
func ParseDate(s string) (Date, error) {
	return types.ParseDate(s)
}

// Today returns the current date in UTC.
func Today() Date {
	return types.Today()
}
