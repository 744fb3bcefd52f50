package types

// ------------------------------
// Request Types
// ------------------------------

// SignupRequest holds parameters for a new guardian account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddPersonRequest holds parameters for registering a child.
type AddPersonRequest struct {
	Name      string `json:"name"`
	Birthdate Date   `json:"birthdate"`
}

// UpdatePersonRequest holds a partial update for a child. Nil fields are
// left unchanged by the backend.
type UpdatePersonRequest struct {
	Name      string `json:"name,omitempty"`
	Birthdate *Date  `json:"birthdate,omitempty"`
}

// CampFilter narrows a camp listing by age bounds. Nil means unbounded.
type CampFilter struct {
	MinAge *int
	MaxAge *int
}

// SavePlanRequest persists a named selection snapshot.
type SavePlanRequest struct {
	Name       string    `json:"name"`
	Selections PlanPairs `json:"selections"`
	TotalCost  float64   `json:"total_cost"`
}

// Validate rejects requests the backend would refuse anyway, before any
// network call is made.
func (r SavePlanRequest) Validate() error {
	if r.Name == "" {
		return ErrPlanNameRequired
	}
	if len(r.Selections) == 0 {
		return ErrEmptySelection
	}
	return nil
}

// UpdatePlanRequest holds a partial update for a persisted plan.
type UpdatePlanRequest struct {
	Name       string    `json:"name,omitempty"`
	Selections PlanPairs `json:"selections,omitempty"`
	TotalCost  *float64  `json:"total_cost,omitempty"`
}
