package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ferienplaner/planner/internal/types"
)

// ListPlans returns all saved plans for the current account.
func ListPlans(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Plan, error) {
	var plans []types.Plan
	url := fmt.Sprintf("%s/selections", baseURL)
	if err := do(ctx, httpClient, http.MethodGet, url, nil, &plans, "list plans"); err != nil {
		return nil, err
	}
	return plans, nil
}

// SavePlan persists a named selection snapshot. The request is validated
// before any network call; an empty selection never leaves the client.
func SavePlan(ctx context.Context, httpClient *http.Client, baseURL string, req types.SavePlanRequest) (*types.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var plan types.Plan
	url := fmt.Sprintf("%s/selections", baseURL)
	if err := do(ctx, httpClient, http.MethodPost, url, req, &plan, "save plan"); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan applies a partial update to a saved plan.
func UpdatePlan(ctx context.Context, httpClient *http.Client, baseURL string, id int64, req types.UpdatePlanRequest) (*types.Plan, error) {
	var plan types.Plan
	url := fmt.Sprintf("%s/selections/%d", baseURL, id)
	if err := do(ctx, httpClient, http.MethodPatch, url, req, &plan, "update plan"); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a saved plan.
func DeletePlan(ctx context.Context, httpClient *http.Client, baseURL string, id int64) error {
	url := fmt.Sprintf("%s/selections/%d", baseURL, id)
	return do(ctx, httpClient, http.MethodDelete, url, nil, nil, "delete plan")
}
