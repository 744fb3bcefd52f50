package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ferienplaner/planner/internal/types"
)

// ListCamps returns the camp catalogue, optionally narrowed by age bounds
// (the backend filters on min_age / max_age query parameters).
func ListCamps(ctx context.Context, httpClient *http.Client, baseURL string, filter types.CampFilter) ([]types.Camp, error) {
	endpoint := fmt.Sprintf("%s/camps", baseURL)
	query := url.Values{}
	if filter.MinAge != nil {
		query.Set("min_age", strconv.Itoa(*filter.MinAge))
	}
	if filter.MaxAge != nil {
		query.Set("max_age", strconv.Itoa(*filter.MaxAge))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var camps []types.Camp
	if err := do(ctx, httpClient, http.MethodGet, endpoint, nil, &camps, "list camps"); err != nil {
		return nil, err
	}
	return camps, nil
}

// GetCamp retrieves a single camp by id.
func GetCamp(ctx context.Context, httpClient *http.Client, baseURL string, id int64) (*types.Camp, error) {
	var camp types.Camp
	url := fmt.Sprintf("%s/camps/%d", baseURL, id)
	if err := do(ctx, httpClient, http.MethodGet, url, nil, &camp, "get camp"); err != nil {
		return nil, err
	}
	return &camp, nil
}
