package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ferienplaner/planner/internal/types"
)

// ListPeople returns all children registered for the current account.
func ListPeople(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Person, error) {
	var people []types.Person
	url := fmt.Sprintf("%s/people", baseURL)
	if err := do(ctx, httpClient, http.MethodGet, url, nil, &people, "list people"); err != nil {
		return nil, err
	}
	return people, nil
}

// AddPerson registers a child.
func AddPerson(ctx context.Context, httpClient *http.Client, baseURL string, req types.AddPersonRequest) (*types.Person, error) {
	var person types.Person
	url := fmt.Sprintf("%s/people", baseURL)
	if err := do(ctx, httpClient, http.MethodPost, url, req, &person, "add person"); err != nil {
		return nil, err
	}
	return &person, nil
}

// UpdatePerson applies a partial update to a child record.
func UpdatePerson(ctx context.Context, httpClient *http.Client, baseURL string, id int64, req types.UpdatePersonRequest) (*types.Person, error) {
	var person types.Person
	url := fmt.Sprintf("%s/people/%d", baseURL, id)
	if err := do(ctx, httpClient, http.MethodPatch, url, req, &person, "update person"); err != nil {
		return nil, err
	}
	return &person, nil
}

// DeletePerson removes a child record.
func DeletePerson(ctx context.Context, httpClient *http.Client, baseURL string, id int64) error {
	url := fmt.Sprintf("%s/people/%d", baseURL, id)
	return do(ctx, httpClient, http.MethodDelete, url, nil, nil, "delete person")
}
