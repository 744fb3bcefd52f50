// Package api implements the HTTP calls behind the public Client. Each file
// covers one backend resource; all functions share the do helper below.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	interrors "github.com/ferienplaner/planner/internal/errors"
	"github.com/ferienplaner/planner/internal/types"
)

const (
	maxAttempts     = 4
	initialInterval = 200 * time.Millisecond
	maxInterval     = 3 * time.Second
)

// do executes one JSON request against the backend. Recoverable failures
// (5xx, 429, 408, transport errors) are retried with exponential backoff;
// everything else fails immediately. The response body is decoded into out
// when out is non-nil.
func do(ctx context.Context, hc *http.Client, method, url string, in, out any, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initialInterval
	exp.MaxInterval = maxInterval
	exp.Multiplier = 2

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(exp.NextBackOff())
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		lastErr = doOnce(ctx, hc, method, url, body, out, op)
		if lastErr == nil {
			return nil
		}
		if !interrors.IsRecoverable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func doOnce(ctx context.Context, hc *http.Client, method, url string, body []byte, out any, op string) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	// Note: Authorization header is added by the transport layer.

	resp, err := hc.Do(req)
	if err != nil {
		return interrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp, op)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response to a classified error. The
// backend reports failures as {"message": ...}; that message is surfaced in
// the error chain along with sentinel errors for 401 and 404.
func errorFromResponse(resp *http.Response, op string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := http.StatusText(resp.StatusCode)
	var er types.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
		msg = er.Message
	}

	var underlying error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		underlying = fmt.Errorf("%s: %s: %w", op, msg, types.ErrUnauthorized)
	case http.StatusNotFound:
		underlying = fmt.Errorf("%s: %s: %w", op, msg, types.ErrNotFound)
	default:
		underlying = fmt.Errorf("%s: %s", op, msg)
	}
	return interrors.ClassifyHTTPError(resp.StatusCode, string(raw), underlying)
}
