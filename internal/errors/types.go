// Package errors classifies backend failures so the API layer can decide
// which ones are worth retrying.
package errors

import "fmt"

// ErrorCategory determines how a failure is handled by the retry policy.
type ErrorCategory int

const (
	// Recoverable failures may succeed on retry: 5xx responses, timeouts,
	// connection resets.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will not improve on retry: 400, 401, 403, 404.
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "recoverable"
	case Irrecoverable:
		return "irrecoverable"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// ClassifiedError carries an HTTP failure plus its retry category.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // 0 for network-level failures
	Body       string // response body, kept for diagnostics
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsRecoverable reports whether err should be retried. Unclassified errors
// are not retried; only the API layer produces classified ones.
func IsRecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Recoverable
	}
	return false
}
