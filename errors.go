package planner

import (
	"errors"
	"fmt"

	"github.com/ferienplaner/planner/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrNotFound is returned when the backend reports a missing resource.
	ErrNotFound = types.ErrNotFound
	// ErrUnauthorized is returned when the bearer token is missing or rejected.
	ErrUnauthorized = types.ErrUnauthorized
	// ErrEmptySelection is returned when a plan is saved with no pairings.
	ErrEmptySelection = types.ErrEmptySelection
	// ErrPlanNameRequired is returned when a plan is saved without a name.
	ErrPlanNameRequired = types.ErrPlanNameRequired
	// ErrInvalidDate is returned when a computation receives an unparsed or
	// absent calendar date.
	ErrInvalidDate = types.ErrInvalidDate
)

// ErrUndeterminedPrice marks a camp whose base price the organiser has not
// published yet. It is a modelled outcome, not a failure: such camps are
// routed to the unpriced part of a breakdown instead of costing zero.
var ErrUndeterminedPrice = errors.New("price not determined")

// SiblingRatioError reports a camp whose sibling discount cannot be scaled
// under early-bird pricing because its base price is zero. The affected
// camp's line is omitted from the breakdown and the fault surfaced.
type SiblingRatioError struct {
	CampID   int64
	CampName string
}

func (e *SiblingRatioError) Error() string {
	return fmt.Sprintf("camp %q (id %d): sibling ratio undefined, base price is zero", e.CampName, e.CampID)
}

// IsNotFound reports whether err is a missing-resource error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsEmptySelection reports whether err rejects an empty plan.
func IsEmptySelection(err error) bool { return errors.Is(err, ErrEmptySelection) }

// IsInvalidDate reports whether err stems from an unparseable or absent date.
func IsInvalidDate(err error) bool { return errors.Is(err, ErrInvalidDate) }
