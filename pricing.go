package planner

import "fmt"

// IsEarlyBirdActive reports whether the camp's early-bird price applies on
// the given day. It requires both an early-bird price and a deadline; the
// deadline day itself still counts.
func IsEarlyBirdActive(c Camp, today Date) bool {
	if c.EarlyBirdPrice == nil || c.EarlyBirdUntil == nil {
		return false
	}
	if today.IsZero() || c.EarlyBirdUntil.IsZero() {
		return false
	}
	return !today.After(c.EarlyBirdUntil.Time)
}

// EffectivePrice returns the per-attendee price in effect on the given day:
// the early-bird price while its window is open, the base price otherwise.
// Nil means the organiser has not published a price; callers must treat
// that as undetermined, never as zero.
func EffectivePrice(c Camp, today Date) *float64 {
	if c.BasePrice == nil {
		return nil
	}
	var v float64
	if IsEarlyBirdActive(c, today) {
		v = *c.EarlyBirdPrice
	} else {
		v = *c.BasePrice
	}
	return &v
}

// EffectiveSiblingPrice returns the price each attendee after the first pays.
// Without a sibling price it equals EffectivePrice. While early bird is
// active the sibling price is scaled by the same ratio the early-bird price
// has to the base price, so the sibling discount keeps its percentage
// instead of stacking additively. A zero base price makes that ratio
// undefined; this is reported as a SiblingRatioError, never as a zero cost.
func EffectiveSiblingPrice(c Camp, today Date) (*float64, error) {
	if c.SiblingPrice == nil {
		return EffectivePrice(c, today), nil
	}
	if !IsEarlyBirdActive(c, today) {
		v := *c.SiblingPrice
		return &v, nil
	}
	if c.BasePrice == nil {
		return nil, nil
	}
	if *c.BasePrice == 0 {
		return nil, &SiblingRatioError{CampID: c.ID, CampName: c.Name}
	}
	v := *c.EarlyBirdPrice * (*c.SiblingPrice / *c.BasePrice)
	return &v, nil
}

// CampCost is the priced outcome for one camp in a breakdown.
type CampCost struct {
	Cost               float64
	Detail             string
	HasSiblingDiscount bool
	HasEarlyBird       bool
}

// CostForCamp prices the camp for the given number of attendees on the given
// day. The first attendee pays the effective price; with a sibling price and
// more than one attendee the rest pay the effective sibling price. A camp
// without a base price yields ErrUndeterminedPrice so the caller can route
// it to the unpriced list.
func CostForCamp(c Camp, attendees int, today Date) (CampCost, error) {
	price := EffectivePrice(c, today)
	if price == nil {
		return CampCost{}, fmt.Errorf("camp %q (id %d): %w", c.Name, c.ID, ErrUndeterminedPrice)
	}

	early := IsEarlyBirdActive(c, today)

	if c.SiblingPrice != nil && attendees > 1 {
		sibling, err := EffectiveSiblingPrice(c, today)
		if err != nil {
			return CampCost{}, err
		}
		cost := *price + *sibling*float64(attendees-1)
		detail := fmt.Sprintf("1 x %.2f + %d x %.2f (sibling)", *price, attendees-1, *sibling)
		if early {
			detail += " [Early Bird]"
		}
		return CampCost{Cost: cost, Detail: detail, HasSiblingDiscount: true, HasEarlyBird: early}, nil
	}

	cost := *price * float64(attendees)
	detail := fmt.Sprintf("%d x %.2f", attendees, *price)
	if early {
		detail += " [Early Bird]"
	}
	return CampCost{Cost: cost, Detail: detail, HasEarlyBird: early}, nil
}
