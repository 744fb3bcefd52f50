package planner

// AgeAt returns the number of whole years elapsed between birth and ref:
// the calendar-year difference, minus one if ref falls before the birthday
// within its year. Zero-value dates (never parsed at the boundary) yield
// ErrInvalidDate rather than a bogus age.
func AgeAt(birth, ref Date) (int, error) {
	if birth.IsZero() || ref.IsZero() {
		return 0, ErrInvalidDate
	}
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years, nil
}
