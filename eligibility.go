package planner

import "fmt"

// Fault records a computation that failed for a single camp (and optionally
// a single person) without aborting the surrounding operation.
type Fault struct {
	CampID   int64
	PersonID int64 // 0 when the fault is not person-specific
	Err      error
}

// IsEligible reports whether the person may attend the camp. A camp without
// age bounds accepts everyone; otherwise the person's age at the camp's
// start date must satisfy whichever bounds are present.
func IsEligible(p Person, c Camp) (bool, error) {
	if c.AgeMin == nil && c.AgeMax == nil {
		return true, nil
	}
	age, err := AgeAt(p.Birthdate, c.StartDate)
	if err != nil {
		return false, fmt.Errorf("person %d (%s), camp %d: %w", p.ID, p.Name, c.ID, err)
	}
	if c.AgeMin != nil && age < *c.AgeMin {
		return false, nil
	}
	if c.AgeMax != nil && age > *c.AgeMax {
		return false, nil
	}
	return true, nil
}

// EligibleCamps filters camps to those at least one of the given people may
// attend. With no people it returns camps unfiltered: everything is shown
// until the guardian has chosen whom they are planning for. The union
// semantics are deliberate, so a camp fitting only one child of a family
// still shows up.
//
// Date errors are collected as faults per (camp, person) and never make a
// camp eligible.
func EligibleCamps(camps []Camp, people []Person) ([]Camp, []Fault) {
	if len(people) == 0 {
		return camps, nil
	}
	var out []Camp
	var faults []Fault
	for _, c := range camps {
		eligible := false
		for _, p := range people {
			ok, err := IsEligible(p, c)
			if err != nil {
				faults = append(faults, Fault{CampID: c.ID, PersonID: p.ID, Err: err})
				continue
			}
			if ok {
				eligible = true
				break
			}
		}
		if eligible {
			out = append(out, c)
		}
	}
	return out, faults
}
