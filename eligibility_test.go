package planner

import (
	"testing"
	"time"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func datePtr(d Date) *Date        { return &d }

func TestIsEligibleAgeAtCampStart(t *testing.T) {
	// Born 2015-06-15, camp starts 2024-07-01 with bounds 8-12: age at camp
	// is 9, so the person is eligible.
	p := Person{ID: 1, Name: "Mia", Birthdate: NewDate(2015, time.June, 15)}
	c := Camp{ID: 10, Name: "Sommercamp", StartDate: NewDate(2024, time.July, 1), AgeMin: intPtr(8), AgeMax: intPtr(12)}

	ok, err := IsEligible(p, c)
	if err != nil {
		t.Fatalf("IsEligible: %v", err)
	}
	if !ok {
		t.Fatalf("expected eligible")
	}
}

func TestIsEligibleBounds(t *testing.T) {
	camp := Camp{ID: 10, StartDate: NewDate(2024, time.July, 1), AgeMin: intPtr(8), AgeMax: intPtr(12)}

	tooYoung := Person{ID: 1, Birthdate: NewDate(2018, time.January, 1)}
	if ok, _ := IsEligible(tooYoung, camp); ok {
		t.Fatalf("6-year-old should not be eligible for 8-12 camp")
	}

	tooOld := Person{ID: 2, Birthdate: NewDate(2010, time.January, 1)}
	if ok, _ := IsEligible(tooOld, camp); ok {
		t.Fatalf("14-year-old should not be eligible for 8-12 camp")
	}

	onMin := Person{ID: 3, Birthdate: NewDate(2016, time.July, 1)}
	if ok, _ := IsEligible(onMin, camp); !ok {
		t.Fatalf("exactly 8 should be eligible")
	}
}

func TestIsEligibleNoBounds(t *testing.T) {
	// Without age bounds everyone is eligible, even with an unparseable
	// birthdate: age is never computed.
	p := Person{ID: 1}
	c := Camp{ID: 10, StartDate: NewDate(2024, time.July, 1)}
	ok, err := IsEligible(p, c)
	if err != nil || !ok {
		t.Fatalf("expected eligible without bounds, got %v %v", ok, err)
	}
}

func TestIsEligibleInvalidBirthdate(t *testing.T) {
	p := Person{ID: 1, Name: "X"}
	c := Camp{ID: 10, StartDate: NewDate(2024, time.July, 1), AgeMin: intPtr(8)}
	if _, err := IsEligible(p, c); !IsInvalidDate(err) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
}

func TestEligibleCampsIdentityWhenNobodySelected(t *testing.T) {
	camps := []Camp{{ID: 1}, {ID: 2, AgeMin: intPtr(99)}}
	got, faults := EligibleCamps(camps, nil)
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	if len(got) != len(camps) {
		t.Fatalf("expected all %d camps, got %d", len(camps), len(got))
	}
	for i := range camps {
		if got[i].ID != camps[i].ID {
			t.Fatalf("camp order changed")
		}
	}
}

func TestEligibleCampsUnionOverPeople(t *testing.T) {
	// A family with an 8- and a 14-year-old still sees camps fitting only
	// one of them.
	young := Person{ID: 1, Birthdate: NewDate(2016, time.January, 1)}
	old := Person{ID: 2, Birthdate: NewDate(2010, time.January, 1)}

	start := NewDate(2024, time.July, 1)
	forYoung := Camp{ID: 10, StartDate: start, AgeMin: intPtr(6), AgeMax: intPtr(10)}
	forOld := Camp{ID: 11, StartDate: start, AgeMin: intPtr(13), AgeMax: intPtr(17)}
	forNeither := Camp{ID: 12, StartDate: start, AgeMin: intPtr(18)}

	got, faults := EligibleCamps([]Camp{forYoung, forOld, forNeither}, []Person{young, old})
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Fatalf("expected camps 10 and 11, got %+v", got)
	}
}

func TestEligibleCampsReportsDateFaults(t *testing.T) {
	broken := Person{ID: 1}
	camp := Camp{ID: 10, StartDate: NewDate(2024, time.July, 1), AgeMin: intPtr(8)}

	got, faults := EligibleCamps([]Camp{camp}, []Person{broken})
	if len(got) != 0 {
		t.Fatalf("faulted person must not make a camp eligible")
	}
	if len(faults) != 1 || faults[0].CampID != 10 || faults[0].PersonID != 1 {
		t.Fatalf("expected one fault for camp 10 / person 1, got %+v", faults)
	}
	if !IsInvalidDate(faults[0].Err) {
		t.Fatalf("fault should carry ErrInvalidDate, got %v", faults[0].Err)
	}
}
