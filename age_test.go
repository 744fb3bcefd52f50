package planner

import (
	"testing"
	"time"
)

func TestAgeAtElapsedYears(t *testing.T) {
	birth := NewDate(2015, time.June, 15)

	cases := []struct {
		ref  Date
		want int
	}{
		{NewDate(2024, time.June, 14), 8}, // day before birthday
		{NewDate(2024, time.June, 15), 9}, // birthday itself
		{NewDate(2024, time.June, 16), 9}, // day after
		{NewDate(2024, time.July, 1), 9},  // later month
		{NewDate(2024, time.January, 1), 8},
	}

	for _, c := range cases {
		got, err := AgeAt(birth, c.ref)
		if err != nil {
			t.Fatalf("AgeAt(%s): %v", c.ref, err)
		}
		if got != c.want {
			t.Fatalf("AgeAt(%s) = %d, want %d", c.ref, got, c.want)
		}
	}
}

func TestAgeAtMonotonic(t *testing.T) {
	birth := NewDate(2016, time.February, 29)
	prev := -1
	ref := NewDate(2016, time.March, 1)
	for i := 0; i < 2000; i++ {
		age, err := AgeAt(birth, ref)
		if err != nil {
			t.Fatalf("AgeAt: %v", err)
		}
		if age < prev {
			t.Fatalf("age decreased from %d to %d at %s", prev, age, ref)
		}
		prev = age
		ref = Date{Time: ref.AddDate(0, 0, 3)}
	}
}

func TestAgeAtInvalidDate(t *testing.T) {
	if _, err := AgeAt(Date{}, NewDate(2024, time.January, 1)); !IsInvalidDate(err) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
	if _, err := AgeAt(NewDate(2015, time.June, 15), Date{}); !IsInvalidDate(err) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
}
