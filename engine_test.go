package planner

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func testPeople() []Person {
	return []Person{
		{ID: 1, Name: "Mia", Birthdate: NewDate(2015, time.June, 15)},
		{ID: 2, Name: "Ben", Birthdate: NewDate(2012, time.March, 3)},
		{ID: 3, Name: "Lea", Birthdate: NewDate(2019, time.November, 20)},
	}
}

func testCamps() []Camp {
	return []Camp{
		{
			ID: 10, Name: "Zeltlager", StartDate: NewDate(2024, time.July, 1),
			AgeMin: intPtr(8), AgeMax: intPtr(12),
			BasePrice: floatPtr(100), SiblingPrice: floatPtr(80),
		},
		{
			ID: 11, Name: "Reiterhof", StartDate: NewDate(2024, time.August, 5),
			AgeMin: intPtr(10), AgeMax: intPtr(14),
			BasePrice: floatPtr(200),
		},
		{
			ID: 12, Name: "Minicamp", StartDate: NewDate(2024, time.July, 15),
			AgeMin: intPtr(4), AgeMax: intPtr(6),
		},
	}
}

func TestVisibleCampsFollowsSelectedPeople(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())

	// Nobody selected: the whole catalogue is visible.
	if got := e.VisibleCamps(); len(got) != 3 {
		t.Fatalf("expected all camps, got %d", len(got))
	}

	// Mia (9 at camp 10, 9 at camp 11 start): only Zeltlager fits.
	e.TogglePerson(1)
	got := e.VisibleCamps()
	if len(got) != 1 || got[0].ID != 10 {
		t.Fatalf("expected only camp 10, got %+v", got)
	}

	// Adding Ben (12) widens the union to the Reiterhof.
	e.TogglePerson(2)
	got = e.VisibleCamps()
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Fatalf("expected camps 10 and 11, got %+v", got)
	}
}

func TestComputeBreakdownTotalsAndUnpriced(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	today := NewDate(2024, time.June, 1)

	e.TogglePairing(10, 1)
	e.TogglePairing(10, 2)
	e.TogglePairing(12, 3) // Minicamp has no price

	b := e.ComputeBreakdown(today)

	if len(b.Lines) != 1 {
		t.Fatalf("expected one priced line, got %d", len(b.Lines))
	}
	line := b.Lines[0]
	if line.CampID != 10 || line.Cost != 180 {
		t.Fatalf("line = %+v, want camp 10 at 180.00", line)
	}
	if !reflect.DeepEqual(line.AttendeeNames, []string{"Mia", "Ben"}) {
		t.Fatalf("attendees = %v", line.AttendeeNames)
	}
	if !line.HasSiblingDiscount {
		t.Fatalf("two attendees with a sibling price must flag the discount")
	}

	// The unpriced camp shows up but contributes nothing to the total.
	if len(b.Unpriced) != 1 || b.Unpriced[0].CampID != 12 {
		t.Fatalf("unpriced = %+v", b.Unpriced)
	}
	if b.Total != 180 {
		t.Fatalf("total = %.2f, want 180.00", b.Total)
	}
}

func TestComputeBreakdownSkipsStaleCampReference(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	e.TogglePairing(10, 1)
	e.TogglePairing(99, 1) // not in the camp cache

	b := e.ComputeBreakdown(NewDate(2024, time.June, 1))
	if len(b.Lines) != 1 || b.Lines[0].CampID != 10 {
		t.Fatalf("stale camp must be skipped, got %+v", b.Lines)
	}
	if len(b.Faults) != 0 {
		t.Fatalf("stale reference is not a fault: %+v", b.Faults)
	}
}

func TestComputeBreakdownReportsSiblingRatioFault(t *testing.T) {
	camps := []Camp{{
		ID: 13, Name: "Gratiscamp", StartDate: NewDate(2024, time.July, 1),
		BasePrice: floatPtr(0), SiblingPrice: floatPtr(10),
		EarlyBirdPrice: floatPtr(5), EarlyBirdUntil: datePtr(NewDate(2024, time.July, 1)),
	}}
	e := NewEngine(testPeople(), camps)
	e.TogglePairing(13, 1)
	e.TogglePairing(13, 2)

	b := e.ComputeBreakdown(NewDate(2024, time.June, 1))
	if len(b.Lines) != 0 {
		t.Fatalf("faulted camp must not produce a line")
	}
	if len(b.Faults) != 1 || b.Faults[0].CampID != 13 {
		t.Fatalf("expected one fault for camp 13, got %+v", b.Faults)
	}
	if b.Total != 0 {
		t.Fatalf("total = %.2f, want 0", b.Total)
	}
}

type stubSaver struct {
	got  *SavePlanRequest
	plan *Plan
	err  error
}

func (s *stubSaver) SavePlan(_ context.Context, req SavePlanRequest) (*Plan, error) {
	s.got = &req
	return s.plan, s.err
}

func TestSavePlanRejectsEmptySelection(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	saver := &stubSaver{}

	_, err := e.SavePlan(context.Background(), saver, "Sommer", NewDate(2024, time.June, 1))
	if !IsEmptySelection(err) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if saver.got != nil {
		t.Fatalf("saver must not be called for an empty selection")
	}
}

func TestSavePlanSubmitsFlattenedSelection(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	e.TogglePairing(10, 1)
	e.TogglePairing(10, 2)

	saver := &stubSaver{plan: &Plan{ID: 42, Name: "Sommer"}}
	plan, err := e.SavePlan(context.Background(), saver, "Sommer", NewDate(2024, time.June, 1))
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if plan.ID != 42 {
		t.Fatalf("plan id = %d", plan.ID)
	}
	if saver.got.Name != "Sommer" || saver.got.TotalCost != 180 {
		t.Fatalf("request = %+v", saver.got)
	}
	wantPairs := PlanPairs{{PersonID: 1, CampID: 10}, {PersonID: 2, CampID: 10}}
	if !reflect.DeepEqual(saver.got.Selections, wantPairs) {
		t.Fatalf("pairs = %v, want %v", saver.got.Selections, wantPairs)
	}
}

func TestLoadPlanDropsUnknownPeople(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	plan := Plan{
		ID: 5,
		Selections: PlanPairs{
			{PersonID: 1, CampID: 10},
			{PersonID: 999, CampID: 10},
			{PersonID: 2, CampID: 11},
		},
	}

	report := e.LoadPlan(plan)
	if !reflect.DeepEqual(report.DroppedPersonIDs, []int64{999}) {
		t.Fatalf("dropped = %v, want [999]", report.DroppedPersonIDs)
	}
	sel := e.Selection()
	if !sel.PairSelected(10, 1) || !sel.PairSelected(11, 2) {
		t.Fatalf("remaining pairings must load normally")
	}
	if sel.PairSelected(10, 999) {
		t.Fatalf("unknown person must not be paired")
	}
}

func TestPersonStatusesAnnotatesIneligible(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	e.TogglePerson(1) // Mia, 9 at camp start
	e.TogglePerson(3) // Lea, 4 at camp start
	e.TogglePairing(10, 1)

	statuses := e.PersonStatuses(10)
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	mia, lea := statuses[0], statuses[1]
	if !mia.Eligible || !mia.Selected || mia.AgeAtCamp != 9 {
		t.Fatalf("mia = %+v", mia)
	}
	if lea.Eligible || lea.Selected || lea.AgeAtCamp != 4 {
		t.Fatalf("lea = %+v", lea)
	}

	if e.PersonStatuses(99) != nil {
		t.Fatalf("unknown camp should yield nil")
	}
}

func TestSetCampsSwapsSnapshot(t *testing.T) {
	e := NewEngine(testPeople(), testCamps())
	e.TogglePairing(10, 1)

	// The camp disappears from a refreshed catalogue; the selection keeps
	// the stale reference but the breakdown no longer prices it.
	e.SetCamps([]Camp{})
	b := e.ComputeBreakdown(NewDate(2024, time.June, 1))
	if len(b.Lines) != 0 || b.Total != 0 {
		t.Fatalf("breakdown over empty camp cache = %+v", b)
	}
}
