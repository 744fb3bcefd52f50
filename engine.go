package planner

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// PlanSaver persists a plan to the backend. Client satisfies it; tests use
// stubs.
type PlanSaver interface {
	SavePlan(ctx context.Context, req SavePlanRequest) (*Plan, error)
}

// Engine orchestrates the planning core over snapshots of the people and
// camp caches. It owns the selection for the duration of a session and
// performs no I/O; fetching fresh caches and persisting plans go through
// collaborators handed in by the caller.
//
// Engine is single-actor like the rest of the core. Cache refreshes swap
// whole snapshots, so a breakdown never observes a half-updated camp list.
type Engine struct {
	people []Person
	camps  []Camp
	sel    *Selection
}

// NewEngine builds an engine over the given cache snapshots.
func NewEngine(people []Person, camps []Camp) *Engine {
	return &Engine{people: people, camps: camps, sel: NewSelection()}
}

// SetPeople replaces the people snapshot.
func (e *Engine) SetPeople(people []Person) { e.people = people }

// SetCamps replaces the camp snapshot.
func (e *Engine) SetCamps(camps []Camp) { e.camps = camps }

// People returns the current people snapshot.
func (e *Engine) People() []Person { return e.people }

// Camps returns the current camp snapshot.
func (e *Engine) Camps() []Camp { return e.camps }

// Selection exposes the underlying selection store.
func (e *Engine) Selection() *Selection { return e.sel }

// TogglePerson flips a person in or out of the planning subjects.
func (e *Engine) TogglePerson(personID int64) bool {
	return e.sel.TogglePerson(personID)
}

// TogglePairing flips a person's attendance at a camp.
func (e *Engine) TogglePairing(campID, personID int64) bool {
	return e.sel.TogglePairing(campID, personID)
}

// RemoveCamp drops a camp and all its attendees from the selection.
func (e *Engine) RemoveCamp(campID int64) { e.sel.RemoveCamp(campID) }

// ClearSelection empties the selection relation. Asking the user for
// confirmation first is the presentation layer's job.
func (e *Engine) ClearSelection() { e.sel.Clear() }

// SelectedPeople returns the planning subjects in people-snapshot order.
func (e *Engine) SelectedPeople() []Person {
	var out []Person
	for _, p := range e.people {
		if e.sel.PersonSelected(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleCamps returns the camps to show: all of them while no people are
// selected, otherwise every camp at least one selected person may attend.
// Eligibility faults (unparseable dates) are logged, never swallowed into
// an eligible result.
func (e *Engine) VisibleCamps() []Camp {
	camps, faults := EligibleCamps(e.camps, e.SelectedPeople())
	for _, f := range faults {
		log.Warn().Int64("camp_id", f.CampID).Int64("person_id", f.PersonID).Err(f.Err).Msg("eligibility check failed")
	}
	return camps
}

// PersonStatus annotates one planning subject for a camp's detail view.
// Ineligible people are shown but cannot be paired.
type PersonStatus struct {
	Person    Person
	AgeAtCamp int
	Eligible  bool
	Selected  bool
	Err       error
}

// PersonStatuses returns the per-person eligibility annotations for the
// camp, in people-snapshot order. Returns nil if the camp id is unknown.
func (e *Engine) PersonStatuses(campID int64) []PersonStatus {
	camp, ok := e.campByID(campID)
	if !ok {
		return nil
	}
	var out []PersonStatus
	for _, p := range e.SelectedPeople() {
		st := PersonStatus{Person: p, Selected: e.sel.PairSelected(campID, p.ID)}
		age, err := AgeAt(p.Birthdate, camp.StartDate)
		if err != nil {
			st.Err = err
			out = append(out, st)
			continue
		}
		st.AgeAtCamp = age
		eligible, err := IsEligible(p, camp)
		if err != nil {
			st.Err = err
		} else {
			st.Eligible = eligible
		}
		out = append(out, st)
	}
	return out
}

// CostLine is one priced camp of a breakdown.
type CostLine struct {
	CampID             int64
	CampName           string
	AttendeeNames      []string
	Cost               float64
	Detail             string
	HasSiblingDiscount bool
	HasEarlyBird       bool
}

// UnpricedLine is a selected camp whose price is still to be determined.
// It contributes nothing to the total but must stay visible.
type UnpricedLine struct {
	CampID        int64
	CampName      string
	AttendeeNames []string
}

// Breakdown is the itemised cost of the current selection on a given day.
type Breakdown struct {
	Total    float64
	Lines    []CostLine
	Unpriced []UnpricedLine
	Faults   []Fault
}

// ComputeBreakdown prices every selected camp for the given day. Camps that
// vanished from the camp cache are skipped with a warning (stale reference);
// camps without a published price go to Unpriced; pricing faults omit only
// the affected camp's line and are reported in Faults. The result is
// deterministic for a given selection, camp snapshot and day.
func (e *Engine) ComputeBreakdown(today Date) Breakdown {
	var b Breakdown
	for _, campID := range e.sel.Camps() {
		camp, ok := e.campByID(campID)
		if !ok {
			log.Warn().Int64("camp_id", campID).Msg("selected camp missing from camp cache, skipping")
			continue
		}
		attendeeIDs := e.sel.Attendees(campID)
		names := e.attendeeNames(attendeeIDs)

		cost, err := CostForCamp(camp, len(attendeeIDs), today)
		switch {
		case errors.Is(err, ErrUndeterminedPrice):
			b.Unpriced = append(b.Unpriced, UnpricedLine{CampID: campID, CampName: camp.Name, AttendeeNames: names})
		case err != nil:
			b.Faults = append(b.Faults, Fault{CampID: campID, Err: err})
			log.Warn().Int64("camp_id", campID).Err(err).Msg("cost computation failed, line omitted")
		default:
			b.Lines = append(b.Lines, CostLine{
				CampID:             campID,
				CampName:           camp.Name,
				AttendeeNames:      names,
				Cost:               cost.Cost,
				Detail:             cost.Detail,
				HasSiblingDiscount: cost.HasSiblingDiscount,
				HasEarlyBird:       cost.HasEarlyBird,
			})
			b.Total += cost.Cost
		}
	}
	return b
}

// SavePlan flattens the selection and hands it to the saver. An empty
// selection is rejected before any network call.
func (e *Engine) SavePlan(ctx context.Context, saver PlanSaver, name string, today Date) (*Plan, error) {
	if e.sel.Empty() {
		return nil, ErrEmptySelection
	}
	breakdown := e.ComputeBreakdown(today)
	req := SavePlanRequest{
		Name:       name,
		Selections: e.sel.Pairs(),
		TotalCost:  breakdown.Total,
	}
	return saver.SavePlan(ctx, req)
}

// LoadReport describes what happened while loading a persisted plan.
type LoadReport struct {
	DroppedPersonIDs []int64
}

// LoadPlan replaces the selection with a persisted plan's pairings. Pairs
// referencing people absent from the current people snapshot are dropped
// and reported; the rest of the plan loads normally.
func (e *Engine) LoadPlan(p Plan) LoadReport {
	known := make(map[int64]struct{}, len(e.people))
	for _, person := range e.people {
		known[person.ID] = struct{}{}
	}
	dropped := e.sel.Load(p.Selections, known)
	for _, id := range dropped {
		log.Warn().Int64("person_id", id).Int64("plan_id", p.ID).Msg("saved plan references unknown person, pairing dropped")
	}
	return LoadReport{DroppedPersonIDs: dropped}
}

func (e *Engine) campByID(id int64) (Camp, bool) {
	for _, c := range e.camps {
		if c.ID == id {
			return c, true
		}
	}
	return Camp{}, false
}

func (e *Engine) attendeeNames(ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name := "Unknown"
		for _, p := range e.people {
			if p.ID == id {
				name = p.Name
				break
			}
		}
		names = append(names, name)
	}
	return names
}
